// HandlePaymentStatusWebhook dipanggil saat menerima notifikasi dari Midtrans
package service

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	financeModel "schoolku_backend/internals/features/finance/budgets/model"
)

// HandlePaymentStatusWebhook memproses notifikasi status pembayaran.
// Settlement hanya diterapkan sekali: update status pending -> settled
// dengan cek baris terpengaruh, lalu pemasukan diterapkan ke anggaran.
func HandlePaymentStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	log.Println("📄 Order ID:", orderID)
	log.Println("📌 Transaction Status:", status)

	var trx financeModel.FinancialTransaction
	if err := db.Where("financial_transaction_order_id = ?", orderID).First(&trx).Error; err != nil {
		log.Println("[ERROR] Transaksi tidak ditemukan:", err)
		return fmt.Errorf("transaction with order_id %s not found", orderID)
	}

	switch status {
	case "capture", "settlement":
		return db.Transaction(func(tx *gorm.DB) error {
			res := tx.Model(&financeModel.FinancialTransaction{}).
				Where("financial_transaction_id = ? AND financial_transaction_status = ?",
					trx.FinancialTransactionID, financeModel.TransactionStatusPending).
				Update("financial_transaction_status", financeModel.TransactionStatusSettled)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// sudah pernah di-settle, notifikasi duplikat diabaikan
				log.Println("[INFO] Notifikasi duplikat untuk order:", orderID)
				return nil
			}
			return tx.Model(&financeModel.SchoolFinance{}).
				Where("school_finance_id = ?", trx.FinancialTransactionBudgetID).
				Updates(map[string]interface{}{
					"school_finance_budget_amount":    gorm.Expr("school_finance_budget_amount + ?", trx.FinancialTransactionAmount),
					"school_finance_remaining_amount": gorm.Expr("school_finance_remaining_amount + ?", trx.FinancialTransactionAmount),
					"school_finance_updated_at":       gorm.Expr("NOW()"),
				}).Error
		})

	case "expire", "cancel", "deny":
		// transaksi pending yang gagal dibayar dihapus supaya tidak menggantung
		if trx.FinancialTransactionStatus == financeModel.TransactionStatusPending {
			if err := db.Delete(&trx).Error; err != nil {
				log.Println("[ERROR] Gagal menghapus transaksi batal:", err)
				return err
			}
		}

	default:
		log.Println("[INFO] Status tidak diproses:", status)
	}

	return nil
}
