// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	financeModel "schoolku_backend/internals/features/finance/budgets/model"
	service "schoolku_backend/internals/features/finance/payments/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type PaymentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db, Validator: validator.New()}
}

type createPaymentRequest struct {
	PaymentBudgetID    uuid.UUID `json:"payment_budget_id" validate:"required"`
	PaymentAmount      int64     `json:"payment_amount" validate:"required,min=1"`
	PaymentDescription string    `json:"payment_description" validate:"required"`
	PaymentPayerName   string    `json:"payment_payer_name" validate:"required,max=100"`
	PaymentPayerEmail  string    `json:"payment_payer_email" validate:"required,email"`
}

// ========== CreatePayment ==========
// Buat transaksi pemasukan berstatus pending + Snap token Midtrans.
// Pemasukan baru diterapkan ke anggaran setelah notifikasi settlement.
func (ctl *PaymentController) CreatePayment(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	userID, _ := helperAuth.GetUserIDFromToken(c)

	var req createPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var budget financeModel.SchoolFinance
	if err := ctl.DB.First(&budget,
		"school_finance_id = ? AND school_finance_school_id = ?", req.PaymentBudgetID, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Anggaran tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa anggaran")
	}

	orderID := fmt.Sprintf("INC-%s", uuid.New().String())
	trx := &financeModel.FinancialTransaction{
		FinancialTransactionBudgetID:    budget.SchoolFinanceID,
		FinancialTransactionSchoolID:    schoolID,
		FinancialTransactionType:        financeModel.TransactionTypeIncome,
		FinancialTransactionAmount:      req.PaymentAmount,
		FinancialTransactionDate:        time.Now(),
		FinancialTransactionDescription: req.PaymentDescription,
		FinancialTransactionStatus:      financeModel.TransactionStatusPending,
		FinancialTransactionOrderID:     &orderID,
	}
	if userID != uuid.Nil {
		trx.FinancialTransactionCreatedBy = &userID
	}

	if err := ctl.DB.Create(trx).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan transaksi pembayaran")
	}

	token, redirectURL, err := service.GenerateSnapToken(*trx, req.PaymentPayerName, req.PaymentPayerEmail)
	if err != nil {
		// transaksi pending tanpa token tidak berguna, bersihkan
		_ = ctl.DB.Delete(trx).Error
		return helper.Error(c, fiber.StatusBadGateway, "Gagal membuat token pembayaran")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Token pembayaran berhasil dibuat", fiber.Map{
		"order_id":     orderID,
		"snap_token":   token,
		"redirect_url": redirectURL,
	})
}

// ========== Notification ==========
// Endpoint webhook Midtrans (tanpa auth, dipanggil server-to-server).
func (ctl *PaymentController) Notification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := service.HandlePaymentStatusWebhook(ctl.DB, body); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", nil)
}

// ========== GetByOrderID ==========
func (ctl *PaymentController) GetByOrderID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	orderID := strings.TrimSpace(c.Params("order_id"))
	if orderID == "" {
		return helper.Error(c, fiber.StatusBadRequest, "order_id wajib diisi")
	}

	var trx financeModel.FinancialTransaction
	if err := ctl.DB.First(&trx,
		"financial_transaction_order_id = ? AND financial_transaction_school_id = ?", orderID, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Transaksi tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil transaksi")
	}
	return helper.Success(c, "OK", fiber.Map{
		"order_id": orderID,
		"status":   trx.FinancialTransactionStatus,
		"amount":   trx.FinancialTransactionAmount,
	})
}
