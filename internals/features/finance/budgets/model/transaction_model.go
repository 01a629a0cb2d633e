// file: internals/features/finance/budgets/model/transaction_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "pending"
	TransactionStatusSettled TransactionStatus = "settled"
)

type FinancialTransaction struct {
	FinancialTransactionID uuid.UUID `json:"financial_transaction_id" gorm:"column:financial_transaction_id;type:uuid;default:gen_random_uuid();primaryKey"`

	FinancialTransactionBudgetID uuid.UUID `json:"financial_transaction_budget_id" gorm:"column:financial_transaction_budget_id;type:uuid;not null;index"`
	FinancialTransactionSchoolID uuid.UUID `json:"financial_transaction_school_id" gorm:"column:financial_transaction_school_id;type:uuid;not null;index"`

	FinancialTransactionType   TransactionType `json:"financial_transaction_type" gorm:"column:financial_transaction_type;type:varchar(10);not null"`
	FinancialTransactionAmount int64           `json:"financial_transaction_amount" gorm:"column:financial_transaction_amount;type:bigint;not null"`

	FinancialTransactionDate        time.Time `json:"financial_transaction_date" gorm:"column:financial_transaction_date;type:date;not null"`
	FinancialTransactionDescription string    `json:"financial_transaction_description" gorm:"column:financial_transaction_description;type:text;not null"`

	// settled: sudah diterapkan ke anggaran. pending: menunggu pembayaran online.
	FinancialTransactionStatus TransactionStatus `json:"financial_transaction_status" gorm:"column:financial_transaction_status;type:varchar(10);not null;default:'settled'"`

	// Order ID midtrans untuk transaksi income via pembayaran online
	FinancialTransactionOrderID *string `json:"financial_transaction_order_id,omitempty" gorm:"column:financial_transaction_order_id;type:varchar(60);uniqueIndex"`

	FinancialTransactionCreatedBy *uuid.UUID `json:"financial_transaction_created_by,omitempty" gorm:"column:financial_transaction_created_by;type:uuid"`

	FinancialTransactionCreatedAt time.Time `json:"financial_transaction_created_at" gorm:"column:financial_transaction_created_at;type:timestamptz;not null;default:now()"`
}

func (FinancialTransaction) TableName() string { return "financial_transactions" }
