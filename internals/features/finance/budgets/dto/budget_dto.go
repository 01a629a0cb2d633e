// file: internals/features/finance/budgets/dto/budget_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/finance/budgets/model"
)

type CreateBudgetRequest struct {
	SchoolFinanceAcademicYear string  `json:"school_finance_academic_year" validate:"required,len=9"`
	SchoolFinancePeriod       string  `json:"school_finance_period" validate:"required,max=20"`
	SchoolFinanceCategory     string  `json:"school_finance_category" validate:"required,max=60"`
	SchoolFinanceBudgetAmount int64   `json:"school_finance_budget_amount" validate:"required,min=1"`
	SchoolFinanceDescription  *string `json:"school_finance_description"`
}

func (r *CreateBudgetRequest) ToModel(schoolID uuid.UUID) *model.SchoolFinance {
	return &model.SchoolFinance{
		SchoolFinanceSchoolID:        schoolID,
		SchoolFinanceAcademicYear:    r.SchoolFinanceAcademicYear,
		SchoolFinancePeriod:          r.SchoolFinancePeriod,
		SchoolFinanceCategory:        r.SchoolFinanceCategory,
		SchoolFinanceBudgetAmount:    r.SchoolFinanceBudgetAmount,
		SchoolFinanceUsedAmount:      0,
		SchoolFinanceRemainingAmount: r.SchoolFinanceBudgetAmount,
		SchoolFinanceDescription:     r.SchoolFinanceDescription,
		SchoolFinanceApprovalStatus:  false,
	}
}

type CreateTransactionRequest struct {
	FinancialTransactionBudgetID    uuid.UUID `json:"financial_transaction_budget_id" validate:"required"`
	FinancialTransactionType        string    `json:"financial_transaction_type" validate:"required,oneof=income expense"`
	FinancialTransactionAmount      int64     `json:"financial_transaction_amount" validate:"required,min=1"`
	FinancialTransactionDate        string    `json:"financial_transaction_date" validate:"required,datetime=2006-01-02"`
	FinancialTransactionDescription string    `json:"financial_transaction_description" validate:"required"`
}

type BudgetResponse struct {
	SchoolFinanceID              uuid.UUID  `json:"school_finance_id"`
	SchoolFinanceAcademicYear    string     `json:"school_finance_academic_year"`
	SchoolFinancePeriod          string     `json:"school_finance_period"`
	SchoolFinanceCategory        string     `json:"school_finance_category"`
	SchoolFinanceBudgetAmount    int64      `json:"school_finance_budget_amount"`
	SchoolFinanceUsedAmount      int64      `json:"school_finance_used_amount"`
	SchoolFinanceRemainingAmount int64      `json:"school_finance_remaining_amount"`
	SchoolFinanceDescription     *string    `json:"school_finance_description,omitempty"`
	SchoolFinanceApprovalStatus  bool       `json:"school_finance_approval_status"`
	SchoolFinanceApprovedBy      *uuid.UUID `json:"school_finance_approved_by,omitempty"`
	SchoolFinanceCreatedAt       time.Time  `json:"school_finance_created_at"`
}

func FromModelBudget(f *model.SchoolFinance) BudgetResponse {
	return BudgetResponse{
		SchoolFinanceID:              f.SchoolFinanceID,
		SchoolFinanceAcademicYear:    f.SchoolFinanceAcademicYear,
		SchoolFinancePeriod:          f.SchoolFinancePeriod,
		SchoolFinanceCategory:        f.SchoolFinanceCategory,
		SchoolFinanceBudgetAmount:    f.SchoolFinanceBudgetAmount,
		SchoolFinanceUsedAmount:      f.SchoolFinanceUsedAmount,
		SchoolFinanceRemainingAmount: f.SchoolFinanceRemainingAmount,
		SchoolFinanceDescription:     f.SchoolFinanceDescription,
		SchoolFinanceApprovalStatus:  f.SchoolFinanceApprovalStatus,
		SchoolFinanceApprovedBy:      f.SchoolFinanceApprovedBy,
		SchoolFinanceCreatedAt:       f.SchoolFinanceCreatedAt,
	}
}

func FromModelBudgets(list []model.SchoolFinance) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelBudget(&list[i]))
	}
	return out
}

type TransactionResponse struct {
	FinancialTransactionID          uuid.UUID `json:"financial_transaction_id"`
	FinancialTransactionBudgetID    uuid.UUID `json:"financial_transaction_budget_id"`
	FinancialTransactionType        string    `json:"financial_transaction_type"`
	FinancialTransactionAmount      int64     `json:"financial_transaction_amount"`
	FinancialTransactionDate        string    `json:"financial_transaction_date"`
	FinancialTransactionDescription string    `json:"financial_transaction_description"`
	FinancialTransactionStatus      string    `json:"financial_transaction_status"`
	FinancialTransactionOrderID     *string   `json:"financial_transaction_order_id,omitempty"`
}

func FromModelTransaction(t *model.FinancialTransaction) TransactionResponse {
	return TransactionResponse{
		FinancialTransactionID:          t.FinancialTransactionID,
		FinancialTransactionBudgetID:    t.FinancialTransactionBudgetID,
		FinancialTransactionType:        string(t.FinancialTransactionType),
		FinancialTransactionAmount:      t.FinancialTransactionAmount,
		FinancialTransactionDate:        t.FinancialTransactionDate.Format("2006-01-02"),
		FinancialTransactionDescription: t.FinancialTransactionDescription,
		FinancialTransactionStatus:      string(t.FinancialTransactionStatus),
		FinancialTransactionOrderID:     t.FinancialTransactionOrderID,
	}
}

func FromModelTransactions(list []model.FinancialTransaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelTransaction(&list[i]))
	}
	return out
}
