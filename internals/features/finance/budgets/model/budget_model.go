// file: internals/features/finance/budgets/model/budget_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInsufficientBudget = errors.New("sisa anggaran tidak mencukupi")

// SchoolFinance adalah anggaran per (sekolah, tahun ajaran, periode, kategori).
// Invariant: remaining = budget - used, dijaga ulang pada setiap transaksi.
type SchoolFinance struct {
	SchoolFinanceID uuid.UUID `json:"school_finance_id" gorm:"column:school_finance_id;type:uuid;default:gen_random_uuid();primaryKey"`

	SchoolFinanceSchoolID     uuid.UUID `json:"school_finance_school_id" gorm:"column:school_finance_school_id;type:uuid;not null;uniqueIndex:uq_school_finances_tuple,priority:1"`
	SchoolFinanceAcademicYear string    `json:"school_finance_academic_year" gorm:"column:school_finance_academic_year;type:varchar(9);not null;uniqueIndex:uq_school_finances_tuple,priority:2"`
	SchoolFinancePeriod       string    `json:"school_finance_period" gorm:"column:school_finance_period;type:varchar(20);not null;uniqueIndex:uq_school_finances_tuple,priority:3"`
	SchoolFinanceCategory     string    `json:"school_finance_category" gorm:"column:school_finance_category;type:varchar(60);not null;uniqueIndex:uq_school_finances_tuple,priority:4"`

	SchoolFinanceBudgetAmount    int64 `json:"school_finance_budget_amount" gorm:"column:school_finance_budget_amount;type:bigint;not null"`
	SchoolFinanceUsedAmount      int64 `json:"school_finance_used_amount" gorm:"column:school_finance_used_amount;type:bigint;not null;default:0"`
	SchoolFinanceRemainingAmount int64 `json:"school_finance_remaining_amount" gorm:"column:school_finance_remaining_amount;type:bigint;not null"`

	SchoolFinanceDescription *string `json:"school_finance_description,omitempty" gorm:"column:school_finance_description;type:text"`

	SchoolFinanceApprovalStatus bool       `json:"school_finance_approval_status" gorm:"column:school_finance_approval_status;not null;default:false"`
	SchoolFinanceApprovedBy     *uuid.UUID `json:"school_finance_approved_by,omitempty" gorm:"column:school_finance_approved_by;type:uuid"`

	SchoolFinanceCreatedAt time.Time `json:"school_finance_created_at" gorm:"column:school_finance_created_at;type:timestamptz;not null;default:now()"`
	SchoolFinanceUpdatedAt time.Time `json:"school_finance_updated_at" gorm:"column:school_finance_updated_at;type:timestamptz;not null;default:now()"`
}

func (SchoolFinance) TableName() string { return "school_finances" }

// ApplyExpense mengurangi sisa anggaran; gagal bila amount melebihi sisa.
// Jalur tulis produksi memakai UPDATE kondisional di controller agar aman
// terhadap transaksi bersamaan; method ini memuat aritmetika yang sama
// untuk pemakaian in-memory dan pengujian.
func (f *SchoolFinance) ApplyExpense(amount int64) error {
	if amount > f.SchoolFinanceRemainingAmount {
		return ErrInsufficientBudget
	}
	f.SchoolFinanceUsedAmount += amount
	f.SchoolFinanceRemainingAmount = f.SchoolFinanceBudgetAmount - f.SchoolFinanceUsedAmount
	return nil
}

// ApplyIncome menaikkan plafon dan sisa anggaran dengan jumlah yang sama.
func (f *SchoolFinance) ApplyIncome(amount int64) {
	f.SchoolFinanceBudgetAmount += amount
	f.SchoolFinanceRemainingAmount = f.SchoolFinanceBudgetAmount - f.SchoolFinanceUsedAmount
}
