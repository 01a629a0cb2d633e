// file: internals/features/finance/budgets/controller/budget_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolku_backend/internals/features/finance/budgets/dto"
	model "schoolku_backend/internals/features/finance/budgets/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type BudgetController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewBudgetController(db *gorm.DB) *BudgetController {
	return &BudgetController{DB: db, Validator: validator.New()}
}

// ========== AddBudget ==========
// Tolak bila anggaran (sekolah, tahun, periode, kategori) sudah ada.
func (ctl *BudgetController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateBudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := ctl.DB.Model(&model.SchoolFinance{}).
		Where("school_finance_school_id = ? AND school_finance_academic_year = ? AND school_finance_period = ? AND school_finance_category = ?",
			schoolID, req.SchoolFinanceAcademicYear, req.SchoolFinancePeriod, req.SchoolFinanceCategory).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa anggaran")
	}
	if count > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Anggaran untuk tahun, periode, dan kategori ini sudah ada")
	}

	budget := req.ToModel(schoolID)
	if err := ctl.DB.Create(budget).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan anggaran")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Anggaran berhasil ditambahkan", dto.FromModelBudget(budget))
}

// ========== List ==========
func (ctl *BudgetController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	q := ctl.DB.Model(&model.SchoolFinance{}).Where("school_finance_school_id = ?", schoolID)
	if year := strings.TrimSpace(c.Query("academic_year")); year != "" {
		q = q.Where("school_finance_academic_year = ?", year)
	}
	if period := strings.TrimSpace(c.Query("period")); period != "" {
		q = q.Where("school_finance_period = ?", period)
	}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("school_finance_category = ?", category)
	}

	var budgets []model.SchoolFinance
	if err := q.Order("school_finance_created_at DESC").Find(&budgets).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data anggaran")
	}
	return helper.Success(c, "OK", dto.FromModelBudgets(budgets))
}

// ========== GetByID ==========
func (ctl *BudgetController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "school_finance_id tidak valid")
	}

	var budget model.SchoolFinance
	if err := ctl.DB.First(&budget,
		"school_finance_id = ? AND school_finance_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Anggaran tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data anggaran")
	}

	var transactions []model.FinancialTransaction
	if err := ctl.DB.Where("financial_transaction_budget_id = ?", id).
		Order("financial_transaction_date DESC").Find(&transactions).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil transaksi")
	}

	return helper.Success(c, "OK", fiber.Map{
		"budget":       dto.FromModelBudget(&budget),
		"transactions": dto.FromModelTransactions(transactions),
	})
}

// ========== AddTransaction ==========
// Expense: conditional UPDATE dengan cek baris terpengaruh di dalam
// transaksi DB, supaya dua pengeluaran bersamaan tidak bisa sama-sama lolos
// cek sisa dana.
func (ctl *BudgetController) AddTransaction(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	userID, _ := helperAuth.GetUserIDFromToken(c)

	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	date, err := time.Parse("2006-01-02", req.FinancialTransactionDate)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format tanggal tidak valid")
	}

	var budget model.SchoolFinance
	if err := ctl.DB.First(&budget,
		"school_finance_id = ? AND school_finance_school_id = ?", req.FinancialTransactionBudgetID, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Anggaran tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa anggaran")
	}

	trx := &model.FinancialTransaction{
		FinancialTransactionBudgetID:    budget.SchoolFinanceID,
		FinancialTransactionSchoolID:    schoolID,
		FinancialTransactionType:        model.TransactionType(req.FinancialTransactionType),
		FinancialTransactionAmount:      req.FinancialTransactionAmount,
		FinancialTransactionDate:        date,
		FinancialTransactionDescription: req.FinancialTransactionDescription,
		FinancialTransactionStatus:      model.TransactionStatusSettled,
	}
	if userID != uuid.Nil {
		trx.FinancialTransactionCreatedBy = &userID
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		switch trx.FinancialTransactionType {
		case model.TransactionTypeExpense:
			res := tx.Model(&model.SchoolFinance{}).
				Where("school_finance_id = ? AND school_finance_remaining_amount >= ?",
					budget.SchoolFinanceID, trx.FinancialTransactionAmount).
				Updates(map[string]interface{}{
					"school_finance_used_amount":      gorm.Expr("school_finance_used_amount + ?", trx.FinancialTransactionAmount),
					"school_finance_remaining_amount": gorm.Expr("school_finance_budget_amount - (school_finance_used_amount + ?)", trx.FinancialTransactionAmount),
					"school_finance_updated_at":       gorm.Expr("NOW()"),
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return model.ErrInsufficientBudget
			}
		case model.TransactionTypeIncome:
			res := tx.Model(&model.SchoolFinance{}).
				Where("school_finance_id = ?", budget.SchoolFinanceID).
				Updates(map[string]interface{}{
					"school_finance_budget_amount":    gorm.Expr("school_finance_budget_amount + ?", trx.FinancialTransactionAmount),
					"school_finance_remaining_amount": gorm.Expr("school_finance_remaining_amount + ?", trx.FinancialTransactionAmount),
					"school_finance_updated_at":       gorm.Expr("NOW()"),
				})
			if res.Error != nil {
				return res.Error
			}
		}
		return tx.Create(trx).Error
	})
	if err != nil {
		if errors.Is(err, model.ErrInsufficientBudget) {
			return helper.Error(c, fiber.StatusBadRequest, "Sisa anggaran tidak mencukupi")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan transaksi")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Transaksi berhasil disimpan", dto.FromModelTransaction(trx))
}

// ========== ApproveBudget ==========
// Digate role principal/admin di route; pencatat approver di sini.
func (ctl *BudgetController) Approve(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	approverID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "school_finance_id tidak valid")
	}

	tx := ctl.DB.Model(&model.SchoolFinance{}).
		Where("school_finance_id = ? AND school_finance_school_id = ?", id, schoolID).
		Updates(map[string]interface{}{
			"school_finance_approval_status": true,
			"school_finance_approved_by":     approverID,
			"school_finance_updated_at":      gorm.Expr("NOW()"),
		})
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyetujui anggaran")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Anggaran tidak ditemukan")
	}
	return helper.Success(c, "Anggaran berhasil disetujui", nil)
}

// ========== Delete ==========
// Anggaran dengan transaksi tidak boleh dihapus.
func (ctl *BudgetController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "school_finance_id tidak valid")
	}

	var trxCount int64
	if err := ctl.DB.Model(&model.FinancialTransaction{}).
		Where("financial_transaction_budget_id = ?", id).
		Count(&trxCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa transaksi")
	}
	if trxCount > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Anggaran tidak dapat dihapus karena sudah memiliki transaksi")
	}

	tx := ctl.DB.Where("school_finance_id = ? AND school_finance_school_id = ?", id, schoolID).
		Delete(&model.SchoolFinance{})
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus anggaran")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Anggaran tidak ditemukan")
	}
	return helper.Success(c, "Anggaran berhasil dihapus", nil)
}
