// file: internals/features/ai/advisory/controller/warning_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolku_backend/internals/features/ai/advisory/dto"
	model "schoolku_backend/internals/features/ai/advisory/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

var warningSortWhitelist = map[string]string{
	"detected_date": "early_warning_detected_date",
	"urgency":       "early_warning_urgency",
	"category":      "early_warning_category",
}

type WarningController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewWarningController(db *gorm.DB) *WarningController {
	return &WarningController{DB: db, Validator: validator.New()}
}

// ========== List ==========
func (ctl *WarningController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	p := helper.ParsePagination(c, "detected_date", "desc")

	q := ctl.DB.Model(&model.EarlyWarning{}).
		Where("early_warning_school_id = ?", schoolID)
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("early_warning_category = ?", category)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("early_warning_status = ?", status)
	}
	if urgency := strings.TrimSpace(c.Query("urgency")); urgency != "" {
		q = q.Where("early_warning_urgency = ?", urgency)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung peringatan")
	}

	order, err := p.SafeOrderClause(warningSortWhitelist, "detected_date")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter sort tidak valid")
	}

	var warnings []model.EarlyWarning
	if err := q.Order(order).
		Limit(p.Limit()).Offset(p.Offset()).Find(&warnings).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil peringatan")
	}

	return helper.Success(c, "OK", fiber.Map{
		"items": dto.FromModelWarnings(warnings),
		"meta":  helper.BuildMeta(total, p),
	})
}

// ========== UpdateStatus ==========
func (ctl *WarningController) UpdateStatus(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "early_warning_id tidak valid")
	}

	var req dto.UpdateWarningStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var warning model.EarlyWarning
	if err := ctl.DB.First(&warning,
		"early_warning_id = ? AND early_warning_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Peringatan tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil peringatan")
	}

	warning.EarlyWarningStatus = model.WarningStatus(req.EarlyWarningStatus)
	warning.EarlyWarningUpdatedAt = time.Now()
	if err := ctl.DB.Save(&warning).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui status peringatan")
	}
	return helper.Success(c, "Status peringatan berhasil diperbarui", dto.FromModelWarning(&warning))
}

// ========== Delete ==========
func (ctl *WarningController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "early_warning_id tidak valid")
	}

	tx := ctl.DB.Where("early_warning_id = ? AND early_warning_school_id = ?", id, schoolID).
		Delete(&model.EarlyWarning{})
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus peringatan")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Peringatan tidak ditemukan")
	}
	return helper.Success(c, "Peringatan berhasil dihapus", nil)
}
