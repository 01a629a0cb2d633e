// file: internals/features/facilities/controller/facility_usage_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolku_backend/internals/features/facilities/dto"
	model "schoolku_backend/internals/features/facilities/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type FacilityUsageController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFacilityUsageController(db *gorm.DB) *FacilityUsageController {
	return &FacilityUsageController{DB: db, Validator: validator.New()}
}

// ========== Create (booking) ==========
// Tolak bila start >= end atau jendela waktu bentrok dengan booking lain
// (tiga kasus overlap, booking rejected diabaikan).
func (ctl *FacilityUsageController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateFacilityUsageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.FacilityUsageStartTime >= req.FacilityUsageEndTime {
		return helper.Error(c, fiber.StatusBadRequest, "Jam mulai harus sebelum jam selesai")
	}

	var facility model.Facility
	if err := ctl.DB.First(&facility,
		"facility_id = ? AND facility_school_id = ?", req.FacilityUsageFacilityID, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Fasilitas tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa fasilitas")
	}

	// tiga kasus overlap: baru mulai di dalam existing, baru berakhir di
	// dalam existing, baru mencakup existing
	var conflicts int64
	if err := ctl.DB.Model(&model.FacilityUsage{}).
		Where("facility_usage_facility_id = ? AND facility_usage_date = ? AND facility_usage_approval_status <> ?",
			req.FacilityUsageFacilityID, req.FacilityUsageDate, model.ApprovalStatusRejected).
		Where("(? >= facility_usage_start_time AND ? < facility_usage_end_time)"+
			" OR (? > facility_usage_start_time AND ? <= facility_usage_end_time)"+
			" OR (? <= facility_usage_start_time AND ? >= facility_usage_end_time)",
			req.FacilityUsageStartTime, req.FacilityUsageStartTime,
			req.FacilityUsageEndTime, req.FacilityUsageEndTime,
			req.FacilityUsageStartTime, req.FacilityUsageEndTime).
		Count(&conflicts).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa jadwal fasilitas")
	}
	if conflicts > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Jadwal bentrok dengan pemakaian fasilitas lain")
	}

	usage, err := req.ToModel(schoolID, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Create(usage).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan pemakaian fasilitas")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pengajuan pemakaian fasilitas berhasil dibuat", dto.FromModelFacilityUsage(usage))
}

// ========== List ==========
func (ctl *FacilityUsageController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	q := ctl.DB.Model(&model.FacilityUsage{}).Where("facility_usage_school_id = ?", schoolID)
	if facilityID := strings.TrimSpace(c.Query("facility_id")); facilityID != "" {
		q = q.Where("facility_usage_facility_id = ?", facilityID)
	}
	if status := strings.TrimSpace(c.Query("approval_status")); status != "" {
		q = q.Where("facility_usage_approval_status = ?", status)
	}
	if date := strings.TrimSpace(c.Query("date")); date != "" {
		q = q.Where("facility_usage_date = ?", date)
	}

	var usages []model.FacilityUsage
	if err := q.Order("facility_usage_date DESC, facility_usage_start_time ASC").Find(&usages).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data pemakaian")
	}
	return helper.Success(c, "OK", dto.FromModelFacilityUsages(usages))
}

// ========== Approve / Reject ==========
// Digate role principal/admin di route.
func (ctl *FacilityUsageController) SetApproval(c *fiber.Ctx) error {
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
		return helper.Error(c, fiber.StatusBadRequest, "facility_usage_id tidak valid")
	}

	var body struct {
		ApprovalStatus string `json:"approval_status" validate:"required,oneof=approved rejected"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var usage model.FacilityUsage
	if err := ctl.DB.First(&usage,
		"facility_usage_id = ? AND facility_usage_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Pemakaian fasilitas tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data pemakaian")
	}
	if usage.FacilityUsageApprovalStatus != model.ApprovalStatusPending {
		return helper.Error(c, fiber.StatusBadRequest, "Pengajuan ini sudah diproses")
	}

	usage.FacilityUsageApprovalStatus = model.ApprovalStatus(body.ApprovalStatus)
	usage.FacilityUsageApprovedBy = &approverID
	usage.FacilityUsageUpdatedAt = time.Now()
	if err := ctl.DB.Save(&usage).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses persetujuan")
	}
	return helper.Success(c, "Persetujuan berhasil diproses", dto.FromModelFacilityUsage(&usage))
}

// ========== Delete ==========
func (ctl *FacilityUsageController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "facility_usage_id tidak valid")
	}

	tx := ctl.DB.Where("facility_usage_id = ? AND facility_usage_school_id = ?", id, schoolID).
		Delete(&model.FacilityUsage{})
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus pemakaian")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Pemakaian fasilitas tidak ditemukan")
	}
	return helper.Success(c, "Pemakaian fasilitas berhasil dihapus", nil)
}
