// file: internals/features/facilities/controller/facility_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolku_backend/internals/features/facilities/dto"
	model "schoolku_backend/internals/features/facilities/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type FacilityController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFacilityController(db *gorm.DB) *FacilityController {
	return &FacilityController{DB: db, Validator: validator.New()}
}

// ========== Create ==========
func (ctl *FacilityController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateFacilityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := ctl.DB.Model(&model.Facility{}).
		Where("facility_school_id = ? AND facility_code = ?", schoolID, req.FacilityCode).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa kode fasilitas")
	}
	if count > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Kode fasilitas sudah terdaftar di sekolah ini")
	}

	facility := req.ToModel(schoolID)
	if err := ctl.DB.Create(facility).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan fasilitas")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Fasilitas berhasil ditambahkan", dto.FromModelFacility(facility))
}

// ========== List ==========
func (ctl *FacilityController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	p := helper.ParsePagination(c, "created_at", "desc")

	q := ctl.DB.Model(&model.Facility{}).Where("facility_school_id = ?", schoolID)
	if ftype := strings.TrimSpace(c.Query("type")); ftype != "" {
		q = q.Where("facility_type = ?", ftype)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(facility_name) LIKE ? OR LOWER(facility_code) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung fasilitas")
	}

	var facilities []model.Facility
	if err := q.Order("facility_created_at DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&facilities).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data fasilitas")
	}

	return helper.Success(c, "OK", fiber.Map{
		"facilities": dto.FromModelFacilities(facilities),
		"pagination": helper.BuildMeta(total, p),
	})
}

// ========== Update ==========
func (ctl *FacilityController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "facility_id tidak valid")
	}

	var facility model.Facility
	if err := ctl.DB.First(&facility, "facility_id = ? AND facility_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Fasilitas tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data fasilitas")
	}

	var req dto.UpdateFacilityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyTo(&facility)
	if err := ctl.DB.Save(&facility).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui fasilitas")
	}
	return helper.Success(c, "Fasilitas berhasil diperbarui", dto.FromModelFacility(&facility))
}

// ========== Delete ==========
// Fasilitas dengan riwayat pemakaian tidak boleh dihapus.
func (ctl *FacilityController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "facility_id tidak valid")
	}

	var usageCount int64
	if err := ctl.DB.Model(&model.FacilityUsage{}).
		Where("facility_usage_facility_id = ?", id).
		Count(&usageCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa riwayat pemakaian")
	}
	if usageCount > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Fasilitas tidak dapat dihapus karena masih memiliki riwayat pemakaian")
	}

	tx := ctl.DB.Where("facility_id = ? AND facility_school_id = ?", id, schoolID).Delete(&model.Facility{})
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus fasilitas")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Fasilitas tidak ditemukan")
	}
	return helper.Success(c, "Fasilitas berhasil dihapus", nil)
}
