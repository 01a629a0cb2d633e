// file: internals/features/teachers/performance/controller/teacher_performance_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolku_backend/internals/features/teachers/performance/dto"
	model "schoolku_backend/internals/features/teachers/performance/model"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type TeacherPerformanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTeacherPerformanceController(db *gorm.DB) *TeacherPerformanceController {
	return &TeacherPerformanceController{DB: db, Validator: validator.New()}
}

// ========== Create ==========
// Satu evaluasi per (guru, periode, tahun ajaran); duplikat ditolak.
func (ctl *TeacherPerformanceController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	evaluatorID, _ := helperAuth.GetUserIDFromToken(c)

	var req dto.CreatePerformanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// guru harus user sekolah ini
	var teacher userModel.User
	if err := ctl.DB.First(&teacher,
		"user_id = ? AND user_school_id = ?", req.TeacherPerformanceTeacherID, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Guru tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa data guru")
	}

	var count int64
	if err := ctl.DB.Model(&model.TeacherPerformance{}).
		Where("teacher_performance_teacher_id = ? AND teacher_performance_period = ? AND teacher_performance_academic_year = ?",
			req.TeacherPerformanceTeacherID, req.TeacherPerformancePeriod, req.TeacherPerformanceAcademicYear).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa evaluasi")
	}
	if count > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Evaluasi untuk guru, periode, dan tahun ajaran ini sudah ada")
	}

	perf := req.ToModel(schoolID, evaluatorID)
	if err := ctl.DB.Create(perf).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan evaluasi")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Evaluasi kinerja berhasil disimpan", dto.FromModelPerformance(perf))
}

// ========== List ==========
func (ctl *TeacherPerformanceController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	q := ctl.DB.Model(&model.TeacherPerformance{}).
		Where("teacher_performance_school_id = ?", schoolID)
	if teacherID := strings.TrimSpace(c.Query("teacher_id")); teacherID != "" {
		q = q.Where("teacher_performance_teacher_id = ?", teacherID)
	}
	if period := strings.TrimSpace(c.Query("period")); period != "" {
		q = q.Where("teacher_performance_period = ?", period)
	}
	if year := strings.TrimSpace(c.Query("academic_year")); year != "" {
		q = q.Where("teacher_performance_academic_year = ?", year)
	}

	var perfs []model.TeacherPerformance
	if err := q.Preload("Details").
		Order("teacher_performance_created_at DESC").Find(&perfs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data evaluasi")
	}
	return helper.Success(c, "OK", dto.FromModelPerformances(perfs))
}

// ========== GetByID ==========
func (ctl *TeacherPerformanceController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "teacher_performance_id tidak valid")
	}

	var perf model.TeacherPerformance
	if err := ctl.DB.Preload("Details").First(&perf,
		"teacher_performance_id = ? AND teacher_performance_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Evaluasi tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data evaluasi")
	}
	return helper.Success(c, "OK", dto.FromModelPerformance(&perf))
}

// ========== Update ==========
func (ctl *TeacherPerformanceController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "teacher_performance_id tidak valid")
	}

	var req dto.UpdatePerformanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var perf model.TeacherPerformance
	if err := ctl.DB.First(&perf,
		"teacher_performance_id = ? AND teacher_performance_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Evaluasi tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data evaluasi")
	}

	req.ApplyTo(&perf)
	if err := ctl.DB.Save(&perf).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui evaluasi")
	}
	return helper.Success(c, "Evaluasi berhasil diperbarui", dto.FromModelPerformance(&perf))
}

// ========== Delete ==========
// Detail ikut terhapus dalam satu transaksi.
func (ctl *TeacherPerformanceController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "teacher_performance_id tidak valid")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("teacher_performance_detail_performance_id = ?", id).
			Delete(&model.TeacherPerformanceDetail{}).Error; err != nil {
			return err
		}
		res := tx.Where("teacher_performance_id = ? AND teacher_performance_school_id = ?", id, schoolID).
			Delete(&model.TeacherPerformance{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Evaluasi tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus evaluasi")
	}
	return helper.Success(c, "Evaluasi berhasil dihapus", nil)
}
