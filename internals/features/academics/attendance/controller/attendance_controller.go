// file: internals/features/academics/attendance/controller/attendance_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "schoolku_backend/internals/features/academics/attendance/dto"
	model "schoolku_backend/internals/features/academics/attendance/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type AttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Validator: validator.New()}
}

// ========== Create ==========
func (ctl *AttendanceController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	rec, err := req.ToModel(schoolID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	// satu record per siswa per tanggal: tabrakan di-update, bukan duplikat
	if err := ctl.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "attendance_student_id"}, {Name: "attendance_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"attendance_status", "attendance_notes"}),
	}).Create(rec).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan presensi")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Presensi berhasil disimpan", dto.FromModelAttendance(rec))
}

// ========== BulkCreate ==========
// Presensi satu kelas sekali kirim.
func (ctl *AttendanceController) BulkCreate(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.BulkCreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	date, err := time.Parse("2006-01-02", req.AttendanceDate)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format tanggal tidak valid")
	}

	records := make([]model.AttendanceRecord, 0, len(req.Entries))
	for _, e := range req.Entries {
		records = append(records, model.AttendanceRecord{
			AttendanceSchoolID:  schoolID,
			AttendanceStudentID: e.AttendanceStudentID,
			AttendanceDate:      date,
			AttendanceStatus:    model.AttendanceStatus(e.AttendanceStatus),
			AttendanceNotes:     e.AttendanceNotes,
		})
	}

	if err := ctl.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "attendance_student_id"}, {Name: "attendance_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"attendance_status", "attendance_notes"}),
	}).Create(&records).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan presensi massal")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Presensi massal berhasil disimpan", fiber.Map{
		"saved": len(records),
	})
}

// ========== ListByStudent ==========
func (ctl *AttendanceController) ListByStudent(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	studentID, err := uuid.Parse(strings.TrimSpace(c.Params("studentId")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "student_id tidak valid")
	}

	q := ctl.DB.Model(&model.AttendanceRecord{}).
		Where("attendance_school_id = ? AND attendance_student_id = ?", schoolID, studentID)
	if from := strings.TrimSpace(c.Query("from")); from != "" {
		q = q.Where("attendance_date >= ?", from)
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		q = q.Where("attendance_date <= ?", to)
	}

	var records []model.AttendanceRecord
	if err := q.Order("attendance_date DESC").Find(&records).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil presensi")
	}

	return helper.Success(c, "OK", fiber.Map{
		"records": dto.FromModelAttendances(records),
		"summary": dto.BuildAttendanceSummary(studentID, records),
	})
}

// ========== Delete ==========
func (ctl *AttendanceController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "attendance_id tidak valid")
	}

	tx := ctl.DB.Where("attendance_id = ? AND attendance_school_id = ?", id, schoolID).
		Delete(&model.AttendanceRecord{})
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus presensi")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Presensi tidak ditemukan")
	}
	return helper.Success(c, "Presensi berhasil dihapus", nil)
}
