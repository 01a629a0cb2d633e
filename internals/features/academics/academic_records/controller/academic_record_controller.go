// file: internals/features/academics/academic_records/controller/academic_record_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolku_backend/internals/features/academics/academic_records/dto"
	model "schoolku_backend/internals/features/academics/academic_records/model"
	studentModel "schoolku_backend/internals/features/academics/students/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type AcademicRecordController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAcademicRecordController(db *gorm.DB) *AcademicRecordController {
	return &AcademicRecordController{DB: db, Validator: validator.New()}
}

// ========== Create ==========
// Duplikat (student, subject, semester, academic_year) ditolak.
func (ctl *AcademicRecordController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateAcademicRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// siswa harus milik sekolah pemanggil
	var student studentModel.Student
	if err := ctl.DB.First(&student,
		"student_id = ? AND student_school_id = ?", req.AcademicRecordStudentID, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa siswa")
	}

	var count int64
	if err := ctl.DB.Model(&model.AcademicRecord{}).
		Where("academic_record_student_id = ? AND academic_record_subject_id = ? AND academic_record_semester = ? AND academic_record_academic_year = ?",
			req.AcademicRecordStudentID, req.AcademicRecordSubjectID, req.AcademicRecordSemester, req.AcademicRecordAcademicYear).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa nilai")
	}
	if count > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nilai untuk mapel, semester, dan tahun ajaran ini sudah ada")
	}

	rec := req.ToModel(schoolID)
	if err := ctl.DB.Create(rec).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan nilai")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Nilai berhasil ditambahkan", dto.FromModelAcademicRecord(rec))
}

// ========== ListByStudent ==========
func (ctl *AcademicRecordController) ListByStudent(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	studentID, err := uuid.Parse(strings.TrimSpace(c.Params("studentId")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "student_id tidak valid")
	}

	q := ctl.DB.Model(&model.AcademicRecord{}).
		Where("academic_record_school_id = ? AND academic_record_student_id = ?", schoolID, studentID)
	if year := strings.TrimSpace(c.Query("academic_year")); year != "" {
		q = q.Where("academic_record_academic_year = ?", year)
	}
	if semester := strings.TrimSpace(c.Query("semester")); semester != "" {
		q = q.Where("academic_record_semester = ?", semester)
	}

	var records []model.AcademicRecord
	if err := q.Order("academic_record_academic_year DESC, academic_record_semester ASC, academic_record_subject_name ASC").
		Find(&records).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data nilai")
	}

	var average float64
	for i := range records {
		average += records[i].AcademicRecordCompositeScore
	}
	if len(records) > 0 {
		average /= float64(len(records))
	}

	return helper.Success(c, "OK", fiber.Map{
		"records":       dto.FromModelAcademicRecords(records),
		"average_score": average,
	})
}

// ========== SubjectAverages ==========
// Rata-rata composite per mapel untuk satu tahun ajaran.
func (ctl *AcademicRecordController) SubjectAverages(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	type row struct {
		SubjectID    uuid.UUID `json:"subject_id"`
		SubjectName  string    `json:"subject_name"`
		AverageScore float64   `json:"average_score"`
		RecordCount  int64     `json:"record_count"`
	}

	q := ctl.DB.Model(&model.AcademicRecord{}).
		Select("academic_record_subject_id AS subject_id, academic_record_subject_name AS subject_name, AVG(academic_record_composite_score) AS average_score, COUNT(*) AS record_count").
		Where("academic_record_school_id = ?", schoolID).
		Group("academic_record_subject_id, academic_record_subject_name")
	if year := strings.TrimSpace(c.Query("academic_year")); year != "" {
		q = q.Where("academic_record_academic_year = ?", year)
	}

	var rows []row
	if err := q.Order("average_score ASC").Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung rata-rata mapel")
	}
	return helper.Success(c, "OK", rows)
}

// ========== Update ==========
func (ctl *AcademicRecordController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "academic_record_id tidak valid")
	}

	var rec model.AcademicRecord
	if err := ctl.DB.First(&rec,
		"academic_record_id = ? AND academic_record_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data nilai")
	}

	var req dto.UpdateAcademicRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyTo(&rec)
	if err := ctl.DB.Save(&rec).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui nilai")
	}
	return helper.Success(c, "Nilai berhasil diperbarui", dto.FromModelAcademicRecord(&rec))
}

// ========== Delete (hard) ==========
func (ctl *AcademicRecordController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "academic_record_id tidak valid")
	}

	tx := ctl.DB.Where("academic_record_id = ? AND academic_record_school_id = ?", id, schoolID).
		Delete(&model.AcademicRecord{})
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus nilai")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
	}
	return helper.Success(c, "Nilai berhasil dihapus", nil)
}
