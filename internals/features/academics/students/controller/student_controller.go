// file: internals/features/academics/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolku_backend/internals/features/academics/students/dto"
	model "schoolku_backend/internals/features/academics/students/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validator: validator.New()}
}

var studentSortWhitelist = map[string]string{
	"name":       "student_name",
	"nis":        "student_nis",
	"class":      "student_class",
	"created_at": "student_created_at",
}

// ========== Create ==========
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// NIS unik per sekolah
	var count int64
	if err := ctl.DB.Model(&model.Student{}).
		Where("student_school_id = ? AND student_nis = ?", schoolID, req.StudentNIS).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa NIS")
	}
	if count > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "NIS sudah terdaftar di sekolah ini")
	}

	student, err := req.ToModel(schoolID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Create(student).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan siswa")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Siswa berhasil ditambahkan", dto.FromModelStudent(student))
}

// ========== List ==========
// Filter: class, gender, is_active; search: nama/NIS (case-insensitive substring).
func (ctl *StudentController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	p := helper.ParsePagination(c, "created_at", "desc")

	q := ctl.DB.Model(&model.Student{}).Where("student_school_id = ?", schoolID)
	if class := strings.TrimSpace(c.Query("class")); class != "" {
		q = q.Where("student_class = ?", class)
	}
	if gender := strings.TrimSpace(c.Query("gender")); gender != "" {
		q = q.Where("student_gender = ?", gender)
	}
	if active := strings.TrimSpace(c.Query("is_active")); active != "" {
		q = q.Where("student_is_active = ?", active == "true")
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(student_name) LIKE ? OR LOWER(student_nis) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung data siswa")
	}

	order, err := p.SafeOrderClause(studentSortWhitelist, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter sort tidak valid")
	}

	var students []model.Student
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&students).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	return helper.Success(c, "OK", fiber.Map{
		"students":   dto.FromModelStudents(students),
		"pagination": helper.BuildMeta(total, p),
	})
}

// ========== GetByID ==========
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "student_id tidak valid")
	}

	var student model.Student
	if err := ctl.DB.First(&student, "student_id = ? AND student_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}
	return helper.Success(c, "OK", dto.FromModelStudent(&student))
}

// ========== Update ==========
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "student_id tidak valid")
	}

	var student model.Student
	if err := ctl.DB.First(&student, "student_id = ? AND student_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.StudentNIS != nil && *req.StudentNIS != student.StudentNIS {
		var count int64
		if err := ctl.DB.Model(&model.Student{}).
			Where("student_school_id = ? AND student_nis = ? AND student_id <> ?", schoolID, *req.StudentNIS, id).
			Count(&count).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa NIS")
		}
		if count > 0 {
			return helper.Error(c, fiber.StatusBadRequest, "NIS sudah terdaftar di sekolah ini")
		}
	}

	if err := req.ApplyTo(&student); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Save(&student).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui siswa")
	}
	return helper.Success(c, "Siswa berhasil diperbarui", dto.FromModelStudent(&student))
}

// ========== Deactivate (soft) ==========
func (ctl *StudentController) Deactivate(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "student_id tidak valid")
	}

	tx := ctl.DB.Model(&model.Student{}).
		Where("student_id = ? AND student_school_id = ?", id, schoolID).
		Update("student_is_active", false)
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menonaktifkan siswa")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}
	return helper.Success(c, "Siswa berhasil dinonaktifkan", nil)
}

// ========== Delete ==========
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "student_id tidak valid")
	}

	tx := ctl.DB.Where("student_id = ? AND student_school_id = ?", id, schoolID).
		Delete(&model.Student{})
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus siswa")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}
	return helper.Success(c, "Siswa berhasil dihapus", nil)
}
