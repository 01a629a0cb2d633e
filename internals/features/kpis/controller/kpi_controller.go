// file: internals/features/kpis/controller/kpi_controller.go
package controller

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolku_backend/internals/features/kpis/dto"
	model "schoolku_backend/internals/features/kpis/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type KpiController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewKpiController(db *gorm.DB) *KpiController {
	return &KpiController{DB: db, Validator: validator.New()}
}

// ========== Create ==========
// Tolak bila KPI (sekolah, tahun, periode, nama) sudah ada.
func (ctl *KpiController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateKpiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := ctl.DB.Model(&model.SchoolKpi{}).
		Where("school_kpi_school_id = ? AND school_kpi_academic_year = ? AND school_kpi_period = ? AND school_kpi_name = ?",
			schoolID, req.SchoolKpiAcademicYear, req.SchoolKpiPeriod, req.SchoolKpiName).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa KPI")
	}
	if count > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "KPI dengan nama ini sudah ada untuk periode tersebut")
	}

	kpi := req.ToModel(schoolID)
	if err := ctl.DB.Create(kpi).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan KPI")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "KPI berhasil ditambahkan", dto.FromModelKpi(kpi))
}

// ========== List ==========
// ?format=csv mengekspor hasil filter sebagai file CSV.
func (ctl *KpiController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	q := ctl.DB.Model(&model.SchoolKpi{}).Where("school_kpi_school_id = ?", schoolID)
	if year := strings.TrimSpace(c.Query("academic_year")); year != "" {
		q = q.Where("school_kpi_academic_year = ?", year)
	}
	if period := strings.TrimSpace(c.Query("period")); period != "" {
		q = q.Where("school_kpi_period = ?", period)
	}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("school_kpi_category = ?", category)
	}

	var kpis []model.SchoolKpi
	if err := q.Order("school_kpi_category ASC, school_kpi_name ASC").Find(&kpis).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data KPI")
	}

	if strings.EqualFold(strings.TrimSpace(c.Query("format")), "csv") {
		return ctl.writeCSV(c, kpis)
	}
	return helper.Success(c, "OK", dto.FromModelKpis(kpis))
}

func (ctl *KpiController) writeCSV(c *fiber.Ctx, kpis []model.SchoolKpi) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"academic_year", "period", "name", "category", "target_value", "achieved_value", "achievement_percent", "unit"})
	for i := range kpis {
		k := &kpis[i]
		percent := ""
		if k.SchoolKpiAchievementPercent != nil {
			percent = fmt.Sprintf("%.2f", *k.SchoolKpiAchievementPercent)
		}
		unit := ""
		if k.SchoolKpiUnit != nil {
			unit = *k.SchoolKpiUnit
		}
		_ = w.Write([]string{
			k.SchoolKpiAcademicYear,
			k.SchoolKpiPeriod,
			k.SchoolKpiName,
			k.SchoolKpiCategory,
			fmt.Sprintf("%.2f", k.SchoolKpiTargetValue),
			fmt.Sprintf("%.2f", k.SchoolKpiAchievedValue),
			percent,
			unit,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menulis CSV")
	}

	filename := fmt.Sprintf("kpi-export-%s.csv", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(buf.Bytes())
}

// ========== GetByID ==========
func (ctl *KpiController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "school_kpi_id tidak valid")
	}

	var kpi model.SchoolKpi
	if err := ctl.DB.First(&kpi,
		"school_kpi_id = ? AND school_kpi_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "KPI tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data KPI")
	}
	return helper.Success(c, "OK", dto.FromModelKpi(&kpi))
}

// ========== Update ==========
func (ctl *KpiController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "school_kpi_id tidak valid")
	}

	var req dto.UpdateKpiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var kpi model.SchoolKpi
	if err := ctl.DB.First(&kpi,
		"school_kpi_id = ? AND school_kpi_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "KPI tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data KPI")
	}

	req.ApplyTo(&kpi)
	if err := ctl.DB.Save(&kpi).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui KPI")
	}
	return helper.Success(c, "KPI berhasil diperbarui", dto.FromModelKpi(&kpi))
}

// ========== Delete ==========
func (ctl *KpiController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "school_kpi_id tidak valid")
	}

	tx := ctl.DB.Where("school_kpi_id = ? AND school_kpi_school_id = ?", id, schoolID).
		Delete(&model.SchoolKpi{})
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus KPI")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "KPI tidak ditemukan")
	}
	return helper.Success(c, "KPI berhasil dihapus", nil)
}
