// file: internals/features/ai/advisory/controller/recommendation_controller.go
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

var recommendationSortWhitelist = map[string]string{
	"generated_date": "ai_recommendation_generated_date",
	"priority":       "ai_recommendation_priority",
	"category":       "ai_recommendation_category",
}

type RecommendationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewRecommendationController(db *gorm.DB) *RecommendationController {
	return &RecommendationController{DB: db, Validator: validator.New()}
}

// ========== List ==========
func (ctl *RecommendationController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	p := helper.ParsePagination(c, "generated_date", "desc")

	q := ctl.DB.Model(&model.AiRecommendation{}).
		Where("ai_recommendation_school_id = ?", schoolID)
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("ai_recommendation_category = ?", category)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("ai_recommendation_status = ?", status)
	}
	if priority := strings.TrimSpace(c.Query("priority")); priority != "" {
		q = q.Where("ai_recommendation_priority = ?", priority)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung rekomendasi")
	}

	order, err := p.SafeOrderClause(recommendationSortWhitelist, "generated_date")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter sort tidak valid")
	}

	var recs []model.AiRecommendation
	if err := q.Order(order).
		Limit(p.Limit()).Offset(p.Offset()).Find(&recs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil rekomendasi")
	}

	return helper.Success(c, "OK", fiber.Map{
		"items": dto.FromModelRecommendations(recs),
		"meta":  helper.BuildMeta(total, p),
	})
}

// ========== UpdateStatus ==========
func (ctl *RecommendationController) UpdateStatus(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ai_recommendation_id tidak valid")
	}

	var req dto.UpdateRecommendationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var rec model.AiRecommendation
	if err := ctl.DB.First(&rec,
		"ai_recommendation_id = ? AND ai_recommendation_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Rekomendasi tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil rekomendasi")
	}

	rec.AiRecommendationStatus = model.RecommendationStatus(req.AiRecommendationStatus)
	rec.AiRecommendationUpdatedAt = time.Now()
	if err := ctl.DB.Save(&rec).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui status rekomendasi")
	}
	return helper.Success(c, "Status rekomendasi berhasil diperbarui", dto.FromModelRecommendation(&rec))
}

// ========== Delete ==========
func (ctl *RecommendationController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ai_recommendation_id tidak valid")
	}

	tx := ctl.DB.Where("ai_recommendation_id = ? AND ai_recommendation_school_id = ?", id, schoolID).
		Delete(&model.AiRecommendation{})
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus rekomendasi")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Rekomendasi tidak ditemukan")
	}
	return helper.Success(c, "Rekomendasi berhasil dihapus", nil)
}
