// file: internals/features/ai/analysis/controller/analysis_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	service "schoolku_backend/internals/features/ai/analysis/service"
	gateway "schoolku_backend/internals/features/ai/gateway"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type AnalysisController struct {
	Academic     *service.AcademicAnalysisService
	EarlyWarning *service.EarlyWarningAnalysisService
}

func NewAnalysisController(db *gorm.DB, gw *gateway.Gateway) *AnalysisController {
	return &AnalysisController{
		Academic:     service.NewAcademicAnalysisService(db, gw),
		EarlyWarning: service.NewEarlyWarningAnalysisService(db, gw),
	}
}

// ========== GenerateRecommendations ==========
// Digate role principal/admin di route. ?save=false hanya pratinjau.
func (ctl *AnalysisController) GenerateRecommendations(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	save := c.Query("save", "true") != "false"
	summary, err := ctl.Academic.Run(c.Context(), schoolID, save)
	if err != nil {
		if errors.Is(err, gateway.ErrRateLimited) {
			return helper.Error(c, fiber.StatusTooManyRequests, "Kuota analisis AI per menit habis, coba lagi nanti")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menjalankan analisis akademik")
	}
	return helper.Success(c, "Analisis akademik selesai", summary)
}

// ========== GenerateWarnings ==========
func (ctl *AnalysisController) GenerateWarnings(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	save := c.Query("save", "true") != "false"
	summary, err := ctl.EarlyWarning.Run(c.Context(), schoolID, save)
	if err != nil {
		if errors.Is(err, gateway.ErrRateLimited) {
			return helper.Error(c, fiber.StatusTooManyRequests, "Kuota analisis AI per menit habis, coba lagi nanti")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menjalankan analisis peringatan dini")
	}
	return helper.Success(c, "Analisis peringatan dini selesai", summary)
}
