// file: internals/features/ai/route/ai_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	advisoryController "schoolku_backend/internals/features/ai/advisory/controller"
	analysisController "schoolku_backend/internals/features/ai/analysis/controller"
	gateway "schoolku_backend/internals/features/ai/gateway"
)

// AiRoutes: daftar/ubah status rekomendasi & peringatan untuk semua user
// sekolah; pemicu generate dan penghapusan di grup principal/admin.
func AiRoutes(user fiber.Router, admin fiber.Router, db *gorm.DB, gw *gateway.Gateway) {
	recCtl := advisoryController.NewRecommendationController(db)
	warnCtl := advisoryController.NewWarningController(db)
	analysisCtl := analysisController.NewAnalysisController(db, gw)

	recs := user.Group("/ai/recommendations")
	recs.Get("/", recCtl.List)
	recs.Patch("/:id/status", recCtl.UpdateStatus)

	warnings := user.Group("/ai/early-warnings")
	warnings.Get("/", warnCtl.List)
	warnings.Patch("/:id/status", warnCtl.UpdateStatus)

	admin.Post("/ai/recommendations/generate", analysisCtl.GenerateRecommendations)
	admin.Post("/ai/early-warnings/generate", analysisCtl.GenerateWarnings)
	admin.Delete("/ai/recommendations/:id", recCtl.Delete)
	admin.Delete("/ai/early-warnings/:id", warnCtl.Delete)
}
