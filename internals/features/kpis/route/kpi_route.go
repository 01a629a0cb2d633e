// file: internals/features/kpis/route/kpi_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	kpiController "schoolku_backend/internals/features/kpis/controller"
)

// KpiRoutes: baca (termasuk ekspor CSV) untuk semua user sekolah; tulis
// di grup principal/admin.
func KpiRoutes(user fiber.Router, admin fiber.Router, db *gorm.DB) {
	ctl := kpiController.NewKpiController(db)

	kpis := user.Group("/kpis")
	kpis.Get("/", ctl.List)
	kpis.Get("/:id", ctl.GetByID)

	admin.Post("/kpis", ctl.Create)
	admin.Put("/kpis/:id", ctl.Update)
	admin.Delete("/kpis/:id", ctl.Delete)
}
