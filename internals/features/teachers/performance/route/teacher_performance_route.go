// file: internals/features/teachers/performance/route/teacher_performance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	performanceController "schoolku_backend/internals/features/teachers/performance/controller"
)

// TeacherPerformanceRoutes: evaluasi kinerja guru sepenuhnya di grup
// principal/admin.
func TeacherPerformanceRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := performanceController.NewTeacherPerformanceController(db)

	performances := admin.Group("/teacher-performances")
	performances.Get("/", ctl.List)
	performances.Get("/:id", ctl.GetByID)
	performances.Post("/", ctl.Create)
	performances.Put("/:id", ctl.Update)
	performances.Delete("/:id", ctl.Delete)
}
