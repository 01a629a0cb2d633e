// file: internals/features/facilities/route/facility_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	facilityController "schoolku_backend/internals/features/facilities/controller"
	"schoolku_backend/internals/constants"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// FacilityRoutes: booking terbuka untuk semua user sekolah; kelola
// fasilitas untuk staff ke atas; persetujuan di grup principal/admin.
func FacilityRoutes(user fiber.Router, admin fiber.Router, db *gorm.DB) {
	facilityCtl := facilityController.NewFacilityController(db)
	usageCtl := facilityController.NewFacilityUsageController(db)

	staffOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorTeacher("fasilitas sekolah"),
		constants.StaffAndAbove...,
	)

	facilities := user.Group("/facilities")
	facilities.Get("/", facilityCtl.List)
	facilities.Post("/", staffOnly, facilityCtl.Create)
	facilities.Put("/:id", staffOnly, facilityCtl.Update)
	facilities.Delete("/:id", staffOnly, facilityCtl.Delete)

	usages := user.Group("/facility-usages")
	usages.Get("/", usageCtl.List)
	usages.Post("/", usageCtl.Create)
	usages.Delete("/:id", usageCtl.Delete)

	admin.Patch("/facility-usages/:id/approval", usageCtl.SetApproval)
}
