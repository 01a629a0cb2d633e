// file: internals/features/schools/school/route/school_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolController "schoolku_backend/internals/features/schools/school/controller"
)

// SchoolRoutes: profil sekolah; update hanya lewat grup principal/admin.
func SchoolRoutes(user fiber.Router, admin fiber.Router, db *gorm.DB) {
	ctl := schoolController.NewSchoolController(db)

	user.Get("/schools/me", ctl.GetMySchool)
	admin.Put("/schools/me", ctl.UpdateMySchool)
}
