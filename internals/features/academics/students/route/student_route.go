// file: internals/features/academics/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "schoolku_backend/internals/features/academics/students/controller"
	"schoolku_backend/internals/constants"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// StudentRoutes: baca untuk semua user sekolah, tulis untuk staff ke atas.
func StudentRoutes(user fiber.Router, db *gorm.DB) {
	ctl := studentController.NewStudentController(db)

	staffOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorTeacher("data siswa"),
		constants.StaffAndAbove...,
	)

	students := user.Group("/students")
	students.Get("/", ctl.List)
	students.Get("/:id", ctl.GetByID)
	students.Post("/", staffOnly, ctl.Create)
	students.Put("/:id", staffOnly, ctl.Update)
	students.Patch("/:id/deactivate", staffOnly, ctl.Deactivate)
	students.Delete("/:id", staffOnly, ctl.Delete)
}
