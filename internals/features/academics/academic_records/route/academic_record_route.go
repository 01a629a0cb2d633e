// file: internals/features/academics/academic_records/route/academic_record_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	recordController "schoolku_backend/internals/features/academics/academic_records/controller"
	"schoolku_backend/internals/constants"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// AcademicRecordRoutes: input/ubah nilai khusus teacher ke atas.
func AcademicRecordRoutes(user fiber.Router, db *gorm.DB) {
	ctl := recordController.NewAcademicRecordController(db)

	teacherOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorTeacher("nilai akademik"),
		constants.TeacherAndAbove...,
	)

	records := user.Group("/academic-records")
	records.Get("/students/:student_id", ctl.ListByStudent)
	records.Get("/subject-averages", ctl.SubjectAverages)
	records.Post("/", teacherOnly, ctl.Create)
	records.Put("/:id", teacherOnly, ctl.Update)
	records.Delete("/:id", teacherOnly, ctl.Delete)
}
