// file: internals/features/academics/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "schoolku_backend/internals/features/academics/attendance/controller"
	"schoolku_backend/internals/constants"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// AttendanceRoutes: pencatatan kehadiran khusus teacher ke atas.
func AttendanceRoutes(user fiber.Router, db *gorm.DB) {
	ctl := attendanceController.NewAttendanceController(db)

	teacherOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorTeacher("kehadiran siswa"),
		constants.TeacherAndAbove...,
	)

	attendance := user.Group("/attendance")
	attendance.Get("/students/:student_id", ctl.ListByStudent)
	attendance.Post("/", teacherOnly, ctl.Create)
	attendance.Post("/bulk", teacherOnly, ctl.BulkCreate)
	attendance.Delete("/:id", teacherOnly, ctl.Delete)
}
