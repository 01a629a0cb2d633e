// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gateway "schoolku_backend/internals/features/ai/gateway"
	"schoolku_backend/internals/constants"
	authMiddleware "schoolku_backend/internals/middlewares/auth"

	recordRoute "schoolku_backend/internals/features/academics/academic_records/route"
	attendanceRoute "schoolku_backend/internals/features/academics/attendance/route"
	studentRoute "schoolku_backend/internals/features/academics/students/route"
	aiRoute "schoolku_backend/internals/features/ai/route"
	assetRoute "schoolku_backend/internals/features/assets/route"
	facilityRoute "schoolku_backend/internals/features/facilities/route"
	budgetRoute "schoolku_backend/internals/features/finance/budgets/route"
	paymentRoute "schoolku_backend/internals/features/finance/payments/route"
	kpiRoute "schoolku_backend/internals/features/kpis/route"
	schoolRoute "schoolku_backend/internals/features/schools/school/route"
	performanceRoute "schoolku_backend/internals/features/teachers/performance/route"
	authRoute "schoolku_backend/internals/features/users/auth/route"
)

// SetupRoutes merangkai seluruh route aplikasi:
//   - /api/auth  : publik (register/login) + profil ber-JWT
//   - /api/u     : semua user sekolah ber-JWT
//   - /api/a     : khusus principal/admin
func SetupRoutes(app *fiber.App, db *gorm.DB, gw *gateway.Gateway) {
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	user := app.Group("/api/u", authMiddleware.AuthMiddleware())
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(
			constants.RoleErrorPrincipal("manajemen sekolah"),
			constants.PrincipalAndAbove...,
		),
	)

	log.Println("[INFO] Setting up SchoolRoutes...")
	schoolRoute.SchoolRoutes(user, admin, db)

	log.Println("[INFO] Setting up StudentRoutes...")
	studentRoute.StudentRoutes(user, db)

	log.Println("[INFO] Setting up AcademicRecordRoutes...")
	recordRoute.AcademicRecordRoutes(user, db)

	log.Println("[INFO] Setting up AttendanceRoutes...")
	attendanceRoute.AttendanceRoutes(user, db)

	log.Println("[INFO] Setting up AssetRoutes...")
	assetRoute.AssetRoutes(user, db)

	log.Println("[INFO] Setting up FacilityRoutes...")
	facilityRoute.FacilityRoutes(user, admin, db)

	log.Println("[INFO] Setting up BudgetRoutes...")
	budgetRoute.BudgetRoutes(user, admin, db)

	log.Println("[INFO] Setting up PaymentRoutes...")
	paymentRoute.PaymentRoutes(app, user, db)

	log.Println("[INFO] Setting up KpiRoutes...")
	kpiRoute.KpiRoutes(user, admin, db)

	log.Println("[INFO] Setting up TeacherPerformanceRoutes...")
	performanceRoute.TeacherPerformanceRoutes(admin, db)

	log.Println("[INFO] Setting up AiRoutes...")
	aiRoute.AiRoutes(user, admin, db, gw)
}
