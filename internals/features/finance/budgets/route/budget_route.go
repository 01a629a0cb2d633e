// file: internals/features/finance/budgets/route/budget_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	budgetController "schoolku_backend/internals/features/finance/budgets/controller"
	"schoolku_backend/internals/constants"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// BudgetRoutes: kelola anggaran untuk staff ke atas; persetujuan dan
// penghapusan di grup principal/admin.
func BudgetRoutes(user fiber.Router, admin fiber.Router, db *gorm.DB) {
	ctl := budgetController.NewBudgetController(db)

	staffOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorTeacher("keuangan sekolah"),
		constants.StaffAndAbove...,
	)

	budgets := user.Group("/budgets")
	budgets.Get("/", staffOnly, ctl.List)
	budgets.Get("/:id", staffOnly, ctl.GetByID)
	budgets.Post("/", staffOnly, ctl.Create)
	budgets.Post("/transactions", staffOnly, ctl.AddTransaction)

	admin.Patch("/budgets/:id/approve", ctl.Approve)
	admin.Delete("/budgets/:id", ctl.Delete)
}
