// file: internals/features/finance/payments/route/payment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "schoolku_backend/internals/features/finance/payments/controller"
	"schoolku_backend/internals/constants"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// PaymentRoutes: pembuatan token pembayaran untuk staff ke atas; webhook
// Midtrans terbuka (server-to-server, tanpa JWT).
func PaymentRoutes(app *fiber.App, user fiber.Router, db *gorm.DB) {
	ctl := paymentController.NewPaymentController(db)

	staffOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorTeacher("pembayaran"),
		constants.StaffAndAbove...,
	)

	payments := user.Group("/payments")
	payments.Post("/", staffOnly, ctl.CreatePayment)
	payments.Get("/:order_id", staffOnly, ctl.GetByOrderID)

	app.Post("/api/payments/notification", ctl.Notification)
}
