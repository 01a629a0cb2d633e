// file: internals/features/assets/route/asset_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assetController "schoolku_backend/internals/features/assets/controller"
	"schoolku_backend/internals/constants"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// AssetRoutes: pengelolaan aset dan riwayat perawatan untuk staff ke atas.
func AssetRoutes(user fiber.Router, db *gorm.DB) {
	assetCtl := assetController.NewAssetController(db)
	maintCtl := assetController.NewAssetMaintenanceController(db)

	staffOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorTeacher("aset sekolah"),
		constants.StaffAndAbove...,
	)

	assets := user.Group("/assets")
	assets.Get("/", assetCtl.List)
	assets.Get("/:id", assetCtl.GetByID)
	assets.Post("/", staffOnly, assetCtl.Create)
	assets.Put("/:id", staffOnly, assetCtl.Update)
	assets.Delete("/:id", staffOnly, assetCtl.Delete)

	maintenance := user.Group("/asset-maintenances")
	maintenance.Get("/", maintCtl.List)
	maintenance.Post("/", staffOnly, maintCtl.Create)
	maintenance.Put("/:id", staffOnly, maintCtl.Update)
}
