// file: internals/features/assets/controller/asset_maintenance_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolku_backend/internals/features/assets/dto"
	model "schoolku_backend/internals/features/assets/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type AssetMaintenanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAssetMaintenanceController(db *gorm.DB) *AssetMaintenanceController {
	return &AssetMaintenanceController{DB: db, Validator: validator.New()}
}

// ========== Create ==========
// Perawatan berstatus berjalan menandai aset sebagai under_repair.
func (ctl *AssetMaintenanceController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	assetID, err := uuid.Parse(strings.TrimSpace(c.Params("assetId")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "asset_id tidak valid")
	}

	var asset model.Asset
	if err := ctl.DB.First(&asset, "asset_id = ? AND asset_school_id = ?", assetID, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Aset tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa aset")
	}

	var req dto.CreateMaintenanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	maintenance, err := req.ToModel(assetID, schoolID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(maintenance).Error; err != nil {
			return err
		}
		if maintenance.AssetMaintenanceStatus == model.MaintenanceStatusInProgress {
			return tx.Model(&model.Asset{}).
				Where("asset_id = ?", assetID).
				Update("asset_condition", model.AssetConditionUnderRepair).Error
		}
		return nil
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan perawatan")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Perawatan berhasil dicatat", dto.FromModelMaintenance(maintenance))
}

// ========== List ==========
func (ctl *AssetMaintenanceController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	q := ctl.DB.Model(&model.AssetMaintenance{}).Where("asset_maintenance_school_id = ?", schoolID)
	if assetID := strings.TrimSpace(c.Query("asset_id")); assetID != "" {
		q = q.Where("asset_maintenance_asset_id = ?", assetID)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("asset_maintenance_status = ?", status)
	}

	var maintenances []model.AssetMaintenance
	if err := q.Order("asset_maintenance_date DESC").Find(&maintenances).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat perawatan")
	}
	return helper.Success(c, "OK", dto.FromModelMaintenances(maintenances))
}

// ========== Update ==========
func (ctl *AssetMaintenanceController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "asset_maintenance_id tidak valid")
	}

	var maintenance model.AssetMaintenance
	if err := ctl.DB.First(&maintenance,
		"asset_maintenance_id = ? AND asset_maintenance_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Perawatan tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data perawatan")
	}

	var req dto.UpdateMaintenanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyTo(&maintenance)
	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&maintenance).Error; err != nil {
			return err
		}
		switch maintenance.AssetMaintenanceStatus {
		case model.MaintenanceStatusInProgress:
			return tx.Model(&model.Asset{}).
				Where("asset_id = ?", maintenance.AssetMaintenanceAssetID).
				Update("asset_condition", model.AssetConditionUnderRepair).Error
		case model.MaintenanceStatusCompleted:
			return tx.Model(&model.Asset{}).
				Where("asset_id = ? AND asset_condition = ?", maintenance.AssetMaintenanceAssetID, model.AssetConditionUnderRepair).
				Update("asset_condition", model.AssetConditionGood).Error
		}
		return nil
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui perawatan")
	}
	return helper.Success(c, "Perawatan berhasil diperbarui", dto.FromModelMaintenance(&maintenance))
}
