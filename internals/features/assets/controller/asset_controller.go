// file: internals/features/assets/controller/asset_controller.go
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

type AssetController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAssetController(db *gorm.DB) *AssetController {
	return &AssetController{DB: db, Validator: validator.New()}
}

// ========== Create ==========
func (ctl *AssetController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := ctl.DB.Model(&model.Asset{}).
		Where("asset_school_id = ? AND asset_code = ?", schoolID, req.AssetCode).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa kode aset")
	}
	if count > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Kode aset sudah terdaftar di sekolah ini")
	}

	asset, err := req.ToModel(schoolID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Create(asset).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan aset")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Aset berhasil ditambahkan", dto.FromModelAsset(asset))
}

// ========== List ==========
func (ctl *AssetController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	p := helper.ParsePagination(c, "created_at", "desc")

	q := ctl.DB.Model(&model.Asset{}).Where("asset_school_id = ?", schoolID)
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("asset_category = ?", category)
	}
	if condition := strings.TrimSpace(c.Query("condition")); condition != "" {
		q = q.Where("asset_condition = ?", condition)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(asset_name) LIKE ? OR LOWER(asset_code) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung aset")
	}

	var assets []model.Asset
	if err := q.Order("asset_created_at DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&assets).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data aset")
	}

	return helper.Success(c, "OK", fiber.Map{
		"assets":     dto.FromModelAssets(assets),
		"pagination": helper.BuildMeta(total, p),
	})
}

// ========== GetByID ==========
func (ctl *AssetController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "asset_id tidak valid")
	}

	var asset model.Asset
	if err := ctl.DB.First(&asset, "asset_id = ? AND asset_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Aset tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data aset")
	}

	var maintenances []model.AssetMaintenance
	if err := ctl.DB.Where("asset_maintenance_asset_id = ?", id).
		Order("asset_maintenance_date DESC").Find(&maintenances).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat perawatan")
	}

	return helper.Success(c, "OK", fiber.Map{
		"asset":        dto.FromModelAsset(&asset),
		"maintenances": dto.FromModelMaintenances(maintenances),
	})
}

// ========== Update ==========
func (ctl *AssetController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "asset_id tidak valid")
	}

	var asset model.Asset
	if err := ctl.DB.First(&asset, "asset_id = ? AND asset_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Aset tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data aset")
	}

	var req dto.UpdateAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.AssetCode != nil && *req.AssetCode != asset.AssetCode {
		var count int64
		if err := ctl.DB.Model(&model.Asset{}).
			Where("asset_school_id = ? AND asset_code = ? AND asset_id <> ?", schoolID, *req.AssetCode, id).
			Count(&count).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa kode aset")
		}
		if count > 0 {
			return helper.Error(c, fiber.StatusBadRequest, "Kode aset sudah terdaftar di sekolah ini")
		}
	}

	if err := req.ApplyTo(&asset); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Save(&asset).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui aset")
	}
	return helper.Success(c, "Aset berhasil diperbarui", dto.FromModelAsset(&asset))
}

// ========== Delete ==========
// Aset dengan riwayat perawatan tidak boleh dihapus (dicek di aplikasi, bukan
// hanya mengandalkan FK).
func (ctl *AssetController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "asset_id tidak valid")
	}

	var maintenanceCount int64
	if err := ctl.DB.Model(&model.AssetMaintenance{}).
		Where("asset_maintenance_asset_id = ?", id).
		Count(&maintenanceCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa riwayat perawatan")
	}
	if maintenanceCount > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Aset tidak dapat dihapus karena masih memiliki riwayat perawatan")
	}

	tx := ctl.DB.Where("asset_id = ? AND asset_school_id = ?", id, schoolID).Delete(&model.Asset{})
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus aset")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Aset tidak ditemukan")
	}
	return helper.Success(c, "Aset berhasil dihapus", nil)
}
