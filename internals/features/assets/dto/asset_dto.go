// file: internals/features/assets/dto/asset_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/assets/model"
)

type CreateAssetRequest struct {
	AssetCode          string  `json:"asset_code" validate:"required,max=60"`
	AssetName          string  `json:"asset_name" validate:"required,max=150"`
	AssetCategory      string  `json:"asset_category" validate:"required,max=60"`
	AssetCondition     string  `json:"asset_condition" validate:"omitempty,oneof=good minor_damage major_damage under_repair"`
	AssetLocation      *string `json:"asset_location" validate:"omitempty,max=150"`
	AssetPurchaseDate  *string `json:"asset_purchase_date" validate:"omitempty,datetime=2006-01-02"`
	AssetPurchasePrice *int64  `json:"asset_purchase_price" validate:"omitempty,min=0"`
}

func (r *CreateAssetRequest) ToModel(schoolID uuid.UUID) (*model.Asset, error) {
	a := &model.Asset{
		AssetSchoolID:      schoolID,
		AssetCode:          r.AssetCode,
		AssetName:          r.AssetName,
		AssetCategory:      r.AssetCategory,
		AssetCondition:     model.AssetConditionGood,
		AssetLocation:      r.AssetLocation,
		AssetPurchasePrice: r.AssetPurchasePrice,
	}
	if r.AssetCondition != "" {
		a.AssetCondition = model.AssetCondition(r.AssetCondition)
	}
	if r.AssetPurchaseDate != nil && *r.AssetPurchaseDate != "" {
		t, err := time.Parse("2006-01-02", *r.AssetPurchaseDate)
		if err != nil {
			return nil, err
		}
		a.AssetPurchaseDate = &t
	}
	return a, nil
}

type UpdateAssetRequest struct {
	AssetCode          *string `json:"asset_code" validate:"omitempty,max=60"`
	AssetName          *string `json:"asset_name" validate:"omitempty,max=150"`
	AssetCategory      *string `json:"asset_category" validate:"omitempty,max=60"`
	AssetCondition     *string `json:"asset_condition" validate:"omitempty,oneof=good minor_damage major_damage under_repair"`
	AssetLocation      *string `json:"asset_location" validate:"omitempty,max=150"`
	AssetPurchaseDate  *string `json:"asset_purchase_date" validate:"omitempty,datetime=2006-01-02"`
	AssetPurchasePrice *int64  `json:"asset_purchase_price" validate:"omitempty,min=0"`
}

func (r *UpdateAssetRequest) ApplyTo(a *model.Asset) error {
	if r.AssetCode != nil {
		a.AssetCode = *r.AssetCode
	}
	if r.AssetName != nil {
		a.AssetName = *r.AssetName
	}
	if r.AssetCategory != nil {
		a.AssetCategory = *r.AssetCategory
	}
	if r.AssetCondition != nil {
		a.AssetCondition = model.AssetCondition(*r.AssetCondition)
	}
	if r.AssetLocation != nil {
		a.AssetLocation = r.AssetLocation
	}
	if r.AssetPurchaseDate != nil {
		if *r.AssetPurchaseDate == "" {
			a.AssetPurchaseDate = nil
		} else {
			t, err := time.Parse("2006-01-02", *r.AssetPurchaseDate)
			if err != nil {
				return err
			}
			a.AssetPurchaseDate = &t
		}
	}
	if r.AssetPurchasePrice != nil {
		a.AssetPurchasePrice = r.AssetPurchasePrice
	}
	return nil
}

type AssetResponse struct {
	AssetID            uuid.UUID  `json:"asset_id"`
	AssetCode          string     `json:"asset_code"`
	AssetName          string     `json:"asset_name"`
	AssetCategory      string     `json:"asset_category"`
	AssetCondition     string     `json:"asset_condition"`
	AssetLocation      *string    `json:"asset_location,omitempty"`
	AssetPurchaseDate  *time.Time `json:"asset_purchase_date,omitempty"`
	AssetPurchasePrice *int64     `json:"asset_purchase_price,omitempty"`
	AssetCreatedAt     time.Time  `json:"asset_created_at"`
}

func FromModelAsset(a *model.Asset) AssetResponse {
	return AssetResponse{
		AssetID:            a.AssetID,
		AssetCode:          a.AssetCode,
		AssetName:          a.AssetName,
		AssetCategory:      a.AssetCategory,
		AssetCondition:     string(a.AssetCondition),
		AssetLocation:      a.AssetLocation,
		AssetPurchaseDate:  a.AssetPurchaseDate,
		AssetPurchasePrice: a.AssetPurchasePrice,
		AssetCreatedAt:     a.AssetCreatedAt,
	}
}

func FromModelAssets(list []model.Asset) []AssetResponse {
	out := make([]AssetResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelAsset(&list[i]))
	}
	return out
}

/* =========================================================
   Maintenance
   ========================================================= */

type CreateMaintenanceRequest struct {
	AssetMaintenanceDate        string  `json:"asset_maintenance_date" validate:"required,datetime=2006-01-02"`
	AssetMaintenanceDescription string  `json:"asset_maintenance_description" validate:"required"`
	AssetMaintenanceCost        int64   `json:"asset_maintenance_cost" validate:"min=0"`
	AssetMaintenanceStatus      string  `json:"asset_maintenance_status" validate:"omitempty,oneof=scheduled in_progress completed"`
	AssetMaintenanceTechnician  *string `json:"asset_maintenance_technician" validate:"omitempty,max=150"`
}

func (r *CreateMaintenanceRequest) ToModel(assetID, schoolID uuid.UUID) (*model.AssetMaintenance, error) {
	date, err := time.Parse("2006-01-02", r.AssetMaintenanceDate)
	if err != nil {
		return nil, err
	}
	m := &model.AssetMaintenance{
		AssetMaintenanceAssetID:     assetID,
		AssetMaintenanceSchoolID:    schoolID,
		AssetMaintenanceDate:        date,
		AssetMaintenanceDescription: r.AssetMaintenanceDescription,
		AssetMaintenanceCost:        r.AssetMaintenanceCost,
		AssetMaintenanceStatus:      model.MaintenanceStatusScheduled,
		AssetMaintenanceTechnician:  r.AssetMaintenanceTechnician,
	}
	if r.AssetMaintenanceStatus != "" {
		m.AssetMaintenanceStatus = model.MaintenanceStatus(r.AssetMaintenanceStatus)
	}
	return m, nil
}

type UpdateMaintenanceRequest struct {
	AssetMaintenanceStatus     *string `json:"asset_maintenance_status" validate:"omitempty,oneof=scheduled in_progress completed"`
	AssetMaintenanceCost       *int64  `json:"asset_maintenance_cost" validate:"omitempty,min=0"`
	AssetMaintenanceTechnician *string `json:"asset_maintenance_technician" validate:"omitempty,max=150"`
}

func (r *UpdateMaintenanceRequest) ApplyTo(m *model.AssetMaintenance) {
	if r.AssetMaintenanceStatus != nil {
		m.AssetMaintenanceStatus = model.MaintenanceStatus(*r.AssetMaintenanceStatus)
	}
	if r.AssetMaintenanceCost != nil {
		m.AssetMaintenanceCost = *r.AssetMaintenanceCost
	}
	if r.AssetMaintenanceTechnician != nil {
		m.AssetMaintenanceTechnician = r.AssetMaintenanceTechnician
	}
}

type MaintenanceResponse struct {
	AssetMaintenanceID          uuid.UUID `json:"asset_maintenance_id"`
	AssetMaintenanceAssetID     uuid.UUID `json:"asset_maintenance_asset_id"`
	AssetMaintenanceDate        string    `json:"asset_maintenance_date"`
	AssetMaintenanceDescription string    `json:"asset_maintenance_description"`
	AssetMaintenanceCost        int64     `json:"asset_maintenance_cost"`
	AssetMaintenanceStatus      string    `json:"asset_maintenance_status"`
	AssetMaintenanceTechnician  *string   `json:"asset_maintenance_technician,omitempty"`
}

func FromModelMaintenance(m *model.AssetMaintenance) MaintenanceResponse {
	return MaintenanceResponse{
		AssetMaintenanceID:          m.AssetMaintenanceID,
		AssetMaintenanceAssetID:     m.AssetMaintenanceAssetID,
		AssetMaintenanceDate:        m.AssetMaintenanceDate.Format("2006-01-02"),
		AssetMaintenanceDescription: m.AssetMaintenanceDescription,
		AssetMaintenanceCost:        m.AssetMaintenanceCost,
		AssetMaintenanceStatus:      string(m.AssetMaintenanceStatus),
		AssetMaintenanceTechnician:  m.AssetMaintenanceTechnician,
	}
}

func FromModelMaintenances(list []model.AssetMaintenance) []MaintenanceResponse {
	out := make([]MaintenanceResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelMaintenance(&list[i]))
	}
	return out
}
