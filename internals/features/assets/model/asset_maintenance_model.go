// file: internals/features/assets/model/asset_maintenance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type MaintenanceStatus string

const (
	MaintenanceStatusScheduled  MaintenanceStatus = "scheduled"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusCompleted  MaintenanceStatus = "completed"
)

func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenanceStatusScheduled, MaintenanceStatusInProgress, MaintenanceStatusCompleted:
		return true
	default:
		return false
	}
}

type AssetMaintenance struct {
	AssetMaintenanceID uuid.UUID `json:"asset_maintenance_id" gorm:"column:asset_maintenance_id;type:uuid;default:gen_random_uuid();primaryKey"`

	AssetMaintenanceAssetID  uuid.UUID `json:"asset_maintenance_asset_id" gorm:"column:asset_maintenance_asset_id;type:uuid;not null;index"`
	AssetMaintenanceSchoolID uuid.UUID `json:"asset_maintenance_school_id" gorm:"column:asset_maintenance_school_id;type:uuid;not null;index"`

	AssetMaintenanceDate        time.Time         `json:"asset_maintenance_date" gorm:"column:asset_maintenance_date;type:date;not null"`
	AssetMaintenanceDescription string            `json:"asset_maintenance_description" gorm:"column:asset_maintenance_description;type:text;not null"`
	AssetMaintenanceCost        int64             `json:"asset_maintenance_cost" gorm:"column:asset_maintenance_cost;type:bigint;not null;default:0"`
	AssetMaintenanceStatus      MaintenanceStatus `json:"asset_maintenance_status" gorm:"column:asset_maintenance_status;type:varchar(20);not null;default:'scheduled'"`

	AssetMaintenanceTechnician *string `json:"asset_maintenance_technician,omitempty" gorm:"column:asset_maintenance_technician;type:varchar(150)"`

	AssetMaintenanceCreatedAt time.Time `json:"asset_maintenance_created_at" gorm:"column:asset_maintenance_created_at;type:timestamptz;not null;default:now()"`
	AssetMaintenanceUpdatedAt time.Time `json:"asset_maintenance_updated_at" gorm:"column:asset_maintenance_updated_at;type:timestamptz;not null;default:now()"`
}

func (AssetMaintenance) TableName() string { return "asset_maintenances" }
