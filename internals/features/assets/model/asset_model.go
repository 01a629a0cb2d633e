// file: internals/features/assets/model/asset_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type AssetCondition string

const (
	AssetConditionGood        AssetCondition = "good"
	AssetConditionMinorDamage AssetCondition = "minor_damage"
	AssetConditionMajorDamage AssetCondition = "major_damage"
	AssetConditionUnderRepair AssetCondition = "under_repair"
)

func (c AssetCondition) Valid() bool {
	switch c {
	case AssetConditionGood, AssetConditionMinorDamage, AssetConditionMajorDamage, AssetConditionUnderRepair:
		return true
	default:
		return false
	}
}

type Asset struct {
	AssetID uuid.UUID `json:"asset_id" gorm:"column:asset_id;type:uuid;default:gen_random_uuid();primaryKey"`

	AssetSchoolID uuid.UUID `json:"asset_school_id" gorm:"column:asset_school_id;type:uuid;not null;uniqueIndex:uq_assets_school_code,priority:1"`
	AssetCode     string    `json:"asset_code" gorm:"column:asset_code;type:varchar(60);not null;uniqueIndex:uq_assets_school_code,priority:2"`
	AssetName     string    `json:"asset_name" gorm:"column:asset_name;type:varchar(150);not null"`
	AssetCategory string    `json:"asset_category" gorm:"column:asset_category;type:varchar(60);not null"`

	AssetCondition AssetCondition `json:"asset_condition" gorm:"column:asset_condition;type:varchar(20);not null;default:'good'"`

	AssetLocation      *string    `json:"asset_location,omitempty" gorm:"column:asset_location;type:varchar(150)"`
	AssetPurchaseDate  *time.Time `json:"asset_purchase_date,omitempty" gorm:"column:asset_purchase_date;type:date"`
	AssetPurchasePrice *int64     `json:"asset_purchase_price,omitempty" gorm:"column:asset_purchase_price;type:bigint"`

	AssetCreatedAt time.Time `json:"asset_created_at" gorm:"column:asset_created_at;type:timestamptz;not null;default:now()"`
	AssetUpdatedAt time.Time `json:"asset_updated_at" gorm:"column:asset_updated_at;type:timestamptz;not null;default:now()"`
}

func (Asset) TableName() string { return "assets" }
