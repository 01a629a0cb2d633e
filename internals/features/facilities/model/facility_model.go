// file: internals/features/facilities/model/facility_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Facility struct {
	FacilityID uuid.UUID `json:"facility_id" gorm:"column:facility_id;type:uuid;default:gen_random_uuid();primaryKey"`

	FacilitySchoolID uuid.UUID `json:"facility_school_id" gorm:"column:facility_school_id;type:uuid;not null;uniqueIndex:uq_facilities_school_code,priority:1"`
	FacilityCode     string    `json:"facility_code" gorm:"column:facility_code;type:varchar(60);not null;uniqueIndex:uq_facilities_school_code,priority:2"`
	FacilityName     string    `json:"facility_name" gorm:"column:facility_name;type:varchar(150);not null"`
	FacilityType     string    `json:"facility_type" gorm:"column:facility_type;type:varchar(60);not null"`

	FacilityCapacity int     `json:"facility_capacity" gorm:"column:facility_capacity;not null;default:0"`
	FacilityLocation *string `json:"facility_location,omitempty" gorm:"column:facility_location;type:varchar(150)"`

	FacilityCreatedAt time.Time `json:"facility_created_at" gorm:"column:facility_created_at;type:timestamptz;not null;default:now()"`
	FacilityUpdatedAt time.Time `json:"facility_updated_at" gorm:"column:facility_updated_at;type:timestamptz;not null;default:now()"`
}

func (Facility) TableName() string { return "facilities" }
