// file: internals/features/ai/advisory/model/early_warning_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type WarningStatus string

const (
	WarningStatusActive   WarningStatus = "active"
	WarningStatusResolved WarningStatus = "resolved"
	WarningStatusIgnored  WarningStatus = "ignored"
)

func (s WarningStatus) Valid() bool {
	return s == WarningStatusActive || s == WarningStatusResolved || s == WarningStatusIgnored
}

// EarlyWarning dihasilkan layanan analisis peringatan dini.
type EarlyWarning struct {
	EarlyWarningID uuid.UUID `json:"early_warning_id" gorm:"column:early_warning_id;type:uuid;default:gen_random_uuid();primaryKey"`

	EarlyWarningSchoolID uuid.UUID `json:"early_warning_school_id" gorm:"column:early_warning_school_id;type:uuid;not null;index"`

	EarlyWarningCategory    string `json:"early_warning_category" gorm:"column:early_warning_category;type:varchar(40);not null;index"`
	EarlyWarningTitle       string `json:"early_warning_title" gorm:"column:early_warning_title;type:varchar(200);not null"`
	EarlyWarningDescription string `json:"early_warning_description" gorm:"column:early_warning_description;type:text;not null"`

	EarlyWarningUrgency Priority      `json:"early_warning_urgency" gorm:"column:early_warning_urgency;type:varchar(10);not null;default:'medium'"`
	EarlyWarningStatus  WarningStatus `json:"early_warning_status" gorm:"column:early_warning_status;type:varchar(10);not null;default:'active'"`

	EarlyWarningAffectedEntities pq.StringArray `json:"early_warning_affected_entities" gorm:"column:early_warning_affected_entities;type:text[]"`
	EarlyWarningConfidence       float64        `json:"early_warning_confidence" gorm:"column:early_warning_confidence;type:numeric(4,2);not null;default:0"`
	EarlyWarningMetadata         datatypes.JSON `json:"early_warning_metadata,omitempty" gorm:"column:early_warning_metadata;type:jsonb"`

	EarlyWarningDetectedDate time.Time `json:"early_warning_detected_date" gorm:"column:early_warning_detected_date;type:timestamptz;not null;default:now();index"`

	EarlyWarningCreatedAt time.Time `json:"early_warning_created_at" gorm:"column:early_warning_created_at;type:timestamptz;not null;default:now()"`
	EarlyWarningUpdatedAt time.Time `json:"early_warning_updated_at" gorm:"column:early_warning_updated_at;type:timestamptz;not null;default:now()"`
}

func (EarlyWarning) TableName() string { return "early_warnings" }
