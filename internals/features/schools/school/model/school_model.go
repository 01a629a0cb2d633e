// file: internals/features/schools/school/model/school_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type School struct {
	SchoolID uuid.UUID `json:"school_id" gorm:"column:school_id;type:uuid;default:gen_random_uuid();primaryKey"`

	SchoolName    string  `json:"school_name" gorm:"column:school_name;type:varchar(150);not null"`
	SchoolNPSN    *string `json:"school_npsn,omitempty" gorm:"column:school_npsn;type:varchar(20);uniqueIndex"`
	SchoolAddress *string `json:"school_address,omitempty" gorm:"column:school_address;type:text"`
	SchoolPhone   *string `json:"school_phone,omitempty" gorm:"column:school_phone;type:varchar(30)"`
	SchoolEmail   *string `json:"school_email,omitempty" gorm:"column:school_email;type:varchar(255)"`

	// Satu principal (user pemilik) per sekolah
	SchoolPrincipalID *uuid.UUID `json:"school_principal_id,omitempty" gorm:"column:school_principal_id;type:uuid;uniqueIndex"`

	SchoolAcademicYear *string `json:"school_academic_year,omitempty" gorm:"column:school_academic_year;type:varchar(9)"`

	SchoolCreatedAt time.Time `json:"school_created_at" gorm:"column:school_created_at;type:timestamptz;not null;default:now()"`
	SchoolUpdatedAt time.Time `json:"school_updated_at" gorm:"column:school_updated_at;type:timestamptz;not null;default:now()"`
}

func (School) TableName() string { return "schools" }
