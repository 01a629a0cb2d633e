// file: internals/features/academics/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type StudentGender string

const (
	StudentGenderMale   StudentGender = "L"
	StudentGenderFemale StudentGender = "P"
)

func (g StudentGender) Valid() bool {
	return g == StudentGenderMale || g == StudentGenderFemale
}

type Student struct {
	StudentID uuid.UUID `json:"student_id" gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey"`

	StudentSchoolID uuid.UUID `json:"student_school_id" gorm:"column:student_school_id;type:uuid;not null;index"`

	// NIS unik per sekolah (unique index komposit di DB)
	StudentNIS  string `json:"student_nis" gorm:"column:student_nis;type:varchar(30);not null;uniqueIndex:uq_students_school_nis,priority:2"`
	StudentName string `json:"student_name" gorm:"column:student_name;type:varchar(150);not null"`

	StudentGender StudentGender `json:"student_gender" gorm:"column:student_gender;type:varchar(1);not null"`
	StudentClass  string        `json:"student_class" gorm:"column:student_class;type:varchar(30);not null"`

	StudentBirthDate  *time.Time `json:"student_birth_date,omitempty" gorm:"column:student_birth_date;type:date"`
	StudentAddress    *string    `json:"student_address,omitempty" gorm:"column:student_address;type:text"`
	StudentParentName *string    `json:"student_parent_name,omitempty" gorm:"column:student_parent_name;type:varchar(150)"`
	StudentPhone      *string    `json:"student_phone,omitempty" gorm:"column:student_phone;type:varchar(30)"`

	StudentIsActive bool `json:"student_is_active" gorm:"column:student_is_active;not null;default:true"`

	StudentCreatedAt time.Time `json:"student_created_at" gorm:"column:student_created_at;type:timestamptz;not null;default:now()"`
	StudentUpdatedAt time.Time `json:"student_updated_at" gorm:"column:student_updated_at;type:timestamptz;not null;default:now()"`
}

func (Student) TableName() string { return "students" }
