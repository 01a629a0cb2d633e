// file: internals/features/academics/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceStatus string

const (
	AttendanceStatusHadir AttendanceStatus = "hadir"
	AttendanceStatusSakit AttendanceStatus = "sakit"
	AttendanceStatusIzin  AttendanceStatus = "izin"
	AttendanceStatusAlpha AttendanceStatus = "alpha"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceStatusHadir, AttendanceStatusSakit, AttendanceStatusIzin, AttendanceStatusAlpha:
		return true
	default:
		return false
	}
}

type AttendanceRecord struct {
	AttendanceID uuid.UUID `json:"attendance_id" gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey"`

	AttendanceSchoolID  uuid.UUID `json:"attendance_school_id" gorm:"column:attendance_school_id;type:uuid;not null;index"`
	AttendanceStudentID uuid.UUID `json:"attendance_student_id" gorm:"column:attendance_student_id;type:uuid;not null;uniqueIndex:uq_attendance_student_date,priority:1"`

	AttendanceDate   time.Time        `json:"attendance_date" gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_student_date,priority:2"`
	AttendanceStatus AttendanceStatus `json:"attendance_status" gorm:"column:attendance_status;type:varchar(10);not null"`
	AttendanceNotes  *string          `json:"attendance_notes,omitempty" gorm:"column:attendance_notes;type:text"`

	AttendanceCreatedAt time.Time `json:"attendance_created_at" gorm:"column:attendance_created_at;type:timestamptz;not null;default:now()"`
}

func (AttendanceRecord) TableName() string { return "attendance_records" }
