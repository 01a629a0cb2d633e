// file: internals/features/facilities/model/facility_usage_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

func (s ApprovalStatus) Valid() bool {
	switch s {
	case ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected:
		return true
	default:
		return false
	}
}

// FacilityUsage memesan jendela waktu [start, end) pada satu tanggal.
// Jam disimpan "HH:MM" (24 jam) sehingga perbandingan string aman.
type FacilityUsage struct {
	FacilityUsageID uuid.UUID `json:"facility_usage_id" gorm:"column:facility_usage_id;type:uuid;default:gen_random_uuid();primaryKey"`

	FacilityUsageFacilityID uuid.UUID `json:"facility_usage_facility_id" gorm:"column:facility_usage_facility_id;type:uuid;not null;index"`
	FacilityUsageSchoolID   uuid.UUID `json:"facility_usage_school_id" gorm:"column:facility_usage_school_id;type:uuid;not null;index"`
	FacilityUsageUserID     uuid.UUID `json:"facility_usage_user_id" gorm:"column:facility_usage_user_id;type:uuid;not null"`

	FacilityUsageDate      time.Time `json:"facility_usage_date" gorm:"column:facility_usage_date;type:date;not null"`
	FacilityUsageStartTime string    `json:"facility_usage_start_time" gorm:"column:facility_usage_start_time;type:varchar(5);not null"`
	FacilityUsageEndTime   string    `json:"facility_usage_end_time" gorm:"column:facility_usage_end_time;type:varchar(5);not null"`

	FacilityUsagePurpose string `json:"facility_usage_purpose" gorm:"column:facility_usage_purpose;type:text;not null"`

	FacilityUsageApprovalStatus ApprovalStatus `json:"facility_usage_approval_status" gorm:"column:facility_usage_approval_status;type:varchar(10);not null;default:'pending'"`
	FacilityUsageApprovedBy     *uuid.UUID     `json:"facility_usage_approved_by,omitempty" gorm:"column:facility_usage_approved_by;type:uuid"`

	FacilityUsageCreatedAt time.Time `json:"facility_usage_created_at" gorm:"column:facility_usage_created_at;type:timestamptz;not null;default:now()"`
	FacilityUsageUpdatedAt time.Time `json:"facility_usage_updated_at" gorm:"column:facility_usage_updated_at;type:timestamptz;not null;default:now()"`
}

func (FacilityUsage) TableName() string { return "facility_usages" }

// TimeWindowsOverlap menguji tiga kasus tumpang tindih antara jendela
// existing [s1,e1) dan baru [s2,e2): baru mulai di dalam existing, baru
// berakhir di dalam existing, atau baru mencakup existing seluruhnya.
// Ketiganya ekuivalen dengan s1 < e2 && e1 > s2.
func TimeWindowsOverlap(existingStart, existingEnd, newStart, newEnd string) bool {
	startsInside := newStart >= existingStart && newStart < existingEnd
	endsInside := newEnd > existingStart && newEnd <= existingEnd
	contains := newStart <= existingStart && newEnd >= existingEnd
	return startsInside || endsInside || contains
}
