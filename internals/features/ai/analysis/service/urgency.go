// file: internals/features/ai/analysis/service/urgency.go
package service

import (
	"time"

	advisoryModel "schoolku_backend/internals/features/ai/advisory/model"
)

// MaintenanceDeadlineWindowDays adalah jendela deteksi jatuh tempo
// pemeliharaan terjadwal.
const MaintenanceDeadlineWindowDays = 7

// DeriveUrgency memetakan nilai rata-rata dan tingkat kehadiran (persen)
// ke tingkat urgensi secara deterministik.
func DeriveUrgency(avgScore, attendanceRate float64) advisoryModel.Priority {
	switch {
	case avgScore < 60 || attendanceRate < 70:
		return advisoryModel.PriorityCritical
	case avgScore < 70 || attendanceRate < 80:
		return advisoryModel.PriorityHigh
	case avgScore < 75 || attendanceRate < 85:
		return advisoryModel.PriorityMedium
	default:
		return advisoryModel.PriorityLow
	}
}

// MaintenanceDeadlineUrgency menilai jatuh tempo pemeliharaan: tanggal
// yang sudah lewat dianggap high, yang masih dalam jendela medium.
func MaintenanceDeadlineUrgency(due, today time.Time) advisoryModel.Priority {
	if due.Before(today) {
		return advisoryModel.PriorityHigh
	}
	return advisoryModel.PriorityMedium
}
