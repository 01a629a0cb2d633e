// file: internals/features/academics/attendance/dto/attendance_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	model "schoolku_backend/internals/features/academics/attendance/model"
)

func rec(status model.AttendanceStatus) model.AttendanceRecord {
	return model.AttendanceRecord{AttendanceStatus: status}
}

func TestBuildAttendanceSummary(t *testing.T) {
	studentID := uuid.New()
	records := []model.AttendanceRecord{
		rec(model.AttendanceStatusHadir),
		rec(model.AttendanceStatusHadir),
		rec(model.AttendanceStatusHadir),
		rec(model.AttendanceStatusSakit),
		rec(model.AttendanceStatusIzin),
		rec(model.AttendanceStatusAlpha),
	}

	s := BuildAttendanceSummary(studentID, records)
	assert.Equal(t, studentID, s.StudentID)
	assert.Equal(t, 6, s.TotalDays)
	assert.Equal(t, 3, s.PresentDays)
	assert.Equal(t, 1, s.SickDays)
	assert.Equal(t, 1, s.ExcusedDays)
	assert.Equal(t, 1, s.AbsentDays)
	assert.InDelta(t, 50.0, s.AttendanceRate, 0.001)
}

func TestBuildAttendanceSummary_Empty(t *testing.T) {
	s := BuildAttendanceSummary(uuid.New(), nil)
	assert.Equal(t, 0, s.TotalDays)
	assert.Equal(t, 0.0, s.AttendanceRate)
}
