// file: internals/features/academics/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/academics/attendance/model"
)

type CreateAttendanceRequest struct {
	AttendanceStudentID uuid.UUID `json:"attendance_student_id" validate:"required"`
	AttendanceDate      string    `json:"attendance_date" validate:"required,datetime=2006-01-02"`
	AttendanceStatus    string    `json:"attendance_status" validate:"required,oneof=hadir sakit izin alpha"`
	AttendanceNotes     *string   `json:"attendance_notes"`
}

func (r *CreateAttendanceRequest) ToModel(schoolID uuid.UUID) (*model.AttendanceRecord, error) {
	date, err := time.Parse("2006-01-02", r.AttendanceDate)
	if err != nil {
		return nil, err
	}
	return &model.AttendanceRecord{
		AttendanceSchoolID:  schoolID,
		AttendanceStudentID: r.AttendanceStudentID,
		AttendanceDate:      date,
		AttendanceStatus:    model.AttendanceStatus(r.AttendanceStatus),
		AttendanceNotes:     r.AttendanceNotes,
	}, nil
}

type BulkCreateAttendanceRequest struct {
	AttendanceDate string                      `json:"attendance_date" validate:"required,datetime=2006-01-02"`
	Entries        []BulkCreateAttendanceEntry `json:"entries" validate:"required,min=1,dive"`
}

type BulkCreateAttendanceEntry struct {
	AttendanceStudentID uuid.UUID `json:"attendance_student_id" validate:"required"`
	AttendanceStatus    string    `json:"attendance_status" validate:"required,oneof=hadir sakit izin alpha"`
	AttendanceNotes     *string   `json:"attendance_notes"`
}

type AttendanceResponse struct {
	AttendanceID        uuid.UUID `json:"attendance_id"`
	AttendanceStudentID uuid.UUID `json:"attendance_student_id"`
	AttendanceDate      string    `json:"attendance_date"`
	AttendanceStatus    string    `json:"attendance_status"`
	AttendanceNotes     *string   `json:"attendance_notes,omitempty"`
}

func FromModelAttendance(a *model.AttendanceRecord) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID:        a.AttendanceID,
		AttendanceStudentID: a.AttendanceStudentID,
		AttendanceDate:      a.AttendanceDate.Format("2006-01-02"),
		AttendanceStatus:    string(a.AttendanceStatus),
		AttendanceNotes:     a.AttendanceNotes,
	}
}

func FromModelAttendances(list []model.AttendanceRecord) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelAttendance(&list[i]))
	}
	return out
}

// AttendanceSummary merangkum tingkat kehadiran satu siswa.
type AttendanceSummary struct {
	StudentID      uuid.UUID `json:"student_id"`
	TotalDays      int       `json:"total_days"`
	PresentDays    int       `json:"present_days"`
	SickDays       int       `json:"sick_days"`
	ExcusedDays    int       `json:"excused_days"`
	AbsentDays     int       `json:"absent_days"`
	AttendanceRate float64   `json:"attendance_rate"`
}

// BuildAttendanceSummary menghitung persentase kehadiran dari kumpulan record.
func BuildAttendanceSummary(studentID uuid.UUID, records []model.AttendanceRecord) AttendanceSummary {
	s := AttendanceSummary{StudentID: studentID, TotalDays: len(records)}
	for i := range records {
		switch records[i].AttendanceStatus {
		case model.AttendanceStatusHadir:
			s.PresentDays++
		case model.AttendanceStatusSakit:
			s.SickDays++
		case model.AttendanceStatusIzin:
			s.ExcusedDays++
		case model.AttendanceStatusAlpha:
			s.AbsentDays++
		}
	}
	if s.TotalDays > 0 {
		s.AttendanceRate = float64(s.PresentDays) / float64(s.TotalDays) * 100
	}
	return s
}
