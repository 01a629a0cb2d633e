// file: internals/features/teachers/performance/model/teacher_performance_model.go
package model

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TeacherPerformance: satu evaluasi per (guru, periode, tahun ajaran).
type TeacherPerformance struct {
	TeacherPerformanceID uuid.UUID `json:"teacher_performance_id" gorm:"column:teacher_performance_id;type:uuid;default:gen_random_uuid();primaryKey"`

	TeacherPerformanceSchoolID  uuid.UUID `json:"teacher_performance_school_id" gorm:"column:teacher_performance_school_id;type:uuid;not null;index"`
	TeacherPerformanceTeacherID uuid.UUID `json:"teacher_performance_teacher_id" gorm:"column:teacher_performance_teacher_id;type:uuid;not null;uniqueIndex:uq_teacher_performances_tuple,priority:1"`

	TeacherPerformancePeriod       string `json:"teacher_performance_period" gorm:"column:teacher_performance_period;type:varchar(20);not null;uniqueIndex:uq_teacher_performances_tuple,priority:2"`
	TeacherPerformanceAcademicYear string `json:"teacher_performance_academic_year" gorm:"column:teacher_performance_academic_year;type:varchar(9);not null;uniqueIndex:uq_teacher_performances_tuple,priority:3"`

	TeacherPerformanceTeachingScore   float64 `json:"teacher_performance_teaching_score" gorm:"column:teacher_performance_teaching_score;type:numeric(5,2);not null"`
	TeacherPerformanceDisciplineScore float64 `json:"teacher_performance_discipline_score" gorm:"column:teacher_performance_discipline_score;type:numeric(5,2);not null"`
	TeacherPerformanceStudentFeedback float64 `json:"teacher_performance_student_feedback" gorm:"column:teacher_performance_student_feedback;type:numeric(5,2);not null"`
	TeacherPerformanceOverallScore    float64 `json:"teacher_performance_overall_score" gorm:"column:teacher_performance_overall_score;type:numeric(5,2);not null"`

	TeacherPerformanceNotes *string `json:"teacher_performance_notes,omitempty" gorm:"column:teacher_performance_notes;type:text"`

	TeacherPerformanceEvaluatedBy *uuid.UUID `json:"teacher_performance_evaluated_by,omitempty" gorm:"column:teacher_performance_evaluated_by;type:uuid"`

	TeacherPerformanceCreatedAt time.Time `json:"teacher_performance_created_at" gorm:"column:teacher_performance_created_at;type:timestamptz;not null;default:now()"`
	TeacherPerformanceUpdatedAt time.Time `json:"teacher_performance_updated_at" gorm:"column:teacher_performance_updated_at;type:timestamptz;not null;default:now()"`

	Details []TeacherPerformanceDetail `json:"details,omitempty" gorm:"foreignKey:TeacherPerformanceDetailPerformanceID;references:TeacherPerformanceID"`
}

func (TeacherPerformance) TableName() string { return "teacher_performances" }

// ComputeOverallScore: rata-rata berbobot mengajar 0.5, disiplin 0.25,
// umpan balik siswa 0.25, dibulatkan 2 desimal.
func ComputeOverallScore(teaching, discipline, studentFeedback float64) float64 {
	overall := teaching*0.5 + discipline*0.25 + studentFeedback*0.25
	return math.Round(overall*100) / 100
}

// TeacherPerformanceDetail: rekomendasi per kategori + target pengembangan.
type TeacherPerformanceDetail struct {
	TeacherPerformanceDetailID uuid.UUID `json:"teacher_performance_detail_id" gorm:"column:teacher_performance_detail_id;type:uuid;default:gen_random_uuid();primaryKey"`

	TeacherPerformanceDetailPerformanceID uuid.UUID `json:"teacher_performance_detail_performance_id" gorm:"column:teacher_performance_detail_performance_id;type:uuid;not null;index"`

	TeacherPerformanceDetailCategory         string         `json:"teacher_performance_detail_category" gorm:"column:teacher_performance_detail_category;type:varchar(60);not null"`
	TeacherPerformanceDetailRecommendation   string         `json:"teacher_performance_detail_recommendation" gorm:"column:teacher_performance_detail_recommendation;type:text;not null"`
	TeacherPerformanceDetailDevelopmentGoals pq.StringArray `json:"teacher_performance_detail_development_goals" gorm:"column:teacher_performance_detail_development_goals;type:text[]"`

	TeacherPerformanceDetailCreatedAt time.Time `json:"teacher_performance_detail_created_at" gorm:"column:teacher_performance_detail_created_at;type:timestamptz;not null;default:now()"`
}

func (TeacherPerformanceDetail) TableName() string { return "teacher_performance_details" }
