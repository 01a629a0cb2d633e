// file: internals/features/teachers/performance/dto/teacher_performance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "schoolku_backend/internals/features/teachers/performance/model"
)

type CreatePerformanceDetailRequest struct {
	TeacherPerformanceDetailCategory         string   `json:"teacher_performance_detail_category" validate:"required,max=60"`
	TeacherPerformanceDetailRecommendation   string   `json:"teacher_performance_detail_recommendation" validate:"required"`
	TeacherPerformanceDetailDevelopmentGoals []string `json:"teacher_performance_detail_development_goals" validate:"dive,max=200"`
}

type CreatePerformanceRequest struct {
	TeacherPerformanceTeacherID       uuid.UUID `json:"teacher_performance_teacher_id" validate:"required"`
	TeacherPerformancePeriod          string    `json:"teacher_performance_period" validate:"required,max=20"`
	TeacherPerformanceAcademicYear    string    `json:"teacher_performance_academic_year" validate:"required,len=9"`
	TeacherPerformanceTeachingScore   float64   `json:"teacher_performance_teaching_score" validate:"min=0,max=100"`
	TeacherPerformanceDisciplineScore float64   `json:"teacher_performance_discipline_score" validate:"min=0,max=100"`
	TeacherPerformanceStudentFeedback float64   `json:"teacher_performance_student_feedback" validate:"min=0,max=100"`
	TeacherPerformanceNotes           *string   `json:"teacher_performance_notes"`

	Details []CreatePerformanceDetailRequest `json:"details" validate:"dive"`
}

func (r *CreatePerformanceRequest) ToModel(schoolID, evaluatorID uuid.UUID) *model.TeacherPerformance {
	p := &model.TeacherPerformance{
		TeacherPerformanceSchoolID:        schoolID,
		TeacherPerformanceTeacherID:       r.TeacherPerformanceTeacherID,
		TeacherPerformancePeriod:          r.TeacherPerformancePeriod,
		TeacherPerformanceAcademicYear:    r.TeacherPerformanceAcademicYear,
		TeacherPerformanceTeachingScore:   r.TeacherPerformanceTeachingScore,
		TeacherPerformanceDisciplineScore: r.TeacherPerformanceDisciplineScore,
		TeacherPerformanceStudentFeedback: r.TeacherPerformanceStudentFeedback,
		TeacherPerformanceOverallScore: model.ComputeOverallScore(
			r.TeacherPerformanceTeachingScore,
			r.TeacherPerformanceDisciplineScore,
			r.TeacherPerformanceStudentFeedback,
		),
		TeacherPerformanceNotes: r.TeacherPerformanceNotes,
	}
	if evaluatorID != uuid.Nil {
		p.TeacherPerformanceEvaluatedBy = &evaluatorID
	}
	for _, d := range r.Details {
		p.Details = append(p.Details, model.TeacherPerformanceDetail{
			TeacherPerformanceDetailCategory:         d.TeacherPerformanceDetailCategory,
			TeacherPerformanceDetailRecommendation:   d.TeacherPerformanceDetailRecommendation,
			TeacherPerformanceDetailDevelopmentGoals: pq.StringArray(d.TeacherPerformanceDetailDevelopmentGoals),
		})
	}
	return p
}

type UpdatePerformanceRequest struct {
	TeacherPerformanceTeachingScore   *float64 `json:"teacher_performance_teaching_score" validate:"omitempty,min=0,max=100"`
	TeacherPerformanceDisciplineScore *float64 `json:"teacher_performance_discipline_score" validate:"omitempty,min=0,max=100"`
	TeacherPerformanceStudentFeedback *float64 `json:"teacher_performance_student_feedback" validate:"omitempty,min=0,max=100"`
	TeacherPerformanceNotes           *string  `json:"teacher_performance_notes"`
}

func (r *UpdatePerformanceRequest) ApplyTo(p *model.TeacherPerformance) {
	if r.TeacherPerformanceTeachingScore != nil {
		p.TeacherPerformanceTeachingScore = *r.TeacherPerformanceTeachingScore
	}
	if r.TeacherPerformanceDisciplineScore != nil {
		p.TeacherPerformanceDisciplineScore = *r.TeacherPerformanceDisciplineScore
	}
	if r.TeacherPerformanceStudentFeedback != nil {
		p.TeacherPerformanceStudentFeedback = *r.TeacherPerformanceStudentFeedback
	}
	if r.TeacherPerformanceNotes != nil {
		p.TeacherPerformanceNotes = r.TeacherPerformanceNotes
	}
	p.TeacherPerformanceOverallScore = model.ComputeOverallScore(
		p.TeacherPerformanceTeachingScore,
		p.TeacherPerformanceDisciplineScore,
		p.TeacherPerformanceStudentFeedback,
	)
	p.TeacherPerformanceUpdatedAt = time.Now()
}

type PerformanceDetailResponse struct {
	TeacherPerformanceDetailID               uuid.UUID `json:"teacher_performance_detail_id"`
	TeacherPerformanceDetailCategory         string    `json:"teacher_performance_detail_category"`
	TeacherPerformanceDetailRecommendation   string    `json:"teacher_performance_detail_recommendation"`
	TeacherPerformanceDetailDevelopmentGoals []string  `json:"teacher_performance_detail_development_goals"`
}

type PerformanceResponse struct {
	TeacherPerformanceID              uuid.UUID `json:"teacher_performance_id"`
	TeacherPerformanceTeacherID       uuid.UUID `json:"teacher_performance_teacher_id"`
	TeacherPerformancePeriod          string    `json:"teacher_performance_period"`
	TeacherPerformanceAcademicYear    string    `json:"teacher_performance_academic_year"`
	TeacherPerformanceTeachingScore   float64   `json:"teacher_performance_teaching_score"`
	TeacherPerformanceDisciplineScore float64   `json:"teacher_performance_discipline_score"`
	TeacherPerformanceStudentFeedback float64   `json:"teacher_performance_student_feedback"`
	TeacherPerformanceOverallScore    float64   `json:"teacher_performance_overall_score"`
	TeacherPerformanceNotes           *string   `json:"teacher_performance_notes,omitempty"`
	TeacherPerformanceCreatedAt       time.Time `json:"teacher_performance_created_at"`

	Details []PerformanceDetailResponse `json:"details,omitempty"`
}

func FromModelPerformance(p *model.TeacherPerformance) PerformanceResponse {
	resp := PerformanceResponse{
		TeacherPerformanceID:              p.TeacherPerformanceID,
		TeacherPerformanceTeacherID:       p.TeacherPerformanceTeacherID,
		TeacherPerformancePeriod:          p.TeacherPerformancePeriod,
		TeacherPerformanceAcademicYear:    p.TeacherPerformanceAcademicYear,
		TeacherPerformanceTeachingScore:   p.TeacherPerformanceTeachingScore,
		TeacherPerformanceDisciplineScore: p.TeacherPerformanceDisciplineScore,
		TeacherPerformanceStudentFeedback: p.TeacherPerformanceStudentFeedback,
		TeacherPerformanceOverallScore:    p.TeacherPerformanceOverallScore,
		TeacherPerformanceNotes:           p.TeacherPerformanceNotes,
		TeacherPerformanceCreatedAt:       p.TeacherPerformanceCreatedAt,
	}
	for i := range p.Details {
		d := &p.Details[i]
		resp.Details = append(resp.Details, PerformanceDetailResponse{
			TeacherPerformanceDetailID:               d.TeacherPerformanceDetailID,
			TeacherPerformanceDetailCategory:         d.TeacherPerformanceDetailCategory,
			TeacherPerformanceDetailRecommendation:   d.TeacherPerformanceDetailRecommendation,
			TeacherPerformanceDetailDevelopmentGoals: []string(d.TeacherPerformanceDetailDevelopmentGoals),
		})
	}
	return resp
}

func FromModelPerformances(list []model.TeacherPerformance) []PerformanceResponse {
	out := make([]PerformanceResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelPerformance(&list[i]))
	}
	return out
}
