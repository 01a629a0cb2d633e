// file: internals/features/academics/academic_records/dto/academic_record_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/academics/academic_records/model"
)

type CreateAcademicRecordRequest struct {
	AcademicRecordStudentID    uuid.UUID `json:"academic_record_student_id" validate:"required"`
	AcademicRecordSubjectID    uuid.UUID `json:"academic_record_subject_id" validate:"required"`
	AcademicRecordSubjectName  string    `json:"academic_record_subject_name" validate:"required,max=100"`
	AcademicRecordSemester     int       `json:"academic_record_semester" validate:"required,oneof=1 2"`
	AcademicRecordAcademicYear string    `json:"academic_record_academic_year" validate:"required,len=9"`

	AcademicRecordKnowledgeScore float64 `json:"academic_record_knowledge_score" validate:"min=0,max=100"`
	AcademicRecordSkillScore     float64 `json:"academic_record_skill_score" validate:"min=0,max=100"`
	AcademicRecordAttitudeScore  float64 `json:"academic_record_attitude_score" validate:"min=0,max=100"`
	AcademicRecordMidtermScore   float64 `json:"academic_record_midterm_score" validate:"min=0,max=100"`
	AcademicRecordFinalScore     float64 `json:"academic_record_final_score" validate:"min=0,max=100"`

	// Bila nil, dihitung dari bobot komponen
	AcademicRecordCompositeScore *float64 `json:"academic_record_composite_score" validate:"omitempty,min=0,max=100"`
}

func (r *CreateAcademicRecordRequest) ToModel(schoolID uuid.UUID) *model.AcademicRecord {
	composite := model.ComputeCompositeScore(
		r.AcademicRecordKnowledgeScore,
		r.AcademicRecordSkillScore,
		r.AcademicRecordAttitudeScore,
		r.AcademicRecordMidtermScore,
		r.AcademicRecordFinalScore,
	)
	if r.AcademicRecordCompositeScore != nil {
		composite = *r.AcademicRecordCompositeScore
	}
	return &model.AcademicRecord{
		AcademicRecordSchoolID:       schoolID,
		AcademicRecordStudentID:      r.AcademicRecordStudentID,
		AcademicRecordSubjectID:      r.AcademicRecordSubjectID,
		AcademicRecordSubjectName:    r.AcademicRecordSubjectName,
		AcademicRecordSemester:       r.AcademicRecordSemester,
		AcademicRecordAcademicYear:   r.AcademicRecordAcademicYear,
		AcademicRecordKnowledgeScore: r.AcademicRecordKnowledgeScore,
		AcademicRecordSkillScore:     r.AcademicRecordSkillScore,
		AcademicRecordAttitudeScore:  r.AcademicRecordAttitudeScore,
		AcademicRecordMidtermScore:   r.AcademicRecordMidtermScore,
		AcademicRecordFinalScore:     r.AcademicRecordFinalScore,
		AcademicRecordCompositeScore: composite,
	}
}

type UpdateAcademicRecordRequest struct {
	AcademicRecordKnowledgeScore *float64 `json:"academic_record_knowledge_score" validate:"omitempty,min=0,max=100"`
	AcademicRecordSkillScore     *float64 `json:"academic_record_skill_score" validate:"omitempty,min=0,max=100"`
	AcademicRecordAttitudeScore  *float64 `json:"academic_record_attitude_score" validate:"omitempty,min=0,max=100"`
	AcademicRecordMidtermScore   *float64 `json:"academic_record_midterm_score" validate:"omitempty,min=0,max=100"`
	AcademicRecordFinalScore     *float64 `json:"academic_record_final_score" validate:"omitempty,min=0,max=100"`
	AcademicRecordCompositeScore *float64 `json:"academic_record_composite_score" validate:"omitempty,min=0,max=100"`
}

func (r *UpdateAcademicRecordRequest) ApplyTo(rec *model.AcademicRecord) {
	if r.AcademicRecordKnowledgeScore != nil {
		rec.AcademicRecordKnowledgeScore = *r.AcademicRecordKnowledgeScore
	}
	if r.AcademicRecordSkillScore != nil {
		rec.AcademicRecordSkillScore = *r.AcademicRecordSkillScore
	}
	if r.AcademicRecordAttitudeScore != nil {
		rec.AcademicRecordAttitudeScore = *r.AcademicRecordAttitudeScore
	}
	if r.AcademicRecordMidtermScore != nil {
		rec.AcademicRecordMidtermScore = *r.AcademicRecordMidtermScore
	}
	if r.AcademicRecordFinalScore != nil {
		rec.AcademicRecordFinalScore = *r.AcademicRecordFinalScore
	}
	if r.AcademicRecordCompositeScore != nil {
		rec.AcademicRecordCompositeScore = *r.AcademicRecordCompositeScore
	} else {
		rec.AcademicRecordCompositeScore = model.ComputeCompositeScore(
			rec.AcademicRecordKnowledgeScore,
			rec.AcademicRecordSkillScore,
			rec.AcademicRecordAttitudeScore,
			rec.AcademicRecordMidtermScore,
			rec.AcademicRecordFinalScore,
		)
	}
}

type AcademicRecordResponse struct {
	AcademicRecordID           uuid.UUID `json:"academic_record_id"`
	AcademicRecordStudentID    uuid.UUID `json:"academic_record_student_id"`
	AcademicRecordSubjectID    uuid.UUID `json:"academic_record_subject_id"`
	AcademicRecordSubjectName  string    `json:"academic_record_subject_name"`
	AcademicRecordSemester     int       `json:"academic_record_semester"`
	AcademicRecordAcademicYear string    `json:"academic_record_academic_year"`

	AcademicRecordKnowledgeScore float64 `json:"academic_record_knowledge_score"`
	AcademicRecordSkillScore     float64 `json:"academic_record_skill_score"`
	AcademicRecordAttitudeScore  float64 `json:"academic_record_attitude_score"`
	AcademicRecordMidtermScore   float64 `json:"academic_record_midterm_score"`
	AcademicRecordFinalScore     float64 `json:"academic_record_final_score"`
	AcademicRecordCompositeScore float64 `json:"academic_record_composite_score"`

	AcademicRecordCreatedAt time.Time `json:"academic_record_created_at"`
}

func FromModelAcademicRecord(rec *model.AcademicRecord) AcademicRecordResponse {
	return AcademicRecordResponse{
		AcademicRecordID:             rec.AcademicRecordID,
		AcademicRecordStudentID:      rec.AcademicRecordStudentID,
		AcademicRecordSubjectID:      rec.AcademicRecordSubjectID,
		AcademicRecordSubjectName:    rec.AcademicRecordSubjectName,
		AcademicRecordSemester:       rec.AcademicRecordSemester,
		AcademicRecordAcademicYear:   rec.AcademicRecordAcademicYear,
		AcademicRecordKnowledgeScore: rec.AcademicRecordKnowledgeScore,
		AcademicRecordSkillScore:     rec.AcademicRecordSkillScore,
		AcademicRecordAttitudeScore:  rec.AcademicRecordAttitudeScore,
		AcademicRecordMidtermScore:   rec.AcademicRecordMidtermScore,
		AcademicRecordFinalScore:     rec.AcademicRecordFinalScore,
		AcademicRecordCompositeScore: rec.AcademicRecordCompositeScore,
		AcademicRecordCreatedAt:      rec.AcademicRecordCreatedAt,
	}
}

func FromModelAcademicRecords(list []model.AcademicRecord) []AcademicRecordResponse {
	out := make([]AcademicRecordResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelAcademicRecord(&list[i]))
	}
	return out
}
