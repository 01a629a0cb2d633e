// file: internals/features/academics/academic_records/model/academic_record_model.go
package model

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type AcademicRecord struct {
	AcademicRecordID uuid.UUID `json:"academic_record_id" gorm:"column:academic_record_id;type:uuid;default:gen_random_uuid();primaryKey"`

	AcademicRecordSchoolID  uuid.UUID `json:"academic_record_school_id" gorm:"column:academic_record_school_id;type:uuid;not null;index"`
	AcademicRecordStudentID uuid.UUID `json:"academic_record_student_id" gorm:"column:academic_record_student_id;type:uuid;not null;uniqueIndex:uq_academic_records_tuple,priority:1"`
	AcademicRecordSubjectID uuid.UUID `json:"academic_record_subject_id" gorm:"column:academic_record_subject_id;type:uuid;not null;uniqueIndex:uq_academic_records_tuple,priority:2"`

	// Snapshot nama mapel supaya listing tidak perlu join
	AcademicRecordSubjectName string `json:"academic_record_subject_name" gorm:"column:academic_record_subject_name;type:varchar(100);not null"`

	AcademicRecordSemester     int    `json:"academic_record_semester" gorm:"column:academic_record_semester;not null;uniqueIndex:uq_academic_records_tuple,priority:3"`
	AcademicRecordAcademicYear string `json:"academic_record_academic_year" gorm:"column:academic_record_academic_year;type:varchar(9);not null;uniqueIndex:uq_academic_records_tuple,priority:4"`

	AcademicRecordKnowledgeScore float64 `json:"academic_record_knowledge_score" gorm:"column:academic_record_knowledge_score;type:numeric(5,2);not null"`
	AcademicRecordSkillScore     float64 `json:"academic_record_skill_score" gorm:"column:academic_record_skill_score;type:numeric(5,2);not null"`
	AcademicRecordAttitudeScore  float64 `json:"academic_record_attitude_score" gorm:"column:academic_record_attitude_score;type:numeric(5,2);not null"`
	AcademicRecordMidtermScore   float64 `json:"academic_record_midterm_score" gorm:"column:academic_record_midterm_score;type:numeric(5,2);not null"`
	AcademicRecordFinalScore     float64 `json:"academic_record_final_score" gorm:"column:academic_record_final_score;type:numeric(5,2);not null"`
	AcademicRecordCompositeScore float64 `json:"academic_record_composite_score" gorm:"column:academic_record_composite_score;type:numeric(5,2);not null"`

	AcademicRecordCreatedAt time.Time `json:"academic_record_created_at" gorm:"column:academic_record_created_at;type:timestamptz;not null;default:now()"`
	AcademicRecordUpdatedAt time.Time `json:"academic_record_updated_at" gorm:"column:academic_record_updated_at;type:timestamptz;not null;default:now()"`
}

func (AcademicRecord) TableName() string { return "academic_records" }

// Bobot nilai rapor: pengetahuan 30%, keterampilan 30%, sikap 10%, UTS 10%, UAS 20%.
const (
	weightKnowledge = 0.3
	weightSkill     = 0.3
	weightAttitude  = 0.1
	weightMidterm   = 0.1
	weightFinal     = 0.2
)

// ComputeCompositeScore menghitung nilai akhir berbobot, dibulatkan 2 desimal.
func ComputeCompositeScore(knowledge, skill, attitude, midterm, final float64) float64 {
	composite := knowledge*weightKnowledge +
		skill*weightSkill +
		attitude*weightAttitude +
		midterm*weightMidterm +
		final*weightFinal
	return math.Round(composite*100) / 100
}
