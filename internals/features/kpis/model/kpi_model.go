// file: internals/features/kpis/model/kpi_model.go
package model

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type SchoolKpi struct {
	SchoolKpiID uuid.UUID `json:"school_kpi_id" gorm:"column:school_kpi_id;type:uuid;default:gen_random_uuid();primaryKey"`

	SchoolKpiSchoolID     uuid.UUID `json:"school_kpi_school_id" gorm:"column:school_kpi_school_id;type:uuid;not null;uniqueIndex:uq_school_kpis_tuple,priority:1"`
	SchoolKpiAcademicYear string    `json:"school_kpi_academic_year" gorm:"column:school_kpi_academic_year;type:varchar(9);not null;uniqueIndex:uq_school_kpis_tuple,priority:2"`
	SchoolKpiPeriod       string    `json:"school_kpi_period" gorm:"column:school_kpi_period;type:varchar(20);not null;uniqueIndex:uq_school_kpis_tuple,priority:3"`
	SchoolKpiName         string    `json:"school_kpi_name" gorm:"column:school_kpi_name;type:varchar(120);not null;uniqueIndex:uq_school_kpis_tuple,priority:4"`

	SchoolKpiCategory      string  `json:"school_kpi_category" gorm:"column:school_kpi_category;type:varchar(60);not null"`
	SchoolKpiTargetValue   float64 `json:"school_kpi_target_value" gorm:"column:school_kpi_target_value;type:numeric(14,2);not null"`
	SchoolKpiAchievedValue float64 `json:"school_kpi_achieved_value" gorm:"column:school_kpi_achieved_value;type:numeric(14,2);not null;default:0"`

	// NULL bila target 0 (pencapaian tidak terdefinisi)
	SchoolKpiAchievementPercent *float64 `json:"school_kpi_achievement_percent" gorm:"column:school_kpi_achievement_percent;type:numeric(7,2)"`

	SchoolKpiUnit        *string `json:"school_kpi_unit,omitempty" gorm:"column:school_kpi_unit;type:varchar(30)"`
	SchoolKpiDescription *string `json:"school_kpi_description,omitempty" gorm:"column:school_kpi_description;type:text"`

	SchoolKpiCreatedAt time.Time `json:"school_kpi_created_at" gorm:"column:school_kpi_created_at;type:timestamptz;not null;default:now()"`
	SchoolKpiUpdatedAt time.Time `json:"school_kpi_updated_at" gorm:"column:school_kpi_updated_at;type:timestamptz;not null;default:now()"`
}

func (SchoolKpi) TableName() string { return "school_kpis" }

// ComputeAchievementPercent menghitung persen pencapaian (2 desimal).
// Mengembalikan nil bila target 0.
func ComputeAchievementPercent(achieved, target float64) *float64 {
	if target == 0 {
		return nil
	}
	pct := math.Round(achieved/target*100*100) / 100
	return &pct
}

// Recalculate menjaga kolom persen tetap konsisten dengan target/capaian.
func (k *SchoolKpi) Recalculate() {
	k.SchoolKpiAchievementPercent = ComputeAchievementPercent(k.SchoolKpiAchievedValue, k.SchoolKpiTargetValue)
}
