// file: internals/features/kpis/dto/kpi_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/kpis/model"
)

type CreateKpiRequest struct {
	SchoolKpiAcademicYear  string  `json:"school_kpi_academic_year" validate:"required,len=9"`
	SchoolKpiPeriod        string  `json:"school_kpi_period" validate:"required,max=20"`
	SchoolKpiName          string  `json:"school_kpi_name" validate:"required,max=120"`
	SchoolKpiCategory      string  `json:"school_kpi_category" validate:"required,max=60"`
	SchoolKpiTargetValue   float64 `json:"school_kpi_target_value" validate:"min=0"`
	SchoolKpiAchievedValue float64 `json:"school_kpi_achieved_value" validate:"min=0"`
	SchoolKpiUnit          *string `json:"school_kpi_unit" validate:"omitempty,max=30"`
	SchoolKpiDescription   *string `json:"school_kpi_description"`
}

func (r *CreateKpiRequest) ToModel(schoolID uuid.UUID) *model.SchoolKpi {
	k := &model.SchoolKpi{
		SchoolKpiSchoolID:      schoolID,
		SchoolKpiAcademicYear:  r.SchoolKpiAcademicYear,
		SchoolKpiPeriod:        r.SchoolKpiPeriod,
		SchoolKpiName:          r.SchoolKpiName,
		SchoolKpiCategory:      r.SchoolKpiCategory,
		SchoolKpiTargetValue:   r.SchoolKpiTargetValue,
		SchoolKpiAchievedValue: r.SchoolKpiAchievedValue,
		SchoolKpiUnit:          r.SchoolKpiUnit,
		SchoolKpiDescription:   r.SchoolKpiDescription,
	}
	k.Recalculate()
	return k
}

type UpdateKpiRequest struct {
	SchoolKpiTargetValue   *float64 `json:"school_kpi_target_value" validate:"omitempty,min=0"`
	SchoolKpiAchievedValue *float64 `json:"school_kpi_achieved_value" validate:"omitempty,min=0"`
	SchoolKpiCategory      *string  `json:"school_kpi_category" validate:"omitempty,max=60"`
	SchoolKpiUnit          *string  `json:"school_kpi_unit" validate:"omitempty,max=30"`
	SchoolKpiDescription   *string  `json:"school_kpi_description"`
}

func (r *UpdateKpiRequest) ApplyTo(k *model.SchoolKpi) {
	if r.SchoolKpiTargetValue != nil {
		k.SchoolKpiTargetValue = *r.SchoolKpiTargetValue
	}
	if r.SchoolKpiAchievedValue != nil {
		k.SchoolKpiAchievedValue = *r.SchoolKpiAchievedValue
	}
	if r.SchoolKpiCategory != nil {
		k.SchoolKpiCategory = *r.SchoolKpiCategory
	}
	if r.SchoolKpiUnit != nil {
		k.SchoolKpiUnit = r.SchoolKpiUnit
	}
	if r.SchoolKpiDescription != nil {
		k.SchoolKpiDescription = r.SchoolKpiDescription
	}
	k.Recalculate()
	k.SchoolKpiUpdatedAt = time.Now()
}

type KpiResponse struct {
	SchoolKpiID                 uuid.UUID `json:"school_kpi_id"`
	SchoolKpiAcademicYear       string    `json:"school_kpi_academic_year"`
	SchoolKpiPeriod             string    `json:"school_kpi_period"`
	SchoolKpiName               string    `json:"school_kpi_name"`
	SchoolKpiCategory           string    `json:"school_kpi_category"`
	SchoolKpiTargetValue        float64   `json:"school_kpi_target_value"`
	SchoolKpiAchievedValue      float64   `json:"school_kpi_achieved_value"`
	SchoolKpiAchievementPercent *float64  `json:"school_kpi_achievement_percent"`
	SchoolKpiUnit               *string   `json:"school_kpi_unit,omitempty"`
	SchoolKpiDescription        *string   `json:"school_kpi_description,omitempty"`
	SchoolKpiCreatedAt          time.Time `json:"school_kpi_created_at"`
}

func FromModelKpi(k *model.SchoolKpi) KpiResponse {
	return KpiResponse{
		SchoolKpiID:                 k.SchoolKpiID,
		SchoolKpiAcademicYear:       k.SchoolKpiAcademicYear,
		SchoolKpiPeriod:             k.SchoolKpiPeriod,
		SchoolKpiName:               k.SchoolKpiName,
		SchoolKpiCategory:           k.SchoolKpiCategory,
		SchoolKpiTargetValue:        k.SchoolKpiTargetValue,
		SchoolKpiAchievedValue:      k.SchoolKpiAchievedValue,
		SchoolKpiAchievementPercent: k.SchoolKpiAchievementPercent,
		SchoolKpiUnit:               k.SchoolKpiUnit,
		SchoolKpiDescription:        k.SchoolKpiDescription,
		SchoolKpiCreatedAt:          k.SchoolKpiCreatedAt,
	}
}

func FromModelKpis(list []model.SchoolKpi) []KpiResponse {
	out := make([]KpiResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelKpi(&list[i]))
	}
	return out
}
