// file: internals/features/facilities/dto/facility_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/facilities/model"
)

type CreateFacilityRequest struct {
	FacilityCode     string  `json:"facility_code" validate:"required,max=60"`
	FacilityName     string  `json:"facility_name" validate:"required,max=150"`
	FacilityType     string  `json:"facility_type" validate:"required,max=60"`
	FacilityCapacity int     `json:"facility_capacity" validate:"min=0"`
	FacilityLocation *string `json:"facility_location" validate:"omitempty,max=150"`
}

func (r *CreateFacilityRequest) ToModel(schoolID uuid.UUID) *model.Facility {
	return &model.Facility{
		FacilitySchoolID: schoolID,
		FacilityCode:     r.FacilityCode,
		FacilityName:     r.FacilityName,
		FacilityType:     r.FacilityType,
		FacilityCapacity: r.FacilityCapacity,
		FacilityLocation: r.FacilityLocation,
	}
}

type UpdateFacilityRequest struct {
	FacilityCode     *string `json:"facility_code" validate:"omitempty,max=60"`
	FacilityName     *string `json:"facility_name" validate:"omitempty,max=150"`
	FacilityType     *string `json:"facility_type" validate:"omitempty,max=60"`
	FacilityCapacity *int    `json:"facility_capacity" validate:"omitempty,min=0"`
	FacilityLocation *string `json:"facility_location" validate:"omitempty,max=150"`
}

func (r *UpdateFacilityRequest) ApplyTo(f *model.Facility) {
	if r.FacilityCode != nil {
		f.FacilityCode = *r.FacilityCode
	}
	if r.FacilityName != nil {
		f.FacilityName = *r.FacilityName
	}
	if r.FacilityType != nil {
		f.FacilityType = *r.FacilityType
	}
	if r.FacilityCapacity != nil {
		f.FacilityCapacity = *r.FacilityCapacity
	}
	if r.FacilityLocation != nil {
		f.FacilityLocation = r.FacilityLocation
	}
}

type FacilityResponse struct {
	FacilityID        uuid.UUID `json:"facility_id"`
	FacilityCode      string    `json:"facility_code"`
	FacilityName      string    `json:"facility_name"`
	FacilityType      string    `json:"facility_type"`
	FacilityCapacity  int       `json:"facility_capacity"`
	FacilityLocation  *string   `json:"facility_location,omitempty"`
	FacilityCreatedAt time.Time `json:"facility_created_at"`
}

func FromModelFacility(f *model.Facility) FacilityResponse {
	return FacilityResponse{
		FacilityID:        f.FacilityID,
		FacilityCode:      f.FacilityCode,
		FacilityName:      f.FacilityName,
		FacilityType:      f.FacilityType,
		FacilityCapacity:  f.FacilityCapacity,
		FacilityLocation:  f.FacilityLocation,
		FacilityCreatedAt: f.FacilityCreatedAt,
	}
}

func FromModelFacilities(list []model.Facility) []FacilityResponse {
	out := make([]FacilityResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelFacility(&list[i]))
	}
	return out
}

/* =========================================================
   Usage / booking
   ========================================================= */

type CreateFacilityUsageRequest struct {
	FacilityUsageFacilityID uuid.UUID `json:"facility_usage_facility_id" validate:"required"`
	FacilityUsageDate       string    `json:"facility_usage_date" validate:"required,datetime=2006-01-02"`
	FacilityUsageStartTime  string    `json:"facility_usage_start_time" validate:"required,datetime=15:04"`
	FacilityUsageEndTime    string    `json:"facility_usage_end_time" validate:"required,datetime=15:04"`
	FacilityUsagePurpose    string    `json:"facility_usage_purpose" validate:"required"`
}

func (r *CreateFacilityUsageRequest) ToModel(schoolID, userID uuid.UUID) (*model.FacilityUsage, error) {
	date, err := time.Parse("2006-01-02", r.FacilityUsageDate)
	if err != nil {
		return nil, err
	}
	return &model.FacilityUsage{
		FacilityUsageFacilityID:     r.FacilityUsageFacilityID,
		FacilityUsageSchoolID:       schoolID,
		FacilityUsageUserID:         userID,
		FacilityUsageDate:           date,
		FacilityUsageStartTime:      r.FacilityUsageStartTime,
		FacilityUsageEndTime:        r.FacilityUsageEndTime,
		FacilityUsagePurpose:        r.FacilityUsagePurpose,
		FacilityUsageApprovalStatus: model.ApprovalStatusPending,
	}, nil
}

type FacilityUsageResponse struct {
	FacilityUsageID             uuid.UUID  `json:"facility_usage_id"`
	FacilityUsageFacilityID     uuid.UUID  `json:"facility_usage_facility_id"`
	FacilityUsageUserID         uuid.UUID  `json:"facility_usage_user_id"`
	FacilityUsageDate           string     `json:"facility_usage_date"`
	FacilityUsageStartTime      string     `json:"facility_usage_start_time"`
	FacilityUsageEndTime        string     `json:"facility_usage_end_time"`
	FacilityUsagePurpose        string     `json:"facility_usage_purpose"`
	FacilityUsageApprovalStatus string     `json:"facility_usage_approval_status"`
	FacilityUsageApprovedBy     *uuid.UUID `json:"facility_usage_approved_by,omitempty"`
}

func FromModelFacilityUsage(u *model.FacilityUsage) FacilityUsageResponse {
	return FacilityUsageResponse{
		FacilityUsageID:             u.FacilityUsageID,
		FacilityUsageFacilityID:     u.FacilityUsageFacilityID,
		FacilityUsageUserID:         u.FacilityUsageUserID,
		FacilityUsageDate:           u.FacilityUsageDate.Format("2006-01-02"),
		FacilityUsageStartTime:      u.FacilityUsageStartTime,
		FacilityUsageEndTime:        u.FacilityUsageEndTime,
		FacilityUsagePurpose:        u.FacilityUsagePurpose,
		FacilityUsageApprovalStatus: string(u.FacilityUsageApprovalStatus),
		FacilityUsageApprovedBy:     u.FacilityUsageApprovedBy,
	}
}

func FromModelFacilityUsages(list []model.FacilityUsage) []FacilityUsageResponse {
	out := make([]FacilityUsageResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelFacilityUsage(&list[i]))
	}
	return out
}
