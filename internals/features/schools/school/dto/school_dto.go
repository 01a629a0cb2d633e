// file: internals/features/schools/school/dto/school_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/schools/school/model"
)

type UpdateSchoolRequest struct {
	SchoolName         *string `json:"school_name" validate:"omitempty,max=150"`
	SchoolNPSN         *string `json:"school_npsn" validate:"omitempty,max=20"`
	SchoolAddress      *string `json:"school_address"`
	SchoolPhone        *string `json:"school_phone" validate:"omitempty,max=30"`
	SchoolEmail        *string `json:"school_email" validate:"omitempty,email"`
	SchoolAcademicYear *string `json:"school_academic_year" validate:"omitempty,len=9"`
}

func (r *UpdateSchoolRequest) ApplyTo(s *model.School) {
	if r.SchoolName != nil {
		s.SchoolName = *r.SchoolName
	}
	if r.SchoolNPSN != nil {
		s.SchoolNPSN = r.SchoolNPSN
	}
	if r.SchoolAddress != nil {
		s.SchoolAddress = r.SchoolAddress
	}
	if r.SchoolPhone != nil {
		s.SchoolPhone = r.SchoolPhone
	}
	if r.SchoolEmail != nil {
		s.SchoolEmail = r.SchoolEmail
	}
	if r.SchoolAcademicYear != nil {
		s.SchoolAcademicYear = r.SchoolAcademicYear
	}
}

type SchoolResponse struct {
	SchoolID           uuid.UUID  `json:"school_id"`
	SchoolName         string     `json:"school_name"`
	SchoolNPSN         *string    `json:"school_npsn,omitempty"`
	SchoolAddress      *string    `json:"school_address,omitempty"`
	SchoolPhone        *string    `json:"school_phone,omitempty"`
	SchoolEmail        *string    `json:"school_email,omitempty"`
	SchoolPrincipalID  *uuid.UUID `json:"school_principal_id,omitempty"`
	SchoolAcademicYear *string    `json:"school_academic_year,omitempty"`
	SchoolCreatedAt    time.Time  `json:"school_created_at"`
}

func FromModelSchool(s *model.School) SchoolResponse {
	return SchoolResponse{
		SchoolID:           s.SchoolID,
		SchoolName:         s.SchoolName,
		SchoolNPSN:         s.SchoolNPSN,
		SchoolAddress:      s.SchoolAddress,
		SchoolPhone:        s.SchoolPhone,
		SchoolEmail:        s.SchoolEmail,
		SchoolPrincipalID:  s.SchoolPrincipalID,
		SchoolAcademicYear: s.SchoolAcademicYear,
		SchoolCreatedAt:    s.SchoolCreatedAt,
	}
}
