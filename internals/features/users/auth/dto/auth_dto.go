// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"github.com/google/uuid"

	schoolModel "schoolku_backend/internals/features/schools/school/model"
	userModel "schoolku_backend/internals/features/users/user/model"
)

/* =========================================================
   REQUEST
   ========================================================= */

type RegisterRequest struct {
	UserName     string `json:"user_name" validate:"required,min=3,max=100"`
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8"`
	UserFullName string `json:"user_full_name" validate:"required,max=150"`

	SchoolName    string  `json:"school_name" validate:"required,max=150"`
	SchoolNPSN    *string `json:"school_npsn" validate:"omitempty,max=20"`
	SchoolAddress *string `json:"school_address"`
	SchoolPhone   *string `json:"school_phone" validate:"omitempty,max=30"`
	SchoolEmail   *string `json:"school_email" validate:"omitempty,email"`
}

type LoginRequest struct {
	UserName     string `json:"user_name" validate:"required"`
	UserPassword string `json:"user_password" validate:"required"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

type UserResponse struct {
	UserID       uuid.UUID  `json:"user_id"`
	UserSchoolID *uuid.UUID `json:"user_school_id,omitempty"`
	UserName     string     `json:"user_name"`
	UserEmail    string     `json:"user_email"`
	UserFullName string     `json:"user_full_name"`
	UserRole     string     `json:"user_role"`
	UserIsActive bool       `json:"user_is_active"`
}

func FromModelUser(u *userModel.User) UserResponse {
	return UserResponse{
		UserID:       u.UserID,
		UserSchoolID: u.UserSchoolID,
		UserName:     u.UserName,
		UserEmail:    u.UserEmail,
		UserFullName: u.UserFullName,
		UserRole:     u.UserRole,
		UserIsActive: u.UserIsActive,
	}
}

type RegisterResponse struct {
	User   UserResponse       `json:"user"`
	School schoolModel.School `json:"school"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	User        UserResponse `json:"user"`
}
