// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	UserID uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// NULLABLE saat register berjalan: diisi setelah school dibuat dalam transaksi yang sama
	UserSchoolID *uuid.UUID `json:"user_school_id,omitempty" gorm:"column:user_school_id;type:uuid;index"`

	UserName     string `json:"user_name" gorm:"column:user_name;type:varchar(100);not null;uniqueIndex"`
	UserEmail    string `json:"user_email" gorm:"column:user_email;type:varchar(255);not null;uniqueIndex"`
	UserPassword string `json:"-" gorm:"column:user_password;type:text;not null"`
	UserFullName string `json:"user_full_name" gorm:"column:user_full_name;type:varchar(150);not null"`

	UserRole     string `json:"user_role" gorm:"column:user_role;type:varchar(20);not null;default:'principal'"`
	UserIsActive bool   `json:"user_is_active" gorm:"column:user_is_active;not null;default:true"`

	UserCreatedAt time.Time `json:"user_created_at" gorm:"column:user_created_at;type:timestamptz;not null;default:now()"`
	UserUpdatedAt time.Time `json:"user_updated_at" gorm:"column:user_updated_at;type:timestamptz;not null;default:now()"`
}

func (User) TableName() string { return "users" }
