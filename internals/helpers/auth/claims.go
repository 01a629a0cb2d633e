// file: internals/helpers/auth/claims.go
package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ============================================
   Locals Keys (middleware should set these)
   ============================================ */

const (
	LocUserID   = "user_id"
	LocUserName = "user_name"
	LocRole     = "role"
	LocSchoolID = "school_id"
)

var (
	ErrNoSchoolContext = errors.New("school_id tidak ditemukan di token")
	ErrNoUserContext   = errors.New("user_id tidak ditemukan di token")
)

// GetSchoolIDFromToken mengambil school_id aktif dari locals (diisi AuthMiddleware).
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocSchoolID).(string)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, ErrNoSchoolContext
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrNoSchoolContext
	}
	return id, nil
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocUserID).(string)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, ErrNoUserContext
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrNoUserContext
	}
	return id, nil
}

func GetRoleFromToken(c *fiber.Ctx) string {
	role, _ := c.Locals(LocRole).(string)
	return role
}

func GetUserNameFromToken(c *fiber.Ctx) string {
	name, _ := c.Locals(LocUserName).(string)
	return name
}

// HasRole true bila role user termasuk salah satu dari allowed.
func HasRole(c *fiber.Ctx, allowed ...string) bool {
	role := GetRoleFromToken(c)
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

func IsAdmin(c *fiber.Ctx) bool     { return GetRoleFromToken(c) == "admin" }
func IsPrincipal(c *fiber.Ctx) bool { return GetRoleFromToken(c) == "principal" }
func IsTeacher(c *fiber.Ctx) bool   { return GetRoleFromToken(c) == "teacher" }
