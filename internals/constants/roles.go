package constants

import "fmt"

const (
	RoleAdmin     = "admin"
	RolePrincipal = "principal"
	RoleTeacher   = "teacher"
	RoleStaff     = "staff"
	RoleStudent   = "student"
)

// Template pesan error role
const (
	ErrOnlyTeachersCanAccess   = "❌ Hanya teacher, principal, atau admin yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess     = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyPrincipalsCanAccess = "❌ Hanya kepala sekolah atau admin yang boleh mengakses fitur %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorPrincipal(feature string) string {
	return fmt.Sprintf(ErrOnlyPrincipalsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RolePrincipal,
		RoleTeacher,
		RoleStaff,
		RoleStudent,
	}

	StaffAndAbove = []string{
		RoleAdmin,
		RolePrincipal,
		RoleTeacher,
		RoleStaff,
	}

	TeacherAndAbove = []string{
		RoleTeacher,
		RolePrincipal,
		RoleAdmin,
	}

	PrincipalAndAbove = []string{
		RolePrincipal,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
