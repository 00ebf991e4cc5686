package constants

import "fmt"

// Roles del sistema (tabla roles)
const (
	RoleAdmin     = "admin"
	RoleDirectivo = "directivo"
	RolePreceptor = "preceptor"
	RoleDocente   = "docente"
	RoleTutor     = "tutor"
)

// Plantillas de error por rol
const (
	ErrOnlyStaffCanAccess     = "❌ Solo admin, directivo o preceptor pueden acceder a %s."
	ErrOnlyAdminsCanAccess    = "❌ Solo admin puede acceder a %s."
	ErrOnlyDocentesCanAccess  = "❌ Solo docentes (o staff) pueden acceder a %s."
	ErrOnlyNonTutorCanAccess  = "❌ Solo roles distintos de 'tutor' pueden acceder a %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorDocente(feature string) string {
	return fmt.Sprintf(ErrOnlyDocentesCanAccess, feature)
}

func RoleErrorNonTutor(feature string) string {
	return fmt.Sprintf(ErrOnlyNonTutorCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleDirectivo,
		RolePreceptor,
		RoleDocente,
		RoleTutor,
	}

	StaffRoles = []string{
		RoleAdmin,
		RoleDirectivo,
		RolePreceptor,
	}

	DocenteAndAbove = []string{
		RoleDocente,
		RolePreceptor,
		RoleDirectivo,
		RoleAdmin,
	}

	NonTutorRoles = []string{
		RoleAdmin,
		RoleDirectivo,
		RolePreceptor,
		RoleDocente,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
