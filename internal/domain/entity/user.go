package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "ADMIN"
	RoleTenant = "TENANT"
	RoleGuest  = "GUEST"
)

// ValidRole indica si el rol es uno de los tres conocidos.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleTenant || role == RoleGuest
}

// User representa un usuario del sistema. Se registra como GUEST y un ADMIN
// lo promueve a TENANT cuando su solicitud es aprobada.
type User struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	HomeAddress  string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // ADMIN, TENANT, GUEST
	BusinessName string
	BusinessType string
	AvatarURL    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
