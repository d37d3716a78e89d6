package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User representa un usuario del sistema, siempre atado a una Company.
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string
	Name         string
	Role         string // ADMIN | USER
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
