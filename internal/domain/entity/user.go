package entity

import "time"

// Roles de usuario.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User representa un usuario de la tienda.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	Role         string // ver constantes Role*
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
