package domain

import "time"

// Role is the privilege tier stored in the user directory. It is never
// trusted from credential claims; privileged calls re-resolve it.
type Role string

const (
	RoleGuest Role = "guest"
	RoleAdmin Role = "admin"
)

// User is the domain model for directory entries. Email is unique and is the
// subject carried by issued credentials.
type User struct {
	ID        string
	Name      string
	Email     string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}
