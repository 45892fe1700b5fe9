package models

// RoleAdmin is the role allowed to list users and roles.
const RoleAdmin = "admin"

// Role represents a role record in the database
type Role struct {
	ID   int64  `json:"id" db:"id"`     // Primary key
	Name string `json:"name" db:"name"` // Role name, e.g. "admin"
}
