package models

// User represents a user record in the database
type User struct {
	ID       int64  `json:"id" db:"id"`             // Primary key
	Username string `json:"username" db:"username"` // Unique username
	Password string `json:"-" db:"password"`        // Bcrypt hash, never serialized
	RoleID   int64  `json:"role_id" db:"role_id"`   // Foreign key to roles.id
}

// UserColumns lists the users columns a partial update may write.
var UserColumns = []string{"username", "password", "role_id"}
