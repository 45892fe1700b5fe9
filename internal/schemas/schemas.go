// Package schemas declares the request bodies accepted by the API and
// validates raw JSON against them.
package schemas

// CreateUser is the body of POST /users/.
type CreateUser struct {
	Username *string `json:"username" validate:"required"`
	Password *string `json:"password" validate:"required"`
	RoleID   *int64  `json:"role_id" validate:"required"`
}

// CreateRole is the body of POST /roles/.
type CreateRole struct {
	Name *string `json:"name" validate:"required"`
}

// CreatePost is the body of POST /posts/.
type CreatePost struct {
	Title *string `json:"title" validate:"required"`
	Body  *string `json:"body" validate:"required"`
}

// Login is the body of POST /auth/login.
type Login struct {
	Username *string `json:"username" validate:"required"`
	Password *string `json:"password" validate:"required"`
}
