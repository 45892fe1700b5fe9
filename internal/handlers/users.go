package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-blog/internal/httperror"
	"github.com/sbilibin2017/gw-blog/internal/logger"
	"github.com/sbilibin2017/gw-blog/internal/models"
	"github.com/sbilibin2017/gw-blog/internal/schemas"
	"github.com/sbilibin2017/gw-blog/internal/services"
)

// UserCreator defines the interface for creating users.
type UserCreator interface {
	Create(ctx context.Context, username, password string, roleID int64) (int64, error)
}

// UserLister defines the interface for listing users.
type UserLister interface {
	List(ctx context.Context) ([]models.User, error)
}

// UserGetter defines the interface for loading a single user.
type UserGetter interface {
	Get(ctx context.Context, id int64) (*models.User, error)
}

// UserUpdater defines the interface for partial user updates.
type UserUpdater interface {
	Update(ctx context.Context, id int64, fields map[string]any) (*models.User, error)
}

// UserDeleter defines the interface for deleting users.
type UserDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// CreateUserRequest represents the JSON body for user creation
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Role id
	// required: true
	// default: 1
	RoleID int64 `json:"role_id"`
}

// UpdateUserRequest represents the JSON body for a partial user update
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	RoleID   int64  `json:"role_id,omitempty"`
}

// UserResponse is the public projection of a single user.
// swagger:model UserResponse
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// UsersResponse wraps the user list.
// swagger:model UsersResponse
type UsersResponse struct {
	Users []models.User `json:"users"`
}

const (
	roleDoesNotExist = "Role does not exist."
	passwordTooLong  = "Longer than maximum length 72."
)

// NewCreateUserHandler returns an HTTP handler for user creation.
// @Summary Create a user
// @Description Creates a user with a bcrypt-hashed password and an existing role.
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "User creation request"
// @Success 201 {object} handlers.MessageResponse "User created!"
// @Failure 409 {object} httperror.Response "Username already exists"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation errors"
// @Router /users/ [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := readBody(w, r)
		if !ok {
			return
		}

		req, err := schemas.Load[schemas.CreateUser](body)
		if err != nil {
			writeSchemaError(w, err)
			return
		}

		_, err = svc.Create(r.Context(), *req.Username, *req.Password, *req.RoleID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				httperror.Write(w, http.StatusConflict, "Username already exists.")
			case errors.Is(err, services.ErrRoleDoesNotExist):
				writeFieldError(w, "role_id", roleDoesNotExist)
			case errors.Is(err, services.ErrPasswordTooLong):
				writeFieldError(w, "password", passwordTooLong)
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, MessageResponse{Message: "User created!"})
	}
}

// NewListUsersHandler returns an HTTP handler listing every user.
// @Summary List users
// @Description Returns every user. Only callers with the admin role may list users.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.UsersResponse
// @Failure 401 {object} httperror.Response "Missing or invalid token"
// @Failure 403 {object} handlers.MessageResponse "User dont have access."
// @Failure 404 {object} httperror.Response "Token subject not found"
// @Router /users/ [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			writeInternalError(w, err)
			return
		}
		if users == nil {
			users = []models.User{}
		}
		writeJSON(w, http.StatusOK, UsersResponse{Users: users})
	}
}

// NewGetUserHandler returns an HTTP handler loading one user.
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} handlers.UserResponse
// @Failure 404 {object} httperror.Response "User not found"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			httperror.Write(w, http.StatusNotFound, "")
			return
		}

		user, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				httperror.Write(w, http.StatusNotFound, "")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, UserResponse{ID: user.ID, Username: user.Username})
	}
}

// NewUpdateUserHandler returns an HTTP handler for partial user updates.
// @Summary Update a user
// @Description Overwrites the given user columns. Unknown keys are ignored; a new password is hashed.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param updateUserRequest body handlers.UpdateUserRequest true "Fields to update"
// @Success 200 {object} handlers.UserResponse
// @Failure 404 {object} httperror.Response "User not found"
// @Failure 409 {object} httperror.Response "Username already exists"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation errors"
// @Router /users/{id} [patch]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			httperror.Write(w, http.StatusNotFound, "")
			return
		}

		body, ok := readBody(w, r)
		if !ok {
			return
		}

		fields, err := schemas.LoadPartial[schemas.CreateUser](body)
		if err != nil {
			writeSchemaError(w, err)
			return
		}

		user, err := svc.Update(r.Context(), id, fields)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				httperror.Write(w, http.StatusNotFound, "")
			case errors.Is(err, services.ErrUserAlreadyExists):
				httperror.Write(w, http.StatusConflict, "Username already exists.")
			case errors.Is(err, services.ErrRoleDoesNotExist):
				writeFieldError(w, "role_id", roleDoesNotExist)
			case errors.Is(err, services.ErrInvalidPassword):
				writeFieldError(w, "password", "Not a valid string.")
			case errors.Is(err, services.ErrPasswordTooLong):
				writeFieldError(w, "password", passwordTooLong)
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, UserResponse{ID: user.ID, Username: user.Username})
	}
}

// NewDeleteUserHandler returns an HTTP handler deleting a user.
// @Summary Delete a user
// @Description Deletes the user. Users that still author posts cannot be deleted.
// @Tags users
// @Param id path int true "User id"
// @Success 204 "No Content"
// @Failure 404 {object} httperror.Response "User not found"
// @Failure 409 {object} httperror.Response "User still authors posts"
// @Router /users/{id} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			httperror.Write(w, http.StatusNotFound, "")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				httperror.Write(w, http.StatusNotFound, "")
			case errors.Is(err, services.ErrUserHasPosts):
				logger.Log.Infow("refusing to delete post author", "id", id)
				httperror.Write(w, http.StatusConflict, "User still authors posts.")
			default:
				writeInternalError(w, err)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
