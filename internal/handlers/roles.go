package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-blog/internal/models"
	"github.com/sbilibin2017/gw-blog/internal/schemas"
)

// RoleCreator defines the interface for creating roles.
type RoleCreator interface {
	Create(ctx context.Context, name string) (int64, error)
}

// RoleLister defines the interface for listing roles.
type RoleLister interface {
	List(ctx context.Context) ([]models.Role, error)
}

// CreateRoleRequest represents the JSON body for role creation
// swagger:model CreateRoleRequest
type CreateRoleRequest struct {
	// Role name
	// required: true
	// default: admin
	Name string `json:"name"`
}

// RolesResponse wraps the role list.
// swagger:model RolesResponse
type RolesResponse struct {
	Roles []models.Role `json:"roles"`
}

// NewCreateRoleHandler returns an HTTP handler for role creation.
// @Summary Create a role
// @Tags roles
// @Accept json
// @Produce json
// @Param createRoleRequest body handlers.CreateRoleRequest true "Role creation request"
// @Success 201 {object} handlers.MessageResponse "Role created!"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation errors"
// @Router /roles/ [post]
func NewCreateRoleHandler(svc RoleCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := readBody(w, r)
		if !ok {
			return
		}

		req, err := schemas.Load[schemas.CreateRole](body)
		if err != nil {
			writeSchemaError(w, err)
			return
		}

		if _, err := svc.Create(r.Context(), *req.Name); err != nil {
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, MessageResponse{Message: "Role created!"})
	}
}

// NewListRolesHandler returns an HTTP handler listing every role.
// @Summary List roles
// @Description Only callers with the admin role may list roles.
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.RolesResponse
// @Failure 401 {object} httperror.Response "Missing or invalid token"
// @Failure 403 {object} handlers.MessageResponse "User dont have access."
// @Router /roles/ [get]
func NewListRolesHandler(svc RoleLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roles, err := svc.List(r.Context())
		if err != nil {
			writeInternalError(w, err)
			return
		}
		if roles == nil {
			roles = []models.Role{}
		}
		writeJSON(w, http.StatusOK, RolesResponse{Roles: roles})
	}
}
