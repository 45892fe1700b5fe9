package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-blog/internal/httperror"
	"github.com/sbilibin2017/gw-blog/internal/schemas"
	"github.com/sbilibin2017/gw-blog/internal/services"
)

// Loginer defines the interface for the login service
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT access token
	AccessToken string `json:"access_token"`
}

// NewLoginHandler returns an HTTP handler issuing access tokens.
// @Summary Log in
// @Description Checks the credentials and returns a signed access token carrying the user id.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse
// @Failure 401 {object} httperror.Response "Bad username or password"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation errors"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := readBody(w, r)
		if !ok {
			return
		}

		req, err := schemas.Load[schemas.Login](body)
		if err != nil {
			writeSchemaError(w, err)
			return
		}

		token, err := svc.Login(r.Context(), *req.Username, *req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				httperror.Write(w, http.StatusUnauthorized, "Bad username or password.")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{AccessToken: token})
	}
}
