package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-blog/internal/httperror"
	"github.com/sbilibin2017/gw-blog/internal/logger"
	"github.com/sbilibin2017/gw-blog/internal/services"
)

// ForbiddenMessage is returned when the caller's role does not match.
const ForbiddenMessage = "User dont have access."

// RoleResolver resolves the role name of a user.
type RoleResolver interface {
	RoleName(ctx context.Context, userID int64) (string, error)
}

// RequireRole lets the request through only when the authenticated user
// holds roleName. It must run after AuthMiddleware.
func RequireRole(roleName string, resolver RoleResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			userID, ok := UserIDFromContext(ctx)
			if !ok {
				httperror.Write(w, http.StatusUnauthorized, "")
				return
			}

			name, err := resolver.RoleName(ctx, userID)
			if err != nil {
				if errors.Is(err, services.ErrUserNotFound) {
					logger.Log.Warnw("token subject not found", "user_id", userID)
					httperror.Write(w, http.StatusNotFound, "")
					return
				}
				logger.Log.Errorw("failed to resolve role", "user_id", userID, "err", err)
				httperror.Write(w, http.StatusInternalServerError, "")
				return
			}

			if name != roleName {
				logger.Log.Infow("access denied", "user_id", userID, "role", name, "required", roleName)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(map[string]string{"message": ForbiddenMessage})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
