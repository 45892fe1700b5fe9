package middlewares

import (
	"net/http"
	"runtime/debug"

	"github.com/sbilibin2017/gw-blog/internal/httperror"
	"github.com/sbilibin2017/gw-blog/internal/logger"
)

// NotFoundHandler renders unmatched routes as a JSON 404.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	httperror.Write(w, http.StatusNotFound, "")
}

// MethodNotAllowedHandler renders unsupported methods as a JSON 405.
func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	httperror.Write(w, http.StatusMethodNotAllowed, "")
}

// Recoverer turns a panic into a JSON 500.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.Log.Errorw("panic recovered",
					"request_id", RequestIDFromContext(r.Context()),
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				httperror.Write(w, http.StatusInternalServerError, "")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
