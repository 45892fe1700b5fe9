// Package handlers exposes the HTTP API of the blog: users, roles, posts and login.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-blog/internal/httperror"
	"github.com/sbilibin2017/gw-blog/internal/logger"
	"github.com/sbilibin2017/gw-blog/internal/schemas"
)

// MessageResponse is returned by create endpoints.
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	// default: User created!
	Message string `json:"message"`
}

// ValidationErrorResponse maps a field name to its error messages.
// swagger:model ValidationErrorResponse
type ValidationErrorResponse map[string][]string

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

// pathID reads an integer URL parameter. Anything else is treated as a missing route.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Log.Warnw("failed to read request body", "err", err)
		httperror.Write(w, http.StatusBadRequest, "")
		return nil, false
	}
	return body, true
}

// writeSchemaError renders schema errors as 422 and anything else as 500.
func writeSchemaError(w http.ResponseWriter, err error) {
	var errs schemas.Errors
	if errors.As(err, &errs) {
		writeJSON(w, http.StatusUnprocessableEntity, errs)
		return
	}
	logger.Log.Errorw("failed to load request body", "err", err)
	httperror.Write(w, http.StatusInternalServerError, "")
}

func writeFieldError(w http.ResponseWriter, field, msg string) {
	writeJSON(w, http.StatusUnprocessableEntity, schemas.Errors{field: {msg}})
}

func writeInternalError(w http.ResponseWriter, err error) {
	logger.Log.Errorw("internal server error", "err", err)
	httperror.Write(w, http.StatusInternalServerError, "")
}
