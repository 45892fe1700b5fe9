// Package httperror renders HTTP errors as {code, name, description} JSON bodies.
package httperror

import (
	"encoding/json"
	"net/http"
)

// Response is the JSON body of every HTTP-level error.
// swagger:model ErrorResponse
type Response struct {
	// HTTP status code
	// example: 404
	Code int `json:"code"`

	// Status name
	// example: Not Found
	Name string `json:"name"`

	// Human readable explanation
	// example: The requested URL was not found on the server.
	Description string `json:"description"`
}

var descriptions = map[int]string{
	http.StatusBadRequest:          "The browser (or proxy) sent a request that this server could not understand.",
	http.StatusUnauthorized:        "The server could not verify that you are authorized to access the URL requested.",
	http.StatusForbidden:           "You don't have the permission to access the requested resource.",
	http.StatusNotFound:            "The requested URL was not found on the server. If you entered the URL manually please check your spelling and try again.",
	http.StatusMethodNotAllowed:    "The method is not allowed for the requested URL.",
	http.StatusConflict:            "A conflict happened while processing the request.",
	http.StatusUnprocessableEntity: "The request was well-formed but was unable to be followed due to semantic errors.",
	http.StatusInternalServerError: "The server encountered an internal error and was unable to complete your request.",
}

// Description returns the default description for a status code.
func Description(code int) string {
	if d, ok := descriptions[code]; ok {
		return d
	}
	return http.StatusText(code)
}

// New builds the error body for code. An empty description falls back to the default one.
func New(code int, description string) Response {
	if description == "" {
		description = Description(code)
	}
	return Response{
		Code:        code,
		Name:        http.StatusText(code),
		Description: description,
	}
}

// Write sends the error body with the given status.
func Write(w http.ResponseWriter, code int, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(New(code, description))
}
