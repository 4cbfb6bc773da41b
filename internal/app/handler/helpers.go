// Package handler contains the HTTP handlers of the recipe and fridge API.
// It decodes JSON bodies, maps service errors to status codes and renders
// recipe views with their bookmark state.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/fridgebook/internal/app/service"
	"github.com/atinyakov/fridgebook/internal/bookmark"
	"github.com/atinyakov/fridgebook/internal/middleware"
	"github.com/atinyakov/fridgebook/internal/storage"
)

const requestTimeout = 3 * time.Second

const (
	msgNotFound   = "Recipe not found."
	msgLoadFailed = "could not load, please try again"
	msgInFlight   = "bookmark update already in progress"
	msgForbidden  = "join the fridge first"
)

// malformedRequest represents an error with a malformed HTTP request.
type malformedRequest struct {
	status int    // HTTP status code for the error
	msg    string // Error message
}

// Error returns the error message for a malformed request.
func (mr *malformedRequest) Error() string {
	return mr.msg
}

// decodeJSONBody decodes a JSON request body into dst. It reads the content
// from the request body, checks for proper JSON formatting, and handles
// common errors related to JSON parsing.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	ct := r.Header.Get("Content-Type")
	if ct != "" {
		mediaType := strings.ToLower(strings.TrimSpace(strings.Split(ct, ";")[0]))
		if mediaType != "application/json" {
			msg := "Content-Type header is not application/json"
			return &malformedRequest{status: http.StatusUnsupportedMediaType, msg: msg}
		}
	}

	// Limit the size of the request body to 1MB
	r.Body = http.MaxBytesReader(w, r.Body, 1048576)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			msg := fmt.Sprintf("Request body contains badly-formed JSON (at position %d)", syntaxError.Offset)
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case errors.Is(err, io.ErrUnexpectedEOF):
			msg := "Request body contains badly-formed JSON"
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case errors.As(err, &unmarshalTypeError):
			msg := fmt.Sprintf("Request body contains an invalid value for the %q field (at position %d)", unmarshalTypeError.Field, unmarshalTypeError.Offset)
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			msg := fmt.Sprintf("Request body contains unknown field %s", fieldName)
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case errors.Is(err, io.EOF):
			msg := "Request body must not be empty"
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case errors.As(err, &maxBytesError):
			msg := "Request body must not be larger than 1MB"
			return &malformedRequest{status: http.StatusRequestEntityTooLarge, msg: msg}

		default:
			return err
		}
	}

	// Ensure the body only contains a single JSON object
	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		msg := "Request body must only contain a single JSON object"
		return &malformedRequest{status: http.StatusBadRequest, msg: msg}
	}

	return nil
}

// validID reports whether id may be used as a path segment and inside a
// bookmark key.
func validID(id string) bool {
	return bookmark.ValidID(id) && !strings.Contains(id, "/")
}

func userID(req *http.Request) string {
	id, _ := req.Context().Value(middleware.UserIDKey).(string)
	return id
}

func writeJSON(res http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		res.WriteHeader(http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	res.Write(body)
}

// writeError maps err to a status code. Unexpected errors are logged and
// reported with a generic message.
func writeError(res http.ResponseWriter, logger *zap.Logger, err error) {
	var mr *malformedRequest

	switch {
	case errors.As(err, &mr):
		http.Error(res, mr.msg, mr.status)
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidKey),
		errors.Is(err, storage.ErrInvalidPath):
		http.Error(res, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrForbidden):
		http.Error(res, msgForbidden, http.StatusForbidden)
	case errors.Is(err, service.ErrNotFound):
		http.Error(res, msgNotFound, http.StatusNotFound)
	case errors.Is(err, service.ErrToggleInFlight):
		http.Error(res, msgInFlight, http.StatusConflict)
	default:
		logger.Error("request failed", zap.Error(err))
		http.Error(res, msgLoadFailed, http.StatusInternalServerError)
	}
}
