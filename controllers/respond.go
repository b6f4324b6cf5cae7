package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/dcode-github/dream_nest/models"
	"github.com/dcode-github/dream_nest/repositories"
)

type ContextKey string

const UserIDKey = ContextKey("userID")

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := models.ErrorResponse{Message: message}
	if err != nil {
		resp.Error = publicCause(err)
	}
	writeJSON(w, status, resp)
}

// statusFor maps the repository error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	var (
		validationErr *repositories.ValidationError
		referenceErr  *repositories.ReferenceError
		notFoundErr   *repositories.NotFoundError
		conflictErr   *repositories.ConflictError
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &referenceErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &conflictErr):
		return http.StatusConflict
	case errors.Is(err, repositories.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// publicCause hides driver details of store failures from clients.
func publicCause(err error) string {
	var perr *repositories.PersistenceError
	if errors.As(err, &perr) {
		return perr.Op + " failed"
	}
	if statusFor(err) == http.StatusInternalServerError {
		return "internal error"
	}
	return err.Error()
}

// invalidInput reports a request that could not be decoded as a 400 with the
// decoding problem in the error field.
func invalidInput(format string, args ...interface{}) error {
	return &repositories.ValidationError{
		Reason: repositories.ReasonInvalidField,
		Detail: fmt.Sprintf(format, args...),
	}
}
