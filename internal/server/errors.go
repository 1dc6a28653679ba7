package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/devgen/devproject-generator/internal/db"
)

// ErrEmailAlreadyExists reports a registration against a taken email.
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials is the single login failure. Unknown email and wrong
// password are indistinguishable to the caller.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound reports a lookup of a nonexistent account.
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrPasswordMismatch reports a wrong current password on a password change.
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrValidation reports a request payload that failed validation.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus maps a service error to its response status. Matching goes
// through errors.As/Is so wrapped errors keep their status.
func HTTPStatus(err error) int {
	var (
		duplicate *ErrEmailAlreadyExists
		badCreds  *ErrInvalidCredentials
		mismatch  *ErrPasswordMismatch
		noUser    *ErrUserNotFound
		invalid   *ErrValidation
	)
	switch {
	case errors.As(err, &duplicate):
		return http.StatusConflict
	case errors.As(err, &badCreds), errors.As(err, &mismatch):
		return http.StatusUnauthorized
	case errors.As(err, &noUser), errors.Is(err, db.ErrFavoriteNotFound):
		return http.StatusNotFound
	case errors.As(err, &invalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// serviceError writes a service error as the standard JSON error body.
// Errors without a mapped status are reported as a generic 500 so wrapped
// internals (database detail, provider messages) never reach clients.
func (s *Server) serviceError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	s.errorResponse(w, status, message)
}
