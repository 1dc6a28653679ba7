package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/devgen/devproject-generator/internal/types"
)

// validatable is implemented by request payloads that carry validator tags.
type validatable interface {
	Validate() error
}

// decodeRequest decodes and validates a JSON request body. It writes the
// JSON 400 body itself and returns false when the payload is unusable.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request, req validatable) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

// handleRegister creates an account and signs the first session token.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req types.CreateUserRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	user, err := s.userService.Register(r.Context(), &req)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.sessionResponse(w, http.StatusCreated, user)
}

// handleLogin checks credentials and signs a session token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	user, err := s.userService.Login(r.Context(), &req)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.sessionResponse(w, http.StatusOK, user)
}

// sessionResponse answers an auth request with the user and a bearer token.
func (s *Server) sessionResponse(w http.ResponseWriter, status int, user *types.User) {
	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	s.jsonResponse(w, status, types.LoginResponse{User: user, Token: token})
}

// validationMessage renders the first validator violation. One field at a
// time is enough for API clients to correct the payload.
func validationMessage(err error) string {
	if violations, ok := err.(validator.ValidationErrors); ok && len(violations) > 0 {
		return fmt.Sprintf("validation error: %s - %s", violations[0].Field(), violations[0].Tag())
	}
	return "validation error: invalid request"
}
