package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// singleTokenValidator accepts exactly one token.
func singleTokenValidator(accepted string, userID uuid.UUID) TokenValidator {
	return TokenValidatorFunc(func(token string) (uuid.UUID, error) {
		if token == accepted {
			return userID, nil
		}
		return uuid.Nil, errors.New("unknown token")
	})
}

func runAuthed(t *testing.T, validator TokenValidator, authHeader string) (*httptest.ResponseRecorder, bool, uuid.UUID) {
	t.Helper()

	handlerCalled := false
	var gotUserID uuid.UUID
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		id, err := GetUserID(r)
		require.NoError(t, err)
		gotUserID = id
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()

	AuthMiddleware(validator)(handler).ServeHTTP(w, req)
	return w, handlerCalled, gotUserID
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	validator := singleTokenValidator("good-token", userID)

	w, called, gotUserID := runAuthed(t, validator, "Bearer good-token")

	assert.True(t, called, "handler should run for a valid token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, gotUserID)
}

func TestAuthMiddleware_CaseInsensitiveScheme(t *testing.T) {
	userID := uuid.New()
	validator := singleTokenValidator("good-token", userID)

	for _, header := range []string{"bearer good-token", "BEARER good-token", "BeArEr good-token"} {
		w, called, _ := runAuthed(t, validator, header)
		assert.True(t, called, "scheme %q should be accepted", header)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	validator := singleTokenValidator("good-token", uuid.New())

	tests := []struct {
		name       string
		authHeader string
	}{
		{"no header", ""},
		{"no scheme", "good-token"},
		{"scheme only", "Bearer"},
		{"wrong scheme", "Basic good-token"},
		{"trailing junk", "Bearer good-token extra"},
		{"unknown token", "Bearer bad-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, called, _ := runAuthed(t, validator, tt.authHeader)

			assert.False(t, called, "handler must not run")
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			// The 401 body follows the API-wide JSON error shape and never
			// explains which check failed.
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
		})
	}
}

func TestGetUserID(t *testing.T) {
	userID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req = req.WithContext(WithUserID(req.Context(), userID))

	got, err := GetUserID(req)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestGetUserID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)

	got, err := GetUserID(req)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}
