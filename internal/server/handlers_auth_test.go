package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/devgen/devproject-generator/internal/server/middleware"
	"github.com/devgen/devproject-generator/internal/types"
)

func newAuthServer(store *fakeDB) *Server {
	return &Server{
		userService: testUserService(store),
		jwtService:  testJWTService(),
	}
}

// decodeErrorBody asserts the response is the standard JSON error shape and
// returns its message.
func decodeErrorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("error body is not JSON: %v", err)
	}
	return body.Error
}

func registerBody() string {
	return `{
		"username": "devuser",
		"email": "dev@example.com",
		"password": "correct-horse-battery",
		"developer_level": "intermediate"
	}`
}

func TestHandleRegister_Success(t *testing.T) {
	s := newAuthServer(newFakeDB())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(registerBody()))
	w := httptest.NewRecorder()
	s.handleRegister(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", w.Code, w.Body.String())
	}

	var resp types.LoginResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.User == nil || resp.User.Email != "dev@example.com" {
		t.Errorf("unexpected user: %+v", resp.User)
	}

	// The minted token must resolve back to the created account.
	claims, err := s.jwtService.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("returned token does not validate: %v", err)
	}
	if claims.UserID != resp.User.ID {
		t.Errorf("token user = %s, want %s", claims.UserID, resp.User.ID)
	}
}

func TestHandleRegister_DuplicateEmailIsJSON409(t *testing.T) {
	s := newAuthServer(newFakeDB())

	var w *httptest.ResponseRecorder
	for i, wantStatus := range []int{http.StatusCreated, http.StatusConflict} {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(registerBody()))
		w = httptest.NewRecorder()
		s.handleRegister(w, req)

		if w.Code != wantStatus {
			t.Fatalf("attempt %d: status = %d, want %d", i+1, w.Code, wantStatus)
		}
	}

	if msg := decodeErrorBody(t, w); msg != "email already registered: dev@example.com" {
		t.Errorf("conflict error = %q", msg)
	}
}

func TestHandleRegister_BadRequestBodies(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"not json", "not json", "Invalid request body"},
		{"missing email", `{"username":"u","password":"long-enough-pw"}`, "validation error: Email - required"},
		{"short password", `{"username":"u","email":"u@example.com","password":"short"}`, "validation error: Password - min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newAuthServer(newFakeDB())

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			s.handleRegister(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			if msg := decodeErrorBody(t, w); msg != tt.wantMsg {
				t.Errorf("error = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestHandleRegister_StoreFailureHidesDetail(t *testing.T) {
	store := newFakeDB()
	store.fail = errors.New("pg: connection refused on host db-internal-1")
	s := newAuthServer(store)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(registerBody()))
	w := httptest.NewRecorder()
	s.handleRegister(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if msg := decodeErrorBody(t, w); msg != "internal server error" {
		t.Errorf("error = %q, want generic message", msg)
	}
	if strings.Contains(w.Body.String(), "db-internal-1") {
		t.Error("response leaked internal error detail")
	}
}

func TestHandleLogin(t *testing.T) {
	s := newAuthServer(newFakeDB())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(registerBody()))
	s.handleRegister(httptest.NewRecorder(), req)

	t.Run("success", func(t *testing.T) {
		body := `{"email":"dev@example.com","password":"correct-horse-battery"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		w := httptest.NewRecorder()
		s.handleLogin(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
		}
		var resp types.LoginResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatal(err)
		}
		if resp.Token == "" {
			t.Error("login response has no token")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		body := `{"email":"dev@example.com","password":"nope-nope-nope"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		w := httptest.NewRecorder()
		s.handleLogin(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
		if msg := decodeErrorBody(t, w); msg != "invalid email or password" {
			t.Errorf("error = %q", msg)
		}
	})
}

func TestHandleUpdatePassword_WrongCurrentIsJSON401(t *testing.T) {
	store := newFakeDB()
	s := newAuthServer(store)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(registerBody()))
	rec := httptest.NewRecorder()
	s.handleRegister(rec, req)
	var created types.LoginResponse
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}

	body := `{"current_password":"wrong-current","new_password":"new-password-123"}`
	req = httptest.NewRequest(http.MethodPut, "/api/users/me/password", strings.NewReader(body))
	req = req.WithContext(middleware.WithUserID(req.Context(), created.User.ID))
	w := httptest.NewRecorder()
	s.handleUpdatePassword(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if msg := decodeErrorBody(t, w); msg != "current password is incorrect" {
		t.Errorf("error = %q", msg)
	}
}
