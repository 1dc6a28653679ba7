package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/devgen/devproject-generator/internal/db"
	"github.com/devgen/devproject-generator/internal/server/middleware"
	"github.com/devgen/devproject-generator/internal/types"
)

// FavoriteStore is the saved-project storage the account handlers depend on.
// *db.DB satisfies it; tests substitute a fake.
type FavoriteStore interface {
	SaveFavorite(ctx context.Context, userID uuid.UUID, project any) (*db.Favorite, error)
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]db.Favorite, error)
	DeleteFavorite(ctx context.Context, userID, favoriteID uuid.UUID) error
}

// handleGetMe returns the authenticated user's profile.
func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := s.userService.GetByID(r.Context(), userID)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, user)
}

// handleUpdatePassword updates the authenticated user's password.
func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.UpdatePasswordRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	if err := s.userService.UpdatePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Password updated successfully"})
}

// saveFavoriteRequest wraps the project document being saved.
type saveFavoriteRequest struct {
	Project types.ProjectIdea `json:"project"`
}

// handleSaveFavorite stores one generated project for the user.
func (s *Server) handleSaveFavorite(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req saveFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Project.Title == "" {
		s.errorResponse(w, http.StatusBadRequest, "project is required")
		return
	}

	fav, err := s.favorites.SaveFavorite(r.Context(), userID, req.Project)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save favorite")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{"id": fav.ID})
}

// handleListFavorites returns the user's saved projects, newest first.
func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	favorites, err := s.favorites.ListFavorites(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list favorites")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"favorites": favorites})
}

// handleDeleteFavorite removes one saved project.
func (s *Server) handleDeleteFavorite(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	favoriteID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid favorite id")
		return
	}

	if err := s.favorites.DeleteFavorite(r.Context(), userID, favoriteID); err != nil {
		if errors.Is(err, db.ErrFavoriteNotFound) {
			s.errorResponse(w, http.StatusNotFound, "favorite not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "failed to delete favorite")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "favorite deleted"})
}
