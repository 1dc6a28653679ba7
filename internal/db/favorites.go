package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrFavoriteNotFound is returned when a favorite does not exist or belongs
// to another user. Callers match it with errors.Is.
var ErrFavoriteNotFound = errors.New("favorite not found")

// SaveFavorite stores a project document for a user and returns the record
func (db *DB) SaveFavorite(ctx context.Context, userID uuid.UUID, project any) (*Favorite, error) {
	jsonBytes, err := json.Marshal(project)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal project: %w", err)
	}

	var fav Favorite
	err = db.pool.QueryRow(ctx,
		`INSERT INTO favorites (user_id, project)
		 VALUES ($1, $2)
		 RETURNING id, user_id, project, created_at`,
		userID, jsonBytes,
	).Scan(&fav.ID, &fav.UserID, &fav.Project, &fav.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save favorite: %w", err)
	}
	return &fav, nil
}

// ListFavorites retrieves a user's saved projects, newest first
func (db *DB) ListFavorites(ctx context.Context, userID uuid.UUID) ([]Favorite, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, project, created_at
		 FROM favorites WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	favorites := []Favorite{}
	for rows.Next() {
		var fav Favorite
		if err := rows.Scan(&fav.ID, &fav.UserID, &fav.Project, &fav.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favorites = append(favorites, fav)
	}
	return favorites, nil
}

// DeleteFavorite removes one saved project. The user scope keeps accounts
// from deleting each other's records.
func (db *DB) DeleteFavorite(ctx context.Context, userID, favoriteID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM favorites WHERE id = $1 AND user_id = $2`,
		favoriteID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrFavoriteNotFound, favoriteID)
	}
	return nil
}
