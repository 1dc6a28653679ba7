package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User represents an account row
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	DeveloperLevel string    `json:"developer_level,omitempty"`
	PasswordHash   string    `json:"-" db:"password_hash"` // Never serialize to JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Favorite represents a saved project idea. The project document is stored
// as JSONB so schema changes in generated projects never require a migration.
type Favorite struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Project   json.RawMessage `json:"project"`
	CreatedAt time.Time       `json:"created_at"`
}
