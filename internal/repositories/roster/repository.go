// Package roster provides the persistence boundary for a player's character
// roster. Rosters are loaded and saved wholesale.
package roster

//go:generate mockgen -destination=mock/mock_repository.go -package=rostermock github.com/KirkDiggler/rpg-charsheet/internal/repositories/roster Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities/charsheet"
)

// Repository defines the interface for roster persistence
type Repository interface {
	// Load retrieves the stored characters for a player in stored order.
	// A player with nothing stored gets an empty list, not an error.
	// Returns errors.InvalidArgument for an empty player ID
	// Returns errors.Unavailable when the backing store cannot be reached
	// Returns errors.DataLoss when stored data cannot be decoded
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)

	// Save replaces everything stored for a player
	// Returns errors.InvalidArgument for an empty player ID
	// Returns errors.Unavailable when the backing store cannot be reached
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)
}

// LoadInput defines the input for loading a roster
type LoadInput struct {
	PlayerID string
}

// LoadOutput defines the output for loading a roster
type LoadOutput struct {
	Characters []*charsheet.Character
	// SavedAt is zero when the backend does not record save times
	SavedAt time.Time
}

// SaveInput defines the input for saving a roster
type SaveInput struct {
	PlayerID   string
	Characters []*charsheet.Character
}

// SaveOutput defines the output for saving a roster
type SaveOutput struct {
	SavedAt time.Time
}

// document is the JSON shape shared by every backend
type document struct {
	Characters []*charsheet.Character `json:"characters"`
	SavedAt    int64                  `json:"saved_at,omitempty"`
}
