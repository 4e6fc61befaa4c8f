package roster

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities/charsheet"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/pkg/clock"
)

type storedRoster struct {
	characters []*charsheet.Character
	savedAt    time.Time
}

var _ Repository = (*InMemoryRepository)(nil)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]storedRoster
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		clock: clock.New(),
		store: make(map[string]storedRoster),
	}
}

// Load returns a copy of the stored roster
func (r *InMemoryRepository) Load(_ context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, exists := r.store[input.PlayerID]
	if !exists {
		return &LoadOutput{Characters: []*charsheet.Character{}}, nil
	}

	return &LoadOutput{
		Characters: cloneCharacters(stored.characters),
		SavedAt:    stored.savedAt,
	}, nil
}

// Save replaces the stored roster with a copy of the input
func (r *InMemoryRepository) Save(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	savedAt := r.clock.Now()
	r.store[input.PlayerID] = storedRoster{
		characters: cloneCharacters(input.Characters),
		savedAt:    savedAt,
	}

	return &SaveOutput{SavedAt: savedAt}, nil
}

func cloneCharacters(in []*charsheet.Character) []*charsheet.Character {
	out := make([]*charsheet.Character, 0, len(in))
	for _, c := range in {
		if c != nil {
			out = append(out, c.Clone())
		}
	}
	return out
}
