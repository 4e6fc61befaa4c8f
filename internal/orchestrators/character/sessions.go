package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities/charsheet"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	rosterrepo "github.com/KirkDiggler/rpg-charsheet/internal/repositories/roster"
	"github.com/KirkDiggler/rpg-charsheet/internal/services/character"
)

// snapshot returns the player's current roster, loading it on first use.
// Rosters are never changed in place, so the value may be read without
// holding the lock.
func (o *Orchestrator) snapshot(ctx context.Context, playerID string) charsheet.Roster {
	o.mu.RLock()
	r, ok := o.sessions[playerID]
	o.mu.RUnlock()
	if ok {
		return r
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	return o.sessionLocked(ctx, playerID)
}

// mutate runs fn against the player's roster and stores what it returns.
// Nothing is stored when fn fails.
func (o *Orchestrator) mutate(ctx context.Context, playerID string, fn func(charsheet.Roster) (charsheet.Roster, error)) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	next, err := fn(o.sessionLocked(ctx, playerID))
	if err != nil {
		return err
	}
	o.sessions[playerID] = next
	return nil
}

// sessionLocked must be called with o.mu held for writing
func (o *Orchestrator) sessionLocked(ctx context.Context, playerID string) charsheet.Roster {
	if r, ok := o.sessions[playerID]; ok {
		return r
	}
	return o.loadLocked(ctx, playerID).Roster
}

// loadLocked reads the stored roster into the session. It never fails: an
// unreadable or empty store installs the default roster.
func (o *Orchestrator) loadLocked(ctx context.Context, playerID string) *character.LoadRosterOutput {
	loaded, err := o.rosterRepo.Load(ctx, &rosterrepo.LoadInput{PlayerID: playerID})
	if err != nil {
		slog.WarnContext(ctx, "failed to load roster, using default",
			"player_id", playerID,
			"code", errors.GetCode(err).String(),
			"error", err.Error())
		return o.installDefaultLocked(playerID)
	}

	characters := o.normalizeLoaded(ctx, playerID, loaded.Characters)
	if len(characters) == 0 {
		slog.InfoContext(ctx, "no stored characters, using default",
			"player_id", playerID)
		return o.installDefaultLocked(playerID)
	}

	r := charsheet.NewRoster(characters)
	o.sessions[playerID] = r

	slog.InfoContext(ctx, "loaded roster",
		"player_id", playerID,
		"count", r.Len(),
		"selected_id", r.SelectedID)

	return &character.LoadRosterOutput{
		Roster:  r.Clone(),
		SavedAt: loaded.SavedAt,
	}
}

func (o *Orchestrator) installDefaultLocked(playerID string) *character.LoadRosterOutput {
	r := charsheet.DefaultRoster()
	o.sessions[playerID] = r
	return &character.LoadRosterOutput{
		Roster:      r.Clone(),
		UsedDefault: true,
	}
}

// normalizeLoaded drops nil entries, fills in missing attributes and skills,
// and reassigns ids that are not positive or already taken so roster ids
// stay unique.
func (o *Orchestrator) normalizeLoaded(ctx context.Context, playerID string, loaded []*charsheet.Character) []*charsheet.Character {
	out := make([]*charsheet.Character, 0, len(loaded))
	seen := make(map[int]bool, len(loaded))
	highest := 0
	for _, c := range loaded {
		if c != nil && c.ID > highest {
			highest = c.ID
		}
	}

	for _, c := range loaded {
		if c == nil {
			continue
		}

		normalized := o.definitions.Normalize(c)
		if normalized.ID <= 0 || seen[normalized.ID] {
			highest++
			slog.WarnContext(ctx, "reassigning stored character id",
				"player_id", playerID,
				"stored_id", normalized.ID,
				"assigned_id", highest)
			normalized.ID = highest
		}
		seen[normalized.ID] = true
		out = append(out, normalized)
	}

	return out
}
