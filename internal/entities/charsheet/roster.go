package charsheet

import (
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

// Roster is a player's ordered list of characters plus the selected one.
// Methods never mutate the receiver; every change returns a new Roster.
// SelectedID is zero only when the roster is empty.
type Roster struct {
	Characters []*Character `json:"characters"`
	SelectedID int          `json:"selected_id,omitempty"`
}

// DefaultRoster is the fallback for an empty or failed load: one baseline
// character with id 1, selected
func DefaultRoster() Roster {
	return Roster{
		Characters: []*Character{NewDefaultCharacter(1)},
		SelectedID: 1,
	}
}

// NewRoster copies characters into a roster and selects the first one
func NewRoster(characters []*Character) Roster {
	r := Roster{Characters: make([]*Character, 0, len(characters))}
	for _, c := range characters {
		r.Characters = append(r.Characters, c.Clone())
	}
	if len(r.Characters) > 0 {
		r.SelectedID = r.Characters[0].ID
	}
	return r
}

// Len returns the number of characters
func (r Roster) Len() int {
	return len(r.Characters)
}

// Clone returns a deep copy
func (r Roster) Clone() Roster {
	out := Roster{
		Characters: make([]*Character, 0, len(r.Characters)),
		SelectedID: r.SelectedID,
	}
	for _, c := range r.Characters {
		out.Characters = append(out.Characters, c.Clone())
	}
	return out
}

// NextID is 1 for an empty roster, otherwise one past the highest id
func (r Roster) NextID() int {
	highest := 0
	for _, c := range r.Characters {
		if c.ID > highest {
			highest = c.ID
		}
	}
	return highest + 1
}

// Add appends a baseline character with the next free id and selects it
func (r Roster) Add() (Roster, int) {
	id := r.NextID()
	out := r.Clone()
	out.Characters = append(out.Characters, NewDefaultCharacter(id))
	out.SelectedID = id
	return out, id
}

// Select returns a copy of the character with the given id
func (r Roster) Select(id int) (*Character, error) {
	idx := r.indexOf(id)
	if idx < 0 {
		return nil, errors.NotFoundf("character %d not found", id).WithMeta("character_id", id)
	}
	return r.Characters[idx].Clone(), nil
}

// Selected returns a copy of the selected character
func (r Roster) Selected() (*Character, error) {
	if r.SelectedID == 0 {
		return nil, errors.NotFound("no character selected")
	}
	return r.Select(r.SelectedID)
}

// WithSelected returns a roster with id selected
func (r Roster) WithSelected(id int) (Roster, error) {
	if r.indexOf(id) < 0 {
		return Roster{}, errors.NotFoundf("character %d not found", id).WithMeta("character_id", id)
	}
	out := r.Clone()
	out.SelectedID = id
	return out, nil
}

// Replace swaps in updated for the character with the given id. The stored
// id wins over updated.ID; ids never change once assigned.
func (r Roster) Replace(id int, updated *Character) (Roster, error) {
	if updated == nil {
		return Roster{}, errors.InvalidArgument("character is required")
	}

	idx := r.indexOf(id)
	if idx < 0 {
		return Roster{}, errors.NotFoundf("character %d not found", id).WithMeta("character_id", id)
	}

	out := r.Clone()
	replacement := updated.Clone()
	replacement.ID = id
	out.Characters[idx] = replacement
	return out, nil
}

func (r Roster) indexOf(id int) int {
	for i, c := range r.Characters {
		if c.ID == id {
			return i
		}
	}
	return -1
}
