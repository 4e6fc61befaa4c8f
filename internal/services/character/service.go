// Package character defines the interface for character sheet operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/rpg-charsheet/internal/services/character Service

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-charsheet/internal/engine"
	"github.com/KirkDiggler/rpg-charsheet/internal/entities/charsheet"
)

// Service defines the interface for character sheet operations. Every input
// names the player whose roster it acts on. A CharacterID of zero means the
// player's selected character.
type Service interface {
	// Roster persistence
	LoadRoster(ctx context.Context, input *LoadRosterInput) (*LoadRosterOutput, error)
	SaveRoster(ctx context.Context, input *SaveRosterInput) (*SaveRosterOutput, error)

	// Roster management
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	SelectCharacter(ctx context.Context, input *SelectCharacterInput) (*SelectCharacterOutput, error)
	AddCharacter(ctx context.Context, input *AddCharacterInput) (*AddCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)

	// Allocation
	AdjustAttribute(ctx context.Context, input *AdjustAttributeInput) (*AdjustAttributeOutput, error)
	AdjustSkill(ctx context.Context, input *AdjustSkillInput) (*AdjustSkillOutput, error)

	// Evaluation
	CheckEligibility(ctx context.Context, input *CheckEligibilityInput) (*CheckEligibilityOutput, error)
	ListClassEligibility(ctx context.Context, input *ListClassEligibilityInput) (*ListClassEligibilityOutput, error)
	PerformSkillCheck(ctx context.Context, input *PerformSkillCheckInput) (*PerformSkillCheckOutput, error)

	// Reference data
	ListDefinitions(ctx context.Context, input *ListDefinitionsInput) (*ListDefinitionsOutput, error)
}

// Roster persistence types

// LoadRosterInput defines the request for (re)loading a player's roster
type LoadRosterInput struct {
	PlayerID string
}

// LoadRosterOutput defines the response for loading a roster
type LoadRosterOutput struct {
	Roster charsheet.Roster
	// UsedDefault is set when nothing usable was stored and the default
	// roster was installed instead
	UsedDefault bool
	SavedAt     time.Time
}

// SaveRosterInput defines the request for persisting a player's roster
type SaveRosterInput struct {
	PlayerID string
}

// SaveRosterOutput defines the response for saving a roster
type SaveRosterOutput struct {
	Count   int
	SavedAt time.Time
}

// Roster management types

// ListCharactersInput defines the request for listing a player's characters
type ListCharactersInput struct {
	PlayerID string
}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*charsheet.Character
	SelectedID int
}

// SelectCharacterInput defines the request for changing the selection
type SelectCharacterInput struct {
	PlayerID    string
	CharacterID int
}

// SelectCharacterOutput defines the response for selecting a character
type SelectCharacterOutput struct {
	Character *charsheet.Character
}

// AddCharacterInput defines the request for adding a baseline character
type AddCharacterInput struct {
	PlayerID string
}

// AddCharacterOutput defines the response for adding a character. The new
// character is selected.
type AddCharacterOutput struct {
	Character *charsheet.Character
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	PlayerID    string
	CharacterID int
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *charsheet.Character
	Summary   *engine.Summary
}

// Allocation types

// AdjustAttributeInput defines the request for a point-buy change
type AdjustAttributeInput struct {
	PlayerID    string
	CharacterID int
	Attribute   charsheet.Attribute
	Delta       int
}

// AdjustAttributeOutput defines the response for an attribute change.
// Applied is false when the rules rejected the change.
type AdjustAttributeOutput struct {
	Character *charsheet.Character
	Applied   bool
	Summary   *engine.Summary
}

// AdjustSkillInput defines the request for a skill point change
type AdjustSkillInput struct {
	PlayerID    string
	CharacterID int
	Skill       string
	Delta       int
}

// AdjustSkillOutput defines the response for a skill change
type AdjustSkillOutput struct {
	Character *charsheet.Character
	Applied   bool
	Summary   *engine.Summary
}

// Evaluation types

// CheckEligibilityInput defines the request for a single class check
type CheckEligibilityInput struct {
	PlayerID    string
	CharacterID int
	ClassName   string
}

// CheckEligibilityOutput defines the response for a class check
type CheckEligibilityOutput struct {
	Class    charsheet.ClassDefinition
	Eligible bool
}

// ListClassEligibilityInput defines the request for checking every class
type ListClassEligibilityInput struct {
	PlayerID    string
	CharacterID int
}

// ListClassEligibilityOutput defines the response for checking every class
type ListClassEligibilityOutput struct {
	Classes []engine.ClassEligibility
}

// PerformSkillCheckInput defines the request for a skill check
type PerformSkillCheckInput struct {
	PlayerID        string
	CharacterID     int
	Skill           string
	DifficultyClass int
}

// PerformSkillCheckOutput defines the response for a skill check
type PerformSkillCheckOutput struct {
	CharacterID int
	Result      *engine.CheckResult
}

// Reference data types

// ListDefinitionsInput defines the request for the rule tables
type ListDefinitionsInput struct{}

// ListDefinitionsOutput defines the response for the rule tables
type ListDefinitionsOutput struct {
	Attributes []charsheet.Attribute
	Skills     []charsheet.SkillDefinition
	Classes    []charsheet.ClassDefinition
}
