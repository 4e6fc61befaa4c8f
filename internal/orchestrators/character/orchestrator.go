// Package character implements the character sheet orchestrator
package character

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-charsheet/internal/engine"
	"github.com/KirkDiggler/rpg-charsheet/internal/entities/charsheet"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	rosterrepo "github.com/KirkDiggler/rpg-charsheet/internal/repositories/roster"
	"github.com/KirkDiggler/rpg-charsheet/internal/services/character"
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	RosterRepo rosterrepo.Repository
	Engine     engine.Engine
	EventBus   events.EventBus
	// Definitions defaults to the embedded rule tables
	Definitions *charsheet.Definitions
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.RosterRepo == nil {
		vb.RequiredField("RosterRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface. It keeps one
// roster per player in memory, loading it from the repository on first use.
type Orchestrator struct {
	rosterRepo  rosterrepo.Repository
	engine      engine.Engine
	eventBus    events.EventBus
	definitions *charsheet.Definitions

	mu       sync.RWMutex
	sessions map[string]charsheet.Roster
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	defs := cfg.Definitions
	if defs == nil {
		defs = charsheet.Default()
	}

	return &Orchestrator{
		rosterRepo:  cfg.RosterRepo,
		engine:      cfg.Engine,
		eventBus:    cfg.EventBus,
		definitions: defs,
		sessions:    make(map[string]charsheet.Roster),
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

// Roster persistence

// LoadRoster replaces the player's session with the stored roster. Nothing
// stored, or a store that cannot be read, installs the default roster.
func (o *Orchestrator) LoadRoster(ctx context.Context, input *character.LoadRosterInput) (*character.LoadRosterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validatePlayer(input.PlayerID); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	out := o.loadLocked(ctx, input.PlayerID)
	return out, nil
}

// SaveRoster persists the player's roster. A failed save leaves the session
// untouched so the caller can retry.
func (o *Orchestrator) SaveRoster(ctx context.Context, input *character.SaveRosterInput) (*character.SaveRosterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validatePlayer(input.PlayerID); err != nil {
		return nil, err
	}

	r := o.snapshot(ctx, input.PlayerID)

	saved, err := o.rosterRepo.Save(ctx, &rosterrepo.SaveInput{
		PlayerID:   input.PlayerID,
		Characters: r.Characters,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to save roster",
			"player_id", input.PlayerID,
			"count", r.Len(),
			"error", err.Error())
		return nil, errors.Wrapf(err, "failed to save roster")
	}

	slog.InfoContext(ctx, "saved roster",
		"player_id", input.PlayerID,
		"count", r.Len())

	return &character.SaveRosterOutput{
		Count:   r.Len(),
		SavedAt: saved.SavedAt,
	}, nil
}

// Roster management

// ListCharacters returns the player's characters in roster order
func (o *Orchestrator) ListCharacters(ctx context.Context, input *character.ListCharactersInput) (*character.ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validatePlayer(input.PlayerID); err != nil {
		return nil, err
	}

	r := o.snapshot(ctx, input.PlayerID).Clone()

	return &character.ListCharactersOutput{
		Characters: r.Characters,
		SelectedID: r.SelectedID,
	}, nil
}

// SelectCharacter changes which character later calls act on by default
func (o *Orchestrator) SelectCharacter(ctx context.Context, input *character.SelectCharacterInput) (*character.SelectCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidatePositive("character_id", input.CharacterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var selected *charsheet.Character
	err := o.mutate(ctx, input.PlayerID, func(r charsheet.Roster) (charsheet.Roster, error) {
		next, err := r.WithSelected(input.CharacterID)
		if err != nil {
			return r, err
		}
		selected, err = next.Selected()
		return next, err
	})
	if err != nil {
		return nil, err
	}

	return &character.SelectCharacterOutput{Character: selected}, nil
}

// AddCharacter appends a baseline character and selects it
func (o *Orchestrator) AddCharacter(ctx context.Context, input *character.AddCharacterInput) (*character.AddCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validatePlayer(input.PlayerID); err != nil {
		return nil, err
	}

	var added *charsheet.Character
	err := o.mutate(ctx, input.PlayerID, func(r charsheet.Roster) (charsheet.Roster, error) {
		next, id := r.Add()
		var err error
		added, err = next.Select(id)
		return next, err
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "added character",
		"player_id", input.PlayerID,
		"character_id", added.ID)

	o.publish(ctx, EventCharacterAdded, input.PlayerID, added.ID, nil)

	return &character.AddCharacterOutput{Character: added}, nil
}

// GetCharacter returns a character with its derived values
func (o *Orchestrator) GetCharacter(ctx context.Context, input *character.GetCharacterInput) (*character.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateTarget(input.PlayerID, input.CharacterID); err != nil {
		return nil, err
	}

	c, err := resolveCharacter(o.snapshot(ctx, input.PlayerID), input.CharacterID)
	if err != nil {
		return nil, err
	}

	summary, err := o.summarize(ctx, c)
	if err != nil {
		return nil, err
	}

	return &character.GetCharacterOutput{
		Character: c,
		Summary:   summary,
	}, nil
}

// Allocation

// AdjustAttribute applies a point-buy change. A change the cap does not
// allow comes back with Applied=false and the character unchanged.
func (o *Orchestrator) AdjustAttribute(ctx context.Context, input *character.AdjustAttributeInput) (*character.AdjustAttributeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("attribute", string(input.Attribute), vb)
	validateCharacterID(input.CharacterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var result *engine.AdjustAttributeOutput
	err := o.mutate(ctx, input.PlayerID, func(r charsheet.Roster) (charsheet.Roster, error) {
		c, err := resolveCharacter(r, input.CharacterID)
		if err != nil {
			return r, err
		}

		result, err = o.engine.AdjustAttribute(ctx, &engine.AdjustAttributeInput{
			Character: c,
			Attribute: input.Attribute,
			Delta:     input.Delta,
		})
		if err != nil {
			return r, err
		}
		if !result.Applied {
			return r, nil
		}
		return r.Replace(c.ID, result.Character)
	})
	if err != nil {
		return nil, err
	}

	summary, err := o.summarize(ctx, result.Character)
	if err != nil {
		return nil, err
	}

	if result.Applied {
		o.publish(ctx, EventAttributeAdjusted, input.PlayerID, result.Character.ID, map[string]any{
			EventKeyAttribute: string(input.Attribute),
			EventKeyDelta:     input.Delta,
			EventKeyValue:     result.Character.Attributes[input.Attribute],
		})
	} else {
		slog.DebugContext(ctx, "attribute change rejected",
			"player_id", input.PlayerID,
			"character_id", result.Character.ID,
			"attribute", input.Attribute,
			"delta", input.Delta)
	}

	return &character.AdjustAttributeOutput{
		Character: result.Character,
		Applied:   result.Applied,
		Summary:   summary,
	}, nil
}

// AdjustSkill applies a skill point change against the Intelligence-derived
// budget
func (o *Orchestrator) AdjustSkill(ctx context.Context, input *character.AdjustSkillInput) (*character.AdjustSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("skill", input.Skill, vb)
	validateCharacterID(input.CharacterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var result *engine.AdjustSkillOutput
	err := o.mutate(ctx, input.PlayerID, func(r charsheet.Roster) (charsheet.Roster, error) {
		c, err := resolveCharacter(r, input.CharacterID)
		if err != nil {
			return r, err
		}

		result, err = o.engine.AdjustSkill(ctx, &engine.AdjustSkillInput{
			Character: c,
			Skill:     input.Skill,
			Delta:     input.Delta,
		})
		if err != nil {
			return r, err
		}
		if !result.Applied {
			return r, nil
		}
		return r.Replace(c.ID, result.Character)
	})
	if err != nil {
		return nil, err
	}

	summary, err := o.summarize(ctx, result.Character)
	if err != nil {
		return nil, err
	}

	if result.Applied && input.Delta != 0 {
		o.publish(ctx, EventSkillAdjusted, input.PlayerID, result.Character.ID, map[string]any{
			EventKeySkill: input.Skill,
			EventKeyDelta: input.Delta,
			EventKeyValue: result.Character.Skills[input.Skill],
		})
	}

	return &character.AdjustSkillOutput{
		Character: result.Character,
		Applied:   result.Applied,
		Summary:   summary,
	}, nil
}

// Evaluation

// CheckEligibility reports whether a character meets one class's thresholds
func (o *Orchestrator) CheckEligibility(ctx context.Context, input *character.CheckEligibilityInput) (*character.CheckEligibilityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("class_name", input.ClassName, vb)
	validateCharacterID(input.CharacterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	c, err := resolveCharacter(o.snapshot(ctx, input.PlayerID), input.CharacterID)
	if err != nil {
		return nil, err
	}

	out, err := o.engine.IsEligible(ctx, &engine.IsEligibleInput{
		Character: c,
		ClassName: input.ClassName,
	})
	if err != nil {
		return nil, err
	}

	return &character.CheckEligibilityOutput{
		Class:    out.Class,
		Eligible: out.Eligible,
	}, nil
}

// ListClassEligibility evaluates every class for a character
func (o *Orchestrator) ListClassEligibility(ctx context.Context, input *character.ListClassEligibilityInput) (*character.ListClassEligibilityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateTarget(input.PlayerID, input.CharacterID); err != nil {
		return nil, err
	}

	c, err := resolveCharacter(o.snapshot(ctx, input.PlayerID), input.CharacterID)
	if err != nil {
		return nil, err
	}

	out, err := o.engine.EvaluateClasses(ctx, &engine.EvaluateClassesInput{Character: c})
	if err != nil {
		return nil, err
	}

	return &character.ListClassEligibilityOutput{Classes: out.Classes}, nil
}

// PerformSkillCheck rolls a d20 for a character's skill against a DC. The
// character is not changed.
func (o *Orchestrator) PerformSkillCheck(ctx context.Context, input *character.PerformSkillCheckInput) (*character.PerformSkillCheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("skill", input.Skill, vb)
	validateCharacterID(input.CharacterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	c, err := resolveCharacter(o.snapshot(ctx, input.PlayerID), input.CharacterID)
	if err != nil {
		return nil, err
	}

	out, err := o.engine.PerformSkillCheck(ctx, &engine.PerformSkillCheckInput{
		Character:       c,
		Skill:           input.Skill,
		DifficultyClass: input.DifficultyClass,
	})
	if err != nil {
		return nil, err
	}

	o.publish(ctx, EventSkillCheckPerformed, input.PlayerID, c.ID, map[string]any{
		EventKeySkill:  input.Skill,
		EventKeyResult: out.Result,
	})

	return &character.PerformSkillCheckOutput{
		CharacterID: c.ID,
		Result:      out.Result,
	}, nil
}

// Reference data

// ListDefinitions returns the attribute, skill and class tables
func (o *Orchestrator) ListDefinitions(_ context.Context, input *character.ListDefinitionsInput) (*character.ListDefinitionsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return &character.ListDefinitionsOutput{
		Attributes: o.definitions.Attributes(),
		Skills:     o.definitions.Skills(),
		Classes:    o.definitions.Classes(),
	}, nil
}

func (o *Orchestrator) summarize(ctx context.Context, c *charsheet.Character) (*engine.Summary, error) {
	out, err := o.engine.Summarize(ctx, &engine.SummarizeInput{Character: c})
	if err != nil {
		return nil, err
	}
	return out.Summary, nil
}

func validatePlayer(playerID string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", playerID, vb)
	return vb.Build()
}

func validateTarget(playerID string, characterID int) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", playerID, vb)
	validateCharacterID(characterID, vb)
	return vb.Build()
}

// validateCharacterID accepts zero, which targets the selected character
func validateCharacterID(characterID int, vb *errors.ValidationBuilder) {
	if characterID < 0 {
		vb.Fieldf("character_id", "must not be negative, got %d", characterID)
	}
}

// resolveCharacter returns a copy of the addressed character. Zero means the
// selected one.
func resolveCharacter(r charsheet.Roster, characterID int) (*charsheet.Character, error) {
	if characterID == 0 {
		return r.Selected()
	}
	return r.Select(characterID)
}
