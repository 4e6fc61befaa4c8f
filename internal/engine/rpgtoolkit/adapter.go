// Package rpgtoolkit provides the concrete implementation of the engine interface using rpg-toolkit modules.
package rpgtoolkit

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-charsheet/internal/engine"
	"github.com/KirkDiggler/rpg-charsheet/internal/entities/charsheet"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

// Adapter implements the engine.Engine interface using rpg-toolkit
type Adapter struct {
	diceRoller  dice.Roller
	definitions *charsheet.Definitions
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	// DiceRoller draws skill check rolls. Tests pass a scripted roller.
	DiceRoller dice.Roller
	// Definitions defaults to the embedded rule tables
	Definitions *charsheet.Definitions
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	return nil
}

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	defs := cfg.Definitions
	if defs == nil {
		defs = charsheet.Default()
	}

	return &Adapter{
		diceRoller:  cfg.DiceRoller,
		definitions: defs,
	}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// AdjustAttribute applies a point-buy change within the attribute cap
func (a *Adapter) AdjustAttribute(
	ctx context.Context,
	input *engine.AdjustAttributeInput,
) (*engine.AdjustAttributeOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if !a.definitions.HasAttribute(input.Attribute) {
		return nil, errors.NotFoundf("attribute %s not found", input.Attribute)
	}

	updated, applied := engine.ApplyAttributeDelta(input.Character, input.Attribute, input.Delta)
	if !applied {
		slog.DebugContext(ctx, "attribute change rejected",
			"character_id", input.Character.ID,
			"attribute", input.Attribute,
			"delta", input.Delta,
			"total", input.Character.AttributeTotal())
	}

	return &engine.AdjustAttributeOutput{
		Character: updated,
		Applied:   applied,
	}, nil
}

// AdjustSkill applies a skill point change within the Intelligence budget
func (a *Adapter) AdjustSkill(
	ctx context.Context,
	input *engine.AdjustSkillInput,
) (*engine.AdjustSkillOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if _, ok := a.definitions.Skill(input.Skill); !ok {
		return nil, errors.NotFoundf("skill %s not found", input.Skill)
	}

	updated, applied := engine.ApplySkillDelta(input.Character, input.Skill, input.Delta)
	if !applied {
		slog.DebugContext(ctx, "skill change rejected",
			"character_id", input.Character.ID,
			"skill", input.Skill,
			"delta", input.Delta,
			"available", engine.AvailableSkillPoints(input.Character))
	}

	return &engine.AdjustSkillOutput{
		Character: updated,
		Applied:   applied,
	}, nil
}

// IsEligible checks a character against one class
func (a *Adapter) IsEligible(_ context.Context, input *engine.IsEligibleInput) (*engine.IsEligibleOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	class, ok := a.definitions.Class(input.ClassName)
	if !ok {
		return nil, errors.NotFoundf("class %s not found", input.ClassName)
	}

	return &engine.IsEligibleOutput{
		Class:    class,
		Eligible: engine.MeetsRequirements(input.Character, class),
	}, nil
}

// EvaluateClasses checks a character against every class
func (a *Adapter) EvaluateClasses(
	_ context.Context,
	input *engine.EvaluateClassesInput,
) (*engine.EvaluateClassesOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	classes := a.definitions.Classes()
	results := make([]engine.ClassEligibility, 0, len(classes))
	for _, class := range classes {
		results = append(results, engine.ClassEligibility{
			Class:    class,
			Eligible: engine.MeetsRequirements(input.Character, class),
		})
	}

	return &engine.EvaluateClassesOutput{Classes: results}, nil
}

// PerformSkillCheck rolls a d20 and adds the governing attribute's modifier
// and the skill's points
func (a *Adapter) PerformSkillCheck(
	ctx context.Context,
	input *engine.PerformSkillCheckInput,
) (*engine.PerformSkillCheckOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	skill, ok := a.definitions.Skill(input.Skill)
	if !ok {
		return nil, errors.NotFoundf("skill %s not found", input.Skill)
	}

	roll, err := a.diceRoller.Roll(engine.CheckDieSize)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll d%d", engine.CheckDieSize)
	}
	if roll < 1 || roll > engine.CheckDieSize {
		return nil, errors.Internalf("roller returned %d for a d%d", roll, engine.CheckDieSize)
	}

	modifier := engine.AbilityModifier(input.Character.Attributes[skill.Attribute])
	result := engine.ResolveCheck(skill.Name, roll, modifier, input.Character.Skills[skill.Name], input.DifficultyClass)

	slog.DebugContext(ctx, "skill check resolved",
		"character_id", input.Character.ID,
		"skill", skill.Name,
		"roll", result.Roll,
		"total", result.Total,
		"dc", result.DC,
		"outcome", result.Outcome)

	return &engine.PerformSkillCheckOutput{Result: result}, nil
}

// Summarize returns the derived values for a character
func (a *Adapter) Summarize(_ context.Context, input *engine.SummarizeInput) (*engine.SummarizeOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	return &engine.SummarizeOutput{Summary: engine.Summarize(input.Character)}, nil
}
