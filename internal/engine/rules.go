package engine

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities/charsheet"
)

const (
	// BaseSkillPoints is the skill budget at an Intelligence modifier of zero
	BaseSkillPoints = 10

	// SkillPointsPerModifier is added to the budget per Intelligence modifier point
	SkillPointsPerModifier = 4

	// CheckDieSize is the die rolled for a skill check
	CheckDieSize = 20

	// MaxSkillPointsSpent bounds the spent total so it and any check total
	// built from it stay within the API's 32-bit fields
	MaxSkillPointsSpent = math.MaxInt32
)

// AbilityModifier is floor((score - 10) / 2)
func AbilityModifier(score int) int {
	diff := score - charsheet.BaselineAttribute
	mod := diff / 2
	// Go truncates toward zero; odd negatives need one more step down
	if diff < 0 && diff%2 != 0 {
		mod--
	}
	return mod
}

// SkillBudget is the total skill points a character may allocate
func SkillBudget(c *charsheet.Character) int {
	return BaseSkillPoints + SkillPointsPerModifier*AbilityModifier(c.Attributes[charsheet.AttributeIntelligence])
}

// AvailableSkillPoints is the budget minus what is already spent. It can be
// negative when Intelligence dropped after points were spent.
func AvailableSkillPoints(c *charsheet.Character) int {
	return SkillBudget(c) - c.SkillPointsSpent()
}

// ApplyAttributeDelta applies delta iff the new total stays within the cap
// and the new value stays non-negative. The cap is checked on decrements too.
func ApplyAttributeDelta(c *charsheet.Character, attr charsheet.Attribute, delta int) (*charsheet.Character, bool) {
	out := c.Clone()

	// Compared against the headroom so a huge delta cannot wrap around
	if delta > charsheet.MaxAttributeTotal-c.AttributeTotal() || delta < -c.Attributes[attr] {
		return out, false
	}

	out.Attributes[attr] = c.Attributes[attr] + delta
	return out, true
}

// ApplySkillDelta applies a skill change one-step-at-a-time: an increment is
// allowed whenever at least one point is available, a decrement always
// succeeds and floors the value at zero, and zero is a no-op.
func ApplySkillDelta(c *charsheet.Character, skill string, delta int) (*charsheet.Character, bool) {
	out := c.Clone()

	switch {
	case delta == 0:
		return out, true
	case delta > 0:
		if AvailableSkillPoints(c) <= 0 {
			return out, false
		}
		if delta > MaxSkillPointsSpent-c.SkillPointsSpent() {
			return out, false
		}
		out.Skills[skill] = c.Skills[skill] + delta
	default:
		out.Skills[skill] = max(0, c.Skills[skill]+delta)
	}

	return out, true
}

// MeetsRequirements reports whether every attribute meets the class threshold
func MeetsRequirements(c *charsheet.Character, class charsheet.ClassDefinition) bool {
	for attr, threshold := range class.Requirements {
		if c.Attributes[attr] < threshold {
			return false
		}
	}
	return true
}

// ResolveCheck totals a roll against a DC
func ResolveCheck(skill string, roll, modifier, skillPoints, dc int) *CheckResult {
	total := roll + modifier + skillPoints

	outcome := OutcomeFailure
	if total >= dc {
		outcome = OutcomeSuccess
	}

	return &CheckResult{
		Skill:       skill,
		Roll:        roll,
		Modifier:    modifier,
		SkillPoints: skillPoints,
		Total:       total,
		DC:          dc,
		Outcome:     outcome,
		Breakdown: fmt.Sprintf("Roll: %d + Skill Points: %d + Skill Modifier: %d = Total: %d vs DC: %d",
			roll, skillPoints, modifier, total, dc),
	}
}

// Summarize computes the derived values shown alongside a sheet
func Summarize(c *charsheet.Character) *Summary {
	mods := make(map[charsheet.Attribute]int, len(c.Attributes))
	for attr, score := range c.Attributes {
		mods[attr] = AbilityModifier(score)
	}

	return &Summary{
		AttributeTotal:       c.AttributeTotal(),
		MaxAttributeTotal:    charsheet.MaxAttributeTotal,
		Modifiers:            mods,
		SkillBudget:          SkillBudget(c),
		SkillPointsSpent:     c.SkillPointsSpent(),
		SkillPointsAvailable: AvailableSkillPoints(c),
	}
}
