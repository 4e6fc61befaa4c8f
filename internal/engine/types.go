package engine

import (
	"github.com/KirkDiggler/rpg-charsheet/internal/entities/charsheet"
)

// Outcome is the result of a skill check
type Outcome string

// Outcome constants
const (
	OutcomeSuccess Outcome = "Success"
	OutcomeFailure Outcome = "Failure"
)

// CheckResult is one resolved skill check
type CheckResult struct {
	Skill       string
	Roll        int
	Modifier    int
	SkillPoints int
	Total       int
	DC          int
	Outcome     Outcome
	Breakdown   string
}

// Succeeded reports whether the check met the DC
func (r *CheckResult) Succeeded() bool {
	return r.Outcome == OutcomeSuccess
}

// Summary holds the values derived from a character's stored scores
type Summary struct {
	AttributeTotal       int
	MaxAttributeTotal    int
	Modifiers            map[charsheet.Attribute]int
	SkillBudget          int
	SkillPointsSpent     int
	SkillPointsAvailable int
}

// ClassEligibility pairs a class with whether a character qualifies for it
type ClassEligibility struct {
	Class    charsheet.ClassDefinition
	Eligible bool
}

// AdjustAttributeInput requests a point-buy change
type AdjustAttributeInput struct {
	Character *charsheet.Character
	Attribute charsheet.Attribute
	Delta     int
}

// AdjustAttributeOutput carries the resulting character. When Applied is
// false the character is an unchanged copy of the input.
type AdjustAttributeOutput struct {
	Character *charsheet.Character
	Applied   bool
}

// AdjustSkillInput requests a skill point change
type AdjustSkillInput struct {
	Character *charsheet.Character
	Skill     string
	Delta     int
}

// AdjustSkillOutput carries the resulting character
type AdjustSkillOutput struct {
	Character *charsheet.Character
	Applied   bool
}

// IsEligibleInput names the class to check
type IsEligibleInput struct {
	Character *charsheet.Character
	ClassName string
}

// IsEligibleOutput contains the eligibility result
type IsEligibleOutput struct {
	Class    charsheet.ClassDefinition
	Eligible bool
}

// EvaluateClassesInput contains the character to evaluate against every class
type EvaluateClassesInput struct {
	Character *charsheet.Character
}

// EvaluateClassesOutput lists every class in display order
type EvaluateClassesOutput struct {
	Classes []ClassEligibility
}

// PerformSkillCheckInput describes a single check
type PerformSkillCheckInput struct {
	Character       *charsheet.Character
	Skill           string
	DifficultyClass int
}

// PerformSkillCheckOutput contains the resolved check
type PerformSkillCheckOutput struct {
	Result *CheckResult
}

// SummarizeInput contains the character to summarize
type SummarizeInput struct {
	Character *charsheet.Character
}

// SummarizeOutput contains the derived values
type SummarizeOutput struct {
	Summary *Summary
}
