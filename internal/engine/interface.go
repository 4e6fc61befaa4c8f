// Package engine defines the character sheet rules: point-buy attribute
// allocation, skill point allocation, class eligibility and skill checks.
package engine

import (
	"context"
)

// Engine applies the rules to character snapshots. No method mutates the
// character it is given; changed state comes back in the output.
type Engine interface {
	// Allocation. A change the budget does not allow is reported through
	// Applied=false, not an error.
	AdjustAttribute(ctx context.Context, input *AdjustAttributeInput) (*AdjustAttributeOutput, error)
	AdjustSkill(ctx context.Context, input *AdjustSkillInput) (*AdjustSkillOutput, error)

	// Eligibility
	IsEligible(ctx context.Context, input *IsEligibleInput) (*IsEligibleOutput, error)
	EvaluateClasses(ctx context.Context, input *EvaluateClassesInput) (*EvaluateClassesOutput, error)

	// Skill checks
	PerformSkillCheck(ctx context.Context, input *PerformSkillCheckInput) (*PerformSkillCheckOutput, error)

	// Derived values
	Summarize(ctx context.Context, input *SummarizeInput) (*SummarizeOutput, error)
}
