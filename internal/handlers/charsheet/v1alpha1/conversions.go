package v1alpha1

import (
	"math"
	"time"

	charsheetv1alpha1 "github.com/KirkDiggler/rpg-charsheet/internal/api/charsheet/v1alpha1"
	"github.com/KirkDiggler/rpg-charsheet/internal/engine"
	"github.com/KirkDiggler/rpg-charsheet/internal/entities/charsheet"
)

func convertCharacterToProto(c *charsheet.Character) *charsheetv1alpha1.Character {
	if c == nil {
		return nil
	}

	attrs := make(map[string]int32, len(c.Attributes))
	for k, v := range c.Attributes {
		attrs[string(k)] = toInt32(v)
	}
	skills := make(map[string]int32, len(c.Skills))
	for k, v := range c.Skills {
		skills[k] = toInt32(v)
	}

	return &charsheetv1alpha1.Character{
		Id:         toInt32(c.ID),
		Attributes: attrs,
		Skills:     skills,
	}
}

func convertCharactersToProto(characters []*charsheet.Character) []*charsheetv1alpha1.Character {
	out := make([]*charsheetv1alpha1.Character, 0, len(characters))
	for _, c := range characters {
		out = append(out, convertCharacterToProto(c))
	}
	return out
}

func convertSummaryToProto(s *engine.Summary) *charsheetv1alpha1.CharacterSummary {
	if s == nil {
		return nil
	}

	modifiers := make(map[string]int32, len(s.Modifiers))
	for k, v := range s.Modifiers {
		modifiers[string(k)] = toInt32(v)
	}

	return &charsheetv1alpha1.CharacterSummary{
		AttributeTotal:       toInt32(s.AttributeTotal),
		MaxAttributeTotal:    toInt32(s.MaxAttributeTotal),
		Modifiers:            modifiers,
		SkillBudget:          toInt32(s.SkillBudget),
		SkillPointsSpent:     toInt32(s.SkillPointsSpent),
		SkillPointsAvailable: toInt32(s.SkillPointsAvailable),
	}
}

func convertClassToProto(class charsheet.ClassDefinition) *charsheetv1alpha1.ClassDefinition {
	reqs := make(map[string]int32, len(class.Requirements))
	for k, v := range class.Requirements {
		reqs[string(k)] = toInt32(v)
	}
	return &charsheetv1alpha1.ClassDefinition{
		Name:         class.Name,
		Requirements: reqs,
	}
}

func convertCheckResultToProto(r *engine.CheckResult) *charsheetv1alpha1.SkillCheckResult {
	if r == nil {
		return nil
	}
	return &charsheetv1alpha1.SkillCheckResult{
		Skill:       r.Skill,
		Roll:        toInt32(r.Roll),
		Modifier:    toInt32(r.Modifier),
		SkillPoints: toInt32(r.SkillPoints),
		Total:       toInt32(r.Total),
		Dc:          toInt32(r.DC),
		Success:     r.Succeeded(),
		Breakdown:   r.Breakdown,
	}
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

// toInt32 saturates instead of wrapping
func toInt32(v int) int32 {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	default:
		return int32(v)
	}
}
