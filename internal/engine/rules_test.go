package engine_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-charsheet/internal/engine"
	"github.com/KirkDiggler/rpg-charsheet/internal/entities/charsheet"
)

func TestAbilityModifier(t *testing.T) {
	testCases := []struct {
		score    int
		expected int
	}{
		{score: 1, expected: -5},
		{score: 7, expected: -2},
		{score: 8, expected: -1},
		{score: 9, expected: -1},
		{score: 10, expected: 0},
		{score: 11, expected: 0},
		{score: 12, expected: 1},
		{score: 15, expected: 2},
		{score: 20, expected: 5},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, engine.AbilityModifier(tc.score), "score %d", tc.score)
	}
}

func TestApplyAttributeDelta(t *testing.T) {
	t.Run("new character increments strength", func(t *testing.T) {
		c := charsheet.NewDefaultCharacter(1)

		updated, applied := engine.ApplyAttributeDelta(c, charsheet.AttributeStrength, 1)

		assert.True(t, applied)
		assert.Equal(t, 11, updated.Attributes[charsheet.AttributeStrength])
		assert.Equal(t, 61, updated.AttributeTotal())
		assert.Equal(t, 10, c.Attributes[charsheet.AttributeStrength], "input is not mutated")
	})

	t.Run("increments stop at the cap", func(t *testing.T) {
		c := charsheet.NewDefaultCharacter(1)
		for i := 0; i < 10; i++ {
			var applied bool
			c, applied = engine.ApplyAttributeDelta(c, charsheet.AttributeDexterity, 1)
			require.True(t, applied)
		}
		require.Equal(t, charsheet.MaxAttributeTotal, c.AttributeTotal())

		for _, attr := range charsheet.Default().Attributes() {
			updated, applied := engine.ApplyAttributeDelta(c, attr, 1)
			assert.False(t, applied, attr)
			assert.Equal(t, c, updated)
		}
	})

	t.Run("value cannot go negative", func(t *testing.T) {
		c := charsheet.NewDefaultCharacter(1)
		c.Attributes[charsheet.AttributeCharisma] = 0

		updated, applied := engine.ApplyAttributeDelta(c, charsheet.AttributeCharisma, -1)

		assert.False(t, applied)
		assert.Equal(t, 0, updated.Attributes[charsheet.AttributeCharisma])
	})

	t.Run("decrement over the cap is still rejected", func(t *testing.T) {
		c := charsheet.NewDefaultCharacter(1)
		c.Attributes[charsheet.AttributeStrength] = 22 // total 72, loaded from storage

		_, applied := engine.ApplyAttributeDelta(c, charsheet.AttributeStrength, -1)

		assert.False(t, applied)
	})
}

func TestApplyAttributeDeltaNeverExceedsCap(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	attrs := charsheet.Default().Attributes()

	c := charsheet.NewDefaultCharacter(1)
	for i := 0; i < 2000; i++ {
		attr := attrs[rng.Intn(len(attrs))]
		delta := rng.Intn(7) - 3

		before := c
		updated, applied := engine.ApplyAttributeDelta(c, attr, delta)
		if !applied {
			require.Equal(t, before, updated)
		}
		c = updated

		require.LessOrEqual(t, c.AttributeTotal(), charsheet.MaxAttributeTotal)
		for _, a := range attrs {
			require.GreaterOrEqual(t, c.Attributes[a], 0)
		}
	}
}

func TestApplySkillDelta(t *testing.T) {
	t.Run("budget of ten at intelligence ten", func(t *testing.T) {
		c := charsheet.NewDefaultCharacter(1)
		require.Equal(t, 10, engine.SkillBudget(c))

		for i := 0; i < 10; i++ {
			var applied bool
			c, applied = engine.ApplySkillDelta(c, "Arcana", 1)
			require.True(t, applied)
		}
		assert.Equal(t, 0, engine.AvailableSkillPoints(c))

		updated, applied := engine.ApplySkillDelta(c, "Stealth", 1)
		assert.False(t, applied)
		assert.Equal(t, c, updated)

		updated, applied = engine.ApplySkillDelta(c, "Arcana", -1)
		assert.True(t, applied)
		assert.Equal(t, 9, updated.Skills["Arcana"])
		assert.Equal(t, 1, engine.AvailableSkillPoints(updated))
	})

	t.Run("intelligence raises the budget", func(t *testing.T) {
		c := charsheet.NewDefaultCharacter(1)
		c.Attributes[charsheet.AttributeIntelligence] = 14

		assert.Equal(t, 18, engine.SkillBudget(c))
	})

	t.Run("decrement floors at zero", func(t *testing.T) {
		c := charsheet.NewDefaultCharacter(1)

		updated, applied := engine.ApplySkillDelta(c, "History", -3)

		assert.True(t, applied)
		assert.Equal(t, 0, updated.Skills["History"])
	})

	t.Run("zero delta is a no-op", func(t *testing.T) {
		c := charsheet.NewDefaultCharacter(1)

		updated, applied := engine.ApplySkillDelta(c, "History", 0)

		assert.True(t, applied)
		assert.Equal(t, c, updated)
	})

	t.Run("no budget at low intelligence", func(t *testing.T) {
		c := charsheet.NewDefaultCharacter(1)
		c.Attributes[charsheet.AttributeIntelligence] = 4 // modifier -3, budget -2

		_, applied := engine.ApplySkillDelta(c, "Nature", 1)

		assert.False(t, applied)
	})

	t.Run("huge increment cannot wrap negative", func(t *testing.T) {
		c := charsheet.NewDefaultCharacter(1)
		c.Skills["Arcana"] = 1

		updated, applied := engine.ApplySkillDelta(c, "Arcana", math.MaxInt)

		assert.False(t, applied)
		assert.Equal(t, c, updated)
		assert.Equal(t, 9, engine.AvailableSkillPoints(updated))
	})

	t.Run("increment up to the spent bound is not pre-checked against the budget", func(t *testing.T) {
		c := charsheet.NewDefaultCharacter(1)
		c.Skills["Arcana"] = 1

		updated, applied := engine.ApplySkillDelta(c, "Arcana", engine.MaxSkillPointsSpent-1)
		require.True(t, applied)
		assert.Equal(t, engine.MaxSkillPointsSpent, updated.Skills["Arcana"])
		assert.Less(t, engine.AvailableSkillPoints(updated), 0)

		_, applied = engine.ApplySkillDelta(c, "Stealth", engine.MaxSkillPointsSpent)
		assert.False(t, applied)
	})

	t.Run("huge decrement floors at zero", func(t *testing.T) {
		c := charsheet.NewDefaultCharacter(1)
		c.Skills["Arcana"] = 4

		updated, applied := engine.ApplySkillDelta(c, "Arcana", math.MinInt)

		assert.True(t, applied)
		assert.Equal(t, 0, updated.Skills["Arcana"])
	})
}

func TestApplyAttributeDeltaExtremeDeltas(t *testing.T) {
	c := charsheet.NewDefaultCharacter(1)

	for _, delta := range []int{math.MaxInt, math.MinInt, math.MaxInt - 50, math.MinInt + 5} {
		updated, applied := engine.ApplyAttributeDelta(c, charsheet.AttributeStrength, delta)

		assert.False(t, applied, "delta %d", delta)
		assert.Equal(t, c, updated)
	}

	updated, applied := engine.ApplyAttributeDelta(c, charsheet.AttributeStrength, -10)
	assert.True(t, applied)
	assert.Equal(t, 0, updated.Attributes[charsheet.AttributeStrength])
}

func TestApplySkillDeltaUnitStepsStayInBudget(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	skills := charsheet.Default().Skills()

	c := charsheet.NewDefaultCharacter(1)
	for i := 0; i < 2000; i++ {
		skill := skills[rng.Intn(len(skills))].Name
		delta := 1
		if rng.Intn(3) == 0 {
			delta = -1
		}

		c, _ = engine.ApplySkillDelta(c, skill, delta)

		require.GreaterOrEqual(t, engine.AvailableSkillPoints(c), 0)
		require.GreaterOrEqual(t, c.Skills[skill], 0)
	}
}

func TestMeetsRequirements(t *testing.T) {
	barbarian, ok := charsheet.Default().Class("Barbarian")
	require.True(t, ok)

	c := charsheet.NewDefaultCharacter(1)
	c.Attributes[charsheet.AttributeStrength] = 14
	c.Attributes[charsheet.AttributeDexterity] = 9
	assert.True(t, engine.MeetsRequirements(c, barbarian))

	c.Attributes[charsheet.AttributeStrength] = 13
	assert.False(t, engine.MeetsRequirements(c, barbarian))

	c.Attributes[charsheet.AttributeStrength] = 15
	c.Attributes[charsheet.AttributeWisdom] = 8
	assert.False(t, engine.MeetsRequirements(c, barbarian), "every attribute must meet its threshold")
}

func TestResolveCheck(t *testing.T) {
	result := engine.ResolveCheck("Athletics", 15, 2, 3, 18)

	assert.Equal(t, 20, result.Total)
	assert.Equal(t, engine.OutcomeSuccess, result.Outcome)
	assert.True(t, result.Succeeded())
	assert.Equal(t, "Roll: 15 + Skill Points: 3 + Skill Modifier: 2 = Total: 20 vs DC: 18", result.Breakdown)

	exact := engine.ResolveCheck("Athletics", 10, 0, 0, 10)
	assert.Equal(t, engine.OutcomeSuccess, exact.Outcome, "meeting the DC succeeds")

	miss := engine.ResolveCheck("Athletics", 1, -1, 0, 5)
	assert.Equal(t, 0, miss.Total)
	assert.Equal(t, engine.OutcomeFailure, miss.Outcome)
}

func TestSummarize(t *testing.T) {
	c := charsheet.NewDefaultCharacter(1)
	c.Attributes[charsheet.AttributeIntelligence] = 12
	c.Skills["Arcana"] = 5

	summary := engine.Summarize(c)

	assert.Equal(t, 62, summary.AttributeTotal)
	assert.Equal(t, 70, summary.MaxAttributeTotal)
	assert.Equal(t, 1, summary.Modifiers[charsheet.AttributeIntelligence])
	assert.Equal(t, 0, summary.Modifiers[charsheet.AttributeStrength])
	assert.Equal(t, 14, summary.SkillBudget)
	assert.Equal(t, 5, summary.SkillPointsSpent)
	assert.Equal(t, 9, summary.SkillPointsAvailable)
}
