package rpgtoolkit

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-charsheet/internal/engine"
	"github.com/KirkDiggler/rpg-charsheet/internal/entities/charsheet"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

// scriptedRoller returns its values in order, then repeats the last one
type scriptedRoller struct {
	values []int
	err    error
	calls  []int
}

func (r *scriptedRoller) Roll(size int) (int, error) {
	r.calls = append(r.calls, size)
	if r.err != nil {
		return 0, r.err
	}
	v := r.values[0]
	if len(r.values) > 1 {
		r.values = r.values[1:]
	}
	return v, nil
}

func (r *scriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func TestNewAdapter(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		adapter, err := NewAdapter(nil)
		assert.Error(t, err)
		assert.Nil(t, adapter)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "config is required")
	})

	t.Run("missing dice roller", func(t *testing.T) {
		adapter, err := NewAdapter(&AdapterConfig{})
		assert.Error(t, err)
		assert.Nil(t, adapter)
		assert.Contains(t, err.Error(), "dice roller is required")
	})

	t.Run("valid config uses embedded definitions", func(t *testing.T) {
		adapter, err := NewAdapter(&AdapterConfig{DiceRoller: &scriptedRoller{values: []int{10}}})
		assert.NoError(t, err)
		assert.Equal(t, charsheet.Default(), adapter.definitions)
	})
}

type AdapterTestSuite struct {
	suite.Suite
	roller  *scriptedRoller
	adapter *Adapter
	ctx     context.Context
}

func TestAdapterSuite(t *testing.T) {
	suite.Run(t, new(AdapterTestSuite))
}

func (s *AdapterTestSuite) SetupTest() {
	s.roller = &scriptedRoller{values: []int{15}}
	adapter, err := NewAdapter(&AdapterConfig{DiceRoller: s.roller})
	s.Require().NoError(err)
	s.adapter = adapter
	s.ctx = context.Background()
}

func (s *AdapterTestSuite) TestAdjustAttribute() {
	c := charsheet.NewDefaultCharacter(1)

	out, err := s.adapter.AdjustAttribute(s.ctx, &engine.AdjustAttributeInput{
		Character: c,
		Attribute: charsheet.AttributeStrength,
		Delta:     1,
	})
	s.Require().NoError(err)
	s.True(out.Applied)
	s.Equal(11, out.Character.Attributes[charsheet.AttributeStrength])

	_, err = s.adapter.AdjustAttribute(s.ctx, &engine.AdjustAttributeInput{
		Character: c,
		Attribute: "Luck",
		Delta:     1,
	})
	s.True(errors.IsNotFound(err))

	_, err = s.adapter.AdjustAttribute(s.ctx, &engine.AdjustAttributeInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *AdapterTestSuite) TestAdjustSkill() {
	c := charsheet.NewDefaultCharacter(1)

	out, err := s.adapter.AdjustSkill(s.ctx, &engine.AdjustSkillInput{
		Character: c,
		Skill:     "Perception",
		Delta:     1,
	})
	s.Require().NoError(err)
	s.True(out.Applied)
	s.Equal(1, out.Character.Skills["Perception"])

	_, err = s.adapter.AdjustSkill(s.ctx, &engine.AdjustSkillInput{
		Character: c,
		Skill:     "Juggling",
		Delta:     1,
	})
	s.True(errors.IsNotFound(err))
}

func (s *AdapterTestSuite) TestIsEligible() {
	c := charsheet.NewDefaultCharacter(1)
	c.Attributes[charsheet.AttributeStrength] = 14

	out, err := s.adapter.IsEligible(s.ctx, &engine.IsEligibleInput{Character: c, ClassName: "Barbarian"})
	s.Require().NoError(err)
	s.True(out.Eligible)
	s.Equal("Barbarian", out.Class.Name)

	out, err = s.adapter.IsEligible(s.ctx, &engine.IsEligibleInput{Character: c, ClassName: "Wizard"})
	s.Require().NoError(err)
	s.False(out.Eligible)

	_, err = s.adapter.IsEligible(s.ctx, &engine.IsEligibleInput{Character: c, ClassName: "Paladin"})
	s.True(errors.IsNotFound(err))
}

func (s *AdapterTestSuite) TestEligibilityFollowsAttributeChanges() {
	c := charsheet.NewDefaultCharacter(1)
	c.Attributes[charsheet.AttributeStrength] = 14
	c.Attributes[charsheet.AttributeDexterity] = 9 // keep room under the cap

	s.Run("class requiring fifteen strength", func() {
		class := charsheet.ClassDefinition{
			Name: "Champion",
			Requirements: map[charsheet.Attribute]int{
				charsheet.AttributeStrength: 15,
			},
		}
		s.False(engine.MeetsRequirements(c, class))

		adjusted, err := s.adapter.AdjustAttribute(s.ctx, &engine.AdjustAttributeInput{
			Character: c,
			Attribute: charsheet.AttributeStrength,
			Delta:     1,
		})
		s.Require().NoError(err)
		s.Require().True(adjusted.Applied)
		s.True(engine.MeetsRequirements(adjusted.Character, class))
	})
}

func (s *AdapterTestSuite) TestEvaluateClasses() {
	c := charsheet.NewDefaultCharacter(1)
	c.Attributes[charsheet.AttributeCharisma] = 14

	out, err := s.adapter.EvaluateClasses(s.ctx, &engine.EvaluateClassesInput{Character: c})
	s.Require().NoError(err)
	s.Require().Len(out.Classes, 3)

	byName := make(map[string]bool)
	for _, ce := range out.Classes {
		byName[ce.Class.Name] = ce.Eligible
	}
	s.False(byName["Barbarian"])
	s.False(byName["Wizard"])
	s.True(byName["Bard"])
}

func (s *AdapterTestSuite) TestPerformSkillCheck() {
	c := charsheet.NewDefaultCharacter(1)
	c.Attributes[charsheet.AttributeStrength] = 15 // modifier 2
	c.Skills["Athletics"] = 3

	out, err := s.adapter.PerformSkillCheck(s.ctx, &engine.PerformSkillCheckInput{
		Character:       c,
		Skill:           "Athletics",
		DifficultyClass: 18,
	})
	s.Require().NoError(err)

	result := out.Result
	s.Equal(15, result.Roll)
	s.Equal(2, result.Modifier)
	s.Equal(3, result.SkillPoints)
	s.Equal(20, result.Total)
	s.Equal(engine.OutcomeSuccess, result.Outcome)
	s.Equal([]int{20}, s.roller.calls)

	s.Equal(3, c.Skills["Athletics"], "checks do not mutate the character")
}

func (s *AdapterTestSuite) TestPerformSkillCheckRollRange() {
	c := charsheet.NewDefaultCharacter(1)
	for roll := 1; roll <= 20; roll++ {
		s.roller.values = []int{roll}
		out, err := s.adapter.PerformSkillCheck(s.ctx, &engine.PerformSkillCheckInput{
			Character:       c,
			Skill:           "Stealth",
			DifficultyClass: 11,
		})
		s.Require().NoError(err)
		s.Equal(roll, out.Result.Total)
		s.Equal(roll >= 11, out.Result.Succeeded())
	}
}

func (s *AdapterTestSuite) TestPerformSkillCheckErrors() {
	c := charsheet.NewDefaultCharacter(1)

	s.Run("unknown skill", func() {
		_, err := s.adapter.PerformSkillCheck(s.ctx, &engine.PerformSkillCheckInput{Character: c, Skill: "Juggling"})
		s.True(errors.IsNotFound(err))
	})

	s.Run("roller failure", func() {
		s.roller.err = fmt.Errorf("entropy exhausted")
		defer func() { s.roller.err = nil }()

		_, err := s.adapter.PerformSkillCheck(s.ctx, &engine.PerformSkillCheckInput{Character: c, Skill: "Stealth"})
		s.True(errors.IsInternal(err))
	})

	s.Run("roll out of range", func() {
		s.roller.values = []int{21}
		_, err := s.adapter.PerformSkillCheck(s.ctx, &engine.PerformSkillCheckInput{Character: c, Skill: "Stealth"})
		s.True(errors.IsInternal(err))
	})
}

func (s *AdapterTestSuite) TestSummarize() {
	out, err := s.adapter.Summarize(s.ctx, &engine.SummarizeInput{Character: charsheet.NewDefaultCharacter(1)})
	s.Require().NoError(err)
	s.Equal(60, out.Summary.AttributeTotal)
	s.Equal(10, out.Summary.SkillPointsAvailable)
}
