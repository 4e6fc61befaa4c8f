package v1alpha1_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	charsheetv1alpha1 "github.com/KirkDiggler/rpg-charsheet/internal/api/charsheet/v1alpha1"
	"github.com/KirkDiggler/rpg-charsheet/internal/engine"
	"github.com/KirkDiggler/rpg-charsheet/internal/entities/charsheet"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/handlers/charsheet/v1alpha1"
	"github.com/KirkDiggler/rpg-charsheet/internal/services/character"
	charactermock "github.com/KirkDiggler/rpg-charsheet/internal/services/character/mock"
)

const testPlayerID = "player_123"

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *charactermock.MockService
	handler     *v1alpha1.Handler
	ctx         context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = charactermock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CharacterService: s.mockService,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestGetCharacter() {
	c := charsheet.NewDefaultCharacter(2)
	c.Attributes[charsheet.AttributeStrength] = 14

	s.mockService.EXPECT().
		GetCharacter(s.ctx, &character.GetCharacterInput{PlayerID: testPlayerID, CharacterID: 2}).
		Return(&character.GetCharacterOutput{
			Character: c,
			Summary:   engine.Summarize(c),
		}, nil)

	resp, err := s.handler.GetCharacter(s.ctx, &charsheetv1alpha1.GetCharacterRequest{
		PlayerId:    testPlayerID,
		CharacterId: 2,
	})
	s.Require().NoError(err)
	s.Equal(int32(2), resp.Character.Id)
	s.Equal(int32(14), resp.Character.Attributes["Strength"])
	s.Len(resp.Character.Skills, 18)
	s.Equal(int32(64), resp.Summary.AttributeTotal)
	s.Equal(int32(2), resp.Summary.Modifiers["Strength"])
}

func (s *HandlerTestSuite) TestGetCharacterSaturatesOutOfRangeValues() {
	c := charsheet.NewDefaultCharacter(1)
	c.Skills["Arcana"] = 1 << 40

	s.mockService.EXPECT().
		GetCharacter(s.ctx, gomock.Any()).
		Return(&character.GetCharacterOutput{
			Character: c,
			Summary:   engine.Summarize(c),
		}, nil)

	resp, err := s.handler.GetCharacter(s.ctx, &charsheetv1alpha1.GetCharacterRequest{PlayerId: testPlayerID})
	s.Require().NoError(err)
	s.Equal(int32(math.MaxInt32), resp.Character.Skills["Arcana"])
	s.Equal(int32(math.MaxInt32), resp.Summary.SkillPointsSpent)
	s.Equal(int32(math.MinInt32), resp.Summary.SkillPointsAvailable)
}

func (s *HandlerTestSuite) TestGetCharacterNotFound() {
	s.mockService.EXPECT().
		GetCharacter(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("character 9 not found").WithMeta("character_id", 9))

	_, err := s.handler.GetCharacter(s.ctx, &charsheetv1alpha1.GetCharacterRequest{
		PlayerId:    testPlayerID,
		CharacterId: 9,
	})
	s.Require().Error(err)
	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(codes.NotFound, st.Code())
	s.Equal("character 9 not found", st.Message())
}

func (s *HandlerTestSuite) TestRequestValidation() {
	testCases := []struct {
		name string
		call func() error
	}{
		{"list without player", func() error {
			_, err := s.handler.ListCharacters(s.ctx, &charsheetv1alpha1.ListCharactersRequest{})
			return err
		}},
		{"select without id", func() error {
			_, err := s.handler.SelectCharacter(s.ctx, &charsheetv1alpha1.SelectCharacterRequest{PlayerId: testPlayerID})
			return err
		}},
		{"adjust attribute without attribute", func() error {
			_, err := s.handler.AdjustAttribute(s.ctx, &charsheetv1alpha1.AdjustAttributeRequest{PlayerId: testPlayerID, Delta: 1})
			return err
		}},
		{"adjust skill without skill", func() error {
			_, err := s.handler.AdjustSkill(s.ctx, &charsheetv1alpha1.AdjustSkillRequest{PlayerId: testPlayerID, Delta: 1})
			return err
		}},
		{"eligibility without class", func() error {
			_, err := s.handler.CheckEligibility(s.ctx, &charsheetv1alpha1.CheckEligibilityRequest{PlayerId: testPlayerID})
			return err
		}},
		{"check without skill", func() error {
			_, err := s.handler.PerformSkillCheck(s.ctx, &charsheetv1alpha1.PerformSkillCheckRequest{PlayerId: testPlayerID})
			return err
		}},
		{"save without player", func() error {
			_, err := s.handler.SaveRoster(s.ctx, &charsheetv1alpha1.SaveRosterRequest{})
			return err
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.call()
			s.Equal(codes.InvalidArgument, status.Code(err))
		})
	}
}

func (s *HandlerTestSuite) TestAdjustAttribute() {
	c := charsheet.NewDefaultCharacter(1)

	s.mockService.EXPECT().
		AdjustAttribute(s.ctx, &character.AdjustAttributeInput{
			PlayerID:  testPlayerID,
			Attribute: charsheet.AttributeDexterity,
			Delta:     1,
		}).
		Return(&character.AdjustAttributeOutput{
			Character: c,
			Applied:   false,
			Summary:   engine.Summarize(c),
		}, nil)

	resp, err := s.handler.AdjustAttribute(s.ctx, &charsheetv1alpha1.AdjustAttributeRequest{
		PlayerId:  testPlayerID,
		Attribute: "Dexterity",
		Delta:     1,
	})
	s.Require().NoError(err)
	s.False(resp.Applied)
	s.Equal(int32(10), resp.Character.Attributes["Dexterity"])
}

func (s *HandlerTestSuite) TestAdjustSkill() {
	c := charsheet.NewDefaultCharacter(1)
	c.Skills["Stealth"] = 1

	s.mockService.EXPECT().
		AdjustSkill(s.ctx, &character.AdjustSkillInput{
			PlayerID: testPlayerID,
			Skill:    "Stealth",
			Delta:    1,
		}).
		Return(&character.AdjustSkillOutput{
			Character: c,
			Applied:   true,
			Summary:   engine.Summarize(c),
		}, nil)

	resp, err := s.handler.AdjustSkill(s.ctx, &charsheetv1alpha1.AdjustSkillRequest{
		PlayerId: testPlayerID,
		Skill:    "Stealth",
		Delta:    1,
	})
	s.Require().NoError(err)
	s.True(resp.Applied)
	s.Equal(int32(9), resp.Summary.SkillPointsAvailable)
}

func (s *HandlerTestSuite) TestPerformSkillCheck() {
	result := engine.ResolveCheck("Athletics", 15, 2, 3, 18)

	s.mockService.EXPECT().
		PerformSkillCheck(s.ctx, &character.PerformSkillCheckInput{
			PlayerID:        testPlayerID,
			Skill:           "Athletics",
			DifficultyClass: 18,
		}).
		Return(&character.PerformSkillCheckOutput{CharacterID: 1, Result: result}, nil)

	resp, err := s.handler.PerformSkillCheck(s.ctx, &charsheetv1alpha1.PerformSkillCheckRequest{
		PlayerId:        testPlayerID,
		Skill:           "Athletics",
		DifficultyClass: 18,
	})
	s.Require().NoError(err)
	s.Equal(int32(1), resp.CharacterId)
	s.Equal(int32(20), resp.Result.Total)
	s.True(resp.Result.Success)
	s.Equal("Roll: 15 + Skill Points: 3 + Skill Modifier: 2 = Total: 20 vs DC: 18", resp.Result.Breakdown)
}

func (s *HandlerTestSuite) TestListClassEligibility() {
	defs := charsheet.Default()
	classes := make([]engine.ClassEligibility, 0)
	for _, class := range defs.Classes() {
		classes = append(classes, engine.ClassEligibility{Class: class, Eligible: class.Name == "Bard"})
	}

	s.mockService.EXPECT().
		ListClassEligibility(s.ctx, &character.ListClassEligibilityInput{PlayerID: testPlayerID}).
		Return(&character.ListClassEligibilityOutput{Classes: classes}, nil)

	resp, err := s.handler.ListClassEligibility(s.ctx, &charsheetv1alpha1.ListClassEligibilityRequest{PlayerId: testPlayerID})
	s.Require().NoError(err)
	s.Require().Len(resp.Classes, 3)
	for _, ce := range resp.Classes {
		s.Equal(ce.Class.Name == "Bard", ce.Eligible)
		s.Len(ce.Class.Requirements, 6)
	}
}

func (s *HandlerTestSuite) TestSaveRosterUnavailable() {
	s.mockService.EXPECT().
		SaveRoster(s.ctx, &character.SaveRosterInput{PlayerID: testPlayerID}).
		Return(nil, errors.Unavailable("roster API returned 503 Service Unavailable"))

	_, err := s.handler.SaveRoster(s.ctx, &charsheetv1alpha1.SaveRosterRequest{PlayerId: testPlayerID})
	s.Equal(codes.Unavailable, status.Code(err))
}

func (s *HandlerTestSuite) TestLoadRoster() {
	savedAt := time.Unix(1700000000, 0)
	s.mockService.EXPECT().
		LoadRoster(s.ctx, &character.LoadRosterInput{PlayerID: testPlayerID}).
		Return(&character.LoadRosterOutput{
			Roster:  charsheet.DefaultRoster(),
			SavedAt: savedAt,
		}, nil)

	resp, err := s.handler.LoadRoster(s.ctx, &charsheetv1alpha1.LoadRosterRequest{PlayerId: testPlayerID})
	s.Require().NoError(err)
	s.Len(resp.Characters, 1)
	s.Equal(int32(1), resp.SelectedId)
	s.Equal(int64(1700000000), resp.SavedAt)
}

func (s *HandlerTestSuite) TestListDefinitions() {
	defs := charsheet.Default()
	s.mockService.EXPECT().
		ListDefinitions(s.ctx, &character.ListDefinitionsInput{}).
		Return(&character.ListDefinitionsOutput{
			Attributes: defs.Attributes(),
			Skills:     defs.Skills(),
			Classes:    defs.Classes(),
		}, nil)

	resp, err := s.handler.ListDefinitions(s.ctx, &charsheetv1alpha1.ListDefinitionsRequest{})
	s.Require().NoError(err)
	s.Equal("Strength", resp.Attributes[0])
	s.Len(resp.Skills, 18)
	s.Len(resp.Classes, 3)
}
