package roster_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities/charsheet"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-charsheet/internal/repositories/roster"
	"github.com/KirkDiggler/rpg-charsheet/internal/testutils"
)

const testPlayerID = "player_456"

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	cleanup func()
	now     time.Time
	repo    roster.Repository
	ctx     context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr, cleanup := testutils.CreateTestRedisServer(s.T(), nil)
	s.mr = mr
	s.cleanup = cleanup
	s.now = time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)

	repo, err := roster.NewRedis(&roster.RedisConfig{
		Client: client,
		Clock:  clock.NewFixed(s.now),
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidation() {
	_, err := roster.NewRedis(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = roster.NewRedis(&roster.RedisConfig{})
	s.True(errors.IsInvalidArgument(err))

	s.Run("defaults to the real clock", func() {
		client, cleanup := testutils.CreateTestRedisClient(s.T())
		defer cleanup()

		repo, err := roster.NewRedis(&roster.RedisConfig{Client: client})
		s.Require().NoError(err)

		saved, err := repo.Save(s.ctx, &roster.SaveInput{PlayerID: testPlayerID})
		s.Require().NoError(err)
		s.False(saved.SavedAt.IsZero())
	})
}

func (s *RedisRepositoryTestSuite) TestLoadMissingKey() {
	out, err := s.repo.Load(s.ctx, &roster.LoadInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.NotNil(out.Characters)
	s.Empty(out.Characters)
	s.True(out.SavedAt.IsZero())
}

func (s *RedisRepositoryTestSuite) TestSaveThenLoad() {
	first := charsheet.NewDefaultCharacter(1)
	first.Attributes[charsheet.AttributeStrength] = 14
	second := charsheet.NewDefaultCharacter(2)
	second.Skills["Stealth"] = 2

	saved, err := s.repo.Save(s.ctx, &roster.SaveInput{
		PlayerID:   testPlayerID,
		Characters: []*charsheet.Character{first, second},
	})
	s.Require().NoError(err)
	s.True(saved.SavedAt.Equal(s.now))

	s.Run("stored under the player key without expiry", func() {
		raw, err := s.mr.Get("roster:" + testPlayerID)
		s.Require().NoError(err)
		s.Equal(time.Duration(0), s.mr.TTL("roster:"+testPlayerID))

		var doc map[string]json.RawMessage
		s.Require().NoError(json.Unmarshal([]byte(raw), &doc))
		s.Contains(doc, "characters")
		s.Contains(doc, "saved_at")
	})

	out, err := s.repo.Load(s.ctx, &roster.LoadInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 2)
	s.Equal(first, out.Characters[0])
	s.Equal(second, out.Characters[1])
	s.True(out.SavedAt.Equal(s.now))
}

func (s *RedisRepositoryTestSuite) TestSaveReplacesExisting() {
	_, err := s.repo.Save(s.ctx, &roster.SaveInput{
		PlayerID:   testPlayerID,
		Characters: []*charsheet.Character{charsheet.NewDefaultCharacter(1), charsheet.NewDefaultCharacter(2)},
	})
	s.Require().NoError(err)

	_, err = s.repo.Save(s.ctx, &roster.SaveInput{
		PlayerID:   testPlayerID,
		Characters: []*charsheet.Character{charsheet.NewDefaultCharacter(5)},
	})
	s.Require().NoError(err)

	out, err := s.repo.Load(s.ctx, &roster.LoadInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 1)
	s.Equal(5, out.Characters[0].ID)
}

func (s *RedisRepositoryTestSuite) TestPlayersAreIsolated() {
	_, err := s.repo.Save(s.ctx, &roster.SaveInput{
		PlayerID:   testPlayerID,
		Characters: []*charsheet.Character{charsheet.NewDefaultCharacter(1)},
	})
	s.Require().NoError(err)

	out, err := s.repo.Load(s.ctx, &roster.LoadInput{PlayerID: "someone_else"})
	s.Require().NoError(err)
	s.Empty(out.Characters)
}

func (s *RedisRepositoryTestSuite) TestLoadSeededRosterWithoutSaveTime() {
	seeded := testutils.CreateTestCharacters(3)
	s.Require().NoError(s.mr.Set("roster:"+testPlayerID, testutils.CreateTestRosterJSON(seeded, 0)))

	out, err := s.repo.Load(s.ctx, &roster.LoadInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Equal(seeded, out.Characters)
	s.True(out.SavedAt.IsZero())
}

func (s *RedisRepositoryTestSuite) TestLoadCorruptData() {
	s.Require().NoError(s.mr.Set("roster:"+testPlayerID, "{not json"))

	_, err := s.repo.Load(s.ctx, &roster.LoadInput{PlayerID: testPlayerID})
	s.Error(err)
	s.Equal(errors.CodeDataLoss, errors.GetCode(err))
}

func (s *RedisRepositoryTestSuite) TestBackendFailure() {
	s.mr.SetError("ERR simulated outage")
	defer s.mr.SetError("")

	_, err := s.repo.Load(s.ctx, &roster.LoadInput{PlayerID: testPlayerID})
	s.True(errors.IsUnavailable(err))

	_, err = s.repo.Save(s.ctx, &roster.SaveInput{PlayerID: testPlayerID})
	s.True(errors.IsUnavailable(err))
}

func (s *RedisRepositoryTestSuite) TestEmptyPlayerID() {
	_, err := s.repo.Load(s.ctx, &roster.LoadInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, &roster.SaveInput{})
	s.True(errors.IsInvalidArgument(err))
}
