package main

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-charsheet/internal/config"
	"github.com/KirkDiggler/rpg-charsheet/internal/entities/charsheet"
	"github.com/KirkDiggler/rpg-charsheet/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-charsheet/internal/orchestrators/character"
	rosterrepo "github.com/KirkDiggler/rpg-charsheet/internal/repositories/roster"
	charactersvc "github.com/KirkDiggler/rpg-charsheet/internal/services/character"
	"github.com/KirkDiggler/rpg-charsheet/internal/testutils"
)

func TestLoadConfigFlagPrecedence(t *testing.T) {
	t.Setenv("RPG_CHARSHEET_PORT", "6000")
	t.Setenv("RPG_CHARSHEET_STORAGE", "memory")

	cfg, err := loadConfig(serverCmd)
	require.NoError(t, err)
	assert.Equal(t, 6000, cfg.Port, "env applies when the flag is not set")

	require.NoError(t, serverCmd.Flags().Set("port", "7000"))
	cfg, err = loadConfig(serverCmd)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port, "an explicit flag wins over env")

	require.NoError(t, serverCmd.Flags().Set("storage", "remote"))
	_, err = loadConfig(serverCmd)
	require.Error(t, err, "remote storage without a URL is rejected")
	assert.Contains(t, err.Error(), "remote_url")

	require.NoError(t, serverCmd.Flags().Set("storage", "memory"))
}

func TestNewRosterRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		repo, closeRepo, err := newRosterRepository(ctx, &config.Config{Storage: config.StorageMemory})
		require.NoError(t, err)
		defer closeRepo()
		assert.IsType(t, &rosterrepo.InMemoryRepository{}, repo)
	})

	t.Run("redis", func(t *testing.T) {
		_, mr, cleanup := testutils.CreateTestRedisServer(t, nil)
		defer cleanup()

		repo, closeRepo, err := newRosterRepository(ctx, &config.Config{
			Storage:   config.StorageRedis,
			RedisAddr: mr.Addr(),
		})
		require.NoError(t, err)
		defer closeRepo()

		_, err = repo.Save(ctx, &rosterrepo.SaveInput{
			PlayerID:   "alice",
			Characters: []*charsheet.Character{charsheet.NewDefaultCharacter(1)},
		})
		require.NoError(t, err)
		assert.True(t, mr.Exists("roster:alice"))
	})

	t.Run("redis unreachable", func(t *testing.T) {
		_, mr, cleanup := testutils.CreateTestRedisServer(t, nil)
		addr := mr.Addr()
		cleanup()

		_, _, err := newRosterRepository(ctx, &config.Config{
			Storage:   config.StorageRedis,
			RedisAddr: addr,
		})
		assert.Error(t, err)
	})

	t.Run("remote rejects relative url", func(t *testing.T) {
		_, _, err := newRosterRepository(ctx, &config.Config{
			Storage:       config.StorageRemote,
			RemoteURL:     "rosters/{player_id}",
			RemoteTimeout: time.Second,
		})
		assert.Error(t, err)
	})
}

func TestEventLogSubscriberReceivesEvents(t *testing.T) {
	ctx := context.Background()
	bus := events.NewBus()
	subscribeEventLog(bus)

	var seen []string
	bus.SubscribeFunc(character.EventSkillCheckPerformed, 0, func(_ context.Context, e events.Event) error {
		seen = append(seen, e.Type())
		return nil
	})

	adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{DiceRoller: fixedRoller(12)})
	require.NoError(t, err)

	orch, err := character.New(&character.Config{
		RosterRepo: rosterrepo.NewInMemory(),
		Engine:     adapter,
		EventBus:   bus,
	})
	require.NoError(t, err)

	out, err := orch.PerformSkillCheck(ctx, &charactersvc.PerformSkillCheckInput{
		PlayerID:        "alice",
		Skill:           "Athletics",
		DifficultyClass: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, out.Result.Roll)
	assert.Equal(t, []string{character.EventSkillCheckPerformed}, seen)
}

type fixedRoller int

func (r fixedRoller) Roll(_ int) (int, error) { return int(r), nil }

func (r fixedRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = int(r)
	}
	return out, nil
}
