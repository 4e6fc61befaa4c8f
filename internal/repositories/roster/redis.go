package roster

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities/charsheet"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-charsheet/internal/redis"
)

const (
	rosterKeyPrefix = "roster:"

	// Error messages
	errPlayerIDEmpty = "player ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis roster repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed roster repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := rosterKeyPrefix + input.PlayerID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redisclient.Nil {
			slog.DebugContext(ctx, "no roster stored",
				"player_id", input.PlayerID,
				"key", key)
			return &LoadOutput{Characters: []*charsheet.Character{}}, nil
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get roster")
	}

	var doc document
	if err := json.Unmarshal([]byte(result), &doc); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "failed to unmarshal roster for player %s", input.PlayerID)
	}

	slog.DebugContext(ctx, "loaded roster",
		"player_id", input.PlayerID,
		"count", len(doc.Characters))

	return &LoadOutput{
		Characters: nonNil(doc.Characters),
		SavedAt:    savedAtTime(doc.SavedAt),
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	savedAt := r.clock.Now()
	data, err := json.Marshal(document{
		Characters: nonNil(input.Characters),
		SavedAt:    savedAt.Unix(),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal roster")
	}

	key := rosterKeyPrefix + input.PlayerID
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil { // no TTL for rosters
		slog.ErrorContext(ctx, "failed to save roster to Redis",
			"player_id", input.PlayerID,
			"key", key,
			"error", err.Error())
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to save roster")
	}

	slog.DebugContext(ctx, "saved roster",
		"player_id", input.PlayerID,
		"count", len(input.Characters))

	return &SaveOutput{SavedAt: savedAt}, nil
}

func nonNil(characters []*charsheet.Character) []*charsheet.Character {
	if characters == nil {
		return []*charsheet.Character{}
	}
	return characters
}

// savedAtTime converts a stored unix timestamp
func savedAtTime(unix int64) time.Time {
	if unix == 0 {
		return time.Time{}
	}
	return time.Unix(unix, 0)
}
