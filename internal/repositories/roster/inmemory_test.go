package roster_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities/charsheet"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/repositories/roster"
	"github.com/KirkDiggler/rpg-charsheet/internal/testutils"
	"github.com/KirkDiggler/rpg-charsheet/internal/testutils/builders"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("empty until saved", func(t *testing.T) {
		repo := roster.NewInMemory()

		out, err := repo.Load(ctx, &roster.LoadInput{PlayerID: testPlayerID})
		require.NoError(t, err)
		assert.Empty(t, out.Characters)
		assert.True(t, out.SavedAt.IsZero())
	})

	t.Run("round trip is isolated from callers", func(t *testing.T) {
		repo := roster.NewInMemory()
		c := charsheet.NewDefaultCharacter(1)

		saved, err := repo.Save(ctx, &roster.SaveInput{
			PlayerID:   testPlayerID,
			Characters: []*charsheet.Character{c},
		})
		require.NoError(t, err)
		c.Attributes[charsheet.AttributeWisdom] = 18

		out, err := repo.Load(ctx, &roster.LoadInput{PlayerID: testPlayerID})
		require.NoError(t, err)
		require.Len(t, out.Characters, 1)
		assert.Equal(t, 10, out.Characters[0].Attributes[charsheet.AttributeWisdom])
		assert.Equal(t, saved.SavedAt, out.SavedAt)

		out.Characters[0].Skills["Stealth"] = 9
		again, err := repo.Load(ctx, &roster.LoadInput{PlayerID: testPlayerID})
		require.NoError(t, err)
		assert.Equal(t, 0, again.Characters[0].Skills["Stealth"])
	})

	t.Run("keeps stored order and ids", func(t *testing.T) {
		repo := roster.NewInMemory()
		characters := []*charsheet.Character{
			builders.NewCharacterBuilder().WithID(7).AsBarbarian().Build(),
			builders.NewCharacterBuilder().WithID(3).WithSkill("Stealth", 2).Build(),
		}

		_, err := repo.Save(ctx, &roster.SaveInput{PlayerID: testutils.TestPlayerID, Characters: characters})
		require.NoError(t, err)

		out, err := repo.Load(ctx, &roster.LoadInput{PlayerID: testutils.TestPlayerID})
		require.NoError(t, err)
		assert.Equal(t, characters, out.Characters)
	})

	t.Run("rejects empty player", func(t *testing.T) {
		repo := roster.NewInMemory()

		_, err := repo.Load(ctx, nil)
		assert.True(t, errors.IsInvalidArgument(err))

		_, err = repo.Save(ctx, &roster.SaveInput{})
		assert.True(t, errors.IsInvalidArgument(err))
	})
}
