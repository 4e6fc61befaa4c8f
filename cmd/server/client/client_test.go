package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

func TestRPCError(t *testing.T) {
	t.Run("status carries the service code", func(t *testing.T) {
		err := rpcError("check eligibility", status.Error(codes.NotFound, "class Necromancer not found"))

		require.Error(t, err)
		assert.Equal(t, "failed to check eligibility: NOT_FOUND: class Necromancer not found", err.Error())
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("metadata is shown", func(t *testing.T) {
		grpcErr := errors.ToGRPCError(errors.Unavailable("roster API unavailable").
			WithMeta("http_status", 503))

		err := rpcError("save roster", grpcErr)

		assert.True(t, errors.IsUnavailable(err))
		assert.Contains(t, err.Error(), "http_status")
		assert.Contains(t, err.Error(), "503")
	})

	t.Run("non-status errors pass through", func(t *testing.T) {
		err := rpcError("list characters", assert.AnError)

		assert.ErrorIs(t, err, assert.AnError)
	})
}
