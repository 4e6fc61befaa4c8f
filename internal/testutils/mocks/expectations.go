// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities/charsheet"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	rosterrepo "github.com/KirkDiggler/rpg-charsheet/internal/repositories/roster"
	rostermock "github.com/KirkDiggler/rpg-charsheet/internal/repositories/roster/mock"
)

// ExpectRosterLoad sets up a single roster load for a player returning the
// given characters
func ExpectRosterLoad(mockRepo *rostermock.MockRepository, playerID string, characters ...*charsheet.Character) *gomock.Call {
	return mockRepo.EXPECT().
		Load(gomock.Any(), &rosterrepo.LoadInput{PlayerID: playerID}).
		Return(&rosterrepo.LoadOutput{Characters: characters}, nil).
		Times(1)
}

// ExpectRosterLoadError sets up a single failing roster load for a player
func ExpectRosterLoadError(mockRepo *rostermock.MockRepository, playerID string, err error) *gomock.Call {
	return mockRepo.EXPECT().
		Load(gomock.Any(), &rosterrepo.LoadInput{PlayerID: playerID}).
		Return(nil, err).
		Times(1)
}

// ExpectRosterSave sets up a single roster save that records the saved
// characters into saved when it is non-nil
func ExpectRosterSave(
	mockRepo *rostermock.MockRepository, playerID string, savedAt time.Time, saved *[]*charsheet.Character,
) *gomock.Call {
	return mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *rosterrepo.SaveInput) (*rosterrepo.SaveOutput, error) {
			if input.PlayerID != playerID {
				return nil, errors.Internalf("unexpected save for player %s", input.PlayerID)
			}
			if saved != nil {
				*saved = input.Characters
			}
			return &rosterrepo.SaveOutput{SavedAt: savedAt}, nil
		}).
		Times(1)
}
