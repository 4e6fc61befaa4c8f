package character

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Event types published on the bus
const (
	EventCharacterAdded      = "character.added"
	EventAttributeAdjusted   = "character.attribute.adjusted"
	EventSkillAdjusted       = "character.skill.adjusted"
	EventSkillCheckPerformed = "character.skill_check.performed"
)

// Keys set on the event context
const (
	EventKeyPlayerID    = "player_id"
	EventKeyCharacterID = "character_id"
	EventKeyAttribute   = "attribute"
	EventKeySkill       = "skill"
	EventKeyDelta       = "delta"
	EventKeyValue       = "value"
	EventKeyResult      = "result"
)

// EntityTypeCharacter is the core.Entity type of event sources
const EntityTypeCharacter = "character"

// characterEntity identifies a player's character as an event source
type characterEntity struct {
	id string
}

var _ core.Entity = (*characterEntity)(nil)

func newCharacterEntity(playerID string, characterID int) *characterEntity {
	return &characterEntity{id: fmt.Sprintf("%s/%d", playerID, characterID)}
}

func (e *characterEntity) GetID() string {
	return e.id
}

func (e *characterEntity) GetType() string {
	return EntityTypeCharacter
}

// publish sends an event sourced from the character. Delivery failures are
// logged and never fail the operation that produced the event.
func (o *Orchestrator) publish(ctx context.Context, eventType, playerID string, characterID int, data map[string]any) {
	event := events.NewGameEvent(eventType, newCharacterEntity(playerID, characterID), nil)
	event.Context().Set(EventKeyPlayerID, playerID)
	event.Context().Set(EventKeyCharacterID, characterID)
	for k, v := range data {
		event.Context().Set(k, v)
	}

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish event",
			"event_type", eventType,
			"player_id", playerID,
			"character_id", characterID,
			"error", err.Error())
	}
}
