package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-charsheet/internal/engine"
	"github.com/KirkDiggler/rpg-charsheet/internal/orchestrators/character"
)

// eventLogPriority runs the log subscriber after any gameplay handlers
const eventLogPriority = 1000

// subscribeEventLog logs every character event the orchestrator publishes
func subscribeEventLog(bus events.EventBus) {
	for _, eventType := range []string{
		character.EventCharacterAdded,
		character.EventAttributeAdjusted,
		character.EventSkillAdjusted,
		character.EventSkillCheckPerformed,
	} {
		bus.SubscribeFunc(eventType, eventLogPriority, logEvent)
	}
}

func logEvent(ctx context.Context, event events.Event) error {
	attrs := []any{"event_type", event.Type()}
	if src := event.Source(); src != nil {
		attrs = append(attrs, "source", src.GetID())
	}

	for _, key := range []string{
		character.EventKeyAttribute,
		character.EventKeySkill,
		character.EventKeyDelta,
		character.EventKeyValue,
	} {
		if v, ok := event.Context().Get(key); ok {
			attrs = append(attrs, key, v)
		}
	}

	if v, ok := event.Context().Get(character.EventKeyResult); ok {
		if result, ok := v.(*engine.CheckResult); ok {
			attrs = append(attrs,
				"roll", result.Roll,
				"total", result.Total,
				"dc", result.DC,
				"success", result.Succeeded())
		}
	}

	slog.InfoContext(ctx, "character event", attrs...)
	return nil
}
