package testutils

import (
	"encoding/json"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities/charsheet"
)

// TestPlayerID is the default player for test fixtures
const TestPlayerID = "player-test-123"

// CreateTestCharacters creates n baseline characters with IDs 1..n
func CreateTestCharacters(n int) []*charsheet.Character {
	out := make([]*charsheet.Character, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, charsheet.NewDefaultCharacter(i))
	}
	return out
}

// CreateTestRosterJSON encodes characters the way roster stores hold them,
// for seeding miniredis or a fake roster API
func CreateTestRosterJSON(characters []*charsheet.Character, savedAt int64) string {
	doc := map[string]any{"characters": characters}
	if savedAt != 0 {
		doc["saved_at"] = savedAt
	}

	data, err := json.Marshal(doc)
	if err != nil {
		panic(err) // characters always marshal
	}
	return string(data)
}
