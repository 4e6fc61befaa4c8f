// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-charsheet/internal/entities/charsheet"
)

// CharacterBuilder provides a fluent interface for building test Character instances
type CharacterBuilder struct {
	character *charsheet.Character
}

// NewCharacterBuilder creates a new builder starting from a baseline
// character with ID 1
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		character: charsheet.NewDefaultCharacter(1),
	}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id int) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithAttribute sets one attribute score
func (b *CharacterBuilder) WithAttribute(attr charsheet.Attribute, value int) *CharacterBuilder {
	b.character.Attributes[attr] = value
	return b
}

// WithSkill sets the points allocated to one skill
func (b *CharacterBuilder) WithSkill(skill string, points int) *CharacterBuilder {
	b.character.Skills[skill] = points
	return b
}

// AsBarbarian raises Strength to the Barbarian minimum
func (b *CharacterBuilder) AsBarbarian() *CharacterBuilder {
	return b.WithAttribute(charsheet.AttributeStrength, 14)
}

// AtAttributeCap raises Strength until the attribute total hits the cap
func (b *CharacterBuilder) AtAttributeCap() *CharacterBuilder {
	remaining := charsheet.MaxAttributeTotal - b.character.AttributeTotal()
	return b.WithAttribute(charsheet.AttributeStrength,
		b.character.Attributes[charsheet.AttributeStrength]+remaining)
}

// Build returns a copy, so a builder can produce several characters
func (b *CharacterBuilder) Build() *charsheet.Character {
	return b.character.Clone()
}
