// Package charsheet holds the character sheet data model: the fixed rule
// tables, characters and the roster a player works on.
package charsheet

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed definitions.yaml
var definitionsYAML []byte

// Attribute names one of the six scores every character has
type Attribute string

// Attribute constants
const (
	AttributeStrength     Attribute = "Strength"
	AttributeDexterity    Attribute = "Dexterity"
	AttributeConstitution Attribute = "Constitution"
	AttributeIntelligence Attribute = "Intelligence"
	AttributeWisdom       Attribute = "Wisdom"
	AttributeCharisma     Attribute = "Charisma"
)

// SkillDefinition ties a skill to the attribute that governs its modifier
type SkillDefinition struct {
	Name      string    `yaml:"name" json:"name"`
	Attribute Attribute `yaml:"attribute" json:"attribute"`
}

// ClassDefinition lists the minimum score per attribute a class requires
type ClassDefinition struct {
	Name         string            `yaml:"name" json:"name"`
	Requirements map[Attribute]int `yaml:"requirements" json:"requirements"`
}

// Definitions is the immutable rule data characters are built against.
// Callers get copies; nothing handed out aliases the tables.
type Definitions struct {
	attributes []Attribute
	skills     []SkillDefinition
	classes    []ClassDefinition
}

type definitionsFile struct {
	Attributes []Attribute       `yaml:"attributes"`
	Skills     []SkillDefinition `yaml:"skills"`
	Classes    []ClassDefinition `yaml:"classes"`
}

var defaultDefinitions = mustParseDefinitions(definitionsYAML)

// Default returns the rule tables embedded in the binary
func Default() *Definitions {
	return defaultDefinitions
}

func mustParseDefinitions(data []byte) *Definitions {
	defs, err := ParseDefinitions(data)
	if err != nil {
		panic(fmt.Sprintf("charsheet: invalid embedded definitions: %v", err))
	}
	return defs
}

// ParseDefinitions decodes and checks a YAML rule document. Every skill must
// be governed by a declared attribute and every class must set a threshold
// for every attribute.
func ParseDefinitions(data []byte) (*Definitions, error) {
	var file definitionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse definitions: %w", err)
	}

	if len(file.Attributes) == 0 {
		return nil, fmt.Errorf("definitions: no attributes declared")
	}

	known := make(map[Attribute]bool, len(file.Attributes))
	for _, attr := range file.Attributes {
		if known[attr] {
			return nil, fmt.Errorf("definitions: duplicate attribute %q", attr)
		}
		known[attr] = true
	}

	skillNames := make(map[string]bool, len(file.Skills))
	for _, skill := range file.Skills {
		if skill.Name == "" {
			return nil, fmt.Errorf("definitions: skill with empty name")
		}
		if skillNames[skill.Name] {
			return nil, fmt.Errorf("definitions: duplicate skill %q", skill.Name)
		}
		if !known[skill.Attribute] {
			return nil, fmt.Errorf("definitions: skill %q uses unknown attribute %q", skill.Name, skill.Attribute)
		}
		skillNames[skill.Name] = true
	}

	classNames := make(map[string]bool, len(file.Classes))
	for _, class := range file.Classes {
		if classNames[class.Name] {
			return nil, fmt.Errorf("definitions: duplicate class %q", class.Name)
		}
		for _, attr := range file.Attributes {
			if _, ok := class.Requirements[attr]; !ok {
				return nil, fmt.Errorf("definitions: class %q has no %s requirement", class.Name, attr)
			}
		}
		for attr := range class.Requirements {
			if !known[attr] {
				return nil, fmt.Errorf("definitions: class %q requires unknown attribute %q", class.Name, attr)
			}
		}
		classNames[class.Name] = true
	}

	return &Definitions{
		attributes: file.Attributes,
		skills:     file.Skills,
		classes:    file.Classes,
	}, nil
}

// Attributes returns the attribute names in display order
func (d *Definitions) Attributes() []Attribute {
	out := make([]Attribute, len(d.attributes))
	copy(out, d.attributes)
	return out
}

// Skills returns every skill definition in display order
func (d *Definitions) Skills() []SkillDefinition {
	out := make([]SkillDefinition, len(d.skills))
	copy(out, d.skills)
	return out
}

// Classes returns every class definition in display order
func (d *Definitions) Classes() []ClassDefinition {
	out := make([]ClassDefinition, 0, len(d.classes))
	for _, class := range d.classes {
		out = append(out, class.clone())
	}
	return out
}

// HasAttribute reports whether name is a declared attribute
func (d *Definitions) HasAttribute(name Attribute) bool {
	for _, attr := range d.attributes {
		if attr == name {
			return true
		}
	}
	return false
}

// Skill looks up a skill by name
func (d *Definitions) Skill(name string) (SkillDefinition, bool) {
	for _, skill := range d.skills {
		if skill.Name == name {
			return skill, true
		}
	}
	return SkillDefinition{}, false
}

// Class looks up a class by name
func (d *Definitions) Class(name string) (ClassDefinition, bool) {
	for _, class := range d.classes {
		if class.Name == name {
			return class.clone(), true
		}
	}
	return ClassDefinition{}, false
}

func (c ClassDefinition) clone() ClassDefinition {
	reqs := make(map[Attribute]int, len(c.Requirements))
	for attr, v := range c.Requirements {
		reqs[attr] = v
	}
	return ClassDefinition{Name: c.Name, Requirements: reqs}
}
