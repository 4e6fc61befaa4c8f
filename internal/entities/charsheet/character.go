package charsheet

const (
	// BaselineAttribute is every attribute's value on a new character
	BaselineAttribute = 10

	// MaxAttributeTotal is the point-buy cap on the sum of all attributes
	MaxAttributeTotal = 70

	// MaxStoredSkillPoints bounds one skill read from storage: the skill
	// budget with every attribute point in Intelligence
	MaxStoredSkillPoints = 130
)

// Character is one sheet's stored state. Derived values (modifiers, totals,
// skill budget) are never stored here.
type Character struct {
	ID         int               `json:"id"`
	Attributes map[Attribute]int `json:"attributes"`
	Skills     map[string]int    `json:"skills"`
}

// NewDefaultCharacter builds a baseline character against the embedded rules
func NewDefaultCharacter(id int) *Character {
	return defaultDefinitions.NewCharacter(id)
}

// NewCharacter builds a character with every attribute at the baseline and
// every skill at zero
func (d *Definitions) NewCharacter(id int) *Character {
	attrs := make(map[Attribute]int, len(d.attributes))
	for _, attr := range d.attributes {
		attrs[attr] = BaselineAttribute
	}

	skills := make(map[string]int, len(d.skills))
	for _, skill := range d.skills {
		skills[skill.Name] = 0
	}

	return &Character{
		ID:         id,
		Attributes: attrs,
		Skills:     skills,
	}
}

// Normalize returns a copy of c holding exactly the declared attributes and
// skills. Missing attributes get the baseline and missing skills get zero.
// Unknown keys are dropped. Stored values are clamped to [0,
// MaxAttributeTotal] for attributes and [0, MaxStoredSkillPoints] for skills.
func (d *Definitions) Normalize(c *Character) *Character {
	out := d.NewCharacter(c.ID)
	for attr := range out.Attributes {
		if v, ok := c.Attributes[attr]; ok {
			out.Attributes[attr] = min(max(v, 0), MaxAttributeTotal)
		}
	}
	for name := range out.Skills {
		if v, ok := c.Skills[name]; ok {
			out.Skills[name] = min(max(v, 0), MaxStoredSkillPoints)
		}
	}
	return out
}

// Clone returns a deep copy
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}

	attrs := make(map[Attribute]int, len(c.Attributes))
	for k, v := range c.Attributes {
		attrs[k] = v
	}
	skills := make(map[string]int, len(c.Skills))
	for k, v := range c.Skills {
		skills[k] = v
	}

	return &Character{
		ID:         c.ID,
		Attributes: attrs,
		Skills:     skills,
	}
}

// AttributeTotal sums all attribute values
func (c *Character) AttributeTotal() int {
	total := 0
	for _, v := range c.Attributes {
		total += v
	}
	return total
}

// SkillPointsSpent sums all skill values
func (c *Character) SkillPointsSpent() int {
	spent := 0
	for _, v := range c.Skills {
		spent += v
	}
	return spent
}
