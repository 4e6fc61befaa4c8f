package v1alpha1

// Character is a stored character sheet
type Character struct {
	Id         int32            `json:"id"`
	Attributes map[string]int32 `json:"attributes"`
	Skills     map[string]int32 `json:"skills"`
}

// CharacterSummary holds values derived from a character's scores
type CharacterSummary struct {
	AttributeTotal       int32            `json:"attribute_total"`
	MaxAttributeTotal    int32            `json:"max_attribute_total"`
	Modifiers            map[string]int32 `json:"modifiers"`
	SkillBudget          int32            `json:"skill_budget"`
	SkillPointsSpent     int32            `json:"skill_points_spent"`
	SkillPointsAvailable int32            `json:"skill_points_available"`
}

// SkillDefinition names a skill and its governing attribute
type SkillDefinition struct {
	Name      string `json:"name"`
	Attribute string `json:"attribute"`
}

// ClassDefinition holds a class's minimum attribute scores
type ClassDefinition struct {
	Name         string           `json:"name"`
	Requirements map[string]int32 `json:"requirements"`
}

// ClassEligibility pairs a class with whether the character qualifies
type ClassEligibility struct {
	Class    *ClassDefinition `json:"class"`
	Eligible bool             `json:"eligible"`
}

// SkillCheckResult is a resolved d20 skill check
type SkillCheckResult struct {
	Skill       string `json:"skill"`
	Roll        int32  `json:"roll"`
	Modifier    int32  `json:"modifier"`
	SkillPoints int32  `json:"skill_points"`
	Total       int32  `json:"total"`
	Dc          int32  `json:"dc"`
	Success     bool   `json:"success"`
	Breakdown   string `json:"breakdown"`
}

// LoadRosterRequest reloads a player's roster from storage
type LoadRosterRequest struct {
	PlayerId string `json:"player_id"`
}

// LoadRosterResponse carries the loaded roster
type LoadRosterResponse struct {
	Characters  []*Character `json:"characters"`
	SelectedId  int32        `json:"selected_id"`
	UsedDefault bool         `json:"used_default"`
	// SavedAt is a unix timestamp, zero when unknown
	SavedAt int64 `json:"saved_at,omitempty"`
}

// SaveRosterRequest persists a player's roster
type SaveRosterRequest struct {
	PlayerId string `json:"player_id"`
}

// SaveRosterResponse reports what was saved
type SaveRosterResponse struct {
	Count   int32 `json:"count"`
	SavedAt int64 `json:"saved_at,omitempty"`
}

// ListCharactersRequest lists a player's characters
type ListCharactersRequest struct {
	PlayerId string `json:"player_id"`
}

// ListCharactersResponse carries the roster in order
type ListCharactersResponse struct {
	Characters []*Character `json:"characters"`
	SelectedId int32        `json:"selected_id"`
}

// SelectCharacterRequest changes the selected character
type SelectCharacterRequest struct {
	PlayerId    string `json:"player_id"`
	CharacterId int32  `json:"character_id"`
}

// SelectCharacterResponse carries the newly selected character
type SelectCharacterResponse struct {
	Character *Character `json:"character"`
}

// AddCharacterRequest adds a baseline character
type AddCharacterRequest struct {
	PlayerId string `json:"player_id"`
}

// AddCharacterResponse carries the added character
type AddCharacterResponse struct {
	Character *Character `json:"character"`
}

// GetCharacterRequest fetches a character. A zero CharacterId means the
// selected character.
type GetCharacterRequest struct {
	PlayerId    string `json:"player_id"`
	CharacterId int32  `json:"character_id,omitempty"`
}

// GetCharacterResponse carries a character and its derived values
type GetCharacterResponse struct {
	Character *Character        `json:"character"`
	Summary   *CharacterSummary `json:"summary"`
}

// AdjustAttributeRequest changes one attribute by Delta
type AdjustAttributeRequest struct {
	PlayerId    string `json:"player_id"`
	CharacterId int32  `json:"character_id,omitempty"`
	Attribute   string `json:"attribute"`
	Delta       int32  `json:"delta"`
}

// AdjustAttributeResponse reports whether the change was applied
type AdjustAttributeResponse struct {
	Character *Character        `json:"character"`
	Applied   bool              `json:"applied"`
	Summary   *CharacterSummary `json:"summary"`
}

// AdjustSkillRequest changes one skill by Delta
type AdjustSkillRequest struct {
	PlayerId    string `json:"player_id"`
	CharacterId int32  `json:"character_id,omitempty"`
	Skill       string `json:"skill"`
	Delta       int32  `json:"delta"`
}

// AdjustSkillResponse reports whether the change was applied
type AdjustSkillResponse struct {
	Character *Character        `json:"character"`
	Applied   bool              `json:"applied"`
	Summary   *CharacterSummary `json:"summary"`
}

// CheckEligibilityRequest checks one class
type CheckEligibilityRequest struct {
	PlayerId    string `json:"player_id"`
	CharacterId int32  `json:"character_id,omitempty"`
	ClassName   string `json:"class_name"`
}

// CheckEligibilityResponse carries the class and the verdict
type CheckEligibilityResponse struct {
	Class    *ClassDefinition `json:"class"`
	Eligible bool             `json:"eligible"`
}

// ListClassEligibilityRequest checks every class
type ListClassEligibilityRequest struct {
	PlayerId    string `json:"player_id"`
	CharacterId int32  `json:"character_id,omitempty"`
}

// ListClassEligibilityResponse carries one verdict per class
type ListClassEligibilityResponse struct {
	Classes []*ClassEligibility `json:"classes"`
}

// PerformSkillCheckRequest rolls a skill check against a DC
type PerformSkillCheckRequest struct {
	PlayerId        string `json:"player_id"`
	CharacterId     int32  `json:"character_id,omitempty"`
	Skill           string `json:"skill"`
	DifficultyClass int32  `json:"difficulty_class"`
}

// PerformSkillCheckResponse carries the resolved check
type PerformSkillCheckResponse struct {
	CharacterId int32             `json:"character_id"`
	Result      *SkillCheckResult `json:"result"`
}

// ListDefinitionsRequest fetches the rule tables
type ListDefinitionsRequest struct{}

// ListDefinitionsResponse carries the rule tables in display order
type ListDefinitionsResponse struct {
	Attributes []string           `json:"attributes"`
	Skills     []*SkillDefinition `json:"skills"`
	Classes    []*ClassDefinition `json:"classes"`
}
