// Package v1alpha1 handles the charsheet grpc service interface
package v1alpha1

import (
	"context"

	charsheetv1alpha1 "github.com/KirkDiggler/rpg-charsheet/internal/api/charsheet/v1alpha1"
	"github.com/KirkDiggler/rpg-charsheet/internal/entities/charsheet"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/services/character"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CharacterService character.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.CharacterService == nil {
		return errors.InvalidArgument("character service is required")
	}
	return nil
}

// Handler implements the charsheet gRPC service
type Handler struct {
	charsheetv1alpha1.UnimplementedCharacterServiceServer
	characterService character.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		characterService: cfg.CharacterService,
	}, nil
}

var _ charsheetv1alpha1.CharacterServiceServer = (*Handler)(nil)

// LoadRoster reloads a player's roster from storage
func (h *Handler) LoadRoster(
	ctx context.Context,
	req *charsheetv1alpha1.LoadRosterRequest,
) (*charsheetv1alpha1.LoadRosterResponse, error) {
	if req.PlayerId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	output, err := h.characterService.LoadRoster(ctx, &character.LoadRosterInput{
		PlayerID: req.PlayerId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &charsheetv1alpha1.LoadRosterResponse{
		Characters:  convertCharactersToProto(output.Roster.Characters),
		SelectedId:  int32(output.Roster.SelectedID),
		UsedDefault: output.UsedDefault,
		SavedAt:     unixOrZero(output.SavedAt),
	}, nil
}

// SaveRoster persists a player's roster
func (h *Handler) SaveRoster(
	ctx context.Context,
	req *charsheetv1alpha1.SaveRosterRequest,
) (*charsheetv1alpha1.SaveRosterResponse, error) {
	if req.PlayerId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	output, err := h.characterService.SaveRoster(ctx, &character.SaveRosterInput{
		PlayerID: req.PlayerId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &charsheetv1alpha1.SaveRosterResponse{
		Count:   int32(output.Count),
		SavedAt: unixOrZero(output.SavedAt),
	}, nil
}

// ListCharacters lists a player's characters
func (h *Handler) ListCharacters(
	ctx context.Context,
	req *charsheetv1alpha1.ListCharactersRequest,
) (*charsheetv1alpha1.ListCharactersResponse, error) {
	if req.PlayerId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	output, err := h.characterService.ListCharacters(ctx, &character.ListCharactersInput{
		PlayerID: req.PlayerId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &charsheetv1alpha1.ListCharactersResponse{
		Characters: convertCharactersToProto(output.Characters),
		SelectedId: int32(output.SelectedID),
	}, nil
}

// SelectCharacter changes the selected character
func (h *Handler) SelectCharacter(
	ctx context.Context,
	req *charsheetv1alpha1.SelectCharacterRequest,
) (*charsheetv1alpha1.SelectCharacterResponse, error) {
	if req.PlayerId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}
	if req.CharacterId <= 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.characterService.SelectCharacter(ctx, &character.SelectCharacterInput{
		PlayerID:    req.PlayerId,
		CharacterID: int(req.CharacterId),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &charsheetv1alpha1.SelectCharacterResponse{
		Character: convertCharacterToProto(output.Character),
	}, nil
}

// AddCharacter adds a baseline character and selects it
func (h *Handler) AddCharacter(
	ctx context.Context,
	req *charsheetv1alpha1.AddCharacterRequest,
) (*charsheetv1alpha1.AddCharacterResponse, error) {
	if req.PlayerId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	output, err := h.characterService.AddCharacter(ctx, &character.AddCharacterInput{
		PlayerID: req.PlayerId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &charsheetv1alpha1.AddCharacterResponse{
		Character: convertCharacterToProto(output.Character),
	}, nil
}

// GetCharacter returns a character with its derived values
func (h *Handler) GetCharacter(
	ctx context.Context,
	req *charsheetv1alpha1.GetCharacterRequest,
) (*charsheetv1alpha1.GetCharacterResponse, error) {
	if req.PlayerId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	output, err := h.characterService.GetCharacter(ctx, &character.GetCharacterInput{
		PlayerID:    req.PlayerId,
		CharacterID: int(req.CharacterId),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &charsheetv1alpha1.GetCharacterResponse{
		Character: convertCharacterToProto(output.Character),
		Summary:   convertSummaryToProto(output.Summary),
	}, nil
}

// AdjustAttribute applies a point-buy change
func (h *Handler) AdjustAttribute(
	ctx context.Context,
	req *charsheetv1alpha1.AdjustAttributeRequest,
) (*charsheetv1alpha1.AdjustAttributeResponse, error) {
	if req.PlayerId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}
	if req.Attribute == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("attribute is required"))
	}

	output, err := h.characterService.AdjustAttribute(ctx, &character.AdjustAttributeInput{
		PlayerID:    req.PlayerId,
		CharacterID: int(req.CharacterId),
		Attribute:   charsheet.Attribute(req.Attribute),
		Delta:       int(req.Delta),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &charsheetv1alpha1.AdjustAttributeResponse{
		Character: convertCharacterToProto(output.Character),
		Applied:   output.Applied,
		Summary:   convertSummaryToProto(output.Summary),
	}, nil
}

// AdjustSkill applies a skill point change
func (h *Handler) AdjustSkill(
	ctx context.Context,
	req *charsheetv1alpha1.AdjustSkillRequest,
) (*charsheetv1alpha1.AdjustSkillResponse, error) {
	if req.PlayerId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}
	if req.Skill == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("skill is required"))
	}

	output, err := h.characterService.AdjustSkill(ctx, &character.AdjustSkillInput{
		PlayerID:    req.PlayerId,
		CharacterID: int(req.CharacterId),
		Skill:       req.Skill,
		Delta:       int(req.Delta),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &charsheetv1alpha1.AdjustSkillResponse{
		Character: convertCharacterToProto(output.Character),
		Applied:   output.Applied,
		Summary:   convertSummaryToProto(output.Summary),
	}, nil
}

// CheckEligibility checks a character against one class
func (h *Handler) CheckEligibility(
	ctx context.Context,
	req *charsheetv1alpha1.CheckEligibilityRequest,
) (*charsheetv1alpha1.CheckEligibilityResponse, error) {
	if req.PlayerId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}
	if req.ClassName == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("class_name is required"))
	}

	output, err := h.characterService.CheckEligibility(ctx, &character.CheckEligibilityInput{
		PlayerID:    req.PlayerId,
		CharacterID: int(req.CharacterId),
		ClassName:   req.ClassName,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &charsheetv1alpha1.CheckEligibilityResponse{
		Class:    convertClassToProto(output.Class),
		Eligible: output.Eligible,
	}, nil
}

// ListClassEligibility checks a character against every class
func (h *Handler) ListClassEligibility(
	ctx context.Context,
	req *charsheetv1alpha1.ListClassEligibilityRequest,
) (*charsheetv1alpha1.ListClassEligibilityResponse, error) {
	if req.PlayerId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	output, err := h.characterService.ListClassEligibility(ctx, &character.ListClassEligibilityInput{
		PlayerID:    req.PlayerId,
		CharacterID: int(req.CharacterId),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	classes := make([]*charsheetv1alpha1.ClassEligibility, 0, len(output.Classes))
	for _, ce := range output.Classes {
		classes = append(classes, &charsheetv1alpha1.ClassEligibility{
			Class:    convertClassToProto(ce.Class),
			Eligible: ce.Eligible,
		})
	}

	return &charsheetv1alpha1.ListClassEligibilityResponse{Classes: classes}, nil
}

// PerformSkillCheck rolls a skill check against a DC
func (h *Handler) PerformSkillCheck(
	ctx context.Context,
	req *charsheetv1alpha1.PerformSkillCheckRequest,
) (*charsheetv1alpha1.PerformSkillCheckResponse, error) {
	if req.PlayerId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}
	if req.Skill == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("skill is required"))
	}

	output, err := h.characterService.PerformSkillCheck(ctx, &character.PerformSkillCheckInput{
		PlayerID:        req.PlayerId,
		CharacterID:     int(req.CharacterId),
		Skill:           req.Skill,
		DifficultyClass: int(req.DifficultyClass),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &charsheetv1alpha1.PerformSkillCheckResponse{
		CharacterId: int32(output.CharacterID),
		Result:      convertCheckResultToProto(output.Result),
	}, nil
}

// ListDefinitions returns the rule tables
func (h *Handler) ListDefinitions(
	ctx context.Context,
	_ *charsheetv1alpha1.ListDefinitionsRequest,
) (*charsheetv1alpha1.ListDefinitionsResponse, error) {
	output, err := h.characterService.ListDefinitions(ctx, &character.ListDefinitionsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	attributes := make([]string, 0, len(output.Attributes))
	for _, attr := range output.Attributes {
		attributes = append(attributes, string(attr))
	}

	skills := make([]*charsheetv1alpha1.SkillDefinition, 0, len(output.Skills))
	for _, skill := range output.Skills {
		skills = append(skills, &charsheetv1alpha1.SkillDefinition{
			Name:      skill.Name,
			Attribute: string(skill.Attribute),
		})
	}

	classes := make([]*charsheetv1alpha1.ClassDefinition, 0, len(output.Classes))
	for _, class := range output.Classes {
		classes = append(classes, convertClassToProto(class))
	}

	return &charsheetv1alpha1.ListDefinitionsResponse{
		Attributes: attributes,
		Skills:     skills,
		Classes:    classes,
	}, nil
}
