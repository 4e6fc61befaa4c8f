// Code in this file follows the protoc-gen-go-grpc layout for the
// charsheet.v1alpha1.CharacterService client. There is no .proto source: it
// is maintained by hand, so keep it mechanical and change it together with
// service.go and messages.go when adding an RPC.

package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// CharacterServiceClient is the client API for CharacterService
type CharacterServiceClient interface {
	LoadRoster(ctx context.Context, in *LoadRosterRequest, opts ...grpc.CallOption) (*LoadRosterResponse, error)
	SaveRoster(ctx context.Context, in *SaveRosterRequest, opts ...grpc.CallOption) (*SaveRosterResponse, error)
	ListCharacters(ctx context.Context, in *ListCharactersRequest, opts ...grpc.CallOption) (*ListCharactersResponse, error)
	SelectCharacter(ctx context.Context, in *SelectCharacterRequest, opts ...grpc.CallOption) (*SelectCharacterResponse, error)
	AddCharacter(ctx context.Context, in *AddCharacterRequest, opts ...grpc.CallOption) (*AddCharacterResponse, error)
	GetCharacter(ctx context.Context, in *GetCharacterRequest, opts ...grpc.CallOption) (*GetCharacterResponse, error)
	AdjustAttribute(ctx context.Context, in *AdjustAttributeRequest, opts ...grpc.CallOption) (*AdjustAttributeResponse, error)
	AdjustSkill(ctx context.Context, in *AdjustSkillRequest, opts ...grpc.CallOption) (*AdjustSkillResponse, error)
	CheckEligibility(ctx context.Context, in *CheckEligibilityRequest, opts ...grpc.CallOption) (*CheckEligibilityResponse, error)
	ListClassEligibility(ctx context.Context, in *ListClassEligibilityRequest, opts ...grpc.CallOption) (*ListClassEligibilityResponse, error)
	PerformSkillCheck(ctx context.Context, in *PerformSkillCheckRequest, opts ...grpc.CallOption) (*PerformSkillCheckResponse, error)
	ListDefinitions(ctx context.Context, in *ListDefinitionsRequest, opts ...grpc.CallOption) (*ListDefinitionsResponse, error)
}

type characterServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCharacterServiceClient returns a client that sends every call with the
// JSON content-subtype
func NewCharacterServiceClient(cc grpc.ClientConnInterface) CharacterServiceClient {
	return &characterServiceClient{cc: cc}
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}

func (c *characterServiceClient) LoadRoster(ctx context.Context, in *LoadRosterRequest, opts ...grpc.CallOption) (*LoadRosterResponse, error) {
	out := new(LoadRosterResponse)
	if err := c.cc.Invoke(ctx, CharacterService_LoadRoster_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *characterServiceClient) SaveRoster(ctx context.Context, in *SaveRosterRequest, opts ...grpc.CallOption) (*SaveRosterResponse, error) {
	out := new(SaveRosterResponse)
	if err := c.cc.Invoke(ctx, CharacterService_SaveRoster_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *characterServiceClient) ListCharacters(ctx context.Context, in *ListCharactersRequest, opts ...grpc.CallOption) (*ListCharactersResponse, error) {
	out := new(ListCharactersResponse)
	if err := c.cc.Invoke(ctx, CharacterService_ListCharacters_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *characterServiceClient) SelectCharacter(ctx context.Context, in *SelectCharacterRequest, opts ...grpc.CallOption) (*SelectCharacterResponse, error) {
	out := new(SelectCharacterResponse)
	if err := c.cc.Invoke(ctx, CharacterService_SelectCharacter_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *characterServiceClient) AddCharacter(ctx context.Context, in *AddCharacterRequest, opts ...grpc.CallOption) (*AddCharacterResponse, error) {
	out := new(AddCharacterResponse)
	if err := c.cc.Invoke(ctx, CharacterService_AddCharacter_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *characterServiceClient) GetCharacter(ctx context.Context, in *GetCharacterRequest, opts ...grpc.CallOption) (*GetCharacterResponse, error) {
	out := new(GetCharacterResponse)
	if err := c.cc.Invoke(ctx, CharacterService_GetCharacter_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *characterServiceClient) AdjustAttribute(ctx context.Context, in *AdjustAttributeRequest, opts ...grpc.CallOption) (*AdjustAttributeResponse, error) {
	out := new(AdjustAttributeResponse)
	if err := c.cc.Invoke(ctx, CharacterService_AdjustAttribute_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *characterServiceClient) AdjustSkill(ctx context.Context, in *AdjustSkillRequest, opts ...grpc.CallOption) (*AdjustSkillResponse, error) {
	out := new(AdjustSkillResponse)
	if err := c.cc.Invoke(ctx, CharacterService_AdjustSkill_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *characterServiceClient) CheckEligibility(ctx context.Context, in *CheckEligibilityRequest, opts ...grpc.CallOption) (*CheckEligibilityResponse, error) {
	out := new(CheckEligibilityResponse)
	if err := c.cc.Invoke(ctx, CharacterService_CheckEligibility_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *characterServiceClient) ListClassEligibility(ctx context.Context, in *ListClassEligibilityRequest, opts ...grpc.CallOption) (*ListClassEligibilityResponse, error) {
	out := new(ListClassEligibilityResponse)
	if err := c.cc.Invoke(ctx, CharacterService_ListClassEligibility_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *characterServiceClient) PerformSkillCheck(ctx context.Context, in *PerformSkillCheckRequest, opts ...grpc.CallOption) (*PerformSkillCheckResponse, error) {
	out := new(PerformSkillCheckResponse)
	if err := c.cc.Invoke(ctx, CharacterService_PerformSkillCheck_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *characterServiceClient) ListDefinitions(ctx context.Context, in *ListDefinitionsRequest, opts ...grpc.CallOption) (*ListDefinitionsResponse, error) {
	out := new(ListDefinitionsResponse)
	if err := c.cc.Invoke(ctx, CharacterService_ListDefinitions_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}
