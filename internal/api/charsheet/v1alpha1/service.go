// Code in this file follows the protoc-gen-go-grpc layout for
// charsheet.v1alpha1.CharacterService. There is no .proto source: it is
// maintained by hand, so keep it mechanical and change it together with
// client.go and messages.go when adding an RPC.

package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CharacterServiceName is the fully qualified gRPC service name
const CharacterServiceName = "charsheet.v1alpha1.CharacterService"

// Full method names
const (
	CharacterService_LoadRoster_FullMethodName           = "/" + CharacterServiceName + "/LoadRoster"
	CharacterService_SaveRoster_FullMethodName           = "/" + CharacterServiceName + "/SaveRoster"
	CharacterService_ListCharacters_FullMethodName       = "/" + CharacterServiceName + "/ListCharacters"
	CharacterService_SelectCharacter_FullMethodName      = "/" + CharacterServiceName + "/SelectCharacter"
	CharacterService_AddCharacter_FullMethodName         = "/" + CharacterServiceName + "/AddCharacter"
	CharacterService_GetCharacter_FullMethodName         = "/" + CharacterServiceName + "/GetCharacter"
	CharacterService_AdjustAttribute_FullMethodName      = "/" + CharacterServiceName + "/AdjustAttribute"
	CharacterService_AdjustSkill_FullMethodName          = "/" + CharacterServiceName + "/AdjustSkill"
	CharacterService_CheckEligibility_FullMethodName     = "/" + CharacterServiceName + "/CheckEligibility"
	CharacterService_ListClassEligibility_FullMethodName = "/" + CharacterServiceName + "/ListClassEligibility"
	CharacterService_PerformSkillCheck_FullMethodName    = "/" + CharacterServiceName + "/PerformSkillCheck"
	CharacterService_ListDefinitions_FullMethodName      = "/" + CharacterServiceName + "/ListDefinitions"
)

// CharacterServiceServer is the server API for CharacterService
type CharacterServiceServer interface {
	LoadRoster(context.Context, *LoadRosterRequest) (*LoadRosterResponse, error)
	SaveRoster(context.Context, *SaveRosterRequest) (*SaveRosterResponse, error)
	ListCharacters(context.Context, *ListCharactersRequest) (*ListCharactersResponse, error)
	SelectCharacter(context.Context, *SelectCharacterRequest) (*SelectCharacterResponse, error)
	AddCharacter(context.Context, *AddCharacterRequest) (*AddCharacterResponse, error)
	GetCharacter(context.Context, *GetCharacterRequest) (*GetCharacterResponse, error)
	AdjustAttribute(context.Context, *AdjustAttributeRequest) (*AdjustAttributeResponse, error)
	AdjustSkill(context.Context, *AdjustSkillRequest) (*AdjustSkillResponse, error)
	CheckEligibility(context.Context, *CheckEligibilityRequest) (*CheckEligibilityResponse, error)
	ListClassEligibility(context.Context, *ListClassEligibilityRequest) (*ListClassEligibilityResponse, error)
	PerformSkillCheck(context.Context, *PerformSkillCheckRequest) (*PerformSkillCheckResponse, error)
	ListDefinitions(context.Context, *ListDefinitionsRequest) (*ListDefinitionsResponse, error)
}

// UnimplementedCharacterServiceServer can be embedded to have forward
// compatible implementations
type UnimplementedCharacterServiceServer struct{}

func (UnimplementedCharacterServiceServer) LoadRoster(context.Context, *LoadRosterRequest) (*LoadRosterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method LoadRoster not implemented")
}

func (UnimplementedCharacterServiceServer) SaveRoster(context.Context, *SaveRosterRequest) (*SaveRosterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SaveRoster not implemented")
}

func (UnimplementedCharacterServiceServer) ListCharacters(context.Context, *ListCharactersRequest) (*ListCharactersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListCharacters not implemented")
}

func (UnimplementedCharacterServiceServer) SelectCharacter(context.Context, *SelectCharacterRequest) (*SelectCharacterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SelectCharacter not implemented")
}

func (UnimplementedCharacterServiceServer) AddCharacter(context.Context, *AddCharacterRequest) (*AddCharacterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddCharacter not implemented")
}

func (UnimplementedCharacterServiceServer) GetCharacter(context.Context, *GetCharacterRequest) (*GetCharacterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCharacter not implemented")
}

func (UnimplementedCharacterServiceServer) AdjustAttribute(context.Context, *AdjustAttributeRequest) (*AdjustAttributeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AdjustAttribute not implemented")
}

func (UnimplementedCharacterServiceServer) AdjustSkill(context.Context, *AdjustSkillRequest) (*AdjustSkillResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AdjustSkill not implemented")
}

func (UnimplementedCharacterServiceServer) CheckEligibility(context.Context, *CheckEligibilityRequest) (*CheckEligibilityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CheckEligibility not implemented")
}

func (UnimplementedCharacterServiceServer) ListClassEligibility(context.Context, *ListClassEligibilityRequest) (*ListClassEligibilityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListClassEligibility not implemented")
}

func (UnimplementedCharacterServiceServer) PerformSkillCheck(context.Context, *PerformSkillCheckRequest) (*PerformSkillCheckResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PerformSkillCheck not implemented")
}

func (UnimplementedCharacterServiceServer) ListDefinitions(context.Context, *ListDefinitionsRequest) (*ListDefinitionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListDefinitions not implemented")
}

// RegisterCharacterServiceServer registers srv with s
func RegisterCharacterServiceServer(s grpc.ServiceRegistrar, srv CharacterServiceServer) {
	s.RegisterService(&CharacterService_ServiceDesc, srv)
}

func _CharacterService_LoadRoster_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LoadRosterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterServiceServer).LoadRoster(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CharacterService_LoadRoster_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CharacterServiceServer).LoadRoster(ctx, req.(*LoadRosterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CharacterService_SaveRoster_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SaveRosterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterServiceServer).SaveRoster(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CharacterService_SaveRoster_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CharacterServiceServer).SaveRoster(ctx, req.(*SaveRosterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CharacterService_ListCharacters_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListCharactersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterServiceServer).ListCharacters(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CharacterService_ListCharacters_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CharacterServiceServer).ListCharacters(ctx, req.(*ListCharactersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CharacterService_SelectCharacter_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SelectCharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterServiceServer).SelectCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CharacterService_SelectCharacter_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CharacterServiceServer).SelectCharacter(ctx, req.(*SelectCharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CharacterService_AddCharacter_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AddCharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterServiceServer).AddCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CharacterService_AddCharacter_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CharacterServiceServer).AddCharacter(ctx, req.(*AddCharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CharacterService_GetCharacter_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetCharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterServiceServer).GetCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CharacterService_GetCharacter_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CharacterServiceServer).GetCharacter(ctx, req.(*GetCharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CharacterService_AdjustAttribute_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AdjustAttributeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterServiceServer).AdjustAttribute(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CharacterService_AdjustAttribute_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CharacterServiceServer).AdjustAttribute(ctx, req.(*AdjustAttributeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CharacterService_AdjustSkill_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AdjustSkillRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterServiceServer).AdjustSkill(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CharacterService_AdjustSkill_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CharacterServiceServer).AdjustSkill(ctx, req.(*AdjustSkillRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CharacterService_CheckEligibility_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CheckEligibilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterServiceServer).CheckEligibility(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CharacterService_CheckEligibility_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CharacterServiceServer).CheckEligibility(ctx, req.(*CheckEligibilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CharacterService_ListClassEligibility_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListClassEligibilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterServiceServer).ListClassEligibility(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CharacterService_ListClassEligibility_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CharacterServiceServer).ListClassEligibility(ctx, req.(*ListClassEligibilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CharacterService_PerformSkillCheck_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PerformSkillCheckRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterServiceServer).PerformSkillCheck(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CharacterService_PerformSkillCheck_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CharacterServiceServer).PerformSkillCheck(ctx, req.(*PerformSkillCheckRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CharacterService_ListDefinitions_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListDefinitionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterServiceServer).ListDefinitions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CharacterService_ListDefinitions_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CharacterServiceServer).ListDefinitions(ctx, req.(*ListDefinitionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CharacterService_ServiceDesc is the grpc.ServiceDesc for CharacterService
var CharacterService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: CharacterServiceName,
	HandlerType: (*CharacterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "LoadRoster",
			Handler:    _CharacterService_LoadRoster_Handler,
		},
		{
			MethodName: "SaveRoster",
			Handler:    _CharacterService_SaveRoster_Handler,
		},
		{
			MethodName: "ListCharacters",
			Handler:    _CharacterService_ListCharacters_Handler,
		},
		{
			MethodName: "SelectCharacter",
			Handler:    _CharacterService_SelectCharacter_Handler,
		},
		{
			MethodName: "AddCharacter",
			Handler:    _CharacterService_AddCharacter_Handler,
		},
		{
			MethodName: "GetCharacter",
			Handler:    _CharacterService_GetCharacter_Handler,
		},
		{
			MethodName: "AdjustAttribute",
			Handler:    _CharacterService_AdjustAttribute_Handler,
		},
		{
			MethodName: "AdjustSkill",
			Handler:    _CharacterService_AdjustSkill_Handler,
		},
		{
			MethodName: "CheckEligibility",
			Handler:    _CharacterService_CheckEligibility_Handler,
		},
		{
			MethodName: "ListClassEligibility",
			Handler:    _CharacterService_ListClassEligibility_Handler,
		},
		{
			MethodName: "PerformSkillCheck",
			Handler:    _CharacterService_PerformSkillCheck_Handler,
		},
		{
			MethodName: "ListDefinitions",
			Handler:    _CharacterService_ListDefinitions_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "charsheet/v1alpha1/character.json",
}
