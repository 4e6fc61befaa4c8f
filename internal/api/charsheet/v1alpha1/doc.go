// Package v1alpha1 defines the charsheet.v1alpha1.CharacterService wire
// contract: message types, the gRPC service descriptor and a client.
//
// Messages travel as JSON. The codec is registered under the "json"
// content-subtype, so clients must call with grpc.CallContentSubtype(CodecName);
// the client returned by NewCharacterServiceClient does this for every call.
package v1alpha1
