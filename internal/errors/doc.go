// Package errors provides structured errors for the rpg-charsheet service.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// optional metadata. Codes survive wrapping, so a NotFound raised by the
// roster lookup is still a NotFound when it reaches the gRPC handler.
//
// # Basic Usage
//
//	err := errors.NotFoundf("character %d not found", id).
//	    WithMeta("player_id", playerID)
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save roster")
//	}
//
// # Checking
//
//	if errors.IsNotFound(err) {
//	    // unknown character, skill or class
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("player_id", input.PlayerID, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer Guidelines
//
// Rules engine: NotFound for unknown attribute, skill or class names. A
// mutation rejected by a budget is not an error.
//
// Repositories: Unavailable for upstream failures, Internal for encoding
// failures. The orchestrator never lets these reach the rules engine.
//
// Handlers: convert with ToGRPCError before returning.
package errors
