// Package errors provides the structured error handling used across armory.
//
// This package provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("weapon definition not found")
//	err := errors.InvalidArgumentf("xp award cannot be negative: %d", amount)
//
// Adding metadata:
//
//	err := errors.NotFound("item not found").
//	    WithMeta("item_id", itemID).
//	    WithMeta("owner_id", ownerID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get loadout")
//	}
//
// Changing error semantics:
//
//	handle, err := models.ResolveModel(ctx, def)
//	if err != nil {
//	    return errors.WrapWithCodef(err, errors.CodeUnavailable,
//	        "failed to resolve model for %s", def.ID)
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("id", def.ID, vb)
//	errors.ValidateRequired("name", def.Name, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Engine layer (progression, inventory):
//   - Reject malformed input with InvalidArgument before mutating anything
//   - Report invalid state transitions as FailedPrecondition
//   - Report runtime representation failures (model resolution, rig
//     attachment) as Unavailable
//
// Repository layer:
//   - Return NotFound for missing records
//   - Wrap storage errors with context
//
// Service layer:
//   - Validate inputs and return InvalidArgument errors
//   - Wrap engine and repository errors with business context
//
// # Error Codes
//
// The following error codes are available:
//   - InvalidArgument: malformed input (negative XP, missing metadata,
//     malformed curve)
//   - NotFound: unregistered rarity, unknown item key, missing record
//   - AlreadyExists: duplicate registration
//   - FailedPrecondition: operation not valid in the current state
//   - OutOfRange: inventory index outside the valid range
//   - Unavailable: runtime resource could not be created (asset missing,
//     attachment failed)
//   - Internal: unexpected failure
package errors
