// Package errors provides structured error handling for the combat-api project.
//
// Errors carry a code, a message, and optional metadata. The combat core uses
// them for the programming-error tier only: malformed calls (missing player or
// monster reference, negative amounts, unknown stat keys) surface as coded
// errors naming the operation and the invalid value. Legal calls that cannot
// succeed under current game rules never produce an error; orchestrators
// return a result with Success=false instead.
//
// Creating errors:
//
//	err := errors.NotFound("character not found")
//	err := errors.InvalidArgumentf("AwardXP: amount must be non-negative, got %d", amount)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load character")
//	}
//
// Checking errors:
//
//	if errors.IsNotFound(err) {
//	    // handle missing record
//	}
//
// Config validation uses the builder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Dice == nil {
//	    vb.RequiredField("Dice")
//	}
//	return vb.Build()
package errors
