// Package result provides Result[T, E], a two-variant value type holding
// either a success value (Ok) or an error value (Err), with short-circuit
// combinators over it.
//
// Key operations:
// - Ok/Err/From: construct a Result
// - IsOk/IsErr/IsOkAnd/IsErrAnd: query the variant
// - Unwrap/Expect/UnwrapOr/UnwrapOrElse/UnwrapErr/ExpectErr: extract payloads
// - Map/MapErr/AndThen/OrElse/And/Or: transform and combine Results
// - Inspect/InspectErr: side effects on the matching variant only
// - Ok/Err methods: convert either side to an Option[T]
// - Equal/DeepEqual: structural comparison gated by the discriminant
//
// Domain errors travel in the Err variant and are always recoverable.
// Misusing the extraction API (Unwrap on an Err, UnwrapErr on an Ok) is a
// programmer error, not a domain error: it aborts through the pluggable
// fatal sink (see SetFatalHandler) instead of returning anything.
package result
