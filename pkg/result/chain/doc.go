// Package chain provides a fluent wrapper around result.Result[T, E]
// for building synchronous short-circuiting pipelines.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or value
// - Then/Map/Recover (methods): type-preserving steps
// - Then/Map/Try (functions): steps that switch the value type
// - Ensure: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
//
// A chain carries a uuid identity and a UTC start time that are preserved
// across all steps, which makes pipelines traceable in logs and tests.
package chain
