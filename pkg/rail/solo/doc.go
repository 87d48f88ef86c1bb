// Package solo contains single-value, synchronous railway primitives that
// operate on rail.Result[T]. These functions form the core building blocks
// for error-aware validation chains without channels.
//
// Highlights:
// - Succeed/Lift/Fail/Cancel: construct rail.Result[T]
// - Check/CheckAll: predicate checks producing failure on invalid input
// - Validate/AndValidate: validation where the validator supplies the message
// - Switch: move from Result[In] to Result[Out] (monadic bind)
// - Map/DoubleMap: transform successful values (with optional error/cancel maps)
// - Try: call a function (Out, error) and convert error to failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error/cancel handlers
//
// Once a result is on the failure track every later Check/Map is a no-op
// passthrough; only Switch and Try can introduce a new failure mid-chain.
package solo
