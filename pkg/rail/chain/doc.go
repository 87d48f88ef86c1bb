// Package chain provides a fluent wrapper around rail.Result[T]
// for building synchronous railway chains using solo primitives.
//
// It composes functions like Check, Switch, Map, Try, Tee, and Finally
// behind a convenient Chain[T] type. This enables ergonomic pipelines
// without dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or a tagged value
// - Check/Validate: divert to the failure track on invalid input
// - Then: switch to a new result via a function (same-type method,
//   type-changing free function)
// - ThenTry/TryTo: call a function (U, error) and convert error to failure
// - Map/MapTo: transform the successful value
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
