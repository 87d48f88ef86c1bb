// Package pipe lifts the solo primitives over channels for concurrent
// validation pipelines: feed values with ToResults, fan stages over workers
// with Run/Turnout, and collapse the stream with Finally.
//
// Per-item semantics are identical to solo; what pipe adds is fan-out
// (output order across workers is not guaranteed) and cancellation routing:
// items caught in flight when the context expires are forwarded as cancels
// so nothing silently disappears from the stream.
package pipe
