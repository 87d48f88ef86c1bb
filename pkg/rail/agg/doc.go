// Package agg collects failures from independent validations instead of
// stopping at the first one.
//
// Chained checks (package solo, package chain) follow railway semantics:
// the first failure short-circuits the rest. When checks are logically
// independent, like the name and the password of the same record, all
// failures should be reported together. UnwrapOr attempts each check
// in sequence, buffering failures in order, and ToError/Wrap merge the
// buffer into one aggregate rail.Error whose causes preserve that order.
//
// A Failures buffer belongs to exactly one validation group; create a new
// one per group and never share it across goroutines.
package agg
