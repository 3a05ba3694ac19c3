// Package orchestrator runs the applicable subset of registered agents
// concurrently against a shared read-only blueprint and aggregates their
// outcomes into one composite result.
//
// The orchestrator never propagates a fault to its caller: agent panics are
// contained per task, and a failure in the scheduling layer itself yields a
// well-formed unsuccessful result with no agent entries.
package orchestrator
