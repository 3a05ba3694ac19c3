// Package blueprint defines the project blueprint document shared by all
// generation agents, plus the defensive normalizer that coerces untrusted
// generator output into that shape.
//
// The blueprint is created once per generation request, is read-only from
// every agent's perspective, and is discarded once the orchestration result
// has been produced.
package blueprint
