// Package agent defines the generation agent contract and the built-in
// agent family. An agent is one independently executable unit of generation
// work: it inspects a read-only blueprint, decides whether it applies, and
// produces a result by calling the text-completion capability.
//
// Agents never let an internal error escape: network failures, malformed
// responses, and timeouts are converted into failure-shaped Results so one
// agent can never abort its siblings.
package agent
