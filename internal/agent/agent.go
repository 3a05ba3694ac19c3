package agent

import (
	"context"

	"github.com/projectforge/forge/internal/blueprint"
)

// Agent is one unit of generation work. Implementations must treat the
// blueprint as read-only: augmentation happens in the Result, never in the
// shared input.
type Agent interface {
	// Name identifies the agent in results and logs.
	Name() string

	// Description is human-readable agent metadata.
	Description() string

	// Priority orders agents for enumeration and reporting; lower runs
	// conceptually earlier. It does not enforce sequential dependency:
	// all applicable agents execute concurrently.
	Priority() int

	// CanProcess reports whether the agent applies to the blueprint.
	// It must be a pure predicate; false means "skip silently".
	CanProcess(bp *blueprint.Blueprint) bool

	// Process executes the agent's work. It must never panic and must
	// convert every internal error into a failure Result.
	Process(ctx context.Context, bp *blueprint.Blueprint) Result
}

// Info is the static metadata of a registered agent.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
}

// Describe extracts the metadata record of an agent.
func Describe(a Agent) Info {
	return Info{
		Name:        a.Name(),
		Description: a.Description(),
		Priority:    a.Priority(),
	}
}
