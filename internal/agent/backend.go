package agent

import (
	"context"

	"go.uber.org/zap"

	"github.com/projectforge/forge/internal/blueprint"
	"github.com/projectforge/forge/internal/llm"
)

// Backend generates the server-side application code.
type Backend struct {
	base
}

// NewBackend creates the backend code agent.
func NewBackend(client llm.Client, log *zap.Logger) *Backend {
	return &Backend{base: newBase(client, log)}
}

func (a *Backend) Name() string { return "Backend-Code-Generator" }

func (a *Backend) Description() string {
	return "Generates complete backend application code from the blueprint"
}

func (a *Backend) Priority() int { return 30 }

func (a *Backend) CanProcess(bp *blueprint.Blueprint) bool {
	return bp != nil && bp.TechnologyStack != nil &&
		bp.TechnologyStack.Backend != nil &&
		bp.TechnologyStack.Backend.Framework != ""
}

func (a *Backend) Process(ctx context.Context, bp *blueprint.Blueprint) Result {
	prompt := render(promptFor("backend"), map[string]string{
		"blueprint": blueprint.Marshal(bp),
	})
	return a.generate(ctx, a.Name(), prompt, "Backend code generated successfully")
}
