package agent

import (
	"context"

	"go.uber.org/zap"

	"github.com/projectforge/forge/internal/blueprint"
	"github.com/projectforge/forge/internal/llm"
)

// Frontend generates the client-side application code.
type Frontend struct {
	base
}

// NewFrontend creates the frontend code agent.
func NewFrontend(client llm.Client, log *zap.Logger) *Frontend {
	return &Frontend{base: newBase(client, log)}
}

func (a *Frontend) Name() string { return "Frontend-Code-Generator" }

func (a *Frontend) Description() string {
	return "Generates frontend application code from the blueprint"
}

func (a *Frontend) Priority() int { return 40 }

func (a *Frontend) CanProcess(bp *blueprint.Blueprint) bool {
	return bp != nil && bp.TechnologyStack != nil &&
		bp.TechnologyStack.Frontend != nil &&
		bp.TechnologyStack.Frontend.Framework != ""
}

func (a *Frontend) Process(ctx context.Context, bp *blueprint.Blueprint) Result {
	prompt := render(promptFor("frontend"), map[string]string{
		"blueprint": blueprint.Marshal(bp),
	})
	return a.generate(ctx, a.Name(), prompt, "Frontend code generated successfully")
}
