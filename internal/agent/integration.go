package agent

import (
	"context"

	"go.uber.org/zap"

	"github.com/projectforge/forge/internal/blueprint"
	"github.com/projectforge/forge/internal/llm"
)

// Integration assembles the cross-tier wiring of the generated project.
type Integration struct {
	base
}

// NewIntegration creates the integration assembly agent.
func NewIntegration(client llm.Client, log *zap.Logger) *Integration {
	return &Integration{base: newBase(client, log)}
}

func (a *Integration) Name() string { return "Integration-Assembly-Agent" }

func (a *Integration) Description() string {
	return "Ties frontend, backend, and database together into a runnable project"
}

// Lowest priority: enumerated last.
func (a *Integration) Priority() int { return 90 }

func (a *Integration) CanProcess(*blueprint.Blueprint) bool { return true }

func (a *Integration) Process(ctx context.Context, bp *blueprint.Blueprint) Result {
	prompt := render(promptFor("integration"), map[string]string{
		"blueprint": blueprint.Marshal(bp),
	})
	return a.generate(ctx, a.Name(), prompt, "Integration assembly generated successfully")
}
