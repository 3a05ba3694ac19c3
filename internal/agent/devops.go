package agent

import (
	"context"

	"go.uber.org/zap"

	"github.com/projectforge/forge/internal/blueprint"
	"github.com/projectforge/forge/internal/llm"
)

// DevOps generates deployment and pipeline configuration.
type DevOps struct {
	base
}

// NewDevOps creates the devops agent.
func NewDevOps(client llm.Client, log *zap.Logger) *DevOps {
	return &DevOps{base: newBase(client, log)}
}

func (a *DevOps) Name() string { return "DevOps-Pipeline-Generator" }

func (a *DevOps) Description() string {
	return "Generates Docker, compose, and CI pipeline configuration"
}

func (a *DevOps) Priority() int { return 60 }

func (a *DevOps) CanProcess(bp *blueprint.Blueprint) bool {
	if bp == nil {
		return false
	}
	if bp.Deployment != nil {
		return true
	}
	return bp.TechnologyStack != nil && bp.TechnologyStack.Backend != nil
}

func (a *DevOps) Process(ctx context.Context, bp *blueprint.Blueprint) Result {
	prompt := render(promptFor("devops"), map[string]string{
		"blueprint": blueprint.Marshal(bp),
	})
	return a.generate(ctx, a.Name(), prompt, "Deployment configuration generated successfully")
}
