package agent

import (
	"context"

	"go.uber.org/zap"

	"github.com/projectforge/forge/internal/blueprint"
	"github.com/projectforge/forge/internal/llm"
)

// Structure decides the final directory layout of all generated artifacts.
type Structure struct {
	base
}

// NewStructure creates the code structuring agent.
func NewStructure(client llm.Client, log *zap.Logger) *Structure {
	return &Structure{base: newBase(client, log)}
}

func (a *Structure) Name() string { return "Code-Structuring-Agent" }

func (a *Structure) Description() string {
	return "Organizes generated artifacts into the final project layout"
}

func (a *Structure) Priority() int { return 80 }

func (a *Structure) CanProcess(*blueprint.Blueprint) bool { return true }

func (a *Structure) Process(ctx context.Context, bp *blueprint.Blueprint) Result {
	prompt := render(promptFor("structure"), map[string]string{
		"blueprint": blueprint.Marshal(bp),
	})
	return a.generate(ctx, a.Name(), prompt, "Project structure generated successfully")
}
