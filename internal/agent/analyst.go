package agent

import (
	"context"

	"go.uber.org/zap"

	"github.com/projectforge/forge/internal/blueprint"
	"github.com/projectforge/forge/internal/llm"
)

// Analyst turns PRD text into a structured blueprint. It always applies and
// runs conceptually first.
type Analyst struct {
	base
}

// NewAnalyst creates the PRD analyst agent.
func NewAnalyst(client llm.Client, log *zap.Logger) *Analyst {
	return &Analyst{base: newBase(client, log)}
}

func (a *Analyst) Name() string { return "PRD-Analyst" }

func (a *Analyst) Description() string {
	return "Analyzes PRD documents and creates structured project blueprints"
}

func (a *Analyst) Priority() int { return 1 }

// CanProcess always returns true: initial blueprint analysis applies to
// every generation run.
func (a *Analyst) CanProcess(*blueprint.Blueprint) bool { return true }

func (a *Analyst) Process(ctx context.Context, bp *blueprint.Blueprint) Result {
	prompt := render(promptFor("analyst"), map[string]string{
		"prd_content": "",
		"blueprint":   blueprint.Marshal(bp),
	})
	return a.generate(ctx, a.Name(), prompt, "PRD analysis completed successfully")
}

// AnalyzePRD produces raw blueprint text from PRD content. The caller runs
// the result through the normalizer; errors here are the only ones the
// analyst surfaces directly.
func (a *Analyst) AnalyzePRD(ctx context.Context, prdContent string, bp *blueprint.Blueprint) (string, error) {
	prompt := render(promptFor("analyst"), map[string]string{
		"prd_content": prdContent,
		"blueprint":   blueprint.Marshal(bp),
	})
	return a.llm.Complete(ctx, prompt)
}
