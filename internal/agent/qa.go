package agent

import (
	"context"

	"go.uber.org/zap"

	"github.com/projectforge/forge/internal/blueprint"
	"github.com/projectforge/forge/internal/llm"
)

// QA generates the project test suite.
type QA struct {
	base
}

// NewQA creates the QA testing agent.
func NewQA(client llm.Client, log *zap.Logger) *QA {
	return &QA{base: newBase(client, log)}
}

func (a *QA) Name() string { return "QA-Testing-Generator" }

func (a *QA) Description() string {
	return "Generates unit and integration tests for the project"
}

func (a *QA) Priority() int { return 70 }

// Testing is always needed.
func (a *QA) CanProcess(*blueprint.Blueprint) bool { return true }

func (a *QA) Process(ctx context.Context, bp *blueprint.Blueprint) Result {
	prompt := render(promptFor("qa"), map[string]string{
		"blueprint": blueprint.Marshal(bp),
	})
	return a.generate(ctx, a.Name(), prompt, "Test suite generated successfully")
}
