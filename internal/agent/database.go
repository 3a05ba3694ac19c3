package agent

import (
	"context"

	"go.uber.org/zap"

	"github.com/projectforge/forge/internal/blueprint"
	"github.com/projectforge/forge/internal/llm"
)

// Database generates schema migrations and the persistence layer.
type Database struct {
	base
}

// NewDatabase creates the database agent.
func NewDatabase(client llm.Client, log *zap.Logger) *Database {
	return &Database{base: newBase(client, log)}
}

func (a *Database) Name() string { return "Database-Schema-Generator" }

func (a *Database) Description() string {
	return "Generates database migrations and persistence code from the schema"
}

// Runs before backend code generation in enumeration order.
func (a *Database) Priority() int { return 20 }

func (a *Database) CanProcess(bp *blueprint.Blueprint) bool {
	return bp != nil && bp.DatabaseSchema != nil && len(bp.DatabaseSchema.AllEntities()) > 0
}

func (a *Database) Process(ctx context.Context, bp *blueprint.Blueprint) Result {
	prompt := render(promptFor("database"), map[string]string{
		"blueprint": blueprint.Marshal(bp),
	})
	return a.generate(ctx, a.Name(), prompt, "Database layer generated successfully")
}
