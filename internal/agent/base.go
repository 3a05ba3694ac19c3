package agent

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/projectforge/forge/internal/blueprint"
	"github.com/projectforge/forge/internal/llm"
)

// base carries the dependencies shared by every built-in agent.
type base struct {
	llm llm.Client
	log *zap.Logger
}

func newBase(client llm.Client, log *zap.Logger) base {
	if log == nil {
		log = zap.NewNop()
	}
	return base{llm: client, log: log}
}

// generate runs a rendered prompt through the completion capability and
// converts any error into a failure Result. The completion text is decoded
// into a structured payload when possible; otherwise the raw text is kept.
func (b base) generate(ctx context.Context, name, prompt, successMsg string) Result {
	start := time.Now()

	text, err := b.llm.Complete(ctx, prompt)
	if err != nil {
		b.log.Warn("agent run failed",
			zap.String("agent", name),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return Failed(name, fmt.Sprintf("%s failed: %v", name, err), time.Since(start))
	}

	var output any = text
	if obj, ok := blueprint.ExtractObject(text); ok {
		output = obj
	}

	b.log.Info("agent run finished",
		zap.String("agent", name),
		zap.Duration("elapsed", time.Since(start)),
	)
	return Succeeded(name, successMsg, output, time.Since(start))
}
