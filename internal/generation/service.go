package generation

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/projectforge/forge/internal/agent"
	"github.com/projectforge/forge/internal/blueprint"
	"github.com/projectforge/forge/internal/orchestrator"
)

// CompletedHook observes finished generation runs. Used for metrics.
type CompletedHook func(success bool, elapsed time.Duration)

// Service drives a generation run end to end. A PRD goes through the
// analyst first; its raw completion is normalized into a blueprint before
// the orchestrator fans out the remaining agents.
type Service struct {
	analyst *agent.Analyst
	norm    *blueprint.Normalizer
	orch    *orchestrator.Orchestrator

	onCompleted CompletedHook
	onEnter     func()
	onExit      func()
	log         *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger attaches a logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithCompletedHook registers a per-run completion callback.
func WithCompletedHook(hook CompletedHook) Option {
	return func(s *Service) { s.onCompleted = hook }
}

// WithInFlightHooks registers callbacks fired as a run enters and leaves the
// pipeline. Used for gauge metrics.
func WithInFlightHooks(enter, exit func()) Option {
	return func(s *Service) {
		s.onEnter = enter
		s.onExit = exit
	}
}

// NewService wires the pipeline stages together.
func NewService(analyst *agent.Analyst, norm *blueprint.Normalizer, orch *orchestrator.Orchestrator, opts ...Option) *Service {
	s := &Service{
		analyst: analyst,
		norm:    norm,
		orch:    orch,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Output is the result of a generation run: the blueprint the agents worked
// from plus the orchestration outcome.
type Output struct {
	Blueprint *blueprint.Blueprint `json:"blueprint"`
	Run       orchestrator.Result  `json:"run"`
}

// FromPRD analyzes raw PRD text into a blueprint and orchestrates the agent
// fleet against it. The analyst's completion is normalized defensively, so a
// malformed completion degrades to a repaired or fallback blueprint rather
// than an error; only a failed analysis call itself is surfaced. obs may be
// nil.
func (s *Service) FromPRD(ctx context.Context, prd string, obs orchestrator.Observer) (*Output, error) {
	s.log.Info("generation from PRD started", zap.Int("prd_bytes", len(prd)))

	raw, err := s.analyst.AnalyzePRD(ctx, prd, &blueprint.Blueprint{})
	if err != nil {
		s.log.Error("PRD analysis failed", zap.Error(err))
		return nil, err
	}

	bp := s.norm.Normalize(raw)
	return s.FromBlueprint(ctx, bp, obs), nil
}

// FromBlueprint orchestrates the agent fleet against an already-structured
// blueprint. obs may be nil.
func (s *Service) FromBlueprint(ctx context.Context, bp *blueprint.Blueprint, obs orchestrator.Observer) *Output {
	if s.onEnter != nil {
		s.onEnter()
	}
	if s.onExit != nil {
		defer s.onExit()
	}

	start := time.Now()
	run := s.orch.RunObserved(ctx, bp, obs)

	if s.onCompleted != nil {
		s.onCompleted(run.Success, time.Since(start))
	}
	s.log.Info("generation finished",
		zap.String("project", bp.Name()),
		zap.Bool("success", run.Success),
		zap.Int("agents", len(run.AgentResults)),
	)
	return &Output{Blueprint: bp, Run: run}
}
