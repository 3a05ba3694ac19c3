package orchestrator

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/projectforge/forge/internal/agent"
	"github.com/projectforge/forge/internal/blueprint"
)

const (
	// DefaultWorkers bounds how many agents run at once.
	DefaultWorkers = 4
	// DefaultAgentTimeout bounds a single agent run. A stuck remote call
	// would otherwise stall the whole join.
	DefaultAgentTimeout = 2 * time.Minute
)

// RunHook observes completed agent runs. Used for metrics.
type RunHook func(agentName string, success bool, elapsed time.Duration)

// Orchestrator holds the ordered agent registry and the concurrency
// settings for a generation run.
type Orchestrator struct {
	agents  []agent.Agent
	workers int
	timeout time.Duration

	observer Observer
	onRun    RunHook
	log      *zap.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithWorkers sets the worker pool size; values below one are ignored.
func WithWorkers(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithAgentTimeout bounds each agent run; zero disables the timeout.
func WithAgentTimeout(d time.Duration) Option {
	return func(o *Orchestrator) {
		if d >= 0 {
			o.timeout = d
		}
	}
}

// WithObserver registers a progress event callback.
func WithObserver(obs Observer) Option {
	return func(o *Orchestrator) { o.observer = obs }
}

// WithRunHook registers a per-agent completion callback.
func WithRunHook(hook RunHook) Option {
	return func(o *Orchestrator) { o.onRun = hook }
}

// WithLogger attaches a logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *Orchestrator) {
		if log != nil {
			o.log = log
		}
	}
}

// New builds an orchestrator over the given agents. Agents are sorted
// ascending by priority for deterministic enumeration; the sort is stable,
// so ties keep registration order.
func New(agents []agent.Agent, opts ...Option) *Orchestrator {
	ordered := make([]agent.Agent, len(agents))
	copy(ordered, agents)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority() < ordered[j].Priority()
	})

	o := &Orchestrator{
		agents:  ordered,
		workers: DefaultWorkers,
		timeout: DefaultAgentTimeout,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}

	o.log.Info("orchestrator initialized", zap.Int("agents", len(ordered)))
	for _, a := range ordered {
		o.log.Debug("registered agent",
			zap.String("agent", a.Name()),
			zap.Int("priority", a.Priority()),
		)
	}
	return o
}

// Agents returns metadata for every registered agent in priority order.
func (o *Orchestrator) Agents() []agent.Info {
	infos := make([]agent.Info, 0, len(o.agents))
	for _, a := range o.agents {
		infos = append(infos, agent.Describe(a))
	}
	return infos
}

// Run executes every applicable agent concurrently and waits for all of
// them before aggregating. It never panics and never returns an error: a
// fault in the scheduling layer itself produces an unsuccessful Result with
// an empty agent list.
func (o *Orchestrator) Run(ctx context.Context, bp *blueprint.Blueprint) Result {
	return o.RunObserved(ctx, bp, nil)
}

// RunObserved is Run with an additional observer scoped to this run only.
// Progress streams attach here so one client never sees another run's
// events.
func (o *Orchestrator) RunObserved(ctx context.Context, bp *blueprint.Blueprint, obs Observer) (res Result) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			o.log.Error("orchestration fault", zap.Any("panic", r))
			res = Result{Success: false, Duration: agent.Millis(time.Since(start))}
		}
	}()

	applicable := make([]agent.Agent, 0, len(o.agents))
	for _, a := range o.agents {
		if a.CanProcess(bp) {
			applicable = append(applicable, a)
		}
	}

	o.log.Info("starting orchestration",
		zap.String("project", bp.Name()),
		zap.Int("applicable", len(applicable)),
		zap.Int("registered", len(o.agents)),
	)

	results := make([]agent.Result, len(applicable))
	sem := make(chan struct{}, o.workers)
	var wg sync.WaitGroup

	for i, a := range applicable {
		wg.Add(1)
		go func(i int, a agent.Agent) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			o.emit(obs, Event{Type: EventAgentStarted, Agent: a.Name()})
			r := o.process(ctx, a, bp)
			results[i] = r
			o.emit(obs, Event{Type: EventAgentFinished, Agent: a.Name(), Result: &r})
			if o.onRun != nil {
				o.onRun(a.Name(), r.Success, r.Duration.Duration())
			}
		}(i, a)
	}
	wg.Wait()

	success := true
	for _, r := range results {
		success = success && r.Success
	}

	res = Result{
		AgentResults: results,
		Success:      success,
		Duration:     agent.Millis(time.Since(start)),
	}
	o.log.Info("orchestration completed",
		zap.Bool("success", success),
		zap.Duration("elapsed", time.Since(start)),
	)
	o.emit(obs, Event{Type: EventRunFinished, Run: &res})
	return res
}

func (o *Orchestrator) emit(obs Observer, e Event) {
	if o.observer != nil {
		o.observer(e)
	}
	if obs != nil {
		obs(e)
	}
}

// process runs one agent with the task boundary guarantees: a per-agent
// timeout when configured, and panic containment so one agent can never
// abort its siblings.
func (o *Orchestrator) process(ctx context.Context, a agent.Agent, bp *blueprint.Blueprint) (r agent.Result) {
	start := time.Now()

	defer func() {
		if rec := recover(); rec != nil {
			o.log.Error("agent panicked",
				zap.String("agent", a.Name()),
				zap.Any("panic", rec),
			)
			r = agent.Failed(a.Name(), fmt.Sprintf("%s panicked: %v", a.Name(), rec), time.Since(start))
		}
	}()

	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	return a.Process(ctx, bp)
}
