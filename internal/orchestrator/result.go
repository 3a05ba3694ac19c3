package orchestrator

import "github.com/projectforge/forge/internal/agent"

// Result is the immutable outcome of one orchestration run. AgentResults
// preserves dispatch order regardless of completion order; Success is the
// logical AND of every individual success.
type Result struct {
	AgentResults []agent.Result `json:"agent_results"`
	Success      bool           `json:"success"`
	Duration     agent.Millis   `json:"total_duration_ms"`
}

// EventType classifies orchestration progress events.
type EventType string

const (
	EventAgentStarted  EventType = "agent_started"
	EventAgentFinished EventType = "agent_finished"
	EventRunFinished   EventType = "run_finished"
)

// Event is one orchestration progress notification.
type Event struct {
	Type   EventType     `json:"type"`
	Agent  string        `json:"agent,omitempty"`
	Result *agent.Result `json:"result,omitempty"`
	Run    *Result       `json:"run,omitempty"`
}

// Observer receives orchestration events. Observers are called from worker
// goroutines and must be safe for concurrent use.
type Observer func(Event)
