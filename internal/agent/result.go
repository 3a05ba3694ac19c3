package agent

import (
	"time"

	"github.com/bytedance/sonic"
)

// Millis serializes a duration as whole milliseconds.
type Millis time.Duration

// MarshalJSON renders the duration in milliseconds.
func (m Millis) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(time.Duration(m).Milliseconds())
}

// UnmarshalJSON reads a millisecond count.
func (m *Millis) UnmarshalJSON(data []byte) error {
	var ms int64
	if err := sonic.Unmarshal(data, &ms); err != nil {
		return err
	}
	*m = Millis(time.Duration(ms) * time.Millisecond)
	return nil
}

// Duration converts back to a time.Duration.
func (m Millis) Duration() time.Duration { return time.Duration(m) }

// Result is the immutable outcome of one agent run. Output is only
// meaningful when Success is true.
type Result struct {
	Agent    string `json:"agent"`
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Output   any    `json:"output,omitempty"`
	Duration Millis `json:"duration_ms"`
}

// Succeeded builds a success result.
func Succeeded(agent, message string, output any, elapsed time.Duration) Result {
	return Result{
		Agent:    agent,
		Success:  true,
		Message:  message,
		Output:   output,
		Duration: Millis(elapsed),
	}
}

// Failed builds a failure result. The elapsed time covers work up to the
// point of failure.
func Failed(agent, message string, elapsed time.Duration) Result {
	return Result{
		Agent:    agent,
		Success:  false,
		Message:  message,
		Duration: Millis(elapsed),
	}
}
