package resilience

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func run(b *Breaker, ok bool) error {
	_, err := b.Execute(func() (interface{}, error) {
		if ok {
			return "ok", nil
		}
		return nil, errBoom
	})
	return err
}

func tripAfter(n uint32) func(Counts) bool {
	return func(c Counts) bool { return c.ConsecutiveFailures >= n }
}

func TestBreakerStaysClosedOnSuccess(t *testing.T) {
	b := New("test", Settings{})

	for i := 0; i < 10; i++ {
		require.NoError(t, run(b, true))
	}

	assert.Equal(t, StateClosed, b.State())
	counts := b.Counts()
	assert.Equal(t, uint32(10), counts.Requests)
	assert.Equal(t, uint32(10), counts.ConsecutiveSuccesses)
}

func TestBreakerTripsOnConsecutiveFailures(t *testing.T) {
	b := New("test", Settings{ReadyToTrip: tripAfter(3)})

	for i := 0; i < 3; i++ {
		assert.Equal(t, errBoom, run(b, false))
	}

	assert.Equal(t, StateOpen, b.State())
	assert.Equal(t, ErrCircuitOpen, run(b, true))
}

func TestBreakerCountTracking(t *testing.T) {
	b := New("test", Settings{})

	require.NoError(t, run(b, true))

	counts := b.Counts()
	assert.Equal(t, uint32(1), counts.TotalSuccesses)
	assert.Equal(t, uint32(0), counts.TotalFailures)

	assert.Equal(t, errBoom, run(b, false))

	counts = b.Counts()
	assert.Equal(t, uint32(2), counts.Requests)
	assert.Equal(t, uint32(1), counts.TotalFailures)
	assert.Equal(t, uint32(1), counts.ConsecutiveFailures)
	assert.Equal(t, uint32(0), counts.ConsecutiveSuccesses)
}

func TestBreakerRecoversThroughHalfOpen(t *testing.T) {
	b := New("test", Settings{
		MaxRequests: 2,
		Timeout:     20 * time.Millisecond,
		ReadyToTrip: tripAfter(2),
	})

	run(b, false)
	run(b, false)
	require.Equal(t, StateOpen, b.State())

	time.Sleep(30 * time.Millisecond)
	require.Equal(t, StateHalfOpen, b.State())

	require.NoError(t, run(b, true))
	require.NoError(t, run(b, true))
	assert.Equal(t, StateClosed, b.State())
}

func TestBreakerHalfOpenFailureReopens(t *testing.T) {
	b := New("test", Settings{
		Timeout:     20 * time.Millisecond,
		ReadyToTrip: tripAfter(2),
	})

	run(b, false)
	run(b, false)
	require.Equal(t, StateOpen, b.State())

	time.Sleep(30 * time.Millisecond)
	require.Equal(t, StateHalfOpen, b.State())

	assert.Equal(t, errBoom, run(b, false))
	assert.Equal(t, StateOpen, b.State())
}

func TestBreakerHalfOpenLimitsProbes(t *testing.T) {
	b := New("test", Settings{
		MaxRequests: 1,
		Timeout:     20 * time.Millisecond,
		ReadyToTrip: tripAfter(1),
	})

	run(b, false)
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, StateHalfOpen, b.State())

	got := make(chan error, 1)
	release := make(chan struct{})
	go func() {
		_, err := b.Execute(func() (interface{}, error) {
			<-release
			return "ok", nil
		})
		got <- err
	}()

	// The single probe slot is occupied.
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, ErrTooManyRequests, run(b, true))

	close(release)
	require.NoError(t, <-got)
}

func TestBreakerStateChangeCallback(t *testing.T) {
	var transitions []string

	b := New("test", Settings{
		Timeout:     20 * time.Millisecond,
		ReadyToTrip: tripAfter(2),
		OnStateChange: func(name string, from, to State) {
			transitions = append(transitions, from.String()+"->"+to.String())
		},
	})

	run(b, false)
	run(b, false)
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, StateHalfOpen, b.State())

	assert.Contains(t, transitions, "closed->open")
	assert.Contains(t, transitions, "open->half-open")
}

func TestBreakerPanicCountsAsFailure(t *testing.T) {
	b := New("test", Settings{ReadyToTrip: tripAfter(1)})

	assert.Panics(t, func() {
		_, _ = b.Execute(func() (interface{}, error) {
			panic("agent misbehaved")
		})
	})

	assert.Equal(t, StateOpen, b.State())
}
