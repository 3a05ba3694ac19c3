/*
Package resilience provides a circuit breaker for guarding remote call
boundaries.

# Usage

	breaker := resilience.New("llm", resilience.Settings{
		MaxRequests: 2,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts resilience.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	result, err := breaker.Execute(func() (interface{}, error) {
		return client.Call()
	})

# States

	Closed --[failures]-> Open --[timeout]-> Half-Open --[successes]-> Closed
	                                              |
	                                         [failure]
	                                              v
	                                            Open

Closed passes requests through and counts outcomes. Open rejects
immediately with ErrCircuitOpen. Half-Open admits a bounded probe set and
closes again once the probes all succeed.
*/
package resilience
