// Package llm abstracts the remote text-completion capability that agents
// call. The engine core only depends on the Client interface; the HTTP
// implementation adds retries, rate limiting, and a circuit breaker around
// the provider endpoint.
package llm
