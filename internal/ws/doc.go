// Package ws provides WebSocket handling for streaming generation progress.
//
// A client submits a generate request and receives orchestration events as
// the agent fleet works through the blueprint.
//
// Message Types (Client → Server):
//   - generate: start a generation run from PRD text or a blueprint
//   - ping: keep-alive ping
//
// Message Types (Server → Client):
//   - system: connection established
//   - generation_start: run accepted
//   - agent_started / agent_finished: per-agent progress
//   - complete: final generation output
//   - error: request failed
//
// Example Usage:
//
//	handler := ws.NewHandler(svc, metrics, logger)
//	router.GET("/ws", handler.HandleConnection)
package ws
