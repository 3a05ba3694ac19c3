// Package main is the entry point for the forge generation server.
//
// The server turns product requirement documents into structured project
// blueprints and fans the blueprint out to a fleet of code-generation
// agents.
//
// The server provides:
//   - REST API for blueprint normalization and generation runs
//   - WebSocket streaming of per-agent progress
//   - Prometheus metrics
//   - Rate limiting and CORS
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8080
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
