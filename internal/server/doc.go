// Package server provides HTTP routing and lifecycle for the generation
// service.
//
// Server Lifecycle:
//  1. Load configuration from environment
//  2. Initialize logger (production or development)
//  3. Build the LLM client, agent fleet, and orchestrator
//  4. Setup HTTP routes and middleware
//  5. Start HTTP server
//  6. Graceful shutdown on signal
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	srv := server.New(cfg, deps)
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
