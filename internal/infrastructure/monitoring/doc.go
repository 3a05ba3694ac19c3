/*
Package monitoring provides Prometheus-based metrics collection.

# Overview

This package tracks HTTP requests, agent runs, generation runs, blueprint
normalization outcomes, and WebSocket activity.

# Usage

	// Create metrics collector
	metrics := monitoring.NewMetrics()

	// Add middleware to Gin router
	router.Use(monitoring.Middleware(metrics))

	// Record domain metrics
	metrics.RecordAgentRun("PRD-Analyst", true, elapsed)
	metrics.RecordNormalization("repaired")

# Metrics Endpoint

Expose metrics via the standard Prometheus endpoint:

	import "github.com/prometheus/client_golang/prometheus/promhttp"
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
*/
package monitoring
