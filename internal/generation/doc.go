// Package generation composes the full pipeline: PRD analysis, blueprint
// normalization, and agent orchestration.
package generation
