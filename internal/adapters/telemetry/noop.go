// Package telemetry provides progress-recording adapters behind
// ports.Telemetry.
package telemetry

import (
	"context"

	"go.trai.ch/msb/internal/core/ports"
)

// NoOp is a ports.Telemetry implementation that records nothing. It keeps
// tests and headless runs free of progress plumbing.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a vertex that ignores every update.
func (t *NoOp) Record(_ context.Context, _ string) ports.Vertex {
	return noopVertex{}
}

// Close does nothing.
func (t *NoOp) Close() error {
	return nil
}

type noopVertex struct{}

func (noopVertex) Complete(_ error) {}
func (noopVertex) Cached()          {}
