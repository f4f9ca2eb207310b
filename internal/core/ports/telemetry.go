package ports

import "context"

// Telemetry records per-target progress for display layers.
type Telemetry interface {
	// Record starts recording a vertex for the named target.
	Record(ctx context.Context, name string) Vertex
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one target's progress within a recording session.
type Vertex interface {
	// Complete marks the vertex finished, with err non-nil on failure.
	Complete(err error)
	// Cached marks the vertex as skipped because the target was up to date.
	Cached()
}
