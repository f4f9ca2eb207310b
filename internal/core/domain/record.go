package domain

import "sync"

// TargetStatus is the state of a target within a single build invocation.
type TargetStatus string

const (
	// StatusNotVisited indicates the target has not been evaluated yet.
	StatusNotVisited TargetStatus = "NotVisited"
	// StatusStale indicates the target was evaluated and must be rebuilt.
	StatusStale TargetStatus = "Stale"
	// StatusUpToDate indicates the target was evaluated and needs no rebuild.
	StatusUpToDate TargetStatus = "UpToDate"
	// StatusBuilt indicates the target's recipe ran to completion this run.
	StatusBuilt TargetStatus = "Built"
	// StatusFailed indicates a recipe line of the target exited nonzero.
	StatusFailed TargetStatus = "Failed"
)

// Rebuilt reports whether the status implies the target was (or will be)
// rebuilt this run. A dependent of such a target must itself rebuild,
// regardless of its own timestamps: its inputs may include the dependency's
// freshly produced outputs.
func (s TargetStatus) Rebuilt() bool {
	return s == StatusStale || s == StatusBuilt || s == StatusFailed
}

// BuildRecord memoizes per-target state for a single invocation so that a
// target shared by multiple dependents is evaluated and built at most once.
// It is created empty at the start of a build and discarded at the end;
// nothing about it persists between runs — the only durable evidence of a
// prior build is the on-disk timestamps of output files.
type BuildRecord struct {
	mu     sync.RWMutex
	status map[InternedString]TargetStatus
}

// NewBuildRecord creates an empty BuildRecord.
func NewBuildRecord() *BuildRecord {
	return &BuildRecord{
		status: make(map[InternedString]TargetStatus),
	}
}

// Status returns the recorded status of the named target, StatusNotVisited
// if none has been recorded.
func (r *BuildRecord) Status(name InternedString) TargetStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.status[name]; ok {
		return s
	}
	return StatusNotVisited
}

// SetStatus records the status of the named target.
func (r *BuildRecord) SetStatus(name InternedString, s TargetStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status[name] = s
}
