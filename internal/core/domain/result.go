package domain

import "sync"

// RecipeFailure describes the recipe line that aborted a build.
type RecipeFailure struct {
	// Target is the name of the failed target.
	Target string
	// Line is the zero-based index of the failing line within the recipe.
	Line int
	// ExitCode is the exit code of the failing line, -1 if the command could
	// not be started at all.
	ExitCode int
}

// BuildResult summarizes one build invocation: the targets whose recipes ran
// to completion, the targets confirmed fresh, and the failure that aborted
// the run, if any. Slices are in execution order.
//
// The result is safe for concurrent updates so the parallel scheduler can
// share one instance across workers.
type BuildResult struct {
	mu       sync.Mutex
	built    []string
	upToDate []string
	failure  *RecipeFailure
}

// NewBuildResult creates an empty BuildResult.
func NewBuildResult() *BuildResult {
	return &BuildResult{}
}

// AddBuilt records that the named target was rebuilt.
func (r *BuildResult) AddBuilt(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.built = append(r.built, name)
}

// AddUpToDate records that the named target was confirmed fresh.
func (r *BuildResult) AddUpToDate(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upToDate = append(r.upToDate, name)
}

// SetFailure records the first recipe failure of the run. Later failures
// from still-draining parallel workers are ignored.
func (r *BuildResult) SetFailure(f *RecipeFailure) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failure == nil {
		r.failure = f
	}
}

// Built returns the rebuilt targets in execution order.
func (r *BuildResult) Built() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.built...)
}

// UpToDate returns the confirmed-fresh targets in execution order.
func (r *BuildResult) UpToDate() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.upToDate...)
}

// Failure returns the failure that aborted the run, nil on success.
func (r *BuildResult) Failure() *RecipeFailure {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failure
}

// Succeeded reports whether the run completed without a recipe failure.
func (r *BuildResult) Succeeded() bool {
	return r.Failure() == nil
}
