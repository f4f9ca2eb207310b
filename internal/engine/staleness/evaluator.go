// Package staleness decides which targets must be rebuilt, using file
// modification timestamps and the per-run build record.
package staleness

import (
	"time"

	"go.trai.ch/msb/internal/core/domain"
	"go.trai.ch/msb/internal/core/ports"
)

// Evaluator determines whether a target must be rebuilt, recursively through
// its dependencies. Results are memoized in the BuildRecord: once a target
// has any status other than NotVisited it is never re-evaluated within the
// run, even if recipes change timestamps afterwards.
type Evaluator struct {
	stat ports.FileStat
}

// NewEvaluator creates a new Evaluator over the given filesystem probe.
func NewEvaluator(stat ports.FileStat) *Evaluator {
	return &Evaluator{stat: stat}
}

// IsStale reports whether the named target must be rebuilt:
//
//   - a target with no declared outputs is always stale (phony semantics);
//   - a target is stale if any declared output is missing on disk;
//   - a target is stale if any input is strictly newer than any output
//     (equal timestamps are treated as fresh);
//   - a target is stale if any dependency is itself stale, was rebuilt, or
//     failed this run, regardless of the target's own timestamps.
//
// The decision is recorded as StatusStale or StatusUpToDate.
func (e *Evaluator) IsStale(graph *domain.Graph, name domain.InternedString, rec *domain.BuildRecord) (bool, error) {
	switch status := rec.Status(name); status {
	case domain.StatusUpToDate:
		return false, nil
	case domain.StatusStale, domain.StatusBuilt, domain.StatusFailed:
		return true, nil
	case domain.StatusNotVisited:
	}

	target, err := graph.Target(name)
	if err != nil {
		return false, err
	}

	stale, err := e.evaluate(graph, &target, rec)
	if err != nil {
		return false, err
	}

	if stale {
		rec.SetStatus(name, domain.StatusStale)
	} else {
		rec.SetStatus(name, domain.StatusUpToDate)
	}
	return stale, nil
}

func (e *Evaluator) evaluate(graph *domain.Graph, target *domain.Target, rec *domain.BuildRecord) (bool, error) {
	// Dependencies first: one that had to be rebuilt forces a rebuild here,
	// because this target's inputs may include its freshly produced outputs.
	for _, dep := range target.Dependencies {
		depStale, err := e.IsStale(graph, dep, rec)
		if err != nil {
			return false, err
		}
		if depStale {
			return true, nil
		}
	}

	// Nothing to compare against: rebuild on every invocation.
	if target.Phony() {
		return true, nil
	}

	oldestOutput, ok, err := e.oldestOutput(target)
	if err != nil {
		return false, err
	}
	if !ok {
		return true, nil
	}

	for _, input := range target.Inputs {
		mtime, exists, err := e.stat.ModTime(input.String())
		if err != nil {
			return false, err
		}
		// A missing input may be produced by a dependency's recipe later in
		// this run; treat it as stale rather than failing the evaluation.
		if !exists {
			return true, nil
		}
		if mtime.After(oldestOutput) {
			return true, nil
		}
	}
	return false, nil
}

// oldestOutput returns the oldest output timestamp. ok is false when any
// output is missing on disk, which by itself makes the target stale.
func (e *Evaluator) oldestOutput(target *domain.Target) (oldest time.Time, ok bool, err error) {
	for i, output := range target.Outputs {
		mtime, exists, err := e.stat.ModTime(output.String())
		if err != nil {
			return time.Time{}, false, err
		}
		if !exists {
			return time.Time{}, false, nil
		}
		if i == 0 || mtime.Before(oldest) {
			oldest = mtime
		}
	}
	return oldest, true, nil
}
