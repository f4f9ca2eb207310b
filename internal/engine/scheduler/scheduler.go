// Package scheduler walks the dependency graph in build order and rebuilds
// the targets the staleness evaluator marks stale.
package scheduler

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/msb/internal/core/domain"
	"go.trai.ch/msb/internal/core/ports"
	"go.trai.ch/msb/internal/engine/staleness"
	"go.trai.ch/zerr"
)

// Scheduler executes the build order for a goal target.
type Scheduler struct {
	runner    ports.Runner
	evaluator *staleness.Evaluator
	logger    ports.Logger
	telemetry ports.Telemetry
}

// NewScheduler creates a new Scheduler.
func NewScheduler(
	runner ports.Runner,
	evaluator *staleness.Evaluator,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Scheduler {
	return &Scheduler{
		runner:    runner,
		evaluator: evaluator,
		logger:    logger,
		telemetry: telemetry,
	}
}

// Run builds the transitive closure of the goal target in dependency order.
// jobs greater than one enables the parallel mode, which preserves the
// partial order induced by the graph; anything else executes the build order
// sequentially, one recipe line at a time.
//
// The returned result is populated even when the build aborts, so callers
// can report what completed before the failure.
func (s *Scheduler) Run(ctx context.Context, graph *domain.Graph, goal string, jobs int) (*domain.BuildResult, error) {
	order, err := graph.Closure(domain.NewInternedString(goal))
	if err != nil {
		return nil, err
	}

	rec := domain.NewBuildRecord()
	res := domain.NewBuildResult()

	if jobs > 1 {
		err = s.runParallel(ctx, graph, order, jobs, rec, res)
	} else {
		err = s.runSequential(ctx, graph, order, rec, res)
	}
	return res, err
}

func (s *Scheduler) runSequential(
	ctx context.Context,
	graph *domain.Graph,
	order []domain.InternedString,
	rec *domain.BuildRecord,
	res *domain.BuildResult,
) error {
	for _, name := range order {
		if err := ctx.Err(); err != nil {
			return zerr.Wrap(err, "build interrupted")
		}
		if err := s.buildOne(ctx, graph, name, rec, res); err != nil {
			return err
		}
	}
	return nil
}

type result struct {
	name domain.InternedString
	err  error
}

// runParallel dispatches targets whose dependency gate reached zero to a
// bounded worker group. A target starts only after every dependency reached
// a terminal state, so the record a worker consults is always settled for
// the targets it reads.
func (s *Scheduler) runParallel(
	ctx context.Context,
	graph *domain.Graph,
	order []domain.InternedString,
	jobs int,
	rec *domain.BuildRecord,
	res *domain.BuildResult,
) error {
	inDegree := make(map[domain.InternedString]int, len(order))
	dependents := make(map[domain.InternedString][]domain.InternedString, len(order))
	for _, name := range order {
		deps := graph.Dependencies(name)
		// Every dependency of a closure member is itself in the closure, so
		// the gate counts are complete.
		inDegree[name] = len(deps)
		for _, dep := range deps {
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var ready []domain.InternedString
	for _, name := range order {
		if inDegree[name] == 0 {
			ready = append(ready, name)
		}
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(jobs)
	results := make(chan result, len(order))

	remaining := len(order)
	var firstErr error
	for remaining > 0 {
		for _, name := range ready {
			eg.Go(func() error {
				err := s.buildOne(ctx, graph, name, rec, res)
				results <- result{name: name, err: err}
				return err
			})
		}
		ready = ready[:0]

		r := <-results
		remaining--
		if r.err != nil {
			// First failure wins. Not-yet-started targets are abandoned;
			// in-flight ones are joined below.
			firstErr = r.err
			break
		}
		for _, d := range dependents[r.name] {
			inDegree[d]--
			if inDegree[d] == 0 {
				ready = append(ready, d)
			}
		}
	}

	_ = eg.Wait() // best-effort join; the first error is already captured
	return firstErr
}

// buildOne evaluates one target and, when stale, executes its recipe lines
// in order. The caller guarantees every dependency has already reached a
// terminal state this run.
func (s *Scheduler) buildOne(
	ctx context.Context,
	graph *domain.Graph,
	name domain.InternedString,
	rec *domain.BuildRecord,
	res *domain.BuildResult,
) error {
	stale, err := s.evaluator.IsStale(graph, name, rec)
	if err != nil {
		return err
	}

	if !stale {
		s.logger.Info(fmt.Sprintf("%s is up to date", name.String()))
		s.telemetry.Record(ctx, name.String()).Cached()
		res.AddUpToDate(name.String())
		return nil
	}

	target, err := graph.Target(name)
	if err != nil {
		return err
	}

	vertex := s.telemetry.Record(ctx, name.String())
	for i, line := range target.Recipe {
		code, runErr := s.runner.Run(ctx, line)
		if runErr != nil || code != 0 {
			// Abort the remaining recipe lines; a partially-run recipe
			// leaves outputs in an undefined state and must not be recorded
			// as built.
			rec.SetStatus(name, domain.StatusFailed)
			res.SetFailure(&domain.RecipeFailure{
				Target:   name.String(),
				Line:     i,
				ExitCode: code,
			})
			ferr := recipeError(name, i, code, runErr)
			vertex.Complete(ferr)
			return ferr
		}
	}

	rec.SetStatus(name, domain.StatusBuilt)
	res.AddBuilt(name.String())
	vertex.Complete(nil)
	return nil
}

// recipeError attaches the failing line's context to ErrRecipeFailed.
func recipeError(name domain.InternedString, line, code int, cause error) error {
	err := zerr.With(zerr.With(zerr.With(
		zerr.Wrap(domain.ErrRecipeFailed, "recipe execution failed"),
		"target", name.String()),
		"line", line),
		"exit_code", code)
	if cause != nil {
		err = zerr.With(err, "cause", cause.Error())
	}
	return err
}
