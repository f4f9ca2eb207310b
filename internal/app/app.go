// Package app implements the application layer for msb: one invocation is
// load declarations, validate the graph, build the goal.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/msb/internal/core/domain"
	"go.trai.ch/msb/internal/core/ports"
	"go.trai.ch/msb/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

const (
	// DefaultConfigPath is the declaration file read when no -f flag is given.
	DefaultConfigPath = "build.msb"
	// DefaultGoal is the target built when none is named on the command line.
	DefaultGoal = "main"
)

// App represents the main application logic.
type App struct {
	loader ports.ConfigLoader
	sched  *scheduler.Scheduler
	logger ports.Logger

	configPath string
	jobs       int
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, sched *scheduler.Scheduler, logger ports.Logger) *App {
	return &App{
		loader:     loader,
		sched:      sched,
		logger:     logger,
		configPath: DefaultConfigPath,
		jobs:       1,
	}
}

// SetConfigPath overrides the declaration file path.
func (a *App) SetConfigPath(path string) {
	if path != "" {
		a.configPath = path
	}
}

// SetJobs sets how many independent targets may build concurrently.
func (a *App) SetJobs(jobs int) {
	if jobs > 0 {
		a.jobs = jobs
	}
}

// Build loads the declarations, validates the dependency graph, and builds
// the goal target. Validation errors (duplicate, unknown reference, cycle)
// stop the run before any recipe executes.
func (a *App) Build(ctx context.Context, goal string) (*domain.BuildResult, error) {
	if goal == "" {
		goal = DefaultGoal
	}

	reg, err := a.loader.Load(a.configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load declarations")
	}

	graph, err := domain.BuildGraph(reg)
	if err != nil {
		return nil, err
	}
	a.logger.Info(fmt.Sprintf("dependency graph validated, %d target(s)", graph.TargetCount()))

	res, err := a.sched.Run(ctx, graph, goal, a.jobs)
	if res != nil {
		a.logger.Info(fmt.Sprintf("%d target(s) built, %d up to date", len(res.Built()), len(res.UpToDate())))
	}
	return res, err
}

// Targets returns the declared targets in declaration order.
func (a *App) Targets() ([]domain.Target, error) {
	reg, err := a.loader.Load(a.configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load declarations")
	}

	targets := make([]domain.Target, 0, reg.Len())
	for t := range reg.All() {
		targets = append(targets, t)
	}
	return targets, nil
}
