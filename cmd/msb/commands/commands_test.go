package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/msb/cmd/msb/commands"
	"go.trai.ch/msb/internal/adapters/telemetry"
	"go.trai.ch/msb/internal/app"
	"go.trai.ch/msb/internal/core/domain"
	"go.trai.ch/msb/internal/core/ports/mocks"
	"go.trai.ch/msb/internal/engine/scheduler"
	"go.trai.ch/msb/internal/engine/staleness"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	cli    *commands.CLI
	out    *bytes.Buffer
	loader *mocks.MockConfigLoader
	runner *mocks.MockRunner
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	runner := mocks.NewMockRunner(ctrl)
	stat := mocks.NewMockFileStat(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	sched := scheduler.NewScheduler(runner, staleness.NewEvaluator(stat), logger, telemetry.NewNoOp())
	a := app.New(loader, sched, logger)

	cli := commands.New(a)
	out := &bytes.Buffer{}
	cli.SetOut(out)
	return &fixture{cli: cli, out: out, loader: loader, runner: runner}
}

func registry(t *testing.T, targets ...domain.Target) *domain.Registry {
	t.Helper()
	reg := domain.NewRegistry()
	for i := range targets {
		require.NoError(t, reg.Register(&targets[i]))
	}
	return reg
}

func TestBuildCmd(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(app.DefaultConfigPath).Return(registry(t, domain.Target{
		Name:   domain.NewInternedString("hello"),
		Recipe: []string{"echo hello"},
	}), nil)
	f.runner.EXPECT().Run(gomock.Any(), "echo hello").Return(0, nil)

	f.cli.SetArgs([]string{"build", "hello"})
	require.NoError(t, f.cli.Execute(context.Background()))
}

func TestBuildCmd_FileFlag(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("other.msb").Return(registry(t, domain.Target{
		Name:   domain.NewInternedString("main"),
		Recipe: []string{"true"},
	}), nil)
	f.runner.EXPECT().Run(gomock.Any(), "true").Return(0, nil)

	f.cli.SetArgs([]string{"build", "--file", "other.msb"})
	require.NoError(t, f.cli.Execute(context.Background()))
}

func TestBuildCmd_RecipeFailure(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(app.DefaultConfigPath).Return(registry(t, domain.Target{
		Name:   domain.NewInternedString("main"),
		Recipe: []string{"false"},
	}), nil)
	f.runner.EXPECT().Run(gomock.Any(), "false").Return(1, nil)

	f.cli.SetArgs([]string{"build"})
	err := f.cli.Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrRecipeFailed)
}

func TestTargetsCmd(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(app.DefaultConfigPath).Return(registry(t,
		domain.Target{Name: domain.NewInternedString("lib")},
		domain.Target{
			Name:         domain.NewInternedString("main"),
			Inputs:       []domain.InternedString{domain.NewInternedString("main.c")},
			Dependencies: []domain.InternedString{domain.NewInternedString("lib")},
		},
	), nil)

	f.cli.SetArgs([]string{"targets"})
	require.NoError(t, f.cli.Execute(context.Background()))

	want := `0: lib
Does not depend on anything
1: main
Depends on:
  These files:
    main.c
  These targets:
    lib
`
	assert.Equal(t, want, f.out.String())
}

func TestVersionCmd(t *testing.T) {
	f := newFixture(t)
	f.cli.SetArgs([]string{"version"})
	require.NoError(t, f.cli.Execute(context.Background()))
	assert.Equal(t, "dev\n", f.out.String())
}
