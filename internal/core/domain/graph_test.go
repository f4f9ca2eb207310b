package domain_test

import (
	"errors"
	"strings"
	"testing"

	"go.trai.ch/msb/internal/core/domain"
	"go.trai.ch/zerr"
)

func newRegistry(t *testing.T, targets ...domain.Target) *domain.Registry {
	t.Helper()
	r := domain.NewRegistry()
	for i := range targets {
		if err := r.Register(&targets[i]); err != nil {
			t.Fatalf("failed to register %s: %v", targets[i].Name, err)
		}
	}
	return r
}

func target(name string, deps ...string) domain.Target {
	t := domain.Target{Name: domain.NewInternedString(name)}
	for _, dep := range deps {
		t.Dependencies = append(t.Dependencies, domain.NewInternedString(dep))
	}
	return t
}

func TestBuildGraph_WalkOrder(t *testing.T) {
	// A -> B -> C; build order must be C, B, A.
	r := newRegistry(t,
		target("A", "B"),
		target("B", "C"),
		target("C"),
	)

	g, err := domain.BuildGraph(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := g.TargetCount(); got != 3 {
		t.Errorf("expected 3 targets in the graph, got %d", got)
	}

	var order []string
	for tgt := range g.Walk() {
		order = append(order, tgt.Name.String())
	}
	if len(order) != 3 || order[0] != "C" || order[1] != "B" || order[2] != "A" {
		t.Errorf("unexpected build order: %v", order)
	}
}

func TestBuildGraph_Cycle(t *testing.T) {
	r := newRegistry(t,
		target("a", "b"),
		target("b", "a"),
	)

	_, err := domain.BuildGraph(r)
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	if !errors.Is(err, domain.ErrCycleDetected) {
		t.Fatalf("expected ErrCycleDetected, got %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	cycle, _ := zErr.Metadata()["cycle"].(string)
	if !strings.Contains(cycle, "a") || !strings.Contains(cycle, "b") {
		t.Errorf("expected cycle path to mention a and b, got %q", cycle)
	}
}

func TestBuildGraph_SelfCycle(t *testing.T) {
	r := newRegistry(t, target("loop", "loop"))

	_, err := domain.BuildGraph(r)
	if !errors.Is(err, domain.ErrCycleDetected) {
		t.Errorf("expected ErrCycleDetected, got %v", err)
	}
}

func TestBuildGraph_UnknownDependency(t *testing.T) {
	r := newRegistry(t, target("x", "y"))

	_, err := domain.BuildGraph(r)
	if err == nil {
		t.Fatal("expected error for unknown dependency, got nil")
	}
	if !errors.Is(err, domain.ErrUnknownDependency) {
		t.Fatalf("expected ErrUnknownDependency, got %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	if missing, _ := zErr.Metadata()["missing"].(string); missing != "y" {
		t.Errorf("expected metadata missing=y, got %v", missing)
	}
}

func TestGraph_Closure(t *testing.T) {
	// Diamond A -> {B, C} -> D, plus an unrelated E.
	r := newRegistry(t,
		target("A", "B", "C"),
		target("B", "D"),
		target("C", "D"),
		target("D"),
		target("E"),
	)

	g, err := domain.BuildGraph(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order, err := g.Closure(domain.NewInternedString("A"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pos := make(map[string]int)
	for i, name := range order {
		if _, dup := pos[name.String()]; dup {
			t.Errorf("target %s appears more than once in %v", name, order)
		}
		pos[name.String()] = i
	}

	if len(order) != 4 {
		t.Fatalf("expected closure of 4 targets, got %v", order)
	}
	if _, ok := pos["E"]; ok {
		t.Error("unrelated target E must not be in the closure of A")
	}
	if pos["D"] > pos["B"] || pos["D"] > pos["C"] || pos["B"] > pos["A"] || pos["C"] > pos["A"] {
		t.Errorf("closure violates dependency order: %v", order)
	}
}

func TestGraph_Closure_UnknownGoal(t *testing.T) {
	g, err := domain.BuildGraph(newRegistry(t, target("A")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := g.Closure(domain.NewInternedString("nope")); !errors.Is(err, domain.ErrUnknownTarget) {
		t.Errorf("expected ErrUnknownTarget, got %v", err)
	}
}
