package domain

import (
	"iter"
	"strings"

	"go.trai.ch/zerr"
)

// Graph is the validated dependency graph over a registry. An edge A -> B
// means "A depends on B and B must be built first". Construction fails on
// unknown references and cycles, so a Graph value is always acyclic.
type Graph struct {
	registry *Registry
	order    []InternedString
}

// BuildGraph validates the registry's dependency edges and produces a graph.
// It returns ErrUnknownDependency if a target references a name that is not
// registered, and ErrCycleDetected (with the full cycle path attached) if
// the edges form a cycle.
func BuildGraph(reg *Registry) (*Graph, error) {
	g := &Graph{
		registry: reg,
		order:    make([]InternedString, 0, reg.Len()),
	}

	visited := make(map[InternedString]int, reg.Len()) // 0: unvisited, 1: on stack, 2: resolved
	var path []InternedString

	var visit func(u InternedString) error
	visit = func(u InternedString) error {
		visited[u] = 1
		path = append(path, u)

		target, err := reg.Lookup(u)
		if err != nil {
			return err
		}

		for _, dep := range target.Dependencies {
			if _, err := reg.Lookup(dep); err != nil {
				return zerr.With(zerr.With(
					zerr.Wrap(ErrUnknownDependency, "failed to validate dependencies"),
					"target", u.String()),
					"missing", dep.String())
			}
			if visited[dep] == 1 {
				return cycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.order = append(g.order, u)
		return nil
	}

	// Declaration order makes the traversal, and therefore the reported
	// error and the build order, deterministic.
	for t := range reg.All() {
		if visited[t.Name] == 0 {
			if err := visit(t.Name); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// cycleError attaches the ordered cycle path to ErrCycleDetected.
func cycleError(path []InternedString, dep InternedString) error {
	start := 0
	for i, node := range path {
		if node == dep {
			start = i
			break
		}
	}

	var b strings.Builder
	for i := start; i < len(path); i++ {
		b.WriteString(path[i].String())
		b.WriteString(" -> ")
	}
	b.WriteString(dep.String())
	return zerr.With(zerr.Wrap(ErrCycleDetected, "failed to validate graph"), "cycle", b.String())
}

// Target returns the target with the given name.
func (g *Graph) Target(name InternedString) (Target, error) {
	return g.registry.Lookup(name)
}

// Dependencies returns the direct dependencies of the named target, or nil
// if the target is unknown.
func (g *Graph) Dependencies(name InternedString) []InternedString {
	t, err := g.registry.Lookup(name)
	if err != nil {
		return nil
	}
	return t.Dependencies
}

// TargetCount returns the number of targets in the graph.
func (g *Graph) TargetCount() int {
	return g.registry.Len()
}

// Walk returns an iterator over all targets in a valid build order, every
// target after all of its dependencies.
func (g *Graph) Walk() iter.Seq[Target] {
	return func(yield func(Target) bool) {
		for _, name := range g.order {
			t, _ := g.registry.Lookup(name)
			if !yield(t) {
				return
			}
		}
	}
}

// Closure returns a valid build order for the transitive closure of the goal
// target: the goal, every target it depends on directly or indirectly, and
// nothing else, dependencies first. A target shared by several dependents
// appears exactly once.
func (g *Graph) Closure(goal InternedString) ([]InternedString, error) {
	if _, err := g.registry.Lookup(goal); err != nil {
		return nil, err
	}

	// The graph is already validated, so this traversal cannot encounter
	// unknown names or cycles.
	resolved := make(map[InternedString]bool)
	var order []InternedString

	var visit func(u InternedString)
	visit = func(u InternedString) {
		resolved[u] = true
		t, _ := g.registry.Lookup(u)
		for _, dep := range t.Dependencies {
			if !resolved[dep] {
				visit(dep)
			}
		}
		order = append(order, u)
	}
	visit(goal)

	return order, nil
}
