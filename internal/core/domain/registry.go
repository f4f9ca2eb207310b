// Package domain contains the core domain models for the incremental build
// engine: targets, the registry, the dependency graph, and the per-run
// build record.
package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Registry holds every declared target keyed by name. Declaration order is
// preserved so that listings and error messages are deterministic.
type Registry struct {
	targets map[InternedString]Target
	order   []InternedString
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		targets: make(map[InternedString]Target),
	}
}

// Register adds a target to the registry.
// It returns ErrDuplicateTarget if a target with the same name already exists.
func (r *Registry) Register(t *Target) error {
	if _, exists := r.targets[t.Name]; exists {
		return zerr.With(zerr.Wrap(ErrDuplicateTarget, "failed to register target"), "target", t.Name.String())
	}
	r.targets[t.Name] = *t
	r.order = append(r.order, t.Name)
	return nil
}

// Lookup returns the target with the given name, or ErrUnknownTarget.
func (r *Registry) Lookup(name InternedString) (Target, error) {
	t, exists := r.targets[name]
	if !exists {
		return Target{}, zerr.With(zerr.Wrap(ErrUnknownTarget, "failed to look up target"), "target", name.String())
	}
	return t, nil
}

// Len returns the number of registered targets.
func (r *Registry) Len() int {
	return len(r.targets)
}

// All returns an iterator over the targets in declaration order.
func (r *Registry) All() iter.Seq[Target] {
	return func(yield func(Target) bool) {
		for _, name := range r.order {
			if !yield(r.targets[name]) {
				return
			}
		}
	}
}
