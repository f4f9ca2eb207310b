package domain

import "go.trai.ch/zerr"

var (
	// ErrDuplicateTarget is returned when two declarations share a target name.
	ErrDuplicateTarget = zerr.New("duplicate target")

	// ErrUnknownTarget is returned when a requested target is not in the registry.
	ErrUnknownTarget = zerr.New("unknown target")

	// ErrUnknownDependency is returned when a target's dependencies reference
	// a name that is not in the registry.
	ErrUnknownDependency = zerr.New("unknown dependency")

	// ErrCycleDetected is returned when following dependency edges returns to
	// a target already on the current traversal path.
	ErrCycleDetected = zerr.New("dependency cycle detected")

	// ErrRecipeFailed is returned when a recipe line exits nonzero.
	ErrRecipeFailed = zerr.New("recipe failed")
)
