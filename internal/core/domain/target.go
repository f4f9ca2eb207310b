package domain

// Target is a named build unit: the files its recipe produces, the files it
// reads, the targets that must be brought up to date before it, and the
// shell command lines that rebuild it.
// Targets are immutable after registration; the rest of the system refers to
// them by name only.
type Target struct {
	Name         InternedString
	Outputs      []InternedString
	Inputs       []InternedString
	Dependencies []InternedString
	Recipe       []string
}

// Phony reports whether the target declares no outputs. A phony target has
// nothing on disk to compare against and is rebuilt on every invocation.
func (t *Target) Phony() bool {
	return len(t.Outputs) == 0
}
