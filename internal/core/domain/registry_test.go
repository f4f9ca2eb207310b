package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/msb/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestRegistry_Register_Duplicate(t *testing.T) {
	r := domain.NewRegistry()
	target := domain.Target{Name: domain.NewInternedString("lib")}

	if err := r.Register(&target); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := r.Register(&target)
	if err == nil {
		t.Fatal("expected error when registering duplicate target, got nil")
	}
	if !errors.Is(err, domain.ErrDuplicateTarget) {
		t.Errorf("expected ErrDuplicateTarget, got %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if name, ok := meta["target"].(string); !ok || name != "lib" {
		t.Errorf("expected metadata target=lib, got %v", meta["target"])
	}
}

func TestRegistry_ErrorsRemainDetectableWhenWrapped(t *testing.T) {
	r := domain.NewRegistry()
	target := domain.Target{Name: domain.NewInternedString("lib")}
	if err := r.Register(&target); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The application layer wraps load errors once more; the sentinel must
	// stay reachable through the whole chain.
	err := zerr.Wrap(r.Register(&target), "failed to load declarations")
	if !errors.Is(err, domain.ErrDuplicateTarget) {
		t.Errorf("expected ErrDuplicateTarget in the chain, got %v", err)
	}

	_, lookupErr := r.Lookup(domain.NewInternedString("missing"))
	if !errors.Is(zerr.Wrap(lookupErr, "failed to load declarations"), domain.ErrUnknownTarget) {
		t.Errorf("expected ErrUnknownTarget in the chain, got %v", lookupErr)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	r := domain.NewRegistry()
	target := domain.Target{
		Name:   domain.NewInternedString("lib"),
		Recipe: []string{"cc -c lib.c -o lib.o"},
	}
	if err := r.Register(&target); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := r.Lookup(domain.NewInternedString("lib"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name.String() != "lib" || len(got.Recipe) != 1 {
		t.Errorf("unexpected target: %+v", got)
	}

	if _, err := r.Lookup(domain.NewInternedString("missing")); !errors.Is(err, domain.ErrUnknownTarget) {
		t.Errorf("expected ErrUnknownTarget, got %v", err)
	}
}

func TestRegistry_All_PreservesDeclarationOrder(t *testing.T) {
	r := domain.NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		target := domain.Target{Name: domain.NewInternedString(name)}
		if err := r.Register(&target); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	var names []string
	for target := range r.All() {
		names = append(names, target.Name.String())
	}

	want := []string{"zeta", "alpha", "mid"}
	if len(names) != len(want) {
		t.Fatalf("expected %d targets, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], names[i])
		}
	}
}
