// Package msbfile loads target declarations into the registry, from the
// .msb format of the original tool or from an equivalent YAML schema.
package msbfile

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/msb/internal/core/domain"
	"go.trai.ch/msb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the declaration file at path and registers every declared
// target, in declaration order. Duplicate names fail here; dangling
// dependency references do not — those are validated at graph construction.
func (l *Loader) Load(path string) (*domain.Registry, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read declaration file"), "path", path)
	}

	var targets []domain.Target
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		targets, err = decodeYAML(data)
	default:
		targets, err = parseDeclarations(string(data))
	}
	if err != nil {
		return nil, err
	}

	reg := domain.NewRegistry()
	for i := range targets {
		if err := reg.Register(&targets[i]); err != nil {
			return nil, err
		}
	}

	l.logger.Info(fmt.Sprintf("loaded %d target(s) from %s", reg.Len(), path))
	return reg, nil
}
