package msbfile

import (
	"maps"
	"slices"

	"go.trai.ch/msb/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// declFile is the YAML declaration schema, field for field the same shape as
// the .msb format.
type declFile struct {
	Version string               `yaml:"version"`
	Targets map[string]targetDTO `yaml:"targets"`
}

// targetDTO is one target declaration in the YAML schema.
type targetDTO struct {
	Outputs   []string `yaml:"outputs"`
	Inputs    []string `yaml:"inputs"`
	DependsOn []string `yaml:"dependsOn"`
	Recipe    []string `yaml:"recipe"`
}

func decodeYAML(data []byte) ([]domain.Target, error) {
	var file declFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse declaration file")
	}

	// YAML maps have no usable order; sort by name so registration order,
	// and with it listings and diagnostics, is deterministic.
	names := slices.Sorted(maps.Keys(file.Targets))
	targets := make([]domain.Target, 0, len(names))
	for _, name := range names {
		dto := file.Targets[name]
		targets = append(targets, domain.Target{
			Name:         domain.NewInternedString(name),
			Outputs:      internStrings(dto.Outputs),
			Inputs:       internStrings(dto.Inputs),
			Dependencies: internStrings(dto.DependsOn),
			Recipe:       dto.Recipe,
		})
	}
	return targets, nil
}
