package ports

import "go.trai.ch/msb/internal/core/domain"

// ConfigLoader defines the interface for loading target declarations.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the declaration file at path and returns the populated
	// registry. Dependencies are not resolved here; that happens at graph
	// construction.
	Load(path string) (*domain.Registry, error)
}
