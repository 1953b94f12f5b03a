package ports

import "go.trai.ch/pkgsweep/internal/core/domain"

// ConfigLoader defines the interface for loading the sweep configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path. An empty path reads the
	// default location, and a missing default file yields domain.DefaultConfig.
	Load(path string) (domain.Config, error)
}
