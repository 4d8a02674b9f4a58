package ports

import "go.trai.ch/mvnconf/internal/core/domain"

// EnvironmentLoader builds the configuration snapshot resolver options are derived from.
//
//go:generate mockgen -source=environment_loader.go -destination=mocks/mock_environment_loader.go -package=mocks
type EnvironmentLoader interface {
	// Load merges the config file, the process environment and the explicit
	// defines into a snapshot. Defines win over the environment, which wins over
	// the file.
	//
	// An empty configPath searches cwd and its parents for the config file; not
	// finding one is not an error.
	Load(cwd, configPath string, defines map[string]string) (domain.Environment, error)
}
