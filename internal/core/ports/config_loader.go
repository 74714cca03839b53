package ports

import "go.trai.ch/instant/internal/core/domain"

//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks

// OptionsLoader resolves the snapshot engine options.
type OptionsLoader interface {
	// Load reads the options for the build rooted at rootDir.
	Load(rootDir string) (domain.Options, error)
}

// BuildLoader reads the build definition that configuration evaluates.
type BuildLoader interface {
	// Load reads the build definition from the given file.
	Load(path string) (*domain.Build, error)
}
