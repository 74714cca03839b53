package host

import (
	"go.trai.ch/instant/internal/core/domain"
	"go.trai.ch/instant/internal/core/ports"
)

// Factory creates in-memory hosts.
type Factory struct{}

// NewFactory creates a Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// NewHost creates a fresh host.
func (f *Factory) NewHost(rootDir string, requested []string, types []domain.TaskType) ports.Host {
	return New(rootDir, requested, types)
}
