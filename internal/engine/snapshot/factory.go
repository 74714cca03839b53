package snapshot

import (
	"go.trai.ch/instant/internal/core/domain"
	"go.trai.ch/instant/internal/core/ports"
	"go.trai.ch/instant/internal/engine/codec"
)

// Factory creates one Engine per build invocation, sharing the entry store,
// codec registry, logger and telemetry between them.
type Factory struct {
	store     ports.EntryStore
	registry  *codec.Registry
	logger    ports.Logger
	telemetry ports.Telemetry
}

// NewFactory creates a Factory. A nil registry means the builtin codecs.
func NewFactory(
	store ports.EntryStore,
	registry *codec.Registry,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Factory {
	if registry == nil {
		registry = codec.Default()
	}
	return &Factory{store: store, registry: registry, logger: logger, telemetry: telemetry}
}

// New creates an engine for host.
func (f *Factory) New(opts domain.Options, host ports.BuildHost) *Engine {
	return New(opts, host, f.store, f.registry, f.logger, f.telemetry)
}

// Clean removes every stored entry below rootDir.
func (f *Factory) Clean(rootDir string) error {
	return f.store.Clean(rootDir)
}
