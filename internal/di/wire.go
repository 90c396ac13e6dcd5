//go:build wireinject
// +build wireinject

package di

import (
	"WavePull/pkg/config"
	"WavePull/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire generates the implementation in wire_gen.go.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Collaborator adapters
		ProvideTraceReader,
		ProvideRemoteFetcher,

		// Use cases
		ProvideAcquirer,
		ProvidePool,

		// HTTP surface
		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
