//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"github.com/honeycarbs/job-tracker/internal/config"
	"github.com/honeycarbs/job-tracker/internal/notify"
	"github.com/honeycarbs/job-tracker/pkg/backend"
	"github.com/honeycarbs/job-tracker/pkg/logging"
)

var coreSet = wire.NewSet(
	provideBackendConfig,
	backend.NewClient,
	provideBoard,
	provideSearchProviders,
	provideSearch,
	provideReferrals,
)

// Initialize creates the HTTP service with every configured integration wired up
func Initialize(ctx context.Context, cfg config.Config, log *logging.Logger) (*App, func(), error) {
	wire.Build(
		coreSet,
		provideFeed,
		provideNotifier,
		provideOutreach,

		// Optional integrations
		provideGraph,
		provideBoardMirror,
		provideMirror,
		provideExports,

		// Transports
		provideMCPServer,
		provideHandler,
		provideServer,
		newApp,
	)
	return nil, nil, nil
}

// InitializeConsole creates the services behind the terminal board; n receives every toast
func InitializeConsole(cfg config.Config, log *logging.Logger, n notify.Notifier) (*Console, error) {
	wire.Build(
		coreSet,
		newConsole,
	)
	return nil, nil
}
