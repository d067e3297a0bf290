// Package app assembles the tracker services from configuration
package app

import (
	"context"
	"fmt"
	"net/http"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/sync/errgroup"

	"github.com/honeycarbs/job-tracker/internal/board"
	"github.com/honeycarbs/job-tracker/internal/config"
	"github.com/honeycarbs/job-tracker/internal/domain/search"
	adzunaprovider "github.com/honeycarbs/job-tracker/internal/domain/search/providers/adzuna"
	backendprovider "github.com/honeycarbs/job-tracker/internal/domain/search/providers/backend"
	"github.com/honeycarbs/job-tracker/internal/export"
	"github.com/honeycarbs/job-tracker/internal/mcp"
	"github.com/honeycarbs/job-tracker/internal/notify"
	"github.com/honeycarbs/job-tracker/internal/outreach"
	"github.com/honeycarbs/job-tracker/internal/referral"
	"github.com/honeycarbs/job-tracker/internal/repository"
	storage "github.com/honeycarbs/job-tracker/internal/storage/neo4j"
	"github.com/honeycarbs/job-tracker/internal/web"
	"github.com/honeycarbs/job-tracker/pkg/adzuna"
	"github.com/honeycarbs/job-tracker/pkg/backend"
	"github.com/honeycarbs/job-tracker/pkg/logging"
	n4j "github.com/honeycarbs/job-tracker/pkg/neo4j"
	"github.com/honeycarbs/job-tracker/pkg/notion"
	"github.com/honeycarbs/job-tracker/pkg/sheets"
)

// App is the HTTP service with its background graph mirror
type App struct {
	Server *web.Server
	Board  *board.Board
	Feed   *notify.Feed
	// Mirror is nil when no graph database is configured
	Mirror *board.Mirror
}

// Console holds the services the terminal board drives
type Console struct {
	Board     *board.Board
	Search    search.Service
	Referrals *referral.Service
}

// Run serves HTTP and runs the mirror until the server stops
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return a.Server.Run()
	})
	if a.Mirror != nil {
		g.Go(func() error {
			return a.Mirror.Run(gctx)
		})
	}
	return g.Wait()
}

// Shutdown stops the HTTP server; Run returns once it has drained
func (a *App) Shutdown(ctx context.Context) error {
	return a.Server.Shutdown(ctx)
}

func newApp(server *web.Server, b *board.Board, feed *notify.Feed, mirror *board.Mirror) *App {
	return &App{Server: server, Board: b, Feed: feed, Mirror: mirror}
}

func newConsole(b *board.Board, svc search.Service, refs *referral.Service) *Console {
	return &Console{Board: b, Search: svc, Referrals: refs}
}

func provideBackendConfig(cfg config.Config) backend.Config {
	return backend.Config{
		BaseURL:    cfg.Backend.BaseURL,
		Timeout:    cfg.Backend.Timeout,
		SearchRate: cfg.Backend.SearchRate,
	}
}

func provideFeed() *notify.Feed {
	return notify.NewFeed(0)
}

// provideNotifier delivers toasts to the log and to the page feed
func provideNotifier(log *logging.Logger, feed *notify.Feed) notify.Notifier {
	return notify.Multi(notify.NewLogNotifier(log.Named("notify")), feed)
}

func provideBoard(client *backend.Client, cfg config.Config, n notify.Notifier, log *logging.Logger) *board.Board {
	return board.New(client, cfg.UserID, board.WithNotifier(n), board.WithLogger(log.Named("board")))
}

// provideGraph connects to Neo4j when configured; the client is nil otherwise
func provideGraph(ctx context.Context, cfg config.Config, log *logging.Logger) (*n4j.Client, func(), error) {
	if !cfg.Neo4jEnabled() {
		return nil, func() {}, nil
	}

	client, err := n4j.NewClient(ctx, n4j.Config{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connect neo4j: %w", err)
	}

	log.Info("graph mirror enabled", "uri", cfg.Neo4j.URI)
	cleanup := func() {
		if err := client.Close(context.Background()); err != nil {
			log.Warn("neo4j close failed", "err", err)
		}
	}
	return client, cleanup, nil
}

func provideBoardMirror(graph *n4j.Client) repository.BoardMirror {
	if graph == nil {
		return nil
	}
	return storage.NewBoardRepository(graph)
}

// provideMirror subscribes the graph mirror to board reloads
func provideMirror(repo repository.BoardMirror, b *board.Board, cfg config.Config, log *logging.Logger) *board.Mirror {
	if repo == nil {
		return nil
	}
	m := board.NewMirror(repo, cfg.UserID, log.Named("mirror"))
	b.Store().OnReload(m.Observe)
	return m
}

func provideSearchProviders(cfg config.Config, client *backend.Client, log *logging.Logger) ([]search.Provider, error) {
	bp, err := backendprovider.NewProvider(client)
	if err != nil {
		return nil, err
	}
	providers := []search.Provider{bp}

	if cfg.AdzunaEnabled() {
		ac, err := adzuna.NewClient(adzuna.Config{
			AppID:   cfg.Adzuna.AppID,
			AppKey:  cfg.Adzuna.AppKey,
			Country: cfg.Adzuna.Country,
		})
		if err != nil {
			return nil, err
		}
		ap, err := adzunaprovider.NewProvider(ac)
		if err != nil {
			return nil, err
		}
		providers = append(providers, ap)
		log.Info("adzuna search enabled", "country", cfg.Adzuna.Country)
	}
	return providers, nil
}

func provideSearch(
	providers []search.Provider,
	client *backend.Client,
	b *board.Board,
	cfg config.Config,
	n notify.Notifier,
	log *logging.Logger,
) (search.Service, error) {
	return search.NewService(
		search.WithProviders(providers...),
		search.WithSaver(client, cfg.UserID),
		search.WithReloader(b),
		search.WithNotifier(n),
		search.WithLogger(log.Named("search")),
	)
}

func provideReferrals(client *backend.Client, cfg config.Config, n notify.Notifier, log *logging.Logger) *referral.Service {
	return referral.NewService(client, cfg.UserID, n, log.Named("referral"))
}

func provideOutreach(client *backend.Client, cfg config.Config, log *logging.Logger) *outreach.Service {
	return outreach.NewService(client, cfg.UserID, log.Named("outreach"))
}

// provideExports registers the Sheets and Notion exporters that are configured
func provideExports(ctx context.Context, cfg config.Config, log *logging.Logger) (*export.Registry, error) {
	var exporters []export.Exporter

	if cfg.SheetsEnabled() {
		sc, err := sheets.NewClient(ctx, sheets.Config{
			CredentialsPath: cfg.Sheets.CredentialsPath,
			SpreadsheetID:   cfg.Sheets.SpreadsheetID,
		})
		if err != nil {
			return nil, err
		}
		exporters = append(exporters, export.NewSheets(sc, cfg.Sheets.Tab))
	}

	if cfg.NotionEnabled() {
		exporters = append(exporters, export.NewNotion(notion.New(cfg.Notion.Token, cfg.Notion.DatabaseID, nil)))
	}

	reg := export.NewRegistry(exporters...)
	if targets := reg.Targets(); len(targets) > 0 {
		log.Info("exports enabled", "targets", targets)
	}
	return reg, nil
}

func provideMCPServer(
	log *logging.Logger,
	b *board.Board,
	mirror repository.BoardMirror,
	svc search.Service,
	refs *referral.Service,
	out *outreach.Service,
	exports *export.Registry,
) *sdkmcp.Server {
	return mcp.NewServer(log, mcp.Services{
		Board:     b,
		Mirror:    mirror,
		Search:    svc,
		Referrals: refs,
		Outreach:  out,
		Exports:   exports,
	})
}

func provideHandler(
	log *logging.Logger,
	client *backend.Client,
	b *board.Board,
	svc search.Service,
	refs *referral.Service,
	out *outreach.Service,
	exports *export.Registry,
	feed *notify.Feed,
	mcpServer *sdkmcp.Server,
) http.Handler {
	return web.NewRouter(web.Deps{
		Board:     b,
		Jobs:      client,
		Search:    svc,
		Referrals: refs,
		Outreach:  out,
		Exports:   exports,
		Feed:      feed,
		MCP:       mcp.NewHandler(mcpServer),
		Logger:    log.Named("http"),
	})
}

func provideServer(log *logging.Logger, cfg config.Config, h http.Handler) *web.Server {
	return web.NewServer(log, cfg, h)
}
