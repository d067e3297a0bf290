// Package mcp exposes the tracker operations as MCP tools
package mcp

import (
	"net/http"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/job-tracker/internal/board"
	"github.com/honeycarbs/job-tracker/internal/domain/search"
	"github.com/honeycarbs/job-tracker/internal/export"
	"github.com/honeycarbs/job-tracker/internal/mcp/tools"
	"github.com/honeycarbs/job-tracker/internal/outreach"
	"github.com/honeycarbs/job-tracker/internal/referral"
	"github.com/honeycarbs/job-tracker/internal/repository"
	"github.com/honeycarbs/job-tracker/pkg/logging"
)

const (
	serverName    = "job-tracker"
	serverVersion = "0.1.0"
)

// Services are the application services exposed as tools; nil members are skipped
type Services struct {
	Board     *board.Board
	Mirror    repository.BoardMirror
	Search    search.Service
	Referrals *referral.Service
	Outreach  *outreach.Service
	Exports   *export.Registry
}

// NewServer constructs an MCP server with every configured tool registered
func NewServer(log *logging.Logger, svc Services) *sdkmcp.Server {
	if log == nil {
		log = logging.NewNop()
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	var opts []tools.Option
	if svc.Board != nil {
		opts = append(opts, tools.WithBoardTools(svc.Board, svc.Mirror))
		opts = append(opts, tools.WithExportTools(svc.Board, svc.Exports))
	}
	if svc.Search != nil {
		opts = append(opts, tools.WithSearchTools(svc.Search))
	}
	if svc.Referrals != nil {
		opts = append(opts, tools.WithReferralTools(svc.Referrals))
	}
	if svc.Outreach != nil {
		opts = append(opts, tools.WithOutreachTools(svc.Outreach))
	}

	tools.Register(server, log.Named("mcp"), opts...)
	return server
}

// NewHandler serves the MCP server over streamable HTTP
func NewHandler(server *sdkmcp.Server) http.Handler {
	return sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server {
		return server
	}, nil)
}
