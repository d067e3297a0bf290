package tools

import (
	"context"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/job-tracker/internal/board"
	"github.com/honeycarbs/job-tracker/internal/domain"
	"github.com/honeycarbs/job-tracker/internal/export"
)

// ExportBoardArgs defines the arguments for the export_board tool
type ExportBoardArgs struct {
	Target string `json:"target" jsonschema:"Export destination"`
}

type exportTools struct {
	board   *board.Board
	exports *export.Registry
}

// WithExportTools registers export_board when at least one exporter is configured
func WithExportTools(b *board.Board, exports *export.Registry) Option {
	return func(reg *registry) {
		if exports == nil || len(exports.Targets()) == 0 {
			return
		}
		t := exportTools{board: b, exports: exports}
		addTool(reg, "export_board",
			"Copy the current board to an external tool. Targets: "+strings.Join(exports.Targets(), ", "),
			t.exportBoard)
	}
}

func (t exportTools) exportBoard(ctx context.Context, _ *sdkmcp.CallToolRequest, args ExportBoardArgs) (*sdkmcp.CallToolResult, any, error) {
	if strings.TrimSpace(args.Target) == "" {
		return errorResult(domain.Invalid("target is required"))
	}
	if err := t.board.Load(ctx); err != nil {
		return errorResult(err)
	}

	res, err := t.exports.Export(ctx, args.Target, t.board.Store().Jobs())
	if err != nil {
		return errorResult(err)
	}
	return jsonResult("[export_board] "+res.Message, res)
}
