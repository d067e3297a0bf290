package tools

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/job-tracker/internal/board"
	"github.com/honeycarbs/job-tracker/internal/domain"
	"github.com/honeycarbs/job-tracker/internal/repository"
)

var statusList = joinStatuses()

func joinStatuses() string {
	names := make([]string, 0, len(domain.Statuses()))
	for _, s := range domain.Statuses() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

// ListJobsArgs defines the arguments for the list_jobs tool
type ListJobsArgs struct {
	Status  string `json:"status,omitempty" jsonschema:"Only jobs in this status"`
	Company string `json:"company,omitempty" jsonschema:"Only jobs at this company"`
}

// DragJobArgs defines the arguments for the drag_job tool
type DragJobArgs struct {
	JobID  int64  `json:"job_id" jsonschema:"Dragged job id"`
	Target string `json:"target,omitempty" jsonschema:"Drop target: a status column name or another job id; empty means dropped nowhere"`
}

// MoveJobArgs defines the arguments for the move_job tool
type MoveJobArgs struct {
	JobID  int64  `json:"job_id" jsonschema:"Job id"`
	Status string `json:"status" jsonschema:"New status"`
}

// CreateJobArgs defines the arguments for the create_job tool
type CreateJobArgs struct {
	Title        string `json:"title" jsonschema:"Job title"`
	Company      string `json:"company" jsonschema:"Company name"`
	Description  string `json:"description" jsonschema:"Job description"`
	URL          string `json:"url,omitempty" jsonschema:"Posting URL"`
	Location     string `json:"location,omitempty"`
	Status       string `json:"status,omitempty" jsonschema:"Initial status"`
	SalaryRange  string `json:"salary_range,omitempty"`
	RemotePolicy string `json:"remote_policy,omitempty"`
}

// DeleteJobArgs defines the arguments for the delete_job tool
type DeleteJobArgs struct {
	JobID   int64 `json:"job_id" jsonschema:"Job id"`
	Confirm bool  `json:"confirm" jsonschema:"Must be true; deletion cannot be undone"`
}

// BoardStatsArgs defines the arguments for the board_stats tool
type BoardStatsArgs struct {
	ByCompany bool `json:"by_company,omitempty" jsonschema:"Include per-company counts from the graph mirror when configured"`
}

// BoardStats summarises the board
type BoardStats struct {
	Total     int                      `json:"total"`
	ByStatus  map[string]int           `json:"by_status"`
	Companies []repository.CompanyStat `json:"companies,omitempty"`
}

type boardTools struct {
	board  *board.Board
	mirror repository.BoardMirror
}

// WithBoardTools registers the job board tools; mirror may be nil
func WithBoardTools(b *board.Board, mirror repository.BoardMirror) Option {
	return func(reg *registry) {
		t := boardTools{board: b, mirror: mirror}
		addTool(reg, "list_jobs", "List tracked jobs grouped by status ("+statusList+")", t.listJobs)
		addTool(reg, "drag_job", "Drop a job card on a status column or on another card; moves it to that column", t.dragJob)
		addTool(reg, "move_job", "Set a job's status to one of: "+statusList, t.moveJob)
		addTool(reg, "create_job", "Add a job to the tracker", t.createJob)
		addTool(reg, "delete_job", "Delete a tracked job (requires confirm=true)", t.deleteJob)
		addTool(reg, "board_stats", "Count tracked jobs per status", t.boardStats)
	}
}

func (t boardTools) listJobs(ctx context.Context, _ *sdkmcp.CallToolRequest, args ListJobsArgs) (*sdkmcp.CallToolResult, any, error) {
	filter := domain.JobFilter{Company: args.Company}
	if args.Status != "" {
		st, ok := domain.ParseStatus(args.Status)
		if !ok {
			return errorResult(domain.Invalid("status must be one of %s", statusList))
		}
		filter.Status = st
	}

	if err := t.board.SetFilter(ctx, filter); err != nil {
		return errorResult(err)
	}

	jobs := t.board.Store().Jobs()
	return jsonResult(fmt.Sprintf("[list_jobs] %d job(s)", len(jobs)), t.board.Store().Columns())
}

func (t boardTools) dragJob(ctx context.Context, _ *sdkmcp.CallToolRequest, args DragJobArgs) (*sdkmcp.CallToolResult, any, error) {
	out, err := t.board.HandleDragEnd(ctx, board.DragEnd{
		Active: strconv.FormatInt(args.JobID, 10),
		Over:   strings.TrimSpace(args.Target),
	})
	if err != nil {
		return errorResult(err)
	}
	if !out.Moved {
		return textResult("[drag_job] no change"), nil, nil
	}
	return textResult("[drag_job] " + out.Notification.Message), nil, nil
}

func (t boardTools) moveJob(ctx context.Context, _ *sdkmcp.CallToolRequest, args MoveJobArgs) (*sdkmcp.CallToolResult, any, error) {
	st, ok := domain.ParseStatus(args.Status)
	if !ok {
		return errorResult(domain.Invalid("status must be one of %s", statusList))
	}

	n, err := t.board.Move(ctx, args.JobID, st)
	if err != nil {
		return errorResult(err)
	}
	return textResult("[move_job] " + n.Message), nil, nil
}

func (t boardTools) createJob(ctx context.Context, _ *sdkmcp.CallToolRequest, args CreateJobArgs) (*sdkmcp.CallToolResult, any, error) {
	job, _, err := t.board.Create(ctx, domain.JobCreate{
		Title:        args.Title,
		Company:      args.Company,
		Description:  args.Description,
		URL:          args.URL,
		Location:     args.Location,
		Status:       domain.JobStatus(args.Status),
		SalaryRange:  args.SalaryRange,
		RemotePolicy: args.RemotePolicy,
	})
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(fmt.Sprintf("[create_job] created job %d", job.ID), job)
}

func (t boardTools) deleteJob(ctx context.Context, _ *sdkmcp.CallToolRequest, args DeleteJobArgs) (*sdkmcp.CallToolResult, any, error) {
	if !args.Confirm {
		return errorResult(domain.Invalid("set confirm=true to delete job %d", args.JobID))
	}

	n, err := t.board.Delete(ctx, args.JobID)
	if err != nil {
		return errorResult(err)
	}
	return textResult("[delete_job] " + n.Message), nil, nil
}

func (t boardTools) boardStats(ctx context.Context, _ *sdkmcp.CallToolRequest, args BoardStatsArgs) (*sdkmcp.CallToolResult, any, error) {
	if err := t.board.Load(ctx); err != nil {
		return errorResult(err)
	}

	stats := BoardStats{ByStatus: make(map[string]int)}
	for _, col := range t.board.Store().Columns() {
		stats.ByStatus[string(col.Status)] = len(col.Jobs)
		stats.Total += len(col.Jobs)
	}

	if args.ByCompany && t.mirror != nil {
		companies, err := t.mirror.CompanyStats(ctx, t.board.Store().UserID())
		if err != nil {
			return errorResult(err)
		}
		stats.Companies = companies
	}

	return jsonResult(fmt.Sprintf("[board_stats] %d job(s)", stats.Total), stats)
}
