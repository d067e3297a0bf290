package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/job-tracker/internal/domain"
	"github.com/honeycarbs/job-tracker/internal/domain/search"
)

// SearchJobsArgs defines the arguments for the search_jobs tool
type SearchJobsArgs struct {
	Query           string `json:"query" jsonschema:"Job title or keywords"`
	Location        string `json:"location,omitempty" jsonschema:"City, region or country"`
	RemoteOnly      bool   `json:"remote_only,omitempty"`
	EmploymentTypes string `json:"employment_types,omitempty" jsonschema:"Comma separated: FULLTIME, PARTTIME, CONTRACTOR, INTERN"`
	JobRequirements string `json:"job_requirements,omitempty"`
	DatePosted      string `json:"date_posted,omitempty" jsonschema:"One of all, today, 3days, week, month"`
	Page            int    `json:"page,omitempty" jsonschema:"Starting page, default 1"`
	NumPages        int    `json:"num_pages,omitempty" jsonschema:"Pages to fetch, 1 to 5"`
}

// SaveSearchJobArgs defines the arguments for the save_search_job tool
type SaveSearchJobArgs struct {
	Job domain.SearchJob `json:"job" jsonschema:"A job exactly as returned by search_jobs"`
}

type searchTools struct {
	svc search.Service
}

// WithSearchTools registers external job search tools
func WithSearchTools(svc search.Service) Option {
	return func(reg *registry) {
		t := searchTools{svc: svc}
		addTool(reg, "search_jobs", "Search external job boards", t.searchJobs)
		addTool(reg, "save_search_job", "Save a search result to the tracker as a new job", t.saveSearchJob)
	}
}

func (t searchTools) searchJobs(ctx context.Context, _ *sdkmcp.CallToolRequest, args SearchJobsArgs) (*sdkmcp.CallToolResult, any, error) {
	res, err := t.svc.Search(ctx, domain.SearchParams{
		Query:           args.Query,
		Location:        args.Location,
		RemoteOnly:      args.RemoteOnly,
		EmploymentTypes: args.EmploymentTypes,
		JobRequirements: args.JobRequirements,
		DatePosted:      args.DatePosted,
		Page:            args.Page,
		NumPages:        args.NumPages,
	})
	if err != nil {
		return errorResult(err)
	}

	if len(res.Jobs) == 0 {
		return textResult("[search_jobs] No jobs found. Try adjusting your search criteria."), nil, nil
	}
	return jsonResult(fmt.Sprintf("[search_jobs] %d of %d job(s)", len(res.Jobs), res.Total), res)
}

func (t searchTools) saveSearchJob(ctx context.Context, _ *sdkmcp.CallToolRequest, args SaveSearchJobArgs) (*sdkmcp.CallToolResult, any, error) {
	res, n, err := t.svc.Save(ctx, args.Job)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult("[save_search_job] "+n.Message, res.Job)
}
