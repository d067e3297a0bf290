package mcp

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/job-tracker/internal/board"
	"github.com/honeycarbs/job-tracker/internal/domain"
	"github.com/honeycarbs/job-tracker/internal/domain/search"
	"github.com/honeycarbs/job-tracker/internal/export"
	"github.com/honeycarbs/job-tracker/internal/notify"
	"github.com/honeycarbs/job-tracker/pkg/backend"
)

type fakeJobs struct {
	mu      sync.Mutex
	jobs    []domain.Job
	deleted []domain.JobID
	failFor domain.JobID
}

func (f *fakeJobs) ListJobs(_ context.Context, _ int64, filter domain.JobFilter) ([]domain.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.Job{}
	for _, j := range f.jobs {
		if filter.Status != "" && j.Status != filter.Status {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (f *fakeJobs) UpdateJob(_ context.Context, id domain.JobID, u domain.JobUpdate) (domain.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id == f.failFor {
		return domain.Job{}, &backend.APIError{StatusCode: 404, Detail: "Job not found"}
	}
	for i := range f.jobs {
		if f.jobs[i].ID == id {
			if u.Status != nil {
				f.jobs[i].Status = *u.Status
			}
			return f.jobs[i], nil
		}
	}
	return domain.Job{}, &backend.APIError{StatusCode: 404, Detail: "Job not found"}
}

func (f *fakeJobs) CreateJob(_ context.Context, userID int64, in domain.JobCreate) (domain.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job := domain.Job{ID: int64(len(f.jobs) + 1), UserID: userID, Title: in.Title, Company: in.Company, Status: domain.StatusNew}
	f.jobs = append(f.jobs, job)
	return job, nil
}

func (f *fakeJobs) DeleteJob(_ context.Context, id domain.JobID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}

type searchStub struct{}

func (searchStub) Search(_ context.Context, p domain.SearchParams) (domain.SearchResult, error) {
	if strings.TrimSpace(p.Query) == "" {
		return domain.SearchResult{}, domain.Invalid("query is required")
	}
	return domain.SearchResult{Success: true, Total: 1, Page: 1, NumPages: 1, Jobs: []domain.SearchJob{
		{Title: "Go Developer", Company: "Acme", Source: "backend", ExternalID: "x1"},
	}}, nil
}

func (searchStub) Save(_ context.Context, job domain.SearchJob) (domain.SaveSearchResult, notify.Notification, error) {
	n := notify.Success(fmt.Sprintf("Saved %q to your tracker!", job.Title))
	return domain.SaveSearchResult{Success: true, Job: domain.Job{ID: 9, Title: job.Title}}, n, nil
}

type fakeExporter struct{ got int }

func (f *fakeExporter) Name() string { return "sheets" }

func (f *fakeExporter) Export(_ context.Context, jobs []domain.Job) (export.Result, error) {
	f.got = len(jobs)
	return export.Result{Target: "sheets", Written: len(jobs), Message: "wrote rows"}, nil
}

func connect(t *testing.T, svc Services) *sdkmcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server := NewServer(nil, svc)
	st, ct := sdkmcp.NewInMemoryTransports()
	if _, err := server.Connect(ctx, st, nil); err != nil {
		t.Fatalf("server connect: %v", err)
	}

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "0.1.0"}, nil)
	cs, err := client.Connect(ctx, ct, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { _ = cs.Close() })
	return cs
}

func call(t *testing.T, cs *sdkmcp.ClientSession, name string, args map[string]any) (string, bool) {
	t.Helper()
	res, err := cs.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	var b strings.Builder
	for _, c := range res.Content {
		if txt, ok := c.(*sdkmcp.TextContent); ok {
			b.WriteString(txt.Text)
		}
	}
	return b.String(), res.IsError
}

func boardFixture() (*fakeJobs, *board.Board) {
	api := &fakeJobs{jobs: []domain.Job{
		{ID: 1, Title: "Backend Engineer", Company: "Acme", Status: domain.StatusApplied},
		{ID: 2, Title: "SRE", Company: "Globex", Status: domain.StatusInterview},
	}}
	return api, board.New(api, 1)
}

func TestToolsRegistered(t *testing.T) {
	_, b := boardFixture()
	exp := &fakeExporter{}
	cs := connect(t, Services{Board: b, Exports: export.NewRegistry(exp)})

	res, err := cs.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}
	names := map[string]bool{}
	for _, tool := range res.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{"list_jobs", "drag_job", "move_job", "create_job", "delete_job", "board_stats", "export_board"} {
		if !names[want] {
			t.Errorf("tool %s not registered", want)
		}
	}
	if names["search_jobs"] {
		t.Error("search tools registered without a search service")
	}
}

func TestDragJobTool(t *testing.T) {
	api, b := boardFixture()
	cs := connect(t, Services{Board: b})

	text, isErr := call(t, cs, "drag_job", map[string]any{"job_id": 1, "target": "2"})
	if isErr {
		t.Fatalf("drag_job error: %s", text)
	}
	if !strings.Contains(text, `Moved "Backend Engineer" to Interview`) {
		t.Errorf("text = %q", text)
	}
	if api.jobs[0].Status != domain.StatusInterview {
		t.Errorf("status = %s", api.jobs[0].Status)
	}

	text, isErr = call(t, cs, "drag_job", map[string]any{"job_id": 1})
	if isErr || !strings.Contains(text, "no change") {
		t.Errorf("drop nowhere: %q (error=%v)", text, isErr)
	}
}

func TestMoveJobReportsBackendMessage(t *testing.T) {
	api, b := boardFixture()
	api.failFor = 2
	cs := connect(t, Services{Board: b})

	text, isErr := call(t, cs, "move_job", map[string]any{"job_id": 2, "status": "Offer"})
	if !isErr {
		t.Fatal("expected tool error")
	}
	if text != "Job not found" {
		t.Errorf("text = %q", text)
	}

	text, isErr = call(t, cs, "move_job", map[string]any{"job_id": 1, "status": "Hired"})
	if !isErr || !strings.Contains(text, "status must be one of") {
		t.Errorf("invalid status: %q (error=%v)", text, isErr)
	}
}

func TestDeleteJobNeedsConfirm(t *testing.T) {
	api, b := boardFixture()
	cs := connect(t, Services{Board: b})

	if _, isErr := call(t, cs, "delete_job", map[string]any{"job_id": 1, "confirm": false}); !isErr {
		t.Error("delete without confirm should fail")
	}
	if len(api.deleted) != 0 {
		t.Fatalf("deleted = %v", api.deleted)
	}

	text, isErr := call(t, cs, "delete_job", map[string]any{"job_id": 1, "confirm": true})
	if isErr || text != "[delete_job] Job deleted" {
		t.Errorf("text = %q (error=%v)", text, isErr)
	}
}

func TestBoardStatsAndExport(t *testing.T) {
	_, b := boardFixture()
	exp := &fakeExporter{}
	cs := connect(t, Services{Board: b, Exports: export.NewRegistry(exp)})

	text, isErr := call(t, cs, "board_stats", map[string]any{})
	if isErr || !strings.Contains(text, "[board_stats] 2 job(s)") {
		t.Errorf("board_stats = %q", text)
	}

	text, isErr = call(t, cs, "export_board", map[string]any{"target": "sheets"})
	if isErr {
		t.Fatalf("export_board: %s", text)
	}
	if exp.got != 2 {
		t.Errorf("exported %d jobs", exp.got)
	}

	if _, isErr = call(t, cs, "export_board", map[string]any{"target": "excel"}); !isErr {
		t.Error("unknown target should fail")
	}
}

func TestSearchTool(t *testing.T) {
	var svc search.Service = searchStub{}
	cs := connect(t, Services{Search: svc})

	text, isErr := call(t, cs, "search_jobs", map[string]any{"query": "golang"})
	if isErr || !strings.Contains(text, "Go Developer") {
		t.Errorf("search_jobs = %q", text)
	}

	text, isErr = call(t, cs, "search_jobs", map[string]any{"query": "  "})
	if !isErr || text != "query is required" {
		t.Errorf("blank query = %q (error=%v)", text, isErr)
	}
}

func TestSaveSearchJobTool(t *testing.T) {
	cs := connect(t, Services{Search: searchStub{}})

	text, isErr := call(t, cs, "save_search_job", map[string]any{
		"job": map[string]any{"title": "Go Developer", "company": "Acme", "description": "", "url": "https://example.com/1"},
	})
	if isErr {
		t.Fatalf("save_search_job: %s", text)
	}
	if !strings.HasPrefix(text, `[save_search_job] Saved "Go Developer" to your tracker!`) {
		t.Errorf("text = %q", text)
	}
}
