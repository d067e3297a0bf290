package export

import (
	"context"
	"errors"
	"testing"

	"github.com/honeycarbs/job-tracker/internal/domain"
	"github.com/honeycarbs/job-tracker/pkg/notion"
)

type fakeSheet struct {
	cleared []string
	written map[string][][]interface{}
}

func (f *fakeSheet) Clear(_ context.Context, r string) error {
	f.cleared = append(f.cleared, r)
	return nil
}

func (f *fakeSheet) Write(_ context.Context, r string, values [][]interface{}) error {
	if f.written == nil {
		f.written = map[string][][]interface{}{}
	}
	f.written[r] = values
	return nil
}

type fakePages struct {
	pages  []notion.JobPage
	failAt int
}

func (f *fakePages) CreateJobPage(_ context.Context, p notion.JobPage) (string, error) {
	if f.failAt > 0 && len(f.pages)+1 == f.failAt {
		return "", errors.New("rate limited")
	}
	f.pages = append(f.pages, p)
	return "page", nil
}

func testJobs() []domain.Job {
	return []domain.Job{
		{ID: 1, Title: "Go Dev", Company: "Acme", Status: domain.StatusApplied},
		{ID: 2, Title: "SRE", Company: "Globex", Status: domain.StatusOffer, RemotePolicy: "Remote"},
	}
}

func TestSheetsExportClearsThenWrites(t *testing.T) {
	sheet := &fakeSheet{}
	res, err := NewSheets(sheet, "Jobs").Export(context.Background(), testJobs())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if res.Written != 2 || res.Target != "sheets" {
		t.Errorf("result = %+v", res)
	}
	if len(sheet.cleared) != 1 || sheet.cleared[0] != "Jobs!A1:Z" {
		t.Errorf("cleared = %v", sheet.cleared)
	}

	rows := sheet.written["Jobs!A1"]
	if len(rows) != 3 {
		t.Fatalf("rows = %d", len(rows))
	}
	if rows[0][0] != "Title" || rows[1][0] != "Go Dev" || rows[2][4] != "Offer" {
		t.Errorf("rows = %v", rows)
	}
}

func TestNotionExportStopsOnFailure(t *testing.T) {
	pages := &fakePages{failAt: 2}
	res, err := NewNotion(pages).Export(context.Background(), testJobs())
	if err == nil {
		t.Fatal("expected error")
	}
	if res.Written != 1 || len(pages.pages) != 1 {
		t.Errorf("result = %+v", res)
	}
	if pages.pages[0].Status != "Applied" {
		t.Errorf("page = %+v", pages.pages[0])
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(NewNotion(&fakePages{}), nil, NewSheets(&fakeSheet{}, ""))
	if got := r.Targets(); len(got) != 2 || got[0] != "notion" || got[1] != "sheets" {
		t.Errorf("Targets = %v", got)
	}
	if _, err := r.Export(context.Background(), "excel", nil); !errors.Is(err, ErrUnknownTarget) {
		t.Errorf("expected ErrUnknownTarget, got %v", err)
	}
}
