package export

import (
	"context"
	"fmt"
	"time"

	"github.com/honeycarbs/job-tracker/internal/domain"
)

var sheetHeader = []interface{}{"Title", "Company", "Location", "URL", "Status", "Updated"}

// sheetWriter is the subset of pkg/sheets.Client the exporter needs
type sheetWriter interface {
	Clear(ctx context.Context, range_ string) error
	Write(ctx context.Context, range_ string, values [][]interface{}) error
}

// Sheets replaces a tab's contents with the board snapshot
type Sheets struct {
	client sheetWriter
	tab    string
	clock  func() time.Time
}

func NewSheets(client sheetWriter, tab string) *Sheets {
	if tab == "" {
		tab = "Sheet1"
	}
	return &Sheets{client: client, tab: tab, clock: time.Now}
}

func (s *Sheets) Name() string {
	return "sheets"
}

func (s *Sheets) Export(ctx context.Context, jobs []domain.Job) (Result, error) {
	result := Result{Target: s.Name()}
	if s.client == nil {
		result.Message = "Google Sheets client not configured (GOOGLE_SHEETS_CREDENTIALS_PATH not set)"
		return result, fmt.Errorf("sheets: client not configured")
	}

	if err := s.client.Clear(ctx, fmt.Sprintf("%s!A1:Z", s.tab)); err != nil {
		return result, fmt.Errorf("sheets: failed to clear sheet: %w", err)
	}

	values := make([][]interface{}, 0, len(jobs)+1)
	values = append(values, sheetHeader)
	values = append(values, jobsToValues(jobs)...)

	if err := s.client.Write(ctx, fmt.Sprintf("%s!A1", s.tab), values); err != nil {
		return result, fmt.Errorf("sheets: failed to write rows: %w", err)
	}

	result.Written = len(jobs)
	result.CompletedAt = s.clock().UTC()
	result.Message = fmt.Sprintf("successfully exported %d row(s)", result.Written)
	return result, nil
}

func jobsToValues(jobs []domain.Job) [][]interface{} {
	values := make([][]interface{}, len(jobs))
	for i, j := range jobs {
		updated := ""
		if t := lastChange(j); !t.IsZero() {
			updated = t.UTC().Format(time.RFC3339)
		}
		values[i] = []interface{}{
			j.Title,
			j.Company,
			j.Location,
			j.URL,
			string(j.Status),
			updated,
		}
	}
	return values
}
