package export

import (
	"context"
	"fmt"
	"time"

	"github.com/honeycarbs/job-tracker/internal/domain"
	"github.com/honeycarbs/job-tracker/pkg/notion"
)

type pageCreator interface {
	CreateJobPage(ctx context.Context, job notion.JobPage) (string, error)
}

// Notion creates one database page per job
type Notion struct {
	client pageCreator
	clock  func() time.Time
}

func NewNotion(client pageCreator) *Notion {
	return &Notion{client: client, clock: time.Now}
}

func (n *Notion) Name() string {
	return "notion"
}

// Export stops at the first failed page; Written counts pages created before it
func (n *Notion) Export(ctx context.Context, jobs []domain.Job) (Result, error) {
	result := Result{Target: n.Name()}
	if n.client == nil {
		result.Message = "Notion client not configured (NOTION_TOKEN not set)"
		return result, fmt.Errorf("notion: client not configured")
	}

	for _, j := range jobs {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if _, err := n.client.CreateJobPage(ctx, toJobPage(j)); err != nil {
			result.Message = fmt.Sprintf("exported %d of %d job(s)", result.Written, len(jobs))
			return result, fmt.Errorf("notion: job %d: %w", j.ID, err)
		}
		result.Written++
	}

	result.CompletedAt = n.clock().UTC()
	result.Message = fmt.Sprintf("successfully exported %d job(s)", result.Written)
	return result, nil
}

func toJobPage(j domain.Job) notion.JobPage {
	return notion.JobPage{
		Title:        j.Title,
		Company:      j.Company,
		URL:          j.URL,
		Location:     j.Location,
		Status:       string(j.Status),
		Salary:       j.SalaryRange,
		RemotePolicy: j.RemotePolicy,
		UpdatedAt:    lastChange(j),
	}
}
