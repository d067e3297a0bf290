package notion

import (
	"context"
	"fmt"
	"net/http"
	"time"

	gnt "github.com/dstotijn/go-notion"
)

// JobPage is one row of the tracker's Notion database
type JobPage struct {
	Title        string
	Company      string
	URL          string
	Location     string
	Status       string
	Salary       string
	RemotePolicy string
	UpdatedAt    time.Time
}

type Client struct {
	api        *gnt.Client
	databaseID string
}

// New builds a client; httpClient may be nil
func New(token, databaseID string, httpClient *http.Client) *Client {
	var opts []gnt.ClientOption
	if httpClient != nil {
		opts = append(opts, gnt.WithHTTPClient(httpClient))
	}
	return &Client{
		api:        gnt.NewClient(token, opts...),
		databaseID: databaseID,
	}
}

// Ping runs a one-row query to check the database is reachable
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.api.QueryDatabase(ctx, c.databaseID, &gnt.DatabaseQuery{
		PageSize: 1,
	})
	if err != nil {
		return fmt.Errorf("notion: ping: %w", err)
	}
	return nil
}

// CreateJobPage adds a row and returns the page id
func (c *Client) CreateJobPage(ctx context.Context, job JobPage) (string, error) {
	props := buildJobPageProperties(job)

	page, err := c.api.CreatePage(ctx, gnt.CreatePageParams{
		ParentType:             gnt.ParentTypeDatabase,
		ParentID:               c.databaseID,
		DatabasePageProperties: &props,
	})
	if err != nil {
		return "", fmt.Errorf("notion: create page: %w", err)
	}
	return page.ID, nil
}

func richText(s string) []gnt.RichText {
	if s == "" {
		return nil
	}
	return []gnt.RichText{
		{
			Text: &gnt.Text{
				Content: s,
			},
		},
	}
}

func buildJobPageProperties(job JobPage) gnt.DatabasePageProperties {
	props := gnt.DatabasePageProperties{
		"Position": gnt.DatabasePageProperty{
			Title: richText(job.Title),
		},
	}

	if job.Company != "" {
		props["Company"] = gnt.DatabasePageProperty{RichText: richText(job.Company)}
	}
	if job.URL != "" {
		u := job.URL
		props["Job Posting"] = gnt.DatabasePageProperty{URL: &u}
	}
	if job.Location != "" {
		props["Location"] = gnt.DatabasePageProperty{RichText: richText(job.Location)}
	}
	if job.Salary != "" {
		props["Salary"] = gnt.DatabasePageProperty{RichText: richText(job.Salary)}
	}
	if job.RemotePolicy != "" {
		props["Work Mode"] = gnt.DatabasePageProperty{
			Select: &gnt.SelectOptions{Name: job.RemotePolicy},
		}
	}
	if job.Status != "" {
		props["Stage"] = gnt.DatabasePageProperty{
			Select: &gnt.SelectOptions{Name: job.Status},
		}
	}
	if !job.UpdatedAt.IsZero() {
		props["Updated"] = gnt.DatabasePageProperty{
			Date: &gnt.Date{Start: gnt.NewDateTime(job.UpdatedAt, true)},
		}
	}

	return props
}
