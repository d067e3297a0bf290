package adzuna

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/honeycarbs/job-tracker/internal/domain"
	"github.com/honeycarbs/job-tracker/internal/domain/search"
	"github.com/honeycarbs/job-tracker/pkg/adzuna"
)

const sourceName = "adzuna"

// searchClient describes the subset of the Adzuna client used by the provider.
type searchClient interface {
	SearchJobs(ctx context.Context, query string, params adzuna.SearchParams) (adzuna.SearchResponse, error)
}

// Provider implements search.Provider using Adzuna API
type Provider struct {
	client searchClient
}

// NewProvider builds an Adzuna provider
func NewProvider(client searchClient) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("adzuna provider: client is required")
	}
	return &Provider{client: client}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return sourceName
}

// Search queries Adzuna for each requested page and returns normalized hits
func (p *Provider) Search(ctx context.Context, params domain.SearchParams) (search.Page, error) {
	if p == nil || p.client == nil {
		return search.Page{}, fmt.Errorf("adzuna provider: client is nil")
	}

	base := adzuna.SearchParams{
		Location:   params.Location,
		RemoteOnly: params.RemoteOnly,
		MaxDaysOld: maxDaysOld(params.DatePosted),
	}
	for _, t := range strings.Split(params.EmploymentTypes, ",") {
		switch strings.ToUpper(strings.TrimSpace(t)) {
		case "FULLTIME":
			base.FullTime = true
		case "PARTTIME":
			base.PartTime = true
		case "CONTRACTOR":
			base.Contract = true
		}
	}

	var out search.Page
	for i := 0; i < params.NumPages; i++ {
		req := base
		req.Page = params.Page + i

		resp, err := p.client.SearchJobs(ctx, params.Query, req)
		if err != nil {
			return search.Page{}, err
		}
		out.Total = resp.Count
		for _, j := range resp.Jobs {
			out.Jobs = append(out.Jobs, mapJob(j))
		}
		if len(resp.Jobs) == 0 {
			break
		}
	}

	return out, nil
}

var _ search.Provider = (*Provider)(nil)

func mapJob(j adzuna.Job) domain.SearchJob {
	out := domain.SearchJob{
		JobID:          j.ID,
		Title:          j.Title,
		Company:        j.CompanyName,
		Description:    j.Description,
		URL:            j.URL,
		Location:       j.Location,
		Remote:         j.Remote,
		EmploymentType: j.EmploymentType,
		Source:         sourceName,
		ExternalID:     j.ID,
	}
	if j.SalaryMin > 0 {
		v := j.SalaryMin
		out.SalaryMin = &v
	}
	if j.SalaryMax > 0 {
		v := j.SalaryMax
		out.SalaryMax = &v
	}
	if !j.PostedAt.IsZero() {
		out.PostedAt = j.PostedAt.Format(time.RFC3339)
	}
	return out
}

func maxDaysOld(datePosted string) int {
	switch datePosted {
	case "today":
		return 1
	case "3days":
		return 3
	case "week":
		return 7
	case "month":
		return 30
	default:
		return 0
	}
}
