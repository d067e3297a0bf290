package adzuna

import (
	"context"
	"testing"

	"github.com/honeycarbs/job-tracker/internal/domain"
	"github.com/honeycarbs/job-tracker/pkg/adzuna"
)

type fakeClient struct {
	calls []adzuna.SearchParams
}

func (f *fakeClient) SearchJobs(_ context.Context, _ string, params adzuna.SearchParams) (adzuna.SearchResponse, error) {
	f.calls = append(f.calls, params)
	return adzuna.SearchResponse{
		Count: 40,
		Jobs:  []adzuna.Job{{ID: "p" + string(rune('0'+params.Page)), Title: "Go Dev", SalaryMax: 90000}},
	}, nil
}

func TestProviderPagesAndMapping(t *testing.T) {
	client := &fakeClient{}
	p, err := NewProvider(client)
	if err != nil {
		t.Fatal(err)
	}

	page, err := p.Search(context.Background(), domain.SearchParams{
		Query:           "go",
		DatePosted:      "week",
		EmploymentTypes: "FULLTIME, CONTRACTOR",
		Page:            2,
		NumPages:        2,
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(client.calls) != 2 || client.calls[0].Page != 2 || client.calls[1].Page != 3 {
		t.Fatalf("calls = %+v", client.calls)
	}
	c := client.calls[0]
	if c.MaxDaysOld != 7 || !c.FullTime || !c.Contract || c.PartTime {
		t.Errorf("params = %+v", c)
	}

	if len(page.Jobs) != 2 || page.Total != 40 {
		t.Fatalf("page = %+v", page)
	}
	j := page.Jobs[0]
	if j.Source != "adzuna" || j.ExternalID != "p2" || j.SalaryMax == nil || *j.SalaryMax != 90000 || j.SalaryMin != nil {
		t.Errorf("job = %+v", j)
	}
}
