package search

import (
	"context"

	"github.com/honeycarbs/job-tracker/internal/domain"
)

// Page is one provider's share of a search
type Page struct {
	Jobs  []domain.SearchJob
	Total int
}

// Provider represents an external job data source (the tracker backend, Adzuna, etc.)
type Provider interface {
	// e.g. "backend" or "adzuna"
	Name() string

	// Search returns normalized hits for params
	Search(ctx context.Context, params domain.SearchParams) (Page, error)
}

// Saver persists a search hit as a tracked job
type Saver interface {
	SaveSearchJob(ctx context.Context, userID int64, job domain.SearchJob) (domain.SaveSearchResult, error)
}

// Reloader refreshes whatever view lists tracked jobs
type Reloader interface {
	Reload(ctx context.Context) error
}
