package backend

import (
	"context"
	"fmt"

	"github.com/honeycarbs/job-tracker/internal/domain"
	"github.com/honeycarbs/job-tracker/internal/domain/search"
)

// searchClient describes the subset of the backend client used by the provider.
type searchClient interface {
	SearchJobs(ctx context.Context, params domain.SearchParams) (domain.SearchResult, error)
}

// Provider implements search.Provider using the tracker backend's aggregated search
type Provider struct {
	client searchClient
}

// NewProvider builds a backend provider
func NewProvider(client searchClient) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("backend provider: client is required")
	}
	return &Provider{client: client}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "backend"
}

// Search forwards params unchanged; hits keep the source the backend reported
func (p *Provider) Search(ctx context.Context, params domain.SearchParams) (search.Page, error) {
	if p == nil || p.client == nil {
		return search.Page{}, fmt.Errorf("backend provider: client is nil")
	}

	res, err := p.client.SearchJobs(ctx, params)
	if err != nil {
		return search.Page{}, err
	}

	return search.Page{Jobs: res.Jobs, Total: res.Total}, nil
}

var _ search.Provider = (*Provider)(nil)
