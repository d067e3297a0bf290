package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/honeycarbs/job-tracker/internal/domain"
	"github.com/honeycarbs/job-tracker/internal/notify"
	"github.com/honeycarbs/job-tracker/pkg/backend"
	"github.com/honeycarbs/job-tracker/pkg/logging"
)

const noResultsMessage = "No jobs found. Try adjusting your search criteria."

type Service interface {
	Search(ctx context.Context, params domain.SearchParams) (domain.SearchResult, error)
	Save(ctx context.Context, job domain.SearchJob) (domain.SaveSearchResult, notify.Notification, error)
}

// Option configures Service
type Option func(*config)

type config struct {
	providers []Provider
	saver     Saver
	reloader  Reloader
	userID    int64
	notifier  notify.Notifier
	log       *logging.Logger
}

// WithProviders sets search providers, queried in order
func WithProviders(providers ...Provider) Option {
	return func(c *config) {
		c.providers = providers
	}
}

// WithSaver sets where saved hits go
func WithSaver(saver Saver, userID int64) Option {
	return func(c *config) {
		c.saver = saver
		c.userID = userID
	}
}

// WithReloader sets the view refreshed after a save
func WithReloader(r Reloader) Option {
	return func(c *config) {
		c.reloader = r
	}
}

// WithNotifier sets where toasts are delivered
func WithNotifier(n notify.Notifier) Option {
	return func(c *config) {
		c.notifier = n
	}
}

// WithLogger sets the logger
func WithLogger(log *logging.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		notifier: notify.Discard,
		log:      logging.NewNop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if len(cfg.providers) == 0 {
		return nil, fmt.Errorf("search.Service: at least one provider is required")
	}
	if cfg.saver == nil {
		return nil, fmt.Errorf("search.Service: saver is required")
	}

	return &service{
		providers: cfg.providers,
		saver:     cfg.saver,
		reloader:  cfg.reloader,
		userID:    cfg.userID,
		notifier:  cfg.notifier,
		log:       cfg.log,
	}, nil
}

type service struct {
	providers []Provider
	saver     Saver
	reloader  Reloader
	userID    int64
	notifier  notify.Notifier
	log       *logging.Logger
}

// Search queries every provider and merges hits, dropping repeats of (source, external id).
// It fails only when every provider fails.
func (s *service) Search(ctx context.Context, params domain.SearchParams) (domain.SearchResult, error) {
	params = params.Normalize()
	if err := domain.Validate(params); err != nil {
		s.notifier.Notify(notify.Error(err.Error()))
		return domain.SearchResult{}, err
	}

	seen := make(map[string]struct{})
	merged := make([]domain.SearchJob, 0)
	total := 0
	sourceCount := 0
	var errs []error

	for _, p := range s.providers {
		page, err := p.Search(ctx, params)
		if err != nil {
			s.log.Warn("search provider failed", "provider", p.Name(), "error", err)
			errs = append(errs, err)
			continue
		}
		if len(page.Jobs) > 0 {
			sourceCount++
		}
		total += page.Total

		for _, j := range page.Jobs {
			if k := j.Key(); k != "" {
				if _, dup := seen[k]; dup {
					total--
					continue
				}
				seen[k] = struct{}{}
			}
			merged = append(merged, j)
		}
	}

	if len(errs) == len(s.providers) {
		err := errs[0]
		s.notifier.Notify(notify.Error(backend.Message(err)))
		return domain.SearchResult{}, fmt.Errorf("search: %w", errors.Join(errs...))
	}

	if total < len(merged) {
		total = len(merged)
	}
	if len(merged) == 0 {
		s.notifier.Notify(notify.Info(noResultsMessage))
	}

	return domain.SearchResult{
		Success:     true,
		Jobs:        merged,
		Total:       total,
		Page:        params.Page,
		NumPages:    params.NumPages,
		SourceCount: sourceCount,
	}, nil
}

// Save adds a hit to the tracker and refreshes the board
func (s *service) Save(ctx context.Context, job domain.SearchJob) (domain.SaveSearchResult, notify.Notification, error) {
	res, err := s.saver.SaveSearchJob(ctx, s.userID, job)
	if err != nil {
		s.log.Warn("save search job failed", "title", job.Title, "error", err)
		n := notify.Error(backend.Message(err))
		s.notifier.Notify(n)
		return domain.SaveSearchResult{}, n, fmt.Errorf("search: save: %w", err)
	}

	n := notify.Success(fmt.Sprintf("Saved \"%s\" to your tracker!", job.Title))
	s.notifier.Notify(n)

	if s.reloader != nil {
		if err := s.reloader.Reload(ctx); err != nil {
			s.log.Error("reload after save failed", "error", err)
		}
	}
	return res, n, nil
}
