// Package board keeps the Kanban job board in sync with the tracker backend
package board

import (
	"context"
	"fmt"
	"sync"

	"github.com/honeycarbs/job-tracker/internal/domain"
)

// JobLister loads a user's jobs from the backend
type JobLister interface {
	ListJobs(ctx context.Context, userID int64, filter domain.JobFilter) ([]domain.Job, error)
}

// ReloadListener observes every snapshot the store accepts
type ReloadListener func(ctx context.Context, jobs []domain.Job)

// Column is one status lane of the board
type Column struct {
	Status domain.JobStatus `json:"status"`
	Jobs   []domain.Job     `json:"jobs"`
}

// Store holds the last fetched job list; every reload replaces it wholesale
type Store struct {
	lister JobLister
	userID int64

	mu        sync.RWMutex
	filter    domain.JobFilter
	jobs      []domain.Job
	loaded    bool
	listeners []ReloadListener
}

func NewStore(lister JobLister, userID int64) *Store {
	return &Store{
		lister: lister,
		userID: userID,
		filter: domain.JobFilter{}.WithDefaults(),
	}
}

// UserID is the tracker owner whose jobs the store mirrors
func (s *Store) UserID() int64 {
	return s.userID
}

// OnReload registers a listener for future snapshots
func (s *Store) OnReload(fn ReloadListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Load switches to filter and fetches; on failure both filter and contents are kept
func (s *Store) Load(ctx context.Context, filter domain.JobFilter) error {
	return s.fetch(ctx, filter.WithDefaults())
}

// Reload re-fetches using the current filter
func (s *Store) Reload(ctx context.Context) error {
	return s.fetch(ctx, s.Filter())
}

func (s *Store) fetch(ctx context.Context, filter domain.JobFilter) error {
	jobs, err := s.lister.ListJobs(ctx, s.userID, filter)
	if err != nil {
		return fmt.Errorf("board: load jobs: %w", err)
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}

	s.mu.Lock()
	s.filter = filter
	s.jobs = jobs
	s.loaded = true
	listeners := append([]ReloadListener(nil), s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(ctx, cloneJobs(jobs))
	}
	return nil
}

// Loaded reports whether any fetch has succeeded yet
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Filter returns the filter of the current snapshot
func (s *Store) Filter() domain.JobFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// Jobs returns a copy of the snapshot in backend order
func (s *Store) Jobs() []domain.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneJobs(s.jobs)
}

func (s *Store) Find(id domain.JobID) (domain.Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, j := range s.jobs {
		if j.ID == id {
			return j, true
		}
	}
	return domain.Job{}, false
}

// Columns groups the snapshot by status
func (s *Store) Columns() []Column {
	return GroupByStatus(s.Jobs())
}

// GroupByStatus returns one column per status in board order, keeping job order within each
func GroupByStatus(jobs []domain.Job) []Column {
	statuses := domain.Statuses()
	cols := make([]Column, len(statuses))
	index := make(map[domain.JobStatus]int, len(statuses))
	for i, st := range statuses {
		cols[i] = Column{Status: st, Jobs: []domain.Job{}}
		index[st] = i
	}

	for _, j := range jobs {
		if i, ok := index[j.Status]; ok {
			cols[i].Jobs = append(cols[i].Jobs, j)
		}
	}
	return cols
}

func cloneJobs(jobs []domain.Job) []domain.Job {
	out := make([]domain.Job, len(jobs))
	copy(out, jobs)
	return out
}
