package board

import (
	"context"

	"github.com/honeycarbs/job-tracker/internal/domain"
	"github.com/honeycarbs/job-tracker/internal/repository"
	"github.com/honeycarbs/job-tracker/pkg/logging"
)

// Mirror pushes store snapshots to a repository.BoardMirror off the reload path.
// Only the newest pending snapshot is kept.
type Mirror struct {
	repo   repository.BoardMirror
	userID int64
	log    *logging.Logger
	latest chan []domain.Job
}

func NewMirror(repo repository.BoardMirror, userID int64, log *logging.Logger) *Mirror {
	if log == nil {
		log = logging.NewNop()
	}
	return &Mirror{
		repo:   repo,
		userID: userID,
		log:    log,
		latest: make(chan []domain.Job, 1),
	}
}

// Observe is a ReloadListener; it never blocks
func (m *Mirror) Observe(_ context.Context, jobs []domain.Job) {
	for {
		select {
		case m.latest <- jobs:
			return
		default:
		}
		select {
		case <-m.latest:
		default:
		}
	}
}

// Run syncs snapshots until ctx is done
func (m *Mirror) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case jobs := <-m.latest:
			if err := m.repo.SyncJobs(ctx, m.userID, jobs); err != nil {
				m.log.Warn("graph mirror sync failed", "jobs", len(jobs), "error", err)
				continue
			}
			m.log.Debug("graph mirror synced", "jobs", len(jobs))
		}
	}
}
