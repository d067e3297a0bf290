package board

import (
	"context"
	"errors"
	"fmt"

	"github.com/honeycarbs/job-tracker/internal/domain"
	"github.com/honeycarbs/job-tracker/internal/notify"
	"github.com/honeycarbs/job-tracker/pkg/backend"
	"github.com/honeycarbs/job-tracker/pkg/logging"
)

const loadFailedMessage = "Failed to load jobs"

var ErrInvalidStatus = errors.New("board: invalid status")

// JobUpdater applies partial job updates on the backend
type JobUpdater interface {
	UpdateJob(ctx context.Context, id domain.JobID, update domain.JobUpdate) (domain.Job, error)
}

// Mutator changes a job's status and then reloads the store.
// Nothing is applied locally before the backend confirms.
type Mutator struct {
	api      JobUpdater
	store    *Store
	notifier notify.Notifier
	log      *logging.Logger
}

func NewMutator(api JobUpdater, store *Store, notifier notify.Notifier, log *logging.Logger) *Mutator {
	if notifier == nil {
		notifier = notify.Discard
	}
	if log == nil {
		log = logging.NewNop()
	}
	return &Mutator{api: api, store: store, notifier: notifier, log: log}
}

// SetStatus sends the status change. The returned notification has also been
// delivered to the notifier. A reload failure after a successful update is
// reported as its own notification and does not fail the move.
func (m *Mutator) SetStatus(ctx context.Context, id domain.JobID, status domain.JobStatus) (notify.Notification, error) {
	if !status.Valid() {
		n := m.emit(notify.Error(fmt.Sprintf("Unknown status %q", status)))
		return n, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	title := ""
	if job, ok := m.store.Find(id); ok {
		title = job.Title
	}

	updated, err := m.api.UpdateJob(ctx, id, domain.JobUpdate{Status: &status})
	if err != nil {
		m.log.Warn("status update failed", "job_id", id, "status", status, "error", err)
		n := m.emit(notify.Error(backend.Message(err)))
		return n, fmt.Errorf("board: move job %d: %w", id, err)
	}
	if title == "" {
		title = updated.Title
	}

	n := m.emit(notify.Success(fmt.Sprintf("Moved \"%s\" to %s", title, status)))
	m.log.Info("job moved", "job_id", id, "status", status)

	if err := m.store.Reload(ctx); err != nil {
		m.log.Error("reload after move failed", "job_id", id, "error", err)
		m.emit(notify.Error(loadFailedMessage))
	}

	return n, nil
}

func (m *Mutator) emit(n notify.Notification) notify.Notification {
	m.notifier.Notify(n)
	return n
}
