package board

import (
	"context"
	"fmt"

	"github.com/honeycarbs/job-tracker/internal/domain"
	"github.com/honeycarbs/job-tracker/internal/notify"
	"github.com/honeycarbs/job-tracker/pkg/backend"
	"github.com/honeycarbs/job-tracker/pkg/logging"
)

// API is the slice of the backend the board drives
type API interface {
	JobLister
	JobUpdater
	CreateJob(ctx context.Context, userID int64, job domain.JobCreate) (domain.Job, error)
	DeleteJob(ctx context.Context, id domain.JobID) error
}

// Option configures Board
type Option func(*options)

type options struct {
	notifier notify.Notifier
	log      *logging.Logger
}

// WithNotifier sets where toasts are delivered
func WithNotifier(n notify.Notifier) Option {
	return func(o *options) {
		o.notifier = n
	}
}

// WithLogger sets the logger
func WithLogger(log *logging.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// Board is the job board synchronizer: store, drag resolution and mutations.
// Every mutation is followed by a full reload.
type Board struct {
	api      API
	store    *Store
	mutator  *Mutator
	notifier notify.Notifier
	log      *logging.Logger
}

// Outcome reports what a drag-end did
type Outcome struct {
	Moved        bool                 `json:"moved"`
	Move         *Move                `json:"move,omitempty"`
	Notification *notify.Notification `json:"notification,omitempty"`
}

func New(api API, userID int64, opts ...Option) *Board {
	o := &options{notifier: notify.Discard, log: logging.NewNop()}
	for _, opt := range opts {
		opt(o)
	}

	store := NewStore(api, userID)
	return &Board{
		api:      api,
		store:    store,
		mutator:  NewMutator(api, store, o.notifier, o.log),
		notifier: o.notifier,
		log:      o.log,
	}
}

func (b *Board) Store() *Store {
	return b.store
}

// Load fetches with the current filter
func (b *Board) Load(ctx context.Context) error {
	return b.report(b.store.Reload(ctx))
}

// Reload is Load under the name other views refresh the board by
func (b *Board) Reload(ctx context.Context) error {
	return b.Load(ctx)
}

// SetFilter switches the status/company filter and fetches
func (b *Board) SetFilter(ctx context.Context, filter domain.JobFilter) error {
	if err := domain.Validate(filter); err != nil {
		b.notifier.Notify(notify.Error(err.Error()))
		return err
	}
	return b.report(b.store.Load(ctx, filter))
}

// ensureLoaded fetches once so id lookups work before any view has mounted
func (b *Board) ensureLoaded(ctx context.Context) error {
	if b.store.Loaded() {
		return nil
	}
	return b.Load(ctx)
}

// HandleDragEnd resolves a drag and, when it changes a status, invokes the mutator once
func (b *Board) HandleDragEnd(ctx context.Context, ev DragEnd) (Outcome, error) {
	if err := b.ensureLoaded(ctx); err != nil {
		return Outcome{}, err
	}

	mv, ok := Resolve(b.store.Jobs(), ev)
	if !ok {
		return Outcome{}, nil
	}

	n, err := b.mutator.SetStatus(ctx, mv.JobID, mv.To)
	return Outcome{Moved: err == nil, Move: &mv, Notification: &n}, err
}

// Move sets a job's status directly, bypassing drag resolution. The job may
// be outside the current filter; the backend decides whether it exists.
func (b *Board) Move(ctx context.Context, id domain.JobID, status domain.JobStatus) (notify.Notification, error) {
	return b.mutator.SetStatus(ctx, id, status)
}

// Create validates and adds a job, then reloads
func (b *Board) Create(ctx context.Context, in domain.JobCreate) (domain.Job, notify.Notification, error) {
	if err := domain.Validate(in); err != nil {
		n := b.emit(notify.Error(err.Error()))
		return domain.Job{}, n, err
	}

	job, err := b.api.CreateJob(ctx, b.store.UserID(), in)
	if err != nil {
		b.log.Warn("create job failed", "title", in.Title, "error", err)
		n := b.emit(notify.Error(backend.Message(err)))
		return domain.Job{}, n, fmt.Errorf("board: create job: %w", err)
	}

	n := b.emit(notify.Success(fmt.Sprintf("Added \"%s\" to your tracker", job.Title)))
	b.reloadAfter(ctx, "create", job.ID)
	return job, n, nil
}

// Update applies field edits, then reloads
func (b *Board) Update(ctx context.Context, id domain.JobID, in domain.JobUpdate) (domain.Job, notify.Notification, error) {
	if in.Empty() {
		err := domain.Invalid("nothing to update")
		return domain.Job{}, b.emit(notify.Error(err.Error())), err
	}
	if err := domain.Validate(in); err != nil {
		return domain.Job{}, b.emit(notify.Error(err.Error())), err
	}

	job, err := b.api.UpdateJob(ctx, id, in)
	if err != nil {
		b.log.Warn("update job failed", "job_id", id, "error", err)
		n := b.emit(notify.Error(backend.Message(err)))
		return domain.Job{}, n, fmt.Errorf("board: update job %d: %w", id, err)
	}

	n := b.emit(notify.Success("Job updated"))
	b.reloadAfter(ctx, "update", id)
	return job, n, nil
}

// Delete removes a job; callers confirm with the user first
func (b *Board) Delete(ctx context.Context, id domain.JobID) (notify.Notification, error) {
	if err := b.api.DeleteJob(ctx, id); err != nil {
		b.log.Warn("delete job failed", "job_id", id, "error", err)
		n := b.emit(notify.Error(backend.Message(err)))
		return n, fmt.Errorf("board: delete job %d: %w", id, err)
	}

	n := b.emit(notify.Success("Job deleted"))
	b.reloadAfter(ctx, "delete", id)
	return n, nil
}

func (b *Board) reloadAfter(ctx context.Context, op string, id domain.JobID) {
	if err := b.store.Reload(ctx); err != nil {
		b.log.Error("reload failed", "op", op, "job_id", id, "error", err)
		b.emit(notify.Error(loadFailedMessage))
	}
}

func (b *Board) report(err error) error {
	if err != nil {
		b.log.Error("load jobs failed", "error", err)
		b.emit(notify.Error(loadFailedMessage))
	}
	return err
}

func (b *Board) emit(n notify.Notification) notify.Notification {
	b.notifier.Notify(n)
	return n
}
