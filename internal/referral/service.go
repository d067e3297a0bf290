// Package referral manages networking contacts with the same reload-after-mutation model as the board
package referral

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/honeycarbs/job-tracker/internal/domain"
	"github.com/honeycarbs/job-tracker/internal/notify"
	"github.com/honeycarbs/job-tracker/pkg/backend"
	"github.com/honeycarbs/job-tracker/pkg/logging"
)

const loadFailedMessage = "Failed to load referrals"

// API is the referral slice of the backend
type API interface {
	CreateReferral(ctx context.Context, ref domain.ReferralCreate) (domain.Referral, error)
	ListReferrals(ctx context.Context, userID int64, filter domain.ReferralFilter) ([]domain.Referral, error)
	UpdateReferral(ctx context.Context, id int64, update domain.ReferralUpdate) (domain.Referral, error)
	DeleteReferral(ctx context.Context, id int64) error
}

// Service keeps the current referral list and reloads it after every change
type Service struct {
	api      API
	userID   int64
	notifier notify.Notifier
	log      *logging.Logger

	mu        sync.RWMutex
	filter    domain.ReferralFilter
	referrals []domain.Referral
}

func NewService(api API, userID int64, notifier notify.Notifier, log *logging.Logger) *Service {
	if notifier == nil {
		notifier = notify.Discard
	}
	if log == nil {
		log = logging.NewNop()
	}
	return &Service{api: api, userID: userID, notifier: notifier, log: log}
}

// List switches the filter and fetches; on failure the previous list is kept
func (s *Service) List(ctx context.Context, filter domain.ReferralFilter) ([]domain.Referral, error) {
	if err := s.fetch(ctx, filter); err != nil {
		return nil, err
	}
	return s.Referrals(), nil
}

// Reload re-fetches with the current filter
func (s *Service) Reload(ctx context.Context) error {
	s.mu.RLock()
	filter := s.filter
	s.mu.RUnlock()
	return s.fetch(ctx, filter)
}

func (s *Service) fetch(ctx context.Context, filter domain.ReferralFilter) error {
	refs, err := s.api.ListReferrals(ctx, s.userID, filter)
	if err != nil {
		s.log.Error("load referrals failed", "error", err)
		s.notifier.Notify(notify.Error(loadFailedMessage))
		return fmt.Errorf("referral: load: %w", err)
	}
	if refs == nil {
		refs = []domain.Referral{}
	}

	s.mu.Lock()
	s.filter = filter
	s.referrals = refs
	s.mu.Unlock()
	return nil
}

// Referrals returns a copy of the last fetched list
func (s *Service) Referrals() []domain.Referral {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Referral, len(s.referrals))
	copy(out, s.referrals)
	return out
}

// Create validates and records a referral; user id defaults to the tracker owner
func (s *Service) Create(ctx context.Context, in domain.ReferralCreate) (domain.Referral, notify.Notification, error) {
	if in.UserID == 0 {
		in.UserID = s.userID
	}
	in.Status = strings.TrimSpace(in.Status)
	if err := domain.Validate(in); err != nil {
		return domain.Referral{}, s.emit(notify.Error(err.Error())), err
	}

	ref, err := s.api.CreateReferral(ctx, in)
	if err != nil {
		s.log.Warn("create referral failed", "company", in.Company, "error", err)
		return domain.Referral{}, s.emit(notify.Error(backend.Message(err))), fmt.Errorf("referral: create: %w", err)
	}

	n := s.emit(notify.Success(fmt.Sprintf("Added %s at %s", ref.ContactName, ref.Company)))
	s.reloadAfter(ctx)
	return ref, n, nil
}

// Update applies a partial edit
func (s *Service) Update(ctx context.Context, id int64, in domain.ReferralUpdate) (domain.Referral, notify.Notification, error) {
	if in.Empty() {
		err := domain.Invalid("nothing to update")
		return domain.Referral{}, s.emit(notify.Error(err.Error())), err
	}
	if err := domain.Validate(in); err != nil {
		return domain.Referral{}, s.emit(notify.Error(err.Error())), err
	}

	ref, err := s.api.UpdateReferral(ctx, id, in)
	if err != nil {
		s.log.Warn("update referral failed", "referral_id", id, "error", err)
		return domain.Referral{}, s.emit(notify.Error(backend.Message(err))), fmt.Errorf("referral: update %d: %w", id, err)
	}

	msg := "Referral updated"
	if in.Status != nil {
		msg = "Status updated to " + *in.Status
	}
	n := s.emit(notify.Success(msg))
	s.reloadAfter(ctx)
	return ref, n, nil
}

// SetStatus is the status shortcut used by the referral cards
func (s *Service) SetStatus(ctx context.Context, id int64, status string) (domain.Referral, notify.Notification, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		err := domain.Invalid("status is required")
		return domain.Referral{}, s.emit(notify.Error(err.Error())), err
	}
	return s.Update(ctx, id, domain.ReferralUpdate{Status: &status})
}

// Delete removes a referral; callers confirm with the user first
func (s *Service) Delete(ctx context.Context, id int64) (notify.Notification, error) {
	if err := s.api.DeleteReferral(ctx, id); err != nil {
		s.log.Warn("delete referral failed", "referral_id", id, "error", err)
		return s.emit(notify.Error(backend.Message(err))), fmt.Errorf("referral: delete %d: %w", id, err)
	}

	n := s.emit(notify.Success("Referral deleted"))
	s.reloadAfter(ctx)
	return n, nil
}

func (s *Service) reloadAfter(ctx context.Context) {
	// fetch already reports the failure
	_ = s.Reload(ctx)
}

func (s *Service) emit(n notify.Notification) notify.Notification {
	s.notifier.Notify(n)
	return n
}
