package referral

import (
	"context"
	"errors"
	"testing"

	"github.com/honeycarbs/job-tracker/internal/domain"
	"github.com/honeycarbs/job-tracker/internal/notify"
	"github.com/honeycarbs/job-tracker/pkg/backend"
)

type fakeAPI struct {
	refs   map[int64]domain.Referral
	nextID int64
	lists   int
	updates int
	last    domain.ReferralFilter
}

func (f *fakeAPI) CreateReferral(_ context.Context, in domain.ReferralCreate) (domain.Referral, error) {
	f.nextID++
	status := in.Status
	if status == "" {
		status = domain.ReferralStatusIdentified
	}
	r := domain.Referral{ID: f.nextID, UserID: in.UserID, Company: in.Company, ContactName: in.ContactName, Status: status}
	f.refs[r.ID] = r
	return r, nil
}

func (f *fakeAPI) ListReferrals(_ context.Context, _ int64, filter domain.ReferralFilter) ([]domain.Referral, error) {
	f.lists++
	f.last = filter
	var out []domain.Referral
	for _, r := range f.refs {
		if filter.Company != "" && r.Company != filter.Company {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeAPI) UpdateReferral(_ context.Context, id int64, u domain.ReferralUpdate) (domain.Referral, error) {
	f.updates++
	r, ok := f.refs[id]
	if !ok {
		return domain.Referral{}, &backend.APIError{StatusCode: 404, Detail: "Referral not found"}
	}
	if u.Status != nil {
		r.Status = *u.Status
	}
	f.refs[id] = r
	return r, nil
}

func (f *fakeAPI) DeleteReferral(_ context.Context, id int64) error {
	if _, ok := f.refs[id]; !ok {
		return &backend.APIError{StatusCode: 404, Detail: "Referral not found"}
	}
	delete(f.refs, id)
	return nil
}

func TestReferralLifecycle(t *testing.T) {
	api := &fakeAPI{refs: map[int64]domain.Referral{}}
	feed := notify.NewFeed(10)
	svc := NewService(api, 1, feed, nil)
	ctx := context.Background()

	ref, _, err := svc.Create(ctx, domain.ReferralCreate{Company: "Acme", ContactName: "Ann"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if ref.UserID != 1 || ref.Status != domain.ReferralStatusIdentified {
		t.Errorf("referral = %+v", ref)
	}
	if len(svc.Referrals()) != 1 {
		t.Error("create should reload")
	}

	_, n, err := svc.SetStatus(ctx, ref.ID, domain.ReferralStatusRequested)
	if err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if n.Message != "Status updated to Requested" {
		t.Errorf("notification = %q", n.Message)
	}
	if svc.Referrals()[0].Status != domain.ReferralStatusRequested {
		t.Error("update should reload")
	}

	n, err = svc.Delete(ctx, ref.ID)
	if err != nil || n.Message != "Referral deleted" {
		t.Fatalf("Delete = %+v, %v", n, err)
	}
	if len(svc.Referrals()) != 0 {
		t.Error("delete should reload")
	}
}

func TestReferralErrors(t *testing.T) {
	api := &fakeAPI{refs: map[int64]domain.Referral{}}
	svc := NewService(api, 1, nil, nil)
	ctx := context.Background()

	_, _, err := svc.Create(ctx, domain.ReferralCreate{Company: "Acme"})
	if !errors.Is(err, domain.ErrValidation) || err.Error() != "contact_name is required" {
		t.Errorf("Create err = %v", err)
	}

	n, err := svc.Delete(ctx, 9)
	if !errors.Is(err, backend.ErrNotFound) || n.Message != "Referral not found" {
		t.Errorf("Delete = %+v, %v", n, err)
	}
	if api.lists != 0 {
		t.Error("failed mutations must not reload")
	}
}

func TestUpdateRejectsEmptyAndBlankFields(t *testing.T) {
	api := &fakeAPI{refs: map[int64]domain.Referral{1: {ID: 1, Company: "Acme", ContactName: "Ann"}}}
	feed := notify.NewFeed(10)
	svc := NewService(api, 1, feed, nil)
	ctx := context.Background()

	_, n, err := svc.Update(ctx, 1, domain.ReferralUpdate{})
	if !errors.Is(err, domain.ErrValidation) || n.Message != "nothing to update" {
		t.Errorf("empty update = %+v, %v", n, err)
	}

	blank := ""
	_, n, err = svc.Update(ctx, 1, domain.ReferralUpdate{Company: &blank})
	if !errors.Is(err, domain.ErrValidation) || n.Message != "company is required" {
		t.Errorf("blank company = %+v, %v", n, err)
	}
	if n.Level != notify.LevelError {
		t.Errorf("level = %s", n.Level)
	}

	if api.updates != 0 || api.lists != 0 {
		t.Errorf("rejected updates reached the backend: updates=%d lists=%d", api.updates, api.lists)
	}

	notes := "met at meetup"
	if _, _, err := svc.Update(ctx, 1, domain.ReferralUpdate{Notes: &notes}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if api.updates != 1 {
		t.Errorf("updates = %d, want 1", api.updates)
	}
}

func TestListKeepsFilter(t *testing.T) {
	api := &fakeAPI{refs: map[int64]domain.Referral{
		1: {ID: 1, Company: "Acme"},
		2: {ID: 2, Company: "Globex"},
	}}
	svc := NewService(api, 1, nil, nil)

	refs, err := svc.List(context.Background(), domain.ReferralFilter{Company: "Globex"})
	if err != nil || len(refs) != 1 {
		t.Fatalf("List = %+v, %v", refs, err)
	}
	if err := svc.Reload(context.Background()); err != nil {
		t.Fatal(err)
	}
	if api.last.Company != "Globex" {
		t.Errorf("reload used filter %+v", api.last)
	}
}
