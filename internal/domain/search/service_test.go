package search

import (
	"context"
	"errors"
	"testing"

	"github.com/honeycarbs/job-tracker/internal/domain"
	"github.com/honeycarbs/job-tracker/internal/notify"
	"github.com/honeycarbs/job-tracker/pkg/backend"
)

type stubProvider struct {
	name string
	page Page
	err  error
	got  domain.SearchParams
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Search(_ context.Context, params domain.SearchParams) (Page, error) {
	p.got = params
	return p.page, p.err
}

type stubSaver struct {
	userID int64
	err    error
}

func (s *stubSaver) SaveSearchJob(_ context.Context, userID int64, job domain.SearchJob) (domain.SaveSearchResult, error) {
	s.userID = userID
	if s.err != nil {
		return domain.SaveSearchResult{}, s.err
	}
	return domain.SaveSearchResult{Success: true, Job: domain.Job{ID: 9, Title: job.Title}}, nil
}

type countingReloader struct{ n int }

func (r *countingReloader) Reload(context.Context) error {
	r.n++
	return nil
}

func TestSearchMergesAndDedups(t *testing.T) {
	first := &stubProvider{name: "backend", page: Page{Total: 2, Jobs: []domain.SearchJob{
		{Title: "A", Source: "adzuna", ExternalID: "1"},
		{Title: "B", Source: "jsearch", ExternalID: "b"},
	}}}
	second := &stubProvider{name: "adzuna", page: Page{Total: 2, Jobs: []domain.SearchJob{
		{Title: "A again", Source: "adzuna", ExternalID: "1"},
		{Title: "C", Source: "adzuna", ExternalID: "3"},
	}}}

	svc, err := NewService(WithProviders(first, second), WithSaver(&stubSaver{}, 1))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	res, err := svc.Search(context.Background(), domain.SearchParams{Query: "go"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	titles := make([]string, 0, len(res.Jobs))
	for _, j := range res.Jobs {
		titles = append(titles, j.Title)
	}
	if len(titles) != 3 || titles[0] != "A" || titles[1] != "B" || titles[2] != "C" {
		t.Errorf("titles = %v", titles)
	}
	if res.Total != 3 || res.Page != 1 || res.NumPages != 1 || res.SourceCount != 2 {
		t.Errorf("envelope = %+v", res)
	}
	if first.got.Page != 1 || first.got.NumPages != 1 {
		t.Errorf("defaults not applied: %+v", first.got)
	}
}

func TestSearchRequiresQuery(t *testing.T) {
	p := &stubProvider{name: "backend"}
	svc, _ := NewService(WithProviders(p), WithSaver(&stubSaver{}, 1))

	_, err := svc.Search(context.Background(), domain.SearchParams{Query: "   "})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if p.got.Query != "" {
		t.Error("provider should not be called")
	}
}

func TestSearchPartialFailure(t *testing.T) {
	ok := &stubProvider{name: "backend", page: Page{Jobs: []domain.SearchJob{{Title: "A"}}, Total: 1}}
	bad := &stubProvider{name: "adzuna", err: errors.New("quota exceeded")}
	feed := notify.NewFeed(5)

	svc, _ := NewService(WithProviders(bad, ok), WithSaver(&stubSaver{}, 1), WithNotifier(feed))
	res, err := svc.Search(context.Background(), domain.SearchParams{Query: "go"})
	if err != nil || len(res.Jobs) != 1 {
		t.Fatalf("Search = %+v, %v", res, err)
	}

	svc, _ = NewService(WithProviders(bad), WithSaver(&stubSaver{}, 1), WithNotifier(feed))
	if _, err := svc.Search(context.Background(), domain.SearchParams{Query: "go"}); err == nil {
		t.Fatal("expected error when every provider fails")
	}
	recent := feed.Recent()
	if recent[len(recent)-1].Message != "quota exceeded" {
		t.Errorf("notifications = %+v", recent)
	}
}

func TestSearchNoResultsNotifies(t *testing.T) {
	feed := notify.NewFeed(5)
	svc, _ := NewService(WithProviders(&stubProvider{name: "backend"}), WithSaver(&stubSaver{}, 1), WithNotifier(feed))

	res, err := svc.Search(context.Background(), domain.SearchParams{Query: "cobol"})
	if err != nil || len(res.Jobs) != 0 {
		t.Fatalf("Search = %+v, %v", res, err)
	}
	if got := feed.Recent(); len(got) != 1 || got[0].Level != notify.LevelInfo {
		t.Errorf("notifications = %+v", got)
	}
}

func TestSaveReloadsBoard(t *testing.T) {
	saver := &stubSaver{}
	reloader := &countingReloader{}
	svc, _ := NewService(WithProviders(&stubProvider{name: "backend"}), WithSaver(saver, 7), WithReloader(reloader))

	_, n, err := svc.Save(context.Background(), domain.SearchJob{Title: "Go Dev"})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if n.Message != `Saved "Go Dev" to your tracker!` {
		t.Errorf("notification = %q", n.Message)
	}
	if saver.userID != 7 || reloader.n != 1 {
		t.Errorf("userID = %d, reloads = %d", saver.userID, reloader.n)
	}

	saver.err = &backend.APIError{StatusCode: 400, Detail: "Job already saved"}
	_, n, err = svc.Save(context.Background(), domain.SearchJob{Title: "Go Dev"})
	if err == nil || n.Message != "Job already saved" {
		t.Errorf("Save = %+v, %v", n, err)
	}
	if reloader.n != 1 {
		t.Error("failed save must not reload")
	}
}

func TestNewServiceRequiresProviders(t *testing.T) {
	if _, err := NewService(WithSaver(&stubSaver{}, 1)); err == nil {
		t.Fatal("expected error")
	}
}
