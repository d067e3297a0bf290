package adzuna

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchJobsRequestAndMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/api/jobs/gb/search/2" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("what") != "golang" || q.Get("where") != "London" || q.Get("max_days_old") != "3" {
			t.Errorf("query = %s", r.URL.RawQuery)
		}
		if q.Get("full_time") != "1" || q.Has("part_time") {
			t.Errorf("employment filters = %s", r.URL.RawQuery)
		}
		_, _ = io.WriteString(w, `{"count":41,"results":[
			{"id":"123","title":"Go Engineer (Remote)","company":{"display_name":"Acme"},
			 "location":{"display_name":"London"},"redirect_url":"https://adzuna/123",
			 "contract_time":"full_time","created":"2024-05-01T10:00:00Z","salary_min":50000}]}`)
	}))
	defer srv.Close()

	c, err := NewClient(Config{AppID: "id", AppKey: "key", Country: "GB", BaseURL: srv.URL, HTTPClient: srv.Client()})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	resp, err := c.SearchJobs(context.Background(), "golang", SearchParams{
		Location:   "London",
		MaxDaysOld: 3,
		Page:       2,
		FullTime:   true,
	})
	if err != nil {
		t.Fatalf("SearchJobs: %v", err)
	}
	if resp.Count != 41 || len(resp.Jobs) != 1 {
		t.Fatalf("resp = %+v", resp)
	}

	j := resp.Jobs[0]
	if j.ID != "123" || j.CompanyName != "Acme" || !j.Remote || j.EmploymentType != "FULLTIME" {
		t.Errorf("job = %+v", j)
	}
	if j.PostedAt.IsZero() {
		t.Error("posted_at not parsed")
	}
}

func TestSearchJobsRemoteOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/api/jobs/us/search/1" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("what"); got != "golang remote" {
			t.Errorf("what = %q", got)
		}
		_, _ = io.WriteString(w, `{"count":3,"results":[
			{"id":"1","title":"Go Engineer","location":{"display_name":"Remote, US"}},
			{"id":"2","title":"Go Engineer","location":{"display_name":"Portland"}},
			{"id":"3","title":"Backend","description":"fully remote team"}]}`)
	}))
	defer srv.Close()

	c, err := NewClient(Config{AppID: "id", AppKey: "key", BaseURL: srv.URL, HTTPClient: srv.Client()})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	resp, err := c.SearchJobs(context.Background(), "golang", SearchParams{RemoteOnly: true})
	if err != nil {
		t.Fatalf("SearchJobs: %v", err)
	}
	if len(resp.Jobs) != 2 || resp.Jobs[0].ID != "1" || resp.Jobs[1].ID != "3" {
		t.Errorf("jobs = %+v", resp.Jobs)
	}
}

func TestSearchJobsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c, _ := NewClient(Config{AppID: "id", AppKey: "key", BaseURL: srv.URL})
	if _, err := c.SearchJobs(context.Background(), "golang", SearchParams{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewClientRequiresCredentials(t *testing.T) {
	if _, err := NewClient(Config{AppID: "id"}); err == nil {
		t.Fatal("expected error without app key")
	}
}
