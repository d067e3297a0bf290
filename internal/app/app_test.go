package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/honeycarbs/job-tracker/internal/config"
	"github.com/honeycarbs/job-tracker/internal/domain"
	"github.com/honeycarbs/job-tracker/internal/notify"
	"github.com/honeycarbs/job-tracker/pkg/logging"
)

func testConfig(t *testing.T, baseURL string) config.Config {
	t.Helper()
	cfg, err := config.FromEnv(func(k string) string {
		if k == "API_BASE_URL" {
			return baseURL
		}
		return ""
	})
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	return cfg
}

func TestInitializeWithoutIntegrations(t *testing.T) {
	app, cleanup, err := Initialize(context.Background(), testConfig(t, "http://127.0.0.1:1"), logging.NewNop())
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	defer cleanup()

	if app.Server == nil || app.Board == nil || app.Feed == nil {
		t.Fatalf("app not fully wired: %+v", app)
	}
	if app.Mirror != nil {
		t.Error("mirror should be disabled without NEO4J_URI")
	}
}

func TestConsoleLoadsBoard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/jobs/" || r.URL.Query().Get("user_id") != "1" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]domain.Job{{ID: 4, Title: "SRE", Company: "Initech", Status: domain.StatusSaved}})
	}))
	defer srv.Close()

	feed := notify.NewFeed(5)
	console, err := InitializeConsole(testConfig(t, srv.URL), logging.NewNop(), feed)
	if err != nil {
		t.Fatalf("InitializeConsole: %v", err)
	}

	if err := console.Board.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	cols := console.Board.Store().Columns()
	if len(cols[1].Jobs) != 1 || cols[1].Status != domain.StatusSaved {
		t.Errorf("columns = %+v", cols)
	}
	if len(feed.Recent()) != 0 {
		t.Errorf("unexpected notifications: %+v", feed.Recent())
	}
}
