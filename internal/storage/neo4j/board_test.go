package neo4j

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/honeycarbs/job-tracker/internal/domain"

	pkgneo4j "github.com/honeycarbs/job-tracker/pkg/neo4j"
)

type recordingGraph struct {
	writes []pkgneo4j.Statement
	rows   []map[string]any
}

func (g *recordingGraph) Write(_ context.Context, stmts ...pkgneo4j.Statement) error {
	g.writes = append(g.writes, stmts...)
	return nil
}

func (g *recordingGraph) Read(_ context.Context, _ pkgneo4j.Statement) ([]map[string]any, error) {
	return g.rows, nil
}

func TestSyncJobsPrunesThenMerges(t *testing.T) {
	g := &recordingGraph{}
	repo := &BoardRepository{client: g}

	err := repo.SyncJobs(context.Background(), 1, []domain.Job{
		{ID: 4, Title: "Go Dev", Company: "Acme", Status: domain.StatusApplied},
	})
	if err != nil {
		t.Fatalf("SyncJobs: %v", err)
	}
	if len(g.writes) != 2 {
		t.Fatalf("writes = %d", len(g.writes))
	}
	if !strings.Contains(g.writes[0].Cypher, "DETACH DELETE") {
		t.Errorf("first statement should prune: %s", g.writes[0].Cypher)
	}
	ids := g.writes[0].Params["ids"].([]int64)
	if len(ids) != 1 || ids[0] != 4 {
		t.Errorf("ids = %v", ids)
	}
	jobs := g.writes[1].Params["jobs"].([]map[string]any)
	if jobs[0]["status"] != "Applied" || jobs[0]["company"] != "Acme" {
		t.Errorf("jobs = %v", jobs)
	}
}

func TestCompanyStatsMapping(t *testing.T) {
	g := &recordingGraph{rows: []map[string]any{
		{"company": "Acme", "status": "Offer", "jobs": int64(2)},
	}}
	repo := &BoardRepository{client: g}

	stats, err := repo.CompanyStats(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(stats) != 1 || stats[0].Jobs != 2 || stats[0].Status != domain.StatusOffer {
		t.Errorf("stats = %+v", stats)
	}
}

func TestBoardRepositoryIntegration(t *testing.T) {
	uri := os.Getenv("NEO4J_URI")
	user := os.Getenv("NEO4J_USERNAME")
	pass := os.Getenv("NEO4J_PASSWORD")
	if uri == "" || user == "" || pass == "" {
		t.Skip("NEO4J_URI, NEO4J_USERNAME and NEO4J_PASSWORD must be set to run this test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := pkgneo4j.NewClient(ctx, pkgneo4j.Config{URI: uri, Username: user, Password: pass})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer client.Close(ctx)

	repo := NewBoardRepository(client)
	const userID = 987654

	jobs := []domain.Job{
		{ID: 1, Title: "Go Dev", Company: "Acme", Status: domain.StatusApplied},
		{ID: 2, Title: "SRE", Company: "Acme", Status: domain.StatusOffer},
	}
	if err := repo.SyncJobs(ctx, userID, jobs); err != nil {
		t.Fatalf("SyncJobs: %v", err)
	}
	if err := repo.SyncJobs(ctx, userID, jobs[:1]); err != nil {
		t.Fatalf("SyncJobs: %v", err)
	}

	stats, err := repo.CompanyStats(ctx, userID)
	if err != nil {
		t.Fatalf("CompanyStats: %v", err)
	}
	if len(stats) != 1 || stats[0].Status != domain.StatusApplied {
		t.Errorf("stats = %+v", stats)
	}

	if err := repo.SyncJobs(ctx, userID, nil); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
}
