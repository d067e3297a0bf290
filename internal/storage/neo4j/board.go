package neo4j

import (
	"context"
	"fmt"

	"github.com/honeycarbs/job-tracker/internal/domain"
	"github.com/honeycarbs/job-tracker/internal/repository"

	pkgneo4j "github.com/honeycarbs/job-tracker/pkg/neo4j"
)

// Ensure BoardRepository implements repository.BoardMirror
var _ repository.BoardMirror = (*BoardRepository)(nil)

type graphClient interface {
	Write(ctx context.Context, stmts ...pkgneo4j.Statement) error
	Read(ctx context.Context, st pkgneo4j.Statement) ([]map[string]any, error)
}

// BoardRepository mirrors the board snapshot as (:Job)-[:AT]->(:Company) and (:Job)-[:IN_STATUS]->(:Status)
type BoardRepository struct {
	client graphClient
}

// NewBoardRepository creates a BoardRepository with a Neo4j client
func NewBoardRepository(client *pkgneo4j.Client) *BoardRepository {
	return &BoardRepository{client: client}
}

const syncJobsCypher = `
	UNWIND $jobs AS job
	MERGE (j:Job {id: job.id, userId: $userId})
	SET j.title = job.title,
	    j.location = job.location,
	    j.url = job.url,
	    j.source = job.source,
	    j.salaryRange = job.salaryRange,
	    j.remotePolicy = job.remotePolicy
	WITH j, job
	OPTIONAL MATCH (j)-[old:AT|IN_STATUS]->()
	DELETE old
	WITH DISTINCT j, job
	MERGE (c:Company {name: job.company})
	MERGE (j)-[:AT]->(c)
	MERGE (s:Status {name: job.status})
	MERGE (j)-[:IN_STATUS]->(s)
`

const pruneJobsCypher = `
	MATCH (j:Job {userId: $userId})
	WHERE NOT j.id IN $ids
	DETACH DELETE j
`

// SyncJobs replaces the user's mirrored jobs with jobs
func (r *BoardRepository) SyncJobs(ctx context.Context, userID int64, jobs []domain.Job) error {
	jobsData := make([]map[string]any, 0, len(jobs))
	ids := make([]int64, 0, len(jobs))
	for _, job := range jobs {
		ids = append(ids, job.ID)
		jobsData = append(jobsData, map[string]any{
			"id":           job.ID,
			"title":        job.Title,
			"company":      job.Company,
			"location":     job.Location,
			"url":          job.URL,
			"source":       job.Source,
			"salaryRange":  job.SalaryRange,
			"remotePolicy": job.RemotePolicy,
			"status":       string(job.Status),
		})
	}

	err := r.client.Write(ctx,
		pkgneo4j.Statement{Cypher: pruneJobsCypher, Params: map[string]any{"userId": userID, "ids": ids}},
		pkgneo4j.Statement{Cypher: syncJobsCypher, Params: map[string]any{"userId": userID, "jobs": jobsData}},
	)
	if err != nil {
		return fmt.Errorf("neo4j: sync jobs: %w", err)
	}
	return nil
}

const companyStatsCypher = `
	MATCH (j:Job {userId: $userId})-[:AT]->(c:Company)
	OPTIONAL MATCH (j)-[:IN_STATUS]->(s:Status)
	RETURN c.name AS company, s.name AS status, count(j) AS jobs
	ORDER BY company, status
`

// CompanyStats counts mirrored jobs per company and status
func (r *BoardRepository) CompanyStats(ctx context.Context, userID int64) ([]repository.CompanyStat, error) {
	rows, err := r.client.Read(ctx, pkgneo4j.Statement{
		Cypher: companyStatsCypher,
		Params: map[string]any{"userId": userID},
	})
	if err != nil {
		return nil, fmt.Errorf("neo4j: company stats: %w", err)
	}

	out := make([]repository.CompanyStat, 0, len(rows))
	for _, row := range rows {
		company, _ := row["company"].(string)
		status, _ := row["status"].(string)
		count, _ := row["jobs"].(int64)
		out = append(out, repository.CompanyStat{
			Company: company,
			Status:  domain.JobStatus(status),
			Jobs:    int(count),
		})
	}
	return out, nil
}
