package repository

import (
	"context"

	"github.com/honeycarbs/job-tracker/internal/domain"
)

// BoardMirror receives full board snapshots for an external graph; it is never read back into the board
type BoardMirror interface {
	SyncJobs(ctx context.Context, userID int64, jobs []domain.Job) error
	CompanyStats(ctx context.Context, userID int64) ([]CompanyStat, error)
}

// CompanyStat is one (company, status) bucket of the mirror
type CompanyStat struct {
	Company string           `json:"company"`
	Status  domain.JobStatus `json:"status"`
	Jobs    int              `json:"jobs"`
}
