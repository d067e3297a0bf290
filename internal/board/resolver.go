package board

import (
	"strconv"

	"github.com/honeycarbs/job-tracker/internal/domain"
)

// DragEnd is the end of a drag gesture. Active is the dragged card's job id;
// Over is the drop target, a status column or another card's job id, empty when dropped nowhere.
type DragEnd struct {
	Active string `json:"active"`
	Over   string `json:"over,omitempty"`
}

// Move is a resolved status change
type Move struct {
	JobID domain.JobID     `json:"job_id"`
	From  domain.JobStatus `json:"from"`
	To    domain.JobStatus `json:"to"`
}

// Resolve maps a drag-end event to a status change against jobs.
// Column drops take the column status, card drops take the target card's status.
// ok is false when nothing should change.
func Resolve(jobs []domain.Job, ev DragEnd) (Move, bool) {
	if ev.Over == "" || ev.Active == ev.Over {
		return Move{}, false
	}

	activeID, err := strconv.ParseInt(ev.Active, 10, 64)
	if err != nil {
		return Move{}, false
	}
	active, ok := findJob(jobs, activeID)
	if !ok {
		return Move{}, false
	}

	target, ok := domain.ParseStatus(ev.Over)
	if !ok {
		overID, err := strconv.ParseInt(ev.Over, 10, 64)
		if err != nil {
			return Move{}, false
		}
		over, found := findJob(jobs, overID)
		if !found || over.ID == active.ID {
			return Move{}, false
		}
		target = over.Status
	}

	if !target.Valid() || target == active.Status {
		return Move{}, false
	}

	return Move{JobID: active.ID, From: active.Status, To: target}, true
}

func findJob(jobs []domain.Job, id domain.JobID) (domain.Job, bool) {
	for _, j := range jobs {
		if j.ID == id {
			return j, true
		}
	}
	return domain.Job{}, false
}
