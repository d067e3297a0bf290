package domain

// JobStatus is the pipeline stage of a job application
type JobStatus string

const (
	StatusNew       JobStatus = "New"
	StatusSaved     JobStatus = "Saved"
	StatusApplied   JobStatus = "Applied"
	StatusInterview JobStatus = "Interview"
	StatusOffer     JobStatus = "Offer"
	StatusRejected  JobStatus = "Rejected"
)

var statuses = []JobStatus{
	StatusNew,
	StatusSaved,
	StatusApplied,
	StatusInterview,
	StatusOffer,
	StatusRejected,
}

// Statuses returns every status in board column order
func Statuses() []JobStatus {
	out := make([]JobStatus, len(statuses))
	copy(out, statuses)
	return out
}

// ParseStatus matches s against the known statuses exactly
func ParseStatus(s string) (JobStatus, bool) {
	for _, st := range statuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// Valid reports whether s is one of Statuses()
func (s JobStatus) Valid() bool {
	_, ok := ParseStatus(string(s))
	return ok
}

func (s JobStatus) String() string {
	return string(s)
}
