// Package export copies the board snapshot into external tools
package export

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/honeycarbs/job-tracker/internal/domain"
)

var ErrUnknownTarget = errors.New("export: unknown target")

// Result summarises one export run
type Result struct {
	Target      string    `json:"target"`
	Written     int       `json:"written"`
	Message     string    `json:"message"`
	CompletedAt time.Time `json:"completed_at"`
}

// Exporter writes jobs to an external destination
type Exporter interface {
	Name() string
	Export(ctx context.Context, jobs []domain.Job) (Result, error)
}

// Registry holds the configured exporters by name
type Registry struct {
	exporters map[string]Exporter
}

// NewRegistry keeps the non-nil exporters
func NewRegistry(exporters ...Exporter) *Registry {
	r := &Registry{exporters: make(map[string]Exporter)}
	for _, e := range exporters {
		if e != nil {
			r.exporters[e.Name()] = e
		}
	}
	return r
}

// Targets lists configured exporter names in sorted order
func (r *Registry) Targets() []string {
	out := make([]string, 0, len(r.exporters))
	for name := range r.exporters {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Export runs the named exporter
func (r *Registry) Export(ctx context.Context, target string, jobs []domain.Job) (Result, error) {
	e, ok := r.exporters[target]
	if !ok {
		return Result{Target: target}, fmt.Errorf("%w: %q", ErrUnknownTarget, target)
	}
	return e.Export(ctx, jobs)
}

func lastChange(j domain.Job) time.Time {
	if j.UpdatedAt != nil && !j.UpdatedAt.IsZero() {
		return j.UpdatedAt.Time
	}
	return j.CreatedAt.Time
}
