// Package outreach forwards email drafting, contact finding, auto-apply and resume
// customization to the backend after validating the forms locally.
package outreach

import (
	"context"
	"fmt"
	"strings"

	"github.com/honeycarbs/job-tracker/internal/domain"
	"github.com/honeycarbs/job-tracker/pkg/backend"
	"github.com/honeycarbs/job-tracker/pkg/logging"
)

const (
	DefaultTone       = "professional"
	DefaultMaxResults = 5
)

// API is the outreach slice of the backend
type API interface {
	GenerateEmail(ctx context.Context, req domain.EmailRequest) (domain.EmailResponse, error)
	FindContacts(ctx context.Context, req domain.ContactRequest) ([]domain.Contact, error)
	AutoApply(ctx context.Context, req domain.AutoApplyRequest) (backend.AutoApplyResult, error)
	CustomizeResume(ctx context.Context, req domain.CustomizeRequest) (domain.CustomizeResult, error)
}

type Service struct {
	api    API
	userID int64
	log    *logging.Logger
}

func NewService(api API, userID int64, log *logging.Logger) *Service {
	if log == nil {
		log = logging.NewNop()
	}
	return &Service{api: api, userID: userID, log: log}
}

func (s *Service) GenerateEmail(ctx context.Context, req domain.EmailRequest) (domain.EmailResponse, error) {
	req.Purpose = strings.TrimSpace(req.Purpose)
	req.RecipientName = strings.TrimSpace(req.RecipientName)
	req.RecipientCompany = strings.TrimSpace(req.RecipientCompany)
	if strings.TrimSpace(req.Tone) == "" {
		req.Tone = DefaultTone
	}
	if err := domain.Validate(req); err != nil {
		return domain.EmailResponse{}, err
	}

	resp, err := s.api.GenerateEmail(ctx, req)
	if err != nil {
		s.log.Warn("generate email failed", "company", req.RecipientCompany, "error", err)
		return domain.EmailResponse{}, fmt.Errorf("outreach: generate email: %w", err)
	}
	return resp, nil
}

// FindContacts looks up people; role types may arrive as one comma separated string
func (s *Service) FindContacts(ctx context.Context, req domain.ContactRequest) ([]domain.Contact, error) {
	req.RoleTypes = SplitRoles(strings.Join(req.RoleTypes, ","))
	if req.MaxResults <= 0 {
		req.MaxResults = DefaultMaxResults
	}
	if err := domain.Validate(req); err != nil {
		return nil, err
	}

	contacts, err := s.api.FindContacts(ctx, req)
	if err != nil {
		s.log.Warn("find contacts failed", "company_type", req.CompanyType, "error", err)
		return nil, fmt.Errorf("outreach: find contacts: %w", err)
	}
	return contacts, nil
}

// AutoApply starts browser automation; user id defaults to the tracker owner
func (s *Service) AutoApply(ctx context.Context, req domain.AutoApplyRequest) (backend.AutoApplyResult, error) {
	if req.UserID == 0 {
		req.UserID = s.userID
	}
	req.JobURL = strings.TrimSpace(req.JobURL)
	if err := domain.Validate(req); err != nil {
		return nil, err
	}

	res, err := s.api.AutoApply(ctx, req)
	if err != nil {
		s.log.Warn("auto apply failed", "job_url", req.JobURL, "error", err)
		return nil, fmt.Errorf("outreach: auto apply: %w", err)
	}
	s.log.Info("auto apply started", "job_url", req.JobURL)
	return res, nil
}

func (s *Service) CustomizeResume(ctx context.Context, req domain.CustomizeRequest) (domain.CustomizeResult, error) {
	req.JobDescription = strings.TrimSpace(req.JobDescription)
	if err := domain.Validate(req); err != nil {
		return domain.CustomizeResult{}, err
	}

	res, err := s.api.CustomizeResume(ctx, req)
	if err != nil {
		s.log.Warn("customize resume failed", "file", req.FileName, "error", err)
		return domain.CustomizeResult{}, fmt.Errorf("outreach: customize resume: %w", err)
	}
	return res, nil
}

// SplitRoles turns "Engineer, , Recruiter" into [Engineer Recruiter]
func SplitRoles(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
