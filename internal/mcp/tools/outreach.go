package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/job-tracker/internal/domain"
	"github.com/honeycarbs/job-tracker/internal/outreach"
)

// GenerateEmailArgs defines the arguments for the generate_email tool
type GenerateEmailArgs struct {
	Purpose           string `json:"purpose" jsonschema:"What the email is for, e.g. referral request"`
	Tone              string `json:"tone,omitempty" jsonschema:"Defaults to professional"`
	RecipientName     string `json:"recipient_name"`
	RecipientCompany  string `json:"recipient_company"`
	AdditionalContext string `json:"additional_context,omitempty"`
}

// FindContactsArgs defines the arguments for the find_contacts tool
type FindContactsArgs struct {
	CompanyType string `json:"company_type" jsonschema:"Kind of company, e.g. fintech startup"`
	RoleTypes   string `json:"role_types" jsonschema:"Comma separated roles, e.g. Recruiter, Engineering Manager"`
	Location    string `json:"location"`
	UseLinkedIn bool   `json:"use_linkedin,omitempty"`
	MaxResults  int    `json:"max_results,omitempty" jsonschema:"Defaults to 5"`
}

// AutoApplyArgs defines the arguments for the auto_apply tool
type AutoApplyArgs struct {
	JobURL     string `json:"job_url"`
	ResumePath string `json:"resume_path,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	LinkedIn   string `json:"linkedin,omitempty"`
}

type outreachTools struct {
	svc *outreach.Service
}

// WithOutreachTools registers email, contact and auto-apply tools
func WithOutreachTools(svc *outreach.Service) Option {
	return func(reg *registry) {
		t := outreachTools{svc: svc}
		addTool(reg, "generate_email", "Draft an outreach email", t.generateEmail)
		addTool(reg, "find_contacts", "Find people to contact at a kind of company", t.findContacts)
		addTool(reg, "auto_apply", "Start automated application for a job posting", t.autoApply)
	}
}

func (t outreachTools) generateEmail(ctx context.Context, _ *sdkmcp.CallToolRequest, args GenerateEmailArgs) (*sdkmcp.CallToolResult, any, error) {
	res, err := t.svc.GenerateEmail(ctx, domain.EmailRequest{
		Purpose:           args.Purpose,
		Tone:              args.Tone,
		RecipientName:     args.RecipientName,
		RecipientCompany:  args.RecipientCompany,
		AdditionalContext: args.AdditionalContext,
	})
	if err != nil {
		return errorResult(err)
	}
	return textResult(res.EmailContent), nil, nil
}

func (t outreachTools) findContacts(ctx context.Context, _ *sdkmcp.CallToolRequest, args FindContactsArgs) (*sdkmcp.CallToolResult, any, error) {
	contacts, err := t.svc.FindContacts(ctx, domain.ContactRequest{
		CompanyType: args.CompanyType,
		RoleTypes:   outreach.SplitRoles(args.RoleTypes),
		Location:    args.Location,
		UseLinkedIn: args.UseLinkedIn,
		MaxResults:  args.MaxResults,
	})
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(fmt.Sprintf("[find_contacts] %d contact(s)", len(contacts)), contacts)
}

func (t outreachTools) autoApply(ctx context.Context, _ *sdkmcp.CallToolRequest, args AutoApplyArgs) (*sdkmcp.CallToolResult, any, error) {
	res, err := t.svc.AutoApply(ctx, domain.AutoApplyRequest{
		JobURL:     args.JobURL,
		ResumePath: args.ResumePath,
		FirstName:  args.FirstName,
		LastName:   args.LastName,
		Email:      args.Email,
		Phone:      args.Phone,
		LinkedIn:   args.LinkedIn,
	})
	if err != nil {
		return errorResult(err)
	}
	return jsonResult("[auto_apply] submitted", res)
}
