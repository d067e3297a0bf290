package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/job-tracker/internal/domain"
	"github.com/honeycarbs/job-tracker/internal/referral"
)

// ListReferralsArgs defines the arguments for the list_referrals tool
type ListReferralsArgs struct {
	Company string `json:"company,omitempty"`
	Status  string `json:"status,omitempty"`
}

// CreateReferralArgs defines the arguments for the create_referral tool
type CreateReferralArgs struct {
	Company               string `json:"company"`
	ContactName           string `json:"contact_name"`
	JobID                 int64  `json:"job_id,omitempty" jsonschema:"Tracked job this referral is for"`
	ContactEmailOrProfile string `json:"contact_email_or_profile,omitempty"`
	Relationship          string `json:"relationship,omitempty"`
	Notes                 string `json:"notes,omitempty"`
}

// UpdateReferralArgs defines the arguments for the update_referral tool
type UpdateReferralArgs struct {
	ID     int64   `json:"id"`
	Status *string `json:"status,omitempty" jsonschema:"Identified, Requested, Referred or any custom status"`
	Notes  *string `json:"notes,omitempty"`
}

// DeleteReferralArgs defines the arguments for the delete_referral tool
type DeleteReferralArgs struct {
	ID      int64 `json:"id"`
	Confirm bool  `json:"confirm" jsonschema:"Must be true"`
}

type referralTools struct {
	svc *referral.Service
}

// WithReferralTools registers referral contact tools
func WithReferralTools(svc *referral.Service) Option {
	return func(reg *registry) {
		t := referralTools{svc: svc}
		addTool(reg, "list_referrals", "List referral contacts", t.list)
		addTool(reg, "create_referral", "Add a referral contact", t.create)
		addTool(reg, "update_referral", "Change a referral's status or notes", t.update)
		addTool(reg, "delete_referral", "Delete a referral contact (requires confirm=true)", t.delete)
	}
}

func (t referralTools) list(ctx context.Context, _ *sdkmcp.CallToolRequest, args ListReferralsArgs) (*sdkmcp.CallToolResult, any, error) {
	refs, err := t.svc.List(ctx, domain.ReferralFilter{Company: args.Company, Status: args.Status})
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(fmt.Sprintf("[list_referrals] %d referral(s)", len(refs)), refs)
}

func (t referralTools) create(ctx context.Context, _ *sdkmcp.CallToolRequest, args CreateReferralArgs) (*sdkmcp.CallToolResult, any, error) {
	in := domain.ReferralCreate{
		Company:               args.Company,
		ContactName:           args.ContactName,
		ContactEmailOrProfile: args.ContactEmailOrProfile,
		Relationship:          args.Relationship,
		Notes:                 args.Notes,
	}
	if args.JobID > 0 {
		id := args.JobID
		in.JobID = &id
	}

	ref, n, err := t.svc.Create(ctx, in)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult("[create_referral] "+n.Message, ref)
}

func (t referralTools) update(ctx context.Context, _ *sdkmcp.CallToolRequest, args UpdateReferralArgs) (*sdkmcp.CallToolResult, any, error) {
	ref, n, err := t.svc.Update(ctx, args.ID, domain.ReferralUpdate{Status: args.Status, Notes: args.Notes})
	if err != nil {
		return errorResult(err)
	}
	return jsonResult("[update_referral] "+n.Message, ref)
}

func (t referralTools) delete(ctx context.Context, _ *sdkmcp.CallToolRequest, args DeleteReferralArgs) (*sdkmcp.CallToolResult, any, error) {
	if !args.Confirm {
		return errorResult(domain.Invalid("set confirm=true to delete referral %d", args.ID))
	}

	n, err := t.svc.Delete(ctx, args.ID)
	if err != nil {
		return errorResult(err)
	}
	return textResult("[delete_referral] " + n.Message), nil, nil
}
