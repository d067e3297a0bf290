package domain

import (
	"encoding/json"
	"io"
	"strings"
)

// JobID is the backend-assigned job identifier
type JobID = int64

// Job is a tracked job application
type Job struct {
	ID           JobID      `json:"id"`
	UserID       int64      `json:"user_id"`
	Title        string     `json:"title"`
	Company      string     `json:"company"`
	Description  string     `json:"description"`
	URL          string     `json:"url,omitempty"`
	Source       string     `json:"source,omitempty"`
	Status       JobStatus  `json:"status"`
	SalaryRange  string     `json:"salary_range,omitempty"`
	RemotePolicy string     `json:"remote_policy,omitempty"`
	Location     string     `json:"location,omitempty"`
	CreatedAt    Timestamp  `json:"created_at"`
	UpdatedAt    *Timestamp `json:"updated_at,omitempty"`
}

// JobCreate is the payload for a new job
type JobCreate struct {
	Title        string    `json:"title" binding:"required"`
	Company      string    `json:"company" binding:"required"`
	Description  string    `json:"description" binding:"required"`
	URL          string    `json:"url,omitempty" binding:"omitempty,url"`
	Source       string    `json:"source,omitempty"`
	Status       JobStatus `json:"status,omitempty" binding:"omitempty,oneof=New Saved Applied Interview Offer Rejected"`
	SalaryRange  string    `json:"salary_range,omitempty"`
	RemotePolicy string    `json:"remote_policy,omitempty"`
	Location     string    `json:"location,omitempty"`
}

// JobUpdate carries a partial job edit; nil fields are left untouched
type JobUpdate struct {
	Title        *string    `json:"title,omitempty"`
	Company      *string    `json:"company,omitempty"`
	Description  *string    `json:"description,omitempty"`
	URL          *string    `json:"url,omitempty"`
	Source       *string    `json:"source,omitempty"`
	Status       *JobStatus `json:"status,omitempty" binding:"omitempty,oneof=New Saved Applied Interview Offer Rejected"`
	SalaryRange  *string    `json:"salary_range,omitempty"`
	RemotePolicy *string    `json:"remote_policy,omitempty"`
	Location     *string    `json:"location,omitempty"`
}

// Empty reports whether the update carries no field
func (u JobUpdate) Empty() bool {
	return u.Title == nil && u.Company == nil && u.Description == nil && u.URL == nil &&
		u.Source == nil && u.Status == nil && u.SalaryRange == nil && u.RemotePolicy == nil &&
		u.Location == nil
}

// JobFilter narrows a job listing
type JobFilter struct {
	Status  JobStatus `json:"status,omitempty" form:"status" binding:"omitempty,oneof=New Saved Applied Interview Offer Rejected"`
	Company string    `json:"company,omitempty" form:"company"`
	Skip    int       `json:"skip,omitempty" form:"skip" binding:"omitempty,min=0"`
	Limit   int       `json:"limit,omitempty" form:"limit" binding:"omitempty,min=1"`
}

const DefaultJobLimit = 100

// WithDefaults fills paging defaults
func (f JobFilter) WithDefaults() JobFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultJobLimit
	}
	if f.Skip < 0 {
		f.Skip = 0
	}
	return f
}

// ReferralStatusIdentified is the status the backend assigns to new referrals
const (
	ReferralStatusIdentified = "Identified"
	ReferralStatusRequested  = "Requested"
	ReferralStatusReferred   = "Referred"
)

// Referral is a networking/referral contact
type Referral struct {
	ID                    int64      `json:"id"`
	UserID                int64      `json:"user_id"`
	JobID                 *JobID     `json:"job_id,omitempty"`
	Company               string     `json:"company"`
	ContactName           string     `json:"contact_name"`
	ContactEmailOrProfile string     `json:"contact_email_or_profile,omitempty"`
	Relationship          string     `json:"relationship,omitempty"`
	Status                string     `json:"status"`
	Notes                 string     `json:"notes,omitempty"`
	CreatedAt             Timestamp  `json:"created_at"`
	UpdatedAt             *Timestamp `json:"updated_at,omitempty"`
}

// ReferralCreate is the payload for a new referral contact
type ReferralCreate struct {
	UserID                int64  `json:"user_id" binding:"required,gt=0"`
	JobID                 *JobID `json:"job_id,omitempty"`
	Company               string `json:"company" binding:"required"`
	ContactName           string `json:"contact_name" binding:"required"`
	ContactEmailOrProfile string `json:"contact_email_or_profile,omitempty"`
	Relationship          string `json:"relationship,omitempty"`
	Status                string `json:"status,omitempty"`
	Notes                 string `json:"notes,omitempty"`
}

// ReferralUpdate carries a partial referral edit
type ReferralUpdate struct {
	JobID                 *JobID  `json:"job_id,omitempty" binding:"omitnil,gt=0"`
	Company               *string `json:"company,omitempty" binding:"omitnil,required"`
	ContactName           *string `json:"contact_name,omitempty" binding:"omitnil,required"`
	ContactEmailOrProfile *string `json:"contact_email_or_profile,omitempty"`
	Relationship          *string `json:"relationship,omitempty"`
	Status                *string `json:"status,omitempty" binding:"omitnil,required"`
	Notes                 *string `json:"notes,omitempty"`
}

// Empty reports whether the update carries no field
func (u ReferralUpdate) Empty() bool {
	return u.JobID == nil && u.Company == nil && u.ContactName == nil &&
		u.ContactEmailOrProfile == nil && u.Relationship == nil && u.Status == nil && u.Notes == nil
}

// ReferralFilter narrows a referral listing
type ReferralFilter struct {
	Company string `json:"company,omitempty" form:"company"`
	Status  string `json:"status,omitempty" form:"status"`
}

// SearchParams describe an external job search
type SearchParams struct {
	Query           string `json:"query" form:"query" binding:"required"`
	Location        string `json:"location,omitempty" form:"location"`
	RemoteOnly      bool   `json:"remote_only,omitempty" form:"remote_only"`
	EmploymentTypes string `json:"employment_types,omitempty" form:"employment_types"`
	JobRequirements string `json:"job_requirements,omitempty" form:"job_requirements"`
	DatePosted      string `json:"date_posted,omitempty" form:"date_posted" binding:"omitempty,oneof=all today 3days week month"`
	Page            int    `json:"page,omitempty" form:"page" binding:"omitempty,min=1"`
	NumPages        int    `json:"num_pages,omitempty" form:"num_pages" binding:"omitempty,min=1,max=5"`
}

// EmploymentTypes offered by the search panel
var EmploymentTypes = []string{"FULLTIME", "PARTTIME", "CONTRACTOR", "INTERN"}

// Normalize trims the query and applies paging defaults
func (p SearchParams) Normalize() SearchParams {
	p.Query = strings.TrimSpace(p.Query)
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.NumPages <= 0 {
		p.NumPages = 1
	}
	return p
}

// SearchJob is one external search hit
type SearchJob struct {
	JobID          string   `json:"job_id,omitempty"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Description    string   `json:"description"`
	URL            string   `json:"url"`
	Location       string   `json:"location,omitempty"`
	Remote         bool     `json:"remote,omitempty"`
	EmploymentType string   `json:"employment_type,omitempty"`
	SalaryMin      *float64 `json:"salary_min,omitempty"`
	SalaryMax      *float64 `json:"salary_max,omitempty"`
	SalaryCurrency string   `json:"salary_currency,omitempty"`
	PostedAt       string   `json:"posted_at,omitempty"`
	Source         string   `json:"source,omitempty"`
	ExternalID     string   `json:"external_id,omitempty"`
}

// Key identifies a hit across providers
func (j SearchJob) Key() string {
	id := j.ExternalID
	if id == "" {
		id = j.JobID
	}
	if id == "" {
		return ""
	}
	return j.Source + ":" + id
}

// SearchResult is the paginated search envelope
type SearchResult struct {
	Success     bool        `json:"success"`
	Jobs        []SearchJob `json:"jobs"`
	Total       int         `json:"total"`
	Page        int         `json:"page"`
	NumPages    int         `json:"num_pages"`
	SourceCount int         `json:"source_count,omitempty"`
}

// SaveSearchResult is returned when a hit is saved to the tracker
type SaveSearchResult struct {
	Success bool   `json:"success"`
	Job     Job    `json:"job"`
	Message string `json:"message"`
}

// EmailRequest asks the backend to draft an outreach email
type EmailRequest struct {
	Purpose           string `json:"purpose" binding:"required"`
	Tone              string `json:"tone"`
	RecipientName     string `json:"recipient_name" binding:"required"`
	RecipientCompany  string `json:"recipient_company" binding:"required"`
	AdditionalContext string `json:"additional_context,omitempty"`
}

// EmailResponse holds the drafted email
type EmailResponse struct {
	EmailContent string `json:"email_content"`
}

// ContactRequest asks the backend to find people at a kind of company
type ContactRequest struct {
	CompanyType string   `json:"company_type" binding:"required"`
	RoleTypes   []string `json:"role_types" binding:"required,min=1,dive,required"`
	Location    string   `json:"location" binding:"required"`
	UseLinkedIn bool     `json:"use_linkedin"`
	MaxResults  int      `json:"max_results" binding:"gt=0"`
}

// Contact is a person returned by contact finding
type Contact struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	LinkedInURL string `json:"linkedin_url,omitempty"`
	Source      string `json:"source"`
}

// AutoApplyRequest triggers browser automation for a posting
type AutoApplyRequest struct {
	JobURL     string `json:"job_url" binding:"required,url"`
	UserID     int64  `json:"user_id" binding:"required,gt=0"`
	ResumePath string `json:"resume_path,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Email      string `json:"email,omitempty" binding:"omitempty,email"`
	Phone      string `json:"phone,omitempty"`
	LinkedIn   string `json:"linkedin,omitempty"`
}

// CustomizeRequest is the resume customization form
type CustomizeRequest struct {
	JobDescription string    `binding:"required"`
	FileName       string    `binding:"required"`
	Resume         io.Reader `binding:"required"`
}

// CustomizeResult is the backend's resume customization outcome
type CustomizeResult struct {
	Success              bool            `json:"success"`
	CustomizedResume     json.RawMessage `json:"customized_resume,omitempty"`
	PDFPath              string          `json:"pdf_path,omitempty"`
	S3PDFURL             string          `json:"s3_pdf_url,omitempty"`
	JSONPath             string          `json:"json_path,omitempty"`
	S3JSONURL            string          `json:"s3_json_url,omitempty"`
	ModificationsSummary map[string]any  `json:"modifications_summary,omitempty"`
	InitialATSScore      *float64        `json:"initial_ats_score,omitempty"`
	InitialATSFeedback   []string        `json:"initial_ats_feedback,omitempty"`
	FinalATSScore        *float64        `json:"final_ats_score,omitempty"`
	FinalATSFeedback     []string        `json:"final_ats_feedback,omitempty"`
	ScoreImprovement     *float64        `json:"score_improvement,omitempty"`
}
