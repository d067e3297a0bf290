package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"

	"github.com/honeycarbs/job-tracker/internal/domain"
)

const (
	defaultBaseURL = "http://127.0.0.1:8000"
	maxErrorBody   = 4096
	requestIDKey   = "X-Request-ID"
)

// NewClient instantiates a backend API client
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("backend: parse base url: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   cfg.Timeout,
		}
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
	if cfg.SearchRate > 0 {
		c.searchLimiter = rate.NewLimiter(rate.Limit(cfg.SearchRate), 1)
	}

	return c, nil
}

// BaseURL returns the backend root this client targets
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CustomizeResume uploads a resume and job description for tailoring
func (c *Client) CustomizeResume(ctx context.Context, req domain.CustomizeRequest) (domain.CustomizeResult, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("job_description_text", req.JobDescription); err != nil {
		return domain.CustomizeResult{}, fmt.Errorf("backend: build form: %w", err)
	}
	part, err := w.CreateFormFile("resume", req.FileName)
	if err != nil {
		return domain.CustomizeResult{}, fmt.Errorf("backend: build form: %w", err)
	}
	if _, err := io.Copy(part, req.Resume); err != nil {
		return domain.CustomizeResult{}, fmt.Errorf("backend: read resume: %w", err)
	}
	if err := w.Close(); err != nil {
		return domain.CustomizeResult{}, fmt.Errorf("backend: build form: %w", err)
	}

	var out domain.CustomizeResult
	err = c.send(ctx, http.MethodPost, "/customize-resume/", nil, &buf, w.FormDataContentType(), &out, "Failed to customize resume")
	return out, err
}

// CreateJob adds a job to the user's tracker
func (c *Client) CreateJob(ctx context.Context, userID int64, job domain.JobCreate) (domain.Job, error) {
	var out domain.Job
	err := c.doJSON(ctx, http.MethodPost, "/jobs/", userQuery(userID), job, &out, "Failed to create job")
	return out, err
}

// ListJobs fetches the user's jobs matching filter
func (c *Client) ListJobs(ctx context.Context, userID int64, filter domain.JobFilter) ([]domain.Job, error) {
	filter = filter.WithDefaults()

	q := userQuery(userID)
	q.Set("skip", strconv.Itoa(filter.Skip))
	q.Set("limit", strconv.Itoa(filter.Limit))
	if filter.Status != "" {
		q.Set("status", string(filter.Status))
	}
	if filter.Company != "" {
		q.Set("company", filter.Company)
	}

	var out []domain.Job
	if err := c.doJSON(ctx, http.MethodGet, "/jobs/", q, nil, &out, "Failed to fetch jobs"); err != nil {
		return nil, err
	}
	return out, nil
}

// GetJob fetches one job
func (c *Client) GetJob(ctx context.Context, id domain.JobID) (domain.Job, error) {
	var out domain.Job
	err := c.doJSON(ctx, http.MethodGet, jobPath(id), nil, nil, &out, "Failed to fetch job")
	return out, err
}

// UpdateJob applies a partial update
func (c *Client) UpdateJob(ctx context.Context, id domain.JobID, update domain.JobUpdate) (domain.Job, error) {
	var out domain.Job
	err := c.doJSON(ctx, http.MethodPatch, jobPath(id), nil, update, &out, "Failed to update job")
	return out, err
}

// DeleteJob removes a job
func (c *Client) DeleteJob(ctx context.Context, id domain.JobID) error {
	return c.doJSON(ctx, http.MethodDelete, jobPath(id), nil, nil, nil, "Failed to delete job")
}

// SearchJobs queries external job boards through the backend
func (c *Client) SearchJobs(ctx context.Context, params domain.SearchParams) (domain.SearchResult, error) {
	params = params.Normalize()

	if c.searchLimiter != nil {
		if err := c.searchLimiter.Wait(ctx); err != nil {
			return domain.SearchResult{}, fmt.Errorf("backend: search rate limit: %w", err)
		}
	}

	q := url.Values{}
	q.Set("query", params.Query)
	q.Set("page", strconv.Itoa(params.Page))
	q.Set("num_pages", strconv.Itoa(params.NumPages))
	if params.Location != "" {
		q.Set("location", params.Location)
	}
	if params.RemoteOnly {
		q.Set("remote_only", "true")
	}
	if params.EmploymentTypes != "" {
		q.Set("employment_types", params.EmploymentTypes)
	}
	if params.JobRequirements != "" {
		q.Set("job_requirements", params.JobRequirements)
	}
	if params.DatePosted != "" {
		q.Set("date_posted", params.DatePosted)
	}

	var out domain.SearchResult
	err := c.doJSON(ctx, http.MethodGet, "/search/jobs", q, nil, &out, "Failed to search jobs")
	return out, err
}

// SaveSearchJob persists a search hit as a tracked job
func (c *Client) SaveSearchJob(ctx context.Context, userID int64, job domain.SearchJob) (domain.SaveSearchResult, error) {
	var out domain.SaveSearchResult
	err := c.doJSON(ctx, http.MethodPost, "/search/jobs/save", userQuery(userID), job, &out, "Failed to save job")
	return out, err
}

// GenerateEmail drafts an outreach email
func (c *Client) GenerateEmail(ctx context.Context, req domain.EmailRequest) (domain.EmailResponse, error) {
	var out domain.EmailResponse
	err := c.doJSON(ctx, http.MethodPost, "/outreach/email/generate", nil, req, &out, "Failed to generate email")
	return out, err
}

// FindContacts looks up people matching the request
func (c *Client) FindContacts(ctx context.Context, req domain.ContactRequest) ([]domain.Contact, error) {
	var out []domain.Contact
	if err := c.doJSON(ctx, http.MethodPost, "/outreach/contacts/find", nil, req, &out, "Failed to find contacts"); err != nil {
		return nil, err
	}
	return out, nil
}

// AutoApply starts browser automation against a posting
func (c *Client) AutoApply(ctx context.Context, req domain.AutoApplyRequest) (AutoApplyResult, error) {
	var out AutoApplyResult
	err := c.doJSON(ctx, http.MethodPost, "/automation/apply", nil, req, &out, "Failed to auto-apply")
	return out, err
}

// CreateReferral records a referral contact
func (c *Client) CreateReferral(ctx context.Context, ref domain.ReferralCreate) (domain.Referral, error) {
	var out domain.Referral
	err := c.doJSON(ctx, http.MethodPost, "/referrals/", nil, ref, &out, "Failed to create referral")
	return out, err
}

// ListReferrals fetches the user's referrals matching filter
func (c *Client) ListReferrals(ctx context.Context, userID int64, filter domain.ReferralFilter) ([]domain.Referral, error) {
	q := userQuery(userID)
	if filter.Company != "" {
		q.Set("company", filter.Company)
	}
	if filter.Status != "" {
		q.Set("status", filter.Status)
	}

	var out []domain.Referral
	if err := c.doJSON(ctx, http.MethodGet, "/referrals/", q, nil, &out, "Failed to fetch referrals"); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateReferral applies a partial update
func (c *Client) UpdateReferral(ctx context.Context, id int64, update domain.ReferralUpdate) (domain.Referral, error) {
	var out domain.Referral
	err := c.doJSON(ctx, http.MethodPatch, referralPath(id), nil, update, &out, "Failed to update referral")
	return out, err
}

// DeleteReferral removes a referral
func (c *Client) DeleteReferral(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, referralPath(id), nil, nil, nil, "Failed to delete referral")
}

func (c *Client) doJSON(
	ctx context.Context,
	method, path string,
	query url.Values,
	in, out any,
	fallback string,
) error {
	var (
		body        io.Reader
		contentType string
	)
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("backend: encode request: %w", err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}
	return c.send(ctx, method, path, query, body, contentType, out, fallback)
}

func (c *Client) send(
	ctx context.Context,
	method, path string,
	query url.Values,
	body io.Reader,
	contentType string,
	out any,
	fallback string,
) error {
	if c == nil {
		return fmt.Errorf("backend: client is nil")
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("backend: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDKey, uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{StatusCode: resp.StatusCode, Detail: parseDetail(raw, fallback)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("backend: decode response: %w", err)
	}
	return nil
}

func userQuery(userID int64) url.Values {
	q := url.Values{}
	q.Set("user_id", strconv.FormatInt(userID, 10))
	return q
}

func jobPath(id domain.JobID) string {
	return "/jobs/" + strconv.FormatInt(id, 10)
}

func referralPath(id int64) string {
	return "/referrals/" + strconv.FormatInt(id, 10)
}
