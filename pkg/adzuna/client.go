package adzuna

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultBaseURL  = "https://api.adzuna.com"
	defaultCountry  = "us"
	defaultPageSize = 20
)

// NewClient instantiates an Adzuna API client
func NewClient(cfg Config) (*Client, error) {
	if cfg.AppID == "" || cfg.AppKey == "" {
		return nil, fmt.Errorf("adzuna: app_id and app_key are required")
	}

	country := cfg.Country
	if country == "" {
		country = defaultCountry
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &Client{
		appID:      cfg.AppID,
		appKey:     cfg.AppKey,
		country:    strings.ToLower(country),
		baseURL:    baseURL,
		httpClient: httpClient,
		pageSize:   pageSize,
	}, nil
}

// SearchJobs fetches one page of postings matching query
func (c *Client) SearchJobs(ctx context.Context, query string, params SearchParams) (SearchResponse, error) {
	if c == nil {
		return SearchResponse{}, fmt.Errorf("adzuna: client is nil")
	}

	u, err := c.buildSearchURL(query, params)
	if err != nil {
		return SearchResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return SearchResponse{}, fmt.Errorf("adzuna: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return SearchResponse{}, fmt.Errorf("adzuna: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return SearchResponse{}, fmt.Errorf("adzuna: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload jobSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return SearchResponse{}, fmt.Errorf("adzuna: decode response: %w", err)
	}

	jobs := make([]Job, 0, len(payload.Results))
	for _, posting := range payload.Results {
		job := mapPosting(posting)
		if job.ID == "" {
			job.ID = uuid.NewString()
		}
		if params.RemoteOnly && !job.Remote {
			continue
		}
		jobs = append(jobs, job)
	}

	return SearchResponse{Jobs: jobs, Count: payload.Count}, nil
}

func (c *Client) buildSearchURL(query string, params SearchParams) (string, error) {
	if query == "" {
		return "", fmt.Errorf("adzuna: query is required")
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("adzuna: parse base url: %w", err)
	}

	page := params.Page
	if page <= 0 {
		page = 1
	}
	u.Path = path.Join(u.Path, "v1", "api", "jobs", c.country, "search", strconv.Itoa(page))

	values := url.Values{}
	values.Set("app_id", c.appID)
	values.Set("app_key", c.appKey)
	values.Set("results_per_page", strconv.Itoa(c.pageSize))
	values.Set("content-type", "application/json")

	what := query
	if params.RemoteOnly {
		what += " remote"
	}
	values.Set("what", what)

	if params.Location != "" {
		values.Set("where", params.Location)
	}
	if params.MaxDaysOld > 0 {
		values.Set("max_days_old", strconv.Itoa(params.MaxDaysOld))
	}
	if params.FullTime {
		values.Set("full_time", "1")
	}
	if params.PartTime {
		values.Set("part_time", "1")
	}
	if params.Contract {
		values.Set("contract", "1")
	}

	u.RawQuery = values.Encode()
	return u.String(), nil
}

func mapPosting(posting jobPosting) Job {
	job := Job{
		ID:          posting.ID,
		Title:       posting.Title,
		CompanyName: posting.Company.DisplayName,
		Location:    posting.Location.DisplayName,
		URL:         posting.RedirectURL,
		Description: posting.Description,
		SalaryMin:   posting.SalaryMin,
		SalaryMax:   posting.SalaryMax,
	}

	if posting.Created != "" {
		if ts, err := time.Parse(time.RFC3339, posting.Created); err == nil {
			job.PostedAt = ts
		}
	}

	switch {
	case posting.ContractType == "contract":
		job.EmploymentType = "CONTRACTOR"
	case posting.ContractTime == "part_time":
		job.EmploymentType = "PARTTIME"
	case posting.ContractTime == "full_time":
		job.EmploymentType = "FULLTIME"
	}

	text := strings.ToLower(posting.Title + " " + posting.Location.DisplayName + " " + posting.Description)
	job.Remote = strings.Contains(text, "remote")

	return job
}
