package backend

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Config defines tracker backend client settings
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	// Timeout applies only when HTTPClient is nil; zero keeps the transport default
	Timeout time.Duration
	// SearchRate caps search requests per second; zero is unlimited
	SearchRate float64
}

// Client talks to the tracker REST backend
type Client struct {
	baseURL       string
	httpClient    *http.Client
	searchLimiter *rate.Limiter
}

// AutoApplyResult is whatever the automation endpoint returns
type AutoApplyResult map[string]any

type errorBody struct {
	Detail any `json:"detail"`
}
