package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config contains runtime settings for the tracker front-end
type Config struct {
	LogLevel string
	Host     string // default 0.0.0.0
	Port     string // default PORT env or 3000
	UserID   int64  // tracker owner; there is no auth, default 1

	Backend struct {
		BaseURL    string
		Timeout    time.Duration // zero keeps the transport default
		SearchRate float64       // search requests per second, zero is unlimited
	}
	Adzuna struct {
		AppID   string
		AppKey  string
		Country string
	} // optional direct search provider
	Sheets struct {
		CredentialsPath string
		SpreadsheetID   string
		Tab             string
	}
	Notion struct {
		Token      string
		DatabaseID string
	}
	Neo4j struct {
		URI      string
		Username string
		Password string
	}
}

// AdzunaEnabled reports whether direct Adzuna search is configured
func (c Config) AdzunaEnabled() bool {
	return c.Adzuna.AppID != "" && c.Adzuna.AppKey != ""
}

// SheetsEnabled reports whether the Google Sheets export is configured
func (c Config) SheetsEnabled() bool {
	return c.Sheets.CredentialsPath != "" && c.Sheets.SpreadsheetID != ""
}

// NotionEnabled reports whether the Notion export is configured
func (c Config) NotionEnabled() bool {
	return c.Notion.Token != "" && c.Notion.DatabaseID != ""
}

// Neo4jEnabled reports whether the graph mirror is configured
func (c Config) Neo4jEnabled() bool {
	return c.Neo4j.URI != ""
}

// Load populates config from environment variables, reading .env first when present
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		LogLevel: "info",
		Host:     "0.0.0.0",
		Port:     "3000",
		UserID:   1,
	}
	cfg.Backend.BaseURL = "http://127.0.0.1:8000"
	cfg.Adzuna.Country = "us"
	cfg.Sheets.Tab = "Jobs"

	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := getenv("HOST"); v != "" {
		cfg.Host = v
	}

	if v := getenv("PORT"); v != "" {
		cfg.Port = v
	}

	if v := getenv("API_BASE_URL"); v != "" {
		cfg.Backend.BaseURL = strings.TrimSuffix(v, "/")
	}

	var invalid []string

	if v := getenv("TRACKER_USER_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			invalid = append(invalid, "TRACKER_USER_ID")
		} else {
			cfg.UserID = id
		}
	}

	if v := getenv("BACKEND_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			invalid = append(invalid, "BACKEND_TIMEOUT")
		} else {
			cfg.Backend.Timeout = d
		}
	}

	if v := getenv("SEARCH_RATE_PER_SEC"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r < 0 {
			invalid = append(invalid, "SEARCH_RATE_PER_SEC")
		} else {
			cfg.Backend.SearchRate = r
		}
	}

	cfg.Adzuna.AppID = getenv("ADZUNA_APP_ID")
	cfg.Adzuna.AppKey = getenv("ADZUNA_APP_KEY")
	if v := getenv("ADZUNA_COUNTRY"); v != "" {
		cfg.Adzuna.Country = v
	}

	cfg.Sheets.CredentialsPath = getenv("GOOGLE_SHEETS_CREDENTIALS_PATH")
	cfg.Sheets.SpreadsheetID = getenv("GOOGLE_SHEETS_ID")
	if v := getenv("GOOGLE_SHEETS_TAB"); v != "" {
		cfg.Sheets.Tab = v
	}

	cfg.Notion.Token = getenv("NOTION_TOKEN")
	cfg.Notion.DatabaseID = strings.ReplaceAll(strings.TrimSpace(getenv("NOTION_DB_ID")), "-", "")

	cfg.Neo4j.URI = getenv("NEO4J_URI")
	cfg.Neo4j.Username = getenv("NEO4J_USERNAME")
	cfg.Neo4j.Password = getenv("NEO4J_PASSWORD")

	if len(invalid) > 0 {
		return cfg, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	var missingVars []string

	if cfg.Neo4j.URI != "" {
		if cfg.Neo4j.Username == "" {
			missingVars = append(missingVars, "NEO4J_USERNAME")
		}
		if cfg.Neo4j.Password == "" {
			missingVars = append(missingVars, "NEO4J_PASSWORD")
		}
	}

	if len(missingVars) > 0 {
		return cfg, fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	return cfg, nil
}
