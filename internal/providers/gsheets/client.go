// Package gsheets fetches the match schedule from the community-maintained
// Google Sheet through the Sheets v4 values API and normalizes its rows.
package gsheets

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/drumst0ck/koi-calendar/internal/domain"
	"github.com/drumst0ck/koi-calendar/internal/providers"
	"github.com/drumst0ck/koi-calendar/internal/schedule"
)

// Config controls how the client reaches the Sheets API.
type Config struct {
	BaseURL       string
	SpreadsheetID string
	Range         string
	APIKey        string
	HTTPClient    *http.Client
}

// Client fetches sheet rows and maps them to match records.
type Client struct {
	baseURL       string
	spreadsheetID string
	cellRange     string
	apiKey        string
	httpClient    httpDoer
}

// NewClient constructs a Sheets client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:       normalizeBaseURL(cfg.BaseURL),
		spreadsheetID: cfg.SpreadsheetID,
		cellRange:     resolveRange(cfg.Range),
		apiKey:        cfg.APIKey,
		httpClient:    resolveHTTPClient(cfg.HTTPClient),
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string { return providerName }

// FetchMatches retrieves the configured range and returns the normalized
// match records. Rows failing the inclusion predicate are dropped by the
// normalizer, not reported as errors.
func (c *Client) FetchMatches(ctx context.Context) ([]domain.Match, error) {
	if c.spreadsheetID == "" {
		return nil, errors.New("gsheets: spreadsheet id not configured")
	}
	if c.apiKey == "" {
		return nil, errors.New("gsheets: api key not configured")
	}

	req, err := c.buildRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.UpstreamError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var payload valuesResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, decodeErr
	}

	return schedule.NormalizeRows(payload.Values), nil
}

func (c *Client) buildRequest(ctx context.Context) (*http.Request, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(c.spreadsheetID) + "/values/" + url.PathEscape(c.cellRange)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("key", c.apiKey)
	req.URL.RawQuery = q.Encode()

	return req, nil
}
