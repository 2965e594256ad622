// Package scoring wraps the third-party pre-score HTTP API.
package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"loanguard/internal/core/domain"
)

const preScorePath = "api/v4/scoring/pre-score"

// Result is the provider's decision for one applicant
type Result struct {
	HasError bool   `json:"has_error"`
	Status   string `json:"status"`
}

// Client exposes the scoring provider operations
type Client interface {
	PreScore(ctx context.Context, dni int64) (*Result, error)
}

// HTTPClient implements Client against the provider's HTTP API
type HTTPClient struct {
	baseURL     *url.URL
	credentials string
	httpClient  *http.Client
}

// NewHTTPClient creates a scoring client with a bounded request timeout
func NewHTTPClient(baseURL, credentials string) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse scoring url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("scoring url must be absolute")
	}

	return &HTTPClient{
		baseURL:     parsed,
		credentials: credentials,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// PreScore asks the provider for a loan decision on the given national id.
// Transport failures and non-200 responses map to ErrScoringUnavailable;
// the caller is expected to surface them immediately, never retry.
func (c *HTTPClient) PreScore(ctx context.Context, dni int64) (*Result, error) {
	// JoinPath keeps any path prefix configured on the base URL.
	endpoint := c.baseURL.JoinPath(preScorePath, strconv.FormatInt(dni, 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrScoringUnavailable, err)
	}
	req.Header.Set("credential", c.credentials)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrScoringUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: provider returned status %d", domain.ErrScoringUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrScoringUnavailable, err)
	}

	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrScoringUnavailable, err)
	}

	return &result, nil
}
