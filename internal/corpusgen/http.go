package corpusgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/okian/jobmatch/pkg/logger"
)

// HTTPClient wraps http.Client with a fixed timeout.
type HTTPClient struct {
	client *http.Client
}

// newHTTPClient creates a new HTTP client with timeout.
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{client: &http.Client{Timeout: timeout}}
}

// Get performs a GET request.
func (c *HTTPClient) Get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with a JSON body.
func (c *HTTPClient) Post(ctx context.Context, rawURL string, body any) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// probeResponse is the slice of the recommendation body the probes check.
type probeResponse struct {
	UserID string `json:"user_id"`
	Count  int    `json:"count"`
}

// probeRecommend fetches recommendations for one user and reports success.
func probeRecommend(ctx context.Context, client *HTTPClient, baseURL, userID string) bool {
	resp, err := client.Get(ctx, baseURL+"/recommend/"+url.PathEscape(userID))
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}
	var body probeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false
	}
	return body.UserID == userID
}

// probeSearch posts a title search for one user and reports success.
func probeSearch(ctx context.Context, client *HTTPClient, baseURL, userID, title string) bool {
	payload := map[string]any{"titles": []string{title}, "top_k": 10}
	resp, err := client.Post(ctx, baseURL+"/search/"+url.PathEscape(userID), payload)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

// runSmokeProbes hits a running service with recommendation and search
// requests for generated users. Probes alternate between the two endpoints.
func runSmokeProbes(ctx context.Context, config *Config, users []map[string]any, stats *Stats) error {
	if len(users) == 0 {
		return nil
	}
	client := newHTTPClient(config.Timeout)

	resp, err := client.Get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	for i := 0; i < config.Probes; i++ {
		userID, _ := users[i%len(users)]["id"].(string)
		ok := false
		if i%2 == 0 {
			ok = probeRecommend(ctx, client, config.BaseURL, userID)
		} else {
			ok = probeSearch(ctx, client, config.BaseURL, userID, titles[randIndex(len(titles))])
		}
		stats.ProbesSent++
		if ok {
			stats.ProbesOK++
		} else if config.Verbose {
			logger.Get().Warn(ctx, "probe failed", logger.String("userID", userID), logger.Int("probe", i))
		}
	}
	return nil
}
