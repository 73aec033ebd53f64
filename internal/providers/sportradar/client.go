package sportradar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ncaafb-roster-fetcher/internal/domain"
	"ncaafb-roster-fetcher/internal/providers"
)

// Config controls how the client reaches the Sportradar API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches full rosters from the Sportradar NCAAFB API. It performs a
// single attempt per call; retry behavior belongs to the wrapping provider.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

// NewClient constructs a Sportradar client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// FetchRoster retrieves the full roster for one team. Non-200 responses and
// undecodable bodies surface as the typed errors in the providers package.
func (c *Client) FetchRoster(ctx context.Context, teamID string) (domain.Roster, error) {
	req, err := c.buildRequest(ctx, teamID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.TransportError{Err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var roster domain.Roster
		if decodeErr := json.NewDecoder(resp.Body).Decode(&roster); decodeErr != nil {
			return nil, &providers.DecodeError{Err: decodeErr}
		}
		return roster, nil
	case http.StatusTooManyRequests:
		return nil, &providers.RateLimitError{
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &providers.StatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(body)),
		}
	}
}

func (c *Client) buildRequest(ctx context.Context, teamID string) (*http.Request, error) {
	target := c.baseURL + fmt.Sprintf(rosterPathFormat, url.PathEscape(teamID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("api_key", c.apiKey)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("accept", "application/json")

	return req, nil
}

func parseRetryAfter(raw string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || secs < 0 {
		return defaultRetryAfter
	}
	return time.Duration(secs) * time.Second
}
