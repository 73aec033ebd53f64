package sportradar

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"ncaafb-roster-fetcher/internal/providers"
	"ncaafb-roster-fetcher/internal/testutil"
)

func newClientWithTransport(rt testutil.RoundTripperFunc) *Client {
	return NewClient(Config{
		BaseURL:    "https://api.example.test/ncaafb/trial/v7/en/",
		APIKey:     "secret",
		HTTPClient: &http.Client{Transport: rt},
	})
}

func TestFetchRosterBuildsRequest(t *testing.T) {
	var captured *http.Request
	client := newClientWithTransport(func(req *http.Request) (*http.Response, error) {
		captured = req
		return testutil.Response(http.StatusOK, `{"players": []}`), nil
	})

	roster, err := client.FetchRoster(context.Background(), "t-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := roster["players"]; !ok {
		t.Fatalf("expected players key, got %v", roster)
	}

	if captured.URL.Path != "/ncaafb/trial/v7/en/teams/t-1/full_roster.json" {
		t.Fatalf("unexpected path %s", captured.URL.Path)
	}
	if got := captured.URL.Query().Get("api_key"); got != "secret" {
		t.Fatalf("expected api_key query, got %q", got)
	}
	if got := captured.Header.Get("accept"); got != "application/json" {
		t.Fatalf("expected accept header, got %q", got)
	}
	if captured.Method != http.MethodGet {
		t.Fatalf("expected GET, got %s", captured.Method)
	}
}

func TestFetchRosterRateLimited(t *testing.T) {
	cases := []struct {
		name       string
		retryAfter string
		expected   time.Duration
	}{
		{"honors header", "5", 5 * time.Second},
		{"defaults when absent", "", defaultRetryAfter},
		{"defaults when unparseable", "soon", defaultRetryAfter},
		{"defaults when negative", "-3", defaultRetryAfter},
		{"zero is honored", "0", 0},
	}

	for _, tc := range cases {
		client := newClientWithTransport(func(req *http.Request) (*http.Response, error) {
			resp := testutil.Response(http.StatusTooManyRequests, "")
			if tc.retryAfter != "" {
				resp.Header.Set("Retry-After", tc.retryAfter)
			}
			return resp, nil
		})

		_, err := client.FetchRoster(context.Background(), "t-1")
		rl, ok := providers.AsRateLimitError(err)
		if !ok {
			t.Fatalf("%s: expected RateLimitError, got %v", tc.name, err)
		}
		if rl.RetryAfter != tc.expected {
			t.Fatalf("%s: expected retry-after %s, got %s", tc.name, tc.expected, rl.RetryAfter)
		}
	}
}

func TestFetchRosterStatusErrorTruncatesBody(t *testing.T) {
	longBody := strings.Repeat("x", 2000)
	client := newClientWithTransport(func(req *http.Request) (*http.Response, error) {
		return testutil.Response(http.StatusNotFound, longBody), nil
	})

	_, err := client.FetchRoster(context.Background(), "t-1")
	st, ok := providers.AsStatusError(err)
	if !ok || st.Code != http.StatusNotFound {
		t.Fatalf("expected StatusError 404, got %v", err)
	}
	if len(st.Body) != maxErrorBodyBytes {
		t.Fatalf("expected %d-byte detail, got %d", maxErrorBodyBytes, len(st.Body))
	}
}

func TestFetchRosterDecodeError(t *testing.T) {
	client := newClientWithTransport(func(req *http.Request) (*http.Response, error) {
		return testutil.Response(http.StatusOK, `{"players": [`), nil
	})

	_, err := client.FetchRoster(context.Background(), "t-1")
	if _, ok := providers.AsDecodeError(err); !ok {
		t.Fatalf("expected DecodeError, got %v", err)
	}
}

func TestFetchRosterTransportError(t *testing.T) {
	netErr := errors.New("connection refused")
	client := newClientWithTransport(func(req *http.Request) (*http.Response, error) {
		return nil, netErr
	})

	_, err := client.FetchRoster(context.Background(), "t-1")
	var trErr *providers.TransportError
	if !errors.As(err, &trErr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if !errors.Is(err, netErr) {
		t.Fatal("expected network error to unwrap")
	}
}

func TestFetchRosterEscapesTeamID(t *testing.T) {
	var captured *http.Request
	client := newClientWithTransport(func(req *http.Request) (*http.Response, error) {
		captured = req
		return testutil.Response(http.StatusOK, `{}`), nil
	})

	if _, err := client.FetchRoster(context.Background(), "a/b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(captured.URL.RawPath+captured.URL.Path, "a%2Fb") {
		t.Fatalf("expected escaped team id in %s", captured.URL.String())
	}
}
