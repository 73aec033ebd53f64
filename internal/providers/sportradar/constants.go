package sportradar

import "time"

const (
	defaultBaseURL     = "https://api.sportradar.com/ncaafb/trial/v7/en"
	defaultHTTPTimeout = 30 * time.Second
	defaultRetryAfter  = 1 * time.Second
	rosterPathFormat   = "/teams/%s/full_roster.json"
	// Cap on response body captured for error details.
	maxErrorBodyBytes = 500
)
