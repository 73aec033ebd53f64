package config

const (
	envSportradarBaseURL = "SPORTRADAR_BASE_URL"
	envSportradarAPIKey  = "SPORTRADAR_API_KEY"

	defaultSportradarBaseURL = "https://api.sportradar.com/ncaafb/trial/v7/en"
)

// SportradarConfig controls how we talk to the Sportradar API.
type SportradarConfig struct {
	BaseURL string
	APIKey  string
}

func loadSportradar() SportradarConfig {
	return SportradarConfig{
		BaseURL: envOrDefault(envSportradarBaseURL, defaultSportradarBaseURL),
		APIKey:  envOrDefault(envSportradarAPIKey, ""),
	}
}
