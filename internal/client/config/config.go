package config

import "time"

// Config holds runtime settings for the storyline CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the story REST API, including the version prefix.
//   - DatabasePath: location of the local SQLite database.
//   - CredentialsPath: location of the bearer credential file.
//   - OnlineCheckInterval: how often the app probes server reachability.
//   - PageSize: number of stories requested per list fetch.
//   - VapidPublicKey: push key override; when empty the key is discovered
//     from the server once.
type Config struct {
	ServerBaseURL       string
	DatabasePath        string
	CredentialsPath     string
	OnlineCheckInterval time.Duration
	PageSize            int
	VapidPublicKey      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "https://story-api.dicoding.dev/v1"
	c.DatabasePath = "storyline.db"
	c.CredentialsPath = "storyline-creds.json"
	c.OnlineCheckInterval = 3 * time.Second
	c.PageSize = 10
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
