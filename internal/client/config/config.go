package config

import "time"

// Config holds runtime settings for the Vaultic CLI.
//
// Fields:
//   - EndpointURL: base URL of the server endpoint all calls are posted to.
//   - RequestTimeout: client-side HTTP timeout for ordinary calls.
//   - DeviceName: human-readable label for this device, shown when the
//     server lists active sessions.
type Config struct {
	EndpointURL    string
	RequestTimeout time.Duration
	DeviceName     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.EndpointURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 30 * time.Second
	c.DeviceName = ""
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
