package config

import "time"

// Config holds runtime settings for the Rapihin CLI.
//
// Fields:
//   - APIBaseURL: base URL of the formatting service.
//   - RequestTimeout: bound on JSON round trips (auth, history, templates).
//   - FormatTimeout: bound on the formatting upload, which runs a server-side
//     job and takes longer than a plain request.
//   - DatabasePath: sqlite file persisting the session credential.
//   - OutputDir: where formatted artifacts are written.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	FormatTimeout  time.Duration
	DatabasePath   string
	OutputDir      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 15 * time.Second
	c.FormatTimeout = 2 * time.Minute
	c.DatabasePath = "rapihin.db"
	c.OutputDir = "downloads"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given), and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
