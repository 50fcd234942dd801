package config

import (
	"encoding/json"
	"os"

	"github.com/arfidakai/Rapihin.ai/internal/flagx"
	"github.com/arfidakai/Rapihin.ai/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify timeouts either as strings like "15s"
// or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	FormatTimeout  timex.Duration `json:"format_timeout"`
	DatabasePath   string         `json:"database_path"`
	OutputDir      string         `json:"output_dir"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c or -config flags. When no file is given the function returns
// without touching cfg. Read or unmarshal errors panic; configuration
// happens once at startup and a broken config file should be loud.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.FormatTimeout.Duration > 0 {
		cfg.FormatTimeout = jc.FormatTimeout.Duration
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.OutputDir != "" {
		cfg.OutputDir = jc.OutputDir
	}
}
