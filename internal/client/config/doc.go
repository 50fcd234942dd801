// Package config loads runtime configuration for the Rapihin CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env file loaded first.
//  3. Optional JSON file selected via flags: -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the formatting service
//	-o string   directory formatted artifacts are written to
//	-d string   path of the local sqlite database
//
// Environment variables
//
//	RAPIHIN_API_URL, RAPIHIN_OUTPUT_DIR, RAPIHIN_DB_PATH,
//	RAPIHIN_REQUEST_TIMEOUT, RAPIHIN_FORMAT_TIMEOUT
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeouts, so values can be
// either strings like "30s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://127.0.0.1:8000",
//	  "request_timeout": "15s",
//	  "format_timeout": "2m",
//	  "database_path": "rapihin.db",
//	  "output_dir": "downloads"
//	}
package config
