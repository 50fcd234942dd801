package config

import (
	"flag"
	"os"

	"github.com/arfidakai/Rapihin.ai/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the formatting service
//	-o string   artifact output directory
//	-d string   local sqlite database path
//
// The function filters os.Args to only the flags it knows about, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-o", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the formatting service")
	fs.StringVar(&cfg.OutputDir, "o", cfg.OutputDir, "directory formatted artifacts are written to")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local sqlite database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
