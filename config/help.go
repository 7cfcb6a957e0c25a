package config

import (
	"flag"
	"fmt"
	"io"
)

const HelpMessage = `Fitness tracker.

Reads sensor packages and prints a training report for each of them.

Usage:
  ftracker [--config-path <file>] [--packages <file>] [--log-level <level>]
  ftracker --help

Options:
  --help          Show this screen.
  --config-path   Path to the config yaml file.
  --packages      Path to the sensor packages yaml file. Built-in samples are used when empty.
  --log-level     DEBUG, INFO, WARN or ERROR.

Environment:
  SERVICE_NAME, LOG_LEVEL, PACKAGES_FILE, METRICS_TEXTFILE
`

func PrintHelp(w io.Writer) {
	if HelpMessage != "" {
		fmt.Fprint(w, HelpMessage)
	} else {
		flag.Usage()
	}
}

// PrintConfig prints the effective configuration
func PrintConfig(w io.Writer, cfg *Config) {
	fmt.Fprintf(w, "service: %s\n", cfg.ServiceName)
	fmt.Fprintf(w, "log level: %s\n", cfg.Log.Level)
	fmt.Fprintf(w, "packages file: %s\n", valueOr(cfg.Packages.File, "<built-in>"))
	fmt.Fprintf(w, "metrics textfile: %s\n", valueOr(cfg.Metrics.TextFile, "<disabled>"))
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
