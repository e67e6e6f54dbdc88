package config

import (
	"flag"
	"fmt"
	"io"
)

// parseFlags parses the global flags in args and returns the remaining
// positional arguments (the command and its operands). -h and -help make it
// return an error wrapping [flag.ErrHelp].
//
// Flags:
//
//	-a settings backend address, host:port or URL
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-token bearer token
//	-log-level log level (debug, info, warn, error)
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, []string, error) {
	cfg := &StructuredConfig{}

	fs := newFlagSet(cfg)
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, fs.Args(), nil
}

// PrintFlags writes the global flags and their descriptions to w.
func PrintFlags(w io.Writer) {
	fs := newFlagSet(&StructuredConfig{})
	fs.SetOutput(w)
	fs.PrintDefaults()
}

func newFlagSet(cfg *StructuredConfig) *flag.FlagSet {
	fs := flag.NewFlagSet("settingsctl", flag.ContinueOnError)

	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", "", "Settings backend address host:port or URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Adapter.Token, "token", "", "Bearer token")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	return fs
}
