package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-settings-client/internal/adapter"
	"github.com/MKhiriev/go-settings-client/internal/client"
	"github.com/MKhiriev/go-settings-client/internal/config"
	"github.com/MKhiriev/go-settings-client/internal/logger"
	"github.com/MKhiriev/go-settings-client/internal/settings"
	"github.com/MKhiriev/go-settings-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		printHelp(os.Stdout)
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		return 2
	}

	log, err := logger.NewLogger("settingsctl", cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating logger: %v\n", err)
		return 2
	}

	requester, err := adapter.NewHTTPRequester(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("create settings requester")
		return 1
	}

	app, err := client.NewApp(
		settings.NewClient(requester),
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		os.Stdin,
		os.Stdout,
		log,
	)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, args); err != nil {
		log.Error().Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}

func printHelp(w io.Writer) {
	client.WriteUsage(w)
	fmt.Fprintln(w, "\nflags:")
	config.PrintFlags(w)
}
