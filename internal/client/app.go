// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/go-settings-client/internal/logger"
	"github.com/MKhiriev/go-settings-client/internal/settings"
	"github.com/MKhiriev/go-settings-client/models"
	"github.com/rs/zerolog"
)

const usage = `usage: settingsctl [flags] <command> [args]

commands:
  schema [-pretty]             print the settings schema
  values                       print current settings values
  save <file|->                save settings read from a JSON file or stdin
  test <service> [key=value]   test the connection to an external service
  balance                      print the OpenRouter account balance
  version                      print build information
`

// WriteUsage writes the command summary to w.
func WriteUsage(w io.Writer) {
	_, _ = io.WriteString(w, usage)
}

type command func(ctx context.Context, args []string) error

// App runs a single settingsctl command.
type App struct {
	api       settings.API
	buildInfo models.AppBuildInfo

	in  io.Reader
	out io.Writer

	commands map[string]command
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp wires an App. Command output goes to out; save reads "-" from in.
func NewApp(api settings.API, buildInfo models.AppBuildInfo, in io.Reader, out io.Writer, log *logger.Logger) (*App, error) {
	if api == nil {
		return nil, errors.New("settings api is required")
	}

	a := &App{
		api:       api,
		buildInfo: buildInfo,
		in:        in,
		out:       out,
		logger:    log,
	}
	a.commands = map[string]command{
		"schema":  a.schema,
		"values":  a.values,
		"save":    a.save,
		"test":    a.test,
		"balance": a.balance,
		"version": a.version,
	}

	return a, nil
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		WriteUsage(a.out)
		return fmt.Errorf("%w: no command given", ErrInvalidArguments)
	}

	name := args[0]
	if name == "help" {
		WriteUsage(a.out)
		return nil
	}

	cmd, ok := a.commands[name]
	if !ok {
		return fmt.Errorf("%w %q, known: %s", ErrUnknownCommand, name, strings.Join(a.commandNames(), ", "))
	}

	l := a.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("command", name)
	})
	ctx = l.WithContext(ctx)

	if err := cmd(ctx, args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (a *App) commandNames() []string {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
