// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-settings-client/internal/logger"
	"github.com/MKhiriev/go-settings-client/models"
)

const stdinName = "-"

func (a *App) schema(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("schema", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	pretty := fs.Bool("pretty", false, "render groups as text instead of JSON")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("%w: schema takes no operands", ErrInvalidArguments)
	}

	raw, err := a.api.GetSettingsSchema(ctx)
	if err != nil {
		return err
	}
	if !*pretty {
		return a.respond(ctx, raw)
	}

	if err = checkEnvelope(raw); err != nil {
		return err
	}
	return a.renderSchema(raw)
}

func (a *App) values(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: values takes no operands", ErrInvalidArguments)
	}

	raw, err := a.api.GetSettingsValues(ctx)
	if err != nil {
		return err
	}
	return a.respond(ctx, raw)
}

func (a *App) save(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: save needs exactly one file name or %q", ErrInvalidArguments, stdinName)
	}

	payload, err := a.readPayload(args[0])
	if err != nil {
		return err
	}

	raw, err := a.api.SaveSettings(ctx, payload)
	if err != nil {
		return err
	}
	return a.respond(ctx, raw)
}

func (a *App) readPayload(name string) (models.SaveSettingsPayload, error) {
	var src io.Reader = a.in
	if name != stdinName {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArguments, err)
		}
		defer f.Close()
		src = f
	}

	var payload models.SaveSettingsPayload
	if err := json.NewDecoder(src).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: settings must be a JSON object: %w", ErrInvalidArguments, err)
	}
	if payload == nil {
		return nil, fmt.Errorf("%w: settings must be a JSON object, got null", ErrInvalidArguments)
	}
	return payload, nil
}

func (a *App) test(ctx context.Context, args []string) error {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return fmt.Errorf("%w: test needs a service name", ErrInvalidArguments)
	}

	params, err := parseParams(args[1:])
	if err != nil {
		return err
	}

	raw, err := a.api.TestConnection(ctx, args[0], params)
	if err != nil {
		return err
	}
	return a.respond(ctx, raw)
}

// parseParams turns key=value operands into a map. A value that parses as
// JSON keeps its JSON type, anything else is a plain string.
func parseParams(args []string) (map[string]any, error) {
	if len(args) == 0 {
		return nil, nil
	}

	params := make(map[string]any, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: expected key=value, got %q", ErrInvalidArguments, arg)
		}

		var decoded any
		if err := json.Unmarshal([]byte(value), &decoded); err != nil {
			decoded = value
		}
		params[key] = decoded
	}
	return params, nil
}

func (a *App) balance(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: balance takes no operands", ErrInvalidArguments)
	}

	raw, err := a.api.GetOpenRouterBalance(ctx)
	if err != nil {
		return err
	}
	return a.respond(ctx, raw)
}

func (a *App) version(_ context.Context, _ []string) error {
	_, err := io.WriteString(a.out, a.buildInfo.String())
	return err
}

// respond prints raw and reports a failed envelope as an error. The body is
// printed either way so the backend message stays visible.
func (a *App) respond(ctx context.Context, raw json.RawMessage) error {
	logger.FromContext(ctx).Debug().Int("bytes", len(raw)).Msg("response received")

	if err := a.printBody(raw); err != nil {
		return err
	}
	return checkEnvelope(raw)
}

func (a *App) printBody(raw json.RawMessage) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		buf.Reset()
		buf.Write(bytes.TrimSpace(raw))
	}
	buf.WriteByte('\n')

	_, err := a.out.Write(buf.Bytes())
	return err
}

// checkEnvelope fails only for a {code,msg} envelope whose code is not
// success. Bodies of any other shape are accepted as they are.
func checkEnvelope(raw json.RawMessage) error {
	env, err := models.DecodeEnvelope(raw)
	if err != nil {
		return nil
	}
	if !env.OK() {
		return fmt.Errorf("%w: %s", ErrOperationFailed, env.Msg)
	}
	return nil
}
