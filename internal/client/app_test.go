// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-settings-client/internal/logger"
	"github.com/MKhiriev/go-settings-client/internal/mock"
	"github.com/MKhiriev/go-settings-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const schemaBody = `{"code":1,"msg":"success","data":{
	"smtp":{"title":"SMTP","items":[
		{"key":"SMTP_HOST","label":"Host","type":"text","required":false},
		{"key":"SMTP_PORT","label":"Port","type":"number","default":"587"}]},
	"proxy":{"title":"Proxy","items":[
		{"key":"PROXY_SCHEME","label":"Scheme","type":"select","options":["socks5h","http"],"default":"socks5h"}]}}}`

// newTestApp creates an App backed by a mocked settings API.
func newTestApp(t *testing.T, stdin string) (*App, *mock.MockAPI, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPI(ctrl)
	out := &bytes.Buffer{}

	app, err := NewApp(api, models.NewAppBuildInfo("1.0.0", "2026-10-16", "abc123"), strings.NewReader(stdin), out, logger.Nop())
	require.NoError(t, err)
	return app, api, out
}

func TestNewApp_RequiresAPI(t *testing.T) {
	app, err := NewApp(nil, models.AppBuildInfo{}, nil, &bytes.Buffer{}, logger.Nop())
	assert.Nil(t, app)
	assert.Error(t, err)
}

// ── dispatch ─────────────────────────────────────────────────────────────────

func TestRun_NoCommand(t *testing.T) {
	app, _, out := newTestApp(t, "")

	err := app.Run(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidArguments)
	assert.Contains(t, out.String(), "usage: settingsctl")
}

func TestRun_Help(t *testing.T) {
	app, _, out := newTestApp(t, "")

	require.NoError(t, app.Run(context.Background(), []string{"help"}))
	assert.Contains(t, out.String(), "commands:")
}

func TestRun_UnknownCommand(t *testing.T) {
	app, _, _ := newTestApp(t, "")

	err := app.Run(context.Background(), []string{"reboot"})
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), "balance, save, schema, test, values, version")
}

func TestRun_Version(t *testing.T) {
	app, _, out := newTestApp(t, "")

	require.NoError(t, app.Run(context.Background(), []string{"version"}))
	assert.Equal(t, "Build version: 1.0.0\nBuild date: 2026-10-16\nBuild commit: abc123\n", out.String())
}

// ── schema / values / balance ────────────────────────────────────────────────

func TestRun_Values_PrintsIndentedJSON(t *testing.T) {
	app, api, out := newTestApp(t, "")
	api.EXPECT().GetSettingsValues(gomock.Any()).Return(json.RawMessage(`{"code":1,"msg":"success","data":{"app":{"RATE_LIMIT":"100"}}}`), nil)

	require.NoError(t, app.Run(context.Background(), []string{"values"}))
	assert.Equal(t, `{
  "code": 1,
  "msg": "success",
  "data": {
    "app": {
      "RATE_LIMIT": "100"
    }
  }
}
`, out.String())
}

func TestRun_Values_RejectsOperands(t *testing.T) {
	app, _, _ := newTestApp(t, "")

	err := app.Run(context.Background(), []string{"values", "extra"})
	assert.ErrorIs(t, err, ErrInvalidArguments)
}

func TestRun_Schema_Pretty(t *testing.T) {
	app, api, out := newTestApp(t, "")
	api.EXPECT().GetSettingsSchema(gomock.Any()).Return(json.RawMessage(schemaBody), nil)

	require.NoError(t, app.Run(context.Background(), []string{"schema", "-pretty"}))

	text := out.String()
	assert.Contains(t, text, "SMTP (smtp)")
	assert.Contains(t, text, "SMTP_HOST")
	assert.Contains(t, text, "[text, optional]")
	assert.Contains(t, text, "[number, default 587]")
	assert.Contains(t, text, "one of socks5h|http")
	assert.Less(t, strings.Index(text, "Proxy (proxy)"), strings.Index(text, "SMTP (smtp)"))
}

func TestRun_Schema_BadFlag(t *testing.T) {
	app, _, _ := newTestApp(t, "")

	err := app.Run(context.Background(), []string{"schema", "-colour"})
	assert.ErrorIs(t, err, ErrInvalidArguments)
}

func TestRun_Balance_NonEnvelopeBody(t *testing.T) {
	app, api, out := newTestApp(t, "")
	api.EXPECT().GetOpenRouterBalance(gomock.Any()).Return(json.RawMessage(`{"usage":1.5}`), nil)

	require.NoError(t, app.Run(context.Background(), []string{"balance"}))
	assert.JSONEq(t, `{"usage":1.5}`, out.String())
}

func TestRun_TransportErrorIsWrappedWithCommand(t *testing.T) {
	app, api, out := newTestApp(t, "")
	transportErr := errors.New("dial tcp: connection refused")
	api.EXPECT().GetOpenRouterBalance(gomock.Any()).Return(nil, transportErr)

	err := app.Run(context.Background(), []string{"balance"})
	assert.ErrorIs(t, err, transportErr)
	assert.True(t, strings.HasPrefix(err.Error(), "balance: "))
	assert.Empty(t, out.String())
}

// ── save ─────────────────────────────────────────────────────────────────────

func TestRun_Save_FromStdin(t *testing.T) {
	app, api, out := newTestApp(t, `{"smtp":{"SMTP_HOST":"mail.local"}}`)
	api.EXPECT().
		SaveSettings(gomock.Any(), models.SaveSettingsPayload{"smtp": map[string]any{"SMTP_HOST": "mail.local"}}).
		Return(json.RawMessage(`{"code":1,"msg":"Settings saved successfully"}`), nil)

	require.NoError(t, app.Run(context.Background(), []string{"save", "-"}))
	assert.Contains(t, out.String(), "Settings saved successfully")
}

func TestRun_Save_NullPayloadRejected(t *testing.T) {
	app, _, _ := newTestApp(t, "null")

	err := app.Run(context.Background(), []string{"save", "-"})
	assert.ErrorIs(t, err, ErrInvalidArguments)
	assert.Contains(t, err.Error(), "got null")
}

func TestRun_Save_FromFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app":{"RATE_LIMIT":200}}`), 0o600))

	app, api, _ := newTestApp(t, "")
	api.EXPECT().
		SaveSettings(gomock.Any(), models.SaveSettingsPayload{"app": map[string]any{"RATE_LIMIT": float64(200)}}).
		Return(json.RawMessage(`{"code":1,"msg":"ok"}`), nil)

	require.NoError(t, app.Run(context.Background(), []string{"save", p}))
}

func TestRun_Save_BackendRejects(t *testing.T) {
	app, api, out := newTestApp(t, `{}`)
	api.EXPECT().
		SaveSettings(gomock.Any(), models.SaveSettingsPayload{}).
		Return(json.RawMessage(`{"code":0,"msg":"Invalid request payload"}`), nil)

	err := app.Run(context.Background(), []string{"save", "-"})
	assert.ErrorIs(t, err, ErrOperationFailed)
	assert.Contains(t, err.Error(), "Invalid request payload")
	assert.Contains(t, out.String(), "Invalid request payload")
}

func TestRun_Save_InvalidInput(t *testing.T) {
	tests := map[string][]string{
		"no operand":    {"save"},
		"two operands":  {"save", "a.json", "b.json"},
		"missing file":  {"save", "/does/not/exist.json"},
		"not an object": {"save", "-"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			app, _, _ := newTestApp(t, `["SMTP_HOST"]`)
			err := app.Run(context.Background(), args)
			assert.ErrorIs(t, err, ErrInvalidArguments)
		})
	}
}

// ── test ─────────────────────────────────────────────────────────────────────

func TestRun_Test_NoParams(t *testing.T) {
	app, api, _ := newTestApp(t, "")
	api.EXPECT().
		TestConnection(gomock.Any(), "openrouter", gomock.Nil()).
		Return(json.RawMessage(`{"code":1,"msg":"OpenRouter connection successful"}`), nil)

	require.NoError(t, app.Run(context.Background(), []string{"test", "openrouter"}))
}

func TestRun_Test_WithParams(t *testing.T) {
	app, api, _ := newTestApp(t, "")
	api.EXPECT().
		TestConnection(gomock.Any(), "finnhub", map[string]any{
			"api_key": "abc",
			"timeout": float64(10),
			"strict":  true,
			"symbol":  "AAPL",
		}).
		Return(json.RawMessage(`{"code":1,"msg":"Finnhub connection successful"}`), nil)

	require.NoError(t, app.Run(context.Background(), []string{"test", "finnhub", "api_key=abc", "timeout=10", "strict=true", `symbol="AAPL"`}))
}

func TestRun_Test_Failure(t *testing.T) {
	app, api, _ := newTestApp(t, "")
	api.EXPECT().
		TestConnection(gomock.Any(), "nope", gomock.Nil()).
		Return(json.RawMessage(`{"code":0,"msg":"Unknown service"}`), nil)

	err := app.Run(context.Background(), []string{"test", "nope"})
	assert.ErrorIs(t, err, ErrOperationFailed)
	assert.Equal(t, "test: operation failed: Unknown service", err.Error())
}

func TestRun_Test_BadArguments(t *testing.T) {
	app, _, _ := newTestApp(t, "")

	assert.ErrorIs(t, app.Run(context.Background(), []string{"test"}), ErrInvalidArguments)
	assert.ErrorIs(t, app.Run(context.Background(), []string{"test", "finnhub", "api_key"}), ErrInvalidArguments)
	assert.ErrorIs(t, app.Run(context.Background(), []string{"test", "finnhub", "=x"}), ErrInvalidArguments)
}

func TestParseParams_Empty(t *testing.T) {
	params, err := parseParams(nil)
	require.NoError(t, err)
	assert.Nil(t, params)
}

func TestCheckEnvelope(t *testing.T) {
	assert.NoError(t, checkEnvelope(json.RawMessage(`{"code":1}`)))
	assert.NoError(t, checkEnvelope(json.RawMessage(`{"balance":3}`)))
	assert.NoError(t, checkEnvelope(json.RawMessage(`not json`)))
	assert.ErrorIs(t, checkEnvelope(json.RawMessage(`{"code":0,"msg":"x"}`)), ErrOperationFailed)
}
