// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-settings-client/internal/adapter"
	"github.com/MKhiriev/go-settings-client/models"
)

// Backend paths.
const (
	PathSchema            = "/api/settings/schema"
	PathValues            = "/api/settings/values"
	PathSave              = "/api/settings/save"
	PathTestConnection    = "/api/settings/test-connection"
	PathOpenRouterBalance = "/api/settings/openrouter-balance"
)

var _ API = (*Client)(nil)

// Client implements [API] on top of an [adapter.Requester]. It holds no
// state of its own and is safe for concurrent use if the requester is.
type Client struct {
	requester adapter.Requester
}

// NewClient returns a Client that sends every request through requester.
func NewClient(requester adapter.Requester) *Client {
	return &Client{requester: requester}
}

// GetSettingsSchema implements [API]. GET /api/settings/schema.
func (c *Client) GetSettingsSchema(ctx context.Context) (models.SettingsSchema, error) {
	return c.requester.Do(ctx, models.Request{Method: http.MethodGet, Path: PathSchema})
}

// GetSettingsValues implements [API]. GET /api/settings/values.
func (c *Client) GetSettingsValues(ctx context.Context) (models.SettingsValues, error) {
	return c.requester.Do(ctx, models.Request{Method: http.MethodGet, Path: PathValues})
}

// SaveSettings implements [API]. POST /api/settings/save with data as body.
// A nil data sends no body at all.
func (c *Client) SaveSettings(ctx context.Context, data models.SaveSettingsPayload) (models.SaveResult, error) {
	req := models.Request{Method: http.MethodPost, Path: PathSave}
	if data != nil {
		req.Body = data
	}
	return c.requester.Do(ctx, req)
}

// TestConnection implements [API]. POST /api/settings/test-connection with
// body {service, ...params}.
func (c *Client) TestConnection(ctx context.Context, service string, params map[string]any) (models.ConnectionTestResult, error) {
	return c.requester.Do(ctx, models.Request{
		Method: http.MethodPost,
		Path:   PathTestConnection,
		Body:   models.ConnectionTestRequest{Service: service, Params: params},
	})
}

// GetOpenRouterBalance implements [API]. GET /api/settings/openrouter-balance.
func (c *Client) GetOpenRouterBalance(ctx context.Context) (models.Balance, error) {
	return c.requester.Do(ctx, models.Request{Method: http.MethodGet, Path: PathOpenRouterBalance})
}
