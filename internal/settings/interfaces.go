// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package settings is the client for the settings-management backend.
//
// Every operation builds one [models.Request] and hands it to an
// [adapter.Requester]. Bodies and errors come back exactly as the transport
// produced them; validation, caching, retries and authentication are left to
// the transport.
package settings

import (
	"context"

	"github.com/MKhiriev/go-settings-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/settings_api_mock.go -package=mock

// API is the set of operations offered by the settings backend.
type API interface {
	// GetSettingsSchema fetches the definition of all configurable keys,
	// grouped by section.
	GetSettingsSchema(ctx context.Context) (models.SettingsSchema, error)

	// GetSettingsValues fetches the current value of every configurable key.
	GetSettingsValues(ctx context.Context) (models.SettingsValues, error)

	// SaveSettings sends data to the backend as the request body, unchanged.
	SaveSettings(ctx context.Context, data models.SaveSettingsPayload) (models.SaveResult, error)

	// TestConnection asks the backend to probe the named external service.
	// params are merged into the request body next to "service"; service
	// takes precedence on a key collision.
	TestConnection(ctx context.Context, service string, params map[string]any) (models.ConnectionTestResult, error)

	// GetOpenRouterBalance fetches the OpenRouter account balance.
	GetOpenRouterBalance(ctx context.Context) (models.Balance, error)
}
