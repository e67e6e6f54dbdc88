// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Known connection-test targets accepted by the backend.
const (
	ServiceOpenRouter = "openrouter"
	ServiceFinnhub    = "finnhub"
)

// ParamAPIKey lets a connection test probe a key that has not been saved yet.
const ParamAPIKey = "api_key"

const serviceKey = "service"

// Response bodies are owned by the backend and passed through verbatim.
type (
	SettingsSchema       = json.RawMessage
	SettingsValues       = json.RawMessage
	SaveResult           = json.RawMessage
	ConnectionTestResult = json.RawMessage
	Balance              = json.RawMessage
)

// SaveSettingsPayload maps settings groups (or keys) to their new values.
// It is sent to the backend exactly as given.
type SaveSettingsPayload map[string]any

// ConnectionTestRequest asks the backend to probe an external service.
//
// It is encoded as one flat JSON object: all Params entries plus the
// "service" key. Service always wins over a "service" entry in Params.
type ConnectionTestRequest struct {
	Service string
	Params  map[string]any
}

// MarshalJSON implements [json.Marshaler].
func (r ConnectionTestRequest) MarshalJSON() ([]byte, error) {
	body := make(map[string]any, len(r.Params)+1)
	for k, v := range r.Params {
		body[k] = v
	}
	body[serviceKey] = r.Service

	return json.Marshal(body)
}
