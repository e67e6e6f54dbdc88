// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EnvelopeCodeOK is the envelope code the backend uses for success.
// Any other value is a failure described by Msg.
const EnvelopeCodeOK = 1

// Envelope is the {code, msg, data} wrapper the settings backend puts around
// every response body.
type Envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data,omitempty"`
}

// OK reports whether the backend marked the call as successful.
func (e Envelope) OK() bool {
	return e.Code == EnvelopeCodeOK
}

// DecodeData unmarshals the envelope payload into v. An absent or null
// payload leaves v untouched.
func (e Envelope) DecodeData(v any) error {
	if len(e.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("decode envelope data: %w", err)
	}
	return nil
}

// DecodeEnvelope parses raw as an [Envelope]. It returns [ErrNotEnvelope] when
// raw is a JSON object that carries no "code" field.
func DecodeEnvelope(raw json.RawMessage) (Envelope, error) {
	var probe struct {
		Code *int            `json:"code"`
		Msg  string          `json:"msg"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	if probe.Code == nil {
		return Envelope{}, ErrNotEnvelope
	}
	if bytes.Equal(bytes.TrimSpace(probe.Data), []byte("null")) {
		probe.Data = nil
	}

	return Envelope{Code: *probe.Code, Msg: probe.Msg, Data: probe.Data}, nil
}

// SchemaGroup is one titled section of the settings schema.
type SchemaGroup struct {
	Title string       `json:"title"`
	Items []SchemaItem `json:"items"`
}

// SchemaItem describes a single configurable key.
type SchemaItem struct {
	Key   string `json:"key"`
	Label string `json:"label"`

	// Type is one of "text", "password", "number", "boolean" or "select".
	Type string `json:"type"`

	Default string `json:"default,omitempty"`

	// Required is nil when the backend does not say; the backend then
	// treats the key as required.
	Required *bool `json:"required,omitempty"`

	Link     string   `json:"link,omitempty"`
	LinkText string   `json:"link_text,omitempty"`
	Options  []string `json:"options,omitempty"`
}

// IsRequired reports whether an empty value is rejected on save.
func (i SchemaItem) IsRequired() bool {
	return i.Required == nil || *i.Required
}

// SaveData is the payload of a successful save.
type SaveData struct {
	UpdatedKeys     []string `json:"updated_keys"`
	RequiresRestart bool     `json:"requires_restart"`
}
