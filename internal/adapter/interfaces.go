// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used to reach the settings backend.
//
// The primary abstraction is [Requester], which executes a single
// [models.Request] and hands back the raw response body. The package ships an
// HTTP/REST implementation ([NewHTTPRequester]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-settings-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/requester_mock.go -package=mock

// Requester executes requests against the settings backend.
type Requester interface {
	// Do sends req and returns the response body exactly as received.
	// Transport failures, serialisation failures and non-2xx statuses are
	// reported as errors; a nil error always comes with the body of a 2xx
	// response (possibly empty).
	Do(ctx context.Context, req models.Request) (json.RawMessage, error)
}
