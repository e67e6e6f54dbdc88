// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Request describes a single call to the settings backend. It is built by the
// settings client and executed by a transport without modification.
type Request struct {
	// Method is the HTTP method, e.g. "GET" or "POST".
	Method string

	// Path is the backend path relative to the configured base address,
	// e.g. "/api/settings/schema".
	Path string

	// Body is serialised as JSON when non-nil. A nil Body means the request
	// is sent without a payload.
	Body any
}
