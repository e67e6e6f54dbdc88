// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-settings-client/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
}

// mapHTTPError turns a non-2xx settings response into an error. The detail
// is the envelope msg when the backend replied with {code, msg}, otherwise
// the trimmed body, otherwise the status text.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	detail := errorDetail(resp.Body())

	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}
	if detail == "" {
		detail = http.StatusText(status)
	}
	return fmt.Errorf("http %d: %s", status, detail)
}

func errorDetail(body []byte) string {
	if env, err := models.DecodeEnvelope(body); err == nil {
		if msg := strings.TrimSpace(env.Msg); msg != "" {
			return msg
		}
	}
	return strings.TrimSpace(string(body))
}
