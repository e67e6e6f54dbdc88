package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-settings-client/internal/config"
	"github.com/MKhiriev/go-settings-client/internal/logger"
	"github.com/MKhiriev/go-settings-client/internal/utils"
	"github.com/MKhiriev/go-settings-client/models"
	"github.com/rs/zerolog"
)

var _ Requester = (*HTTPRequester)(nil)

// TraceIDHeader carries the per-request trace id to the backend.
const TraceIDHeader = "X-Trace-ID"

// HTTPRequester is the HTTP/REST implementation of [Requester].
type HTTPRequester struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPRequester constructs an [HTTPRequester]. It normalises and validates
// the base URL from adapterCfg.HTTPAddress and configures the underlying HTTP
// client with the resolved base URL and request timeout. A non-empty
// adapterCfg.Token is sent as a bearer token on every request.
//
// Returns an error wrapping [ErrInvalidAddress] if the address is empty or
// cannot be parsed as a valid URL.
func NewHTTPRequester(adapterCfg config.ClientAdapter, log *logger.Logger) (*HTTPRequester, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	child := log.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("base_url", baseURL)
	})

	return &HTTPRequester{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		token:  strings.TrimSpace(adapterCfg.Token),
		logger: child,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidAddress)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Token returns the bearer token attached to requests, or an empty string.
func (h *HTTPRequester) Token() string {
	return h.token
}

// Do implements [Requester]. A non-nil req.Body is sent as JSON; the 2xx
// response body is returned without decoding.
func (h *HTTPRequester) Do(ctx context.Context, req models.Request) (json.RawMessage, error) {
	traceID := utils.NewTraceID()

	r := h.client.R().
		SetContext(ctx).
		SetHeader(TraceIDHeader, traceID)
	if h.token != "" {
		r.SetHeader("Authorization", "Bearer "+h.token)
	}
	if req.Body != nil {
		r.SetHeader("Content-Type", "application/json").
			SetBody(req.Body)
	}

	start := time.Now()
	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		h.logger.Debug().Err(err).
			Str("trace_id", traceID).
			Str("method", req.Method).
			Str("path", req.Path).
			Msg("request failed")
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.Path, err)
	}

	h.logger.Debug().
		Str("trace_id", traceID).
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Send()

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return json.RawMessage(resp.Body()), nil
}
