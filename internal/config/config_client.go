// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the settings backend address.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound requests.
	RequestTimeout time.Duration
	// Token is the optional bearer token.
	Token string
}

// ClientLog holds logging settings for the client.
type ClientLog struct {
	Level string
}

// ClientConfig is the client configuration view assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Log     ClientLog
}

// GetClientConfig builds and validates the client config from args (without
// the program name), the environment and the optional JSON file. It also
// returns the positional arguments that follow the flags.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg, rest, err := GetStructuredConfig(args)
	if err != nil {
		return nil, nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
		Log: ClientLog{Level: cfg.Log.Level},
	}

	if err = clientCfg.validate(); err != nil {
		return nil, nil, err
	}

	return clientCfg, rest, nil
}
