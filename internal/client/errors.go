// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrOperationFailed wraps the message of a backend envelope whose code
	// is not success.
	ErrOperationFailed = errors.New("operation failed")
)
