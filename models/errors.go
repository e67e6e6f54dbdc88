// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// ErrNotEnvelope is returned by [DecodeEnvelope] when the body is a JSON
// object without a "code" field.
var ErrNotEnvelope = errors.New("response is not an envelope")
