// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the settingsctl command-line runtime.
//
// It maps a command and its operands onto one settings API call, prints the
// response body and turns backend-reported failures into errors.
package client
