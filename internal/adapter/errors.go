// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrTransport covers connection failures, timeouts and cancellations.
	ErrTransport = errors.New("gateway transport failure")
	// ErrUnexpectedStatus is returned for any non-2xx response. The body is
	// not inspected.
	ErrUnexpectedStatus = errors.New("gateway returned unexpected status")
	// ErrMalformedResponse is returned when a 2xx body is not the expected JSON.
	ErrMalformedResponse = errors.New("gateway returned malformed response")
)
