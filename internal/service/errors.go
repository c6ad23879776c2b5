// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-house-builder/internal/store"
)

// Client-side errors returned by the session machine. Every one of them is
// terminal at the UI boundary: the machine stays in its pre-call state.
var (
	// ErrValidation is a local input problem detected before any network call.
	ErrValidation = errors.New("validation failed")
	// ErrAuthRejected means the gateway answered success=false.
	ErrAuthRejected = errors.New("authentication rejected")
	// ErrTransport covers network failures, timeouts, non-2xx statuses and
	// malformed responses.
	ErrTransport = errors.New("transport failure")
	// ErrStorageUnavailable means the persisted slot failed and the session
	// lives in memory only.
	ErrStorageUnavailable = store.ErrStorageUnavailable
	// ErrRequestInFlight is returned for a duplicate submission while the
	// same request is outstanding. No second request is sent.
	ErrRequestInFlight = errors.New("request already in flight")
	// ErrStaleResponse is returned when a login response arrives after an
	// explicit logout and is discarded.
	ErrStaleResponse = errors.New("stale response discarded")
	// ErrNotSignedOut is returned for transitions that need a signed-out session.
	ErrNotSignedOut = errors.New("session is signed in")
	// ErrNotSignedIn is returned for transitions that need a signed-in session.
	ErrNotSignedIn = errors.New("session is signed out")
)

// Gateway-side errors returned by the auth service.
var (
	ErrMissingFields     = errors.New("all fields are required")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrPasswordTooShort  = errors.New("password too short")
	ErrPasswordsMismatch = errors.New("passwords do not match")
	ErrEmailTaken        = errors.New("email already exists")
	ErrWrongCredentials  = errors.New("invalid credentials")
)

// ErrVersionIsNotSpecified is returned at startup when the gateway build
// carries no version.
var ErrVersionIsNotSpecified = errors.New("app version is not specified")
