// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a new user cannot be created
	// because the email is already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup by email matches nothing.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrStorageUnavailable is returned when the persisted session slot
	// cannot be read or written.
	ErrStorageUnavailable = errors.New("session storage unavailable")

	// ErrEmptyIdentity is returned when writing a blank identity to the
	// session slot.
	ErrEmptyIdentity = errors.New("identity is empty")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
