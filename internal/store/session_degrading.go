// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-house-builder/internal/logger"
)

// DegradingSessionStore is a [SessionStore] that never fails because of its
// backing storage. The first primary failure switches it to an in-memory slot
// for the rest of the process lifetime.
//
// A failed primary Clear leaves the old identity on disk, so it is retried on
// every later call until it succeeds. Otherwise the next launch would restore
// a session the user already signed out of.
type DegradingSessionStore struct {
	mu           sync.Mutex
	primary      SessionStore
	memory       SessionStore
	degraded     error
	pendingClear bool
	logger       *logger.Logger
}

// NewDegradingSessionStore wraps primary. A nil primary starts degraded with
// cause as the reason.
func NewDegradingSessionStore(primary SessionStore, cause error, log *logger.Logger) *DegradingSessionStore {
	s := &DegradingSessionStore{
		primary: primary,
		memory:  NewMemorySessionStore(),
		logger:  log,
	}
	if primary == nil {
		if cause == nil {
			cause = errors.New("no primary session store")
		}
		s.degraded = fmt.Errorf("%w: %w", ErrStorageUnavailable, cause)
	}
	return s
}

// Degraded returns a non-nil error wrapping [ErrStorageUnavailable] once the
// store runs in memory only.
func (s *DegradingSessionStore) Degraded() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// Read returns the persisted identity. A primary failure reads as absent.
func (s *DegradingSessionStore) Read(ctx context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.degraded != nil {
		s.retryClear(ctx)
		return s.memory.Read(ctx)
	}

	identity, ok, err := s.primary.Read(ctx)
	if err != nil {
		s.degrade(ctx, "read", err)
		return "", false, nil
	}
	return identity, ok, nil
}

// Write stores identity. On primary failure the value is kept in memory.
func (s *DegradingSessionStore) Write(ctx context.Context, identity string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.degraded == nil {
		err := s.primary.Write(ctx, identity)
		if err == nil || errors.Is(err, ErrEmptyIdentity) {
			return err
		}
		s.degrade(ctx, "write", err)
	} else {
		s.retryClear(ctx)
	}
	return s.memory.Write(ctx, identity)
}

// Clear removes the identity. On primary failure memory is cleared and the
// primary clear stays pending.
func (s *DegradingSessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.degraded == nil {
		err := s.primary.Clear(ctx)
		if err == nil {
			return nil
		}
		s.degrade(ctx, "clear", err)
		s.pendingClear = true
	} else {
		s.retryClear(ctx)
	}
	return s.memory.Clear(ctx)
}

// PendingClear reports whether a signed-out identity may still be on disk.
func (s *DegradingSessionStore) PendingClear() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingClear
}

// retryClear must be called with mu held.
func (s *DegradingSessionStore) retryClear(ctx context.Context) {
	if !s.pendingClear || s.primary == nil {
		return
	}
	if err := s.primary.Clear(ctx); err != nil {
		s.logger.Debug().
			Err(err).
			Str("func", "*DegradingSessionStore.retryClear").
			Msg("pending clear failed again")
		return
	}
	s.pendingClear = false
	s.logger.Info().
		Str("func", "*DegradingSessionStore.retryClear").
		Msg("pending clear of persisted session succeeded")
}

// degrade must be called with mu held.
func (s *DegradingSessionStore) degrade(_ context.Context, op string, err error) {
	s.degraded = fmt.Errorf("%w: %s: %w", ErrStorageUnavailable, op, err)
	s.logger.Warn().
		Err(err).
		Str("func", "*DegradingSessionStore."+op).
		Msg("session storage failed, continuing in memory")
}
