// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"
	"sync"
)

// memorySessionStore keeps the session slot for the lifetime of the process.
type memorySessionStore struct {
	mu       sync.RWMutex
	identity string
}

// NewMemorySessionStore returns an empty in-process [SessionStore].
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{}
}

func (s *memorySessionStore) Read(_ context.Context) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity, s.identity != "", nil
}

func (s *memorySessionStore) Write(_ context.Context, identity string) error {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return ErrEmptyIdentity
	}

	s.mu.Lock()
	s.identity = identity
	s.mu.Unlock()
	return nil
}

func (s *memorySessionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	s.identity = ""
	s.mu.Unlock()
	return nil
}
