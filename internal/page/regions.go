// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package page

import "sync"

// Regions tracks visibility of the page regions that depend on session state.
type Regions struct {
	mu              sync.RWMutex
	estimateVisible bool
	changes         int
}

// NewRegions returns regions with the estimate hidden.
func NewRegions() *Regions {
	return &Regions{}
}

// SetEstimateVisible shows or hides the estimate panel. Setting the current
// value again changes nothing.
func (r *Regions) SetEstimateVisible(visible bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.estimateVisible == visible {
		return
	}
	r.estimateVisible = visible
	r.changes++
}

// EstimateVisible reports whether the estimate panel is shown.
func (r *Regions) EstimateVisible() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.estimateVisible
}

// Changes returns how many times visibility actually flipped.
func (r *Regions) Changes() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.changes
}
