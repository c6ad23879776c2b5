// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package page

import "sync"

// Delegator is the one listener bound on the identity widget region. It
// resolves a click by control ID at dispatch time, so re-rendering the widget
// never adds or drops handlers.
type Delegator[T any] struct {
	mu       sync.RWMutex
	forms    *AuthForms
	handlers map[ControlID]func() T
}

// NewDelegator binds a delegator to the widget owned by forms.
func NewDelegator[T any](forms *AuthForms) *Delegator[T] {
	return &Delegator[T]{
		forms:    forms,
		handlers: make(map[ControlID]func() T),
	}
}

// On registers handler for id, replacing any previous one.
func (d *Delegator[T]) On(id ControlID, handler func() T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[id] = handler
}

// Click dispatches to the handler of id if that control is present in the
// currently rendered widget. The boolean reports whether a handler ran.
func (d *Delegator[T]) Click(id ControlID) (T, bool) {
	var zero T

	if !d.forms.Widget().Has(id) {
		return zero, false
	}

	d.mu.RLock()
	handler, ok := d.handlers[id]
	d.mu.RUnlock()
	if !ok {
		return zero, false
	}

	return handler(), true
}

// Bindings returns the number of registered handlers.
func (d *Delegator[T]) Bindings() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.handlers)
}
