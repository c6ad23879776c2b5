// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package page

import (
	"slices"
	"sync"

	"github.com/MKhiriev/go-house-builder/models"
)

// ControlID identifies an interactive control inside the identity widget.
type ControlID string

const (
	ControlTabSignIn    ControlID = "tab-signin"
	ControlTabSignUp    ControlID = "tab-signup"
	ControlSignInSubmit ControlID = "signin-submit"
	ControlSignUpSubmit ControlID = "signup-submit"
	ControlLogout       ControlID = "logout"
)

// Widget is the rendered content of the identity widget region.
type Widget struct {
	Kind     models.WidgetKind
	Identity string
	Controls []ControlID
}

// Has reports whether the control is part of the widget.
func (w Widget) Has(id ControlID) bool {
	return slices.Contains(w.Controls, id)
}

func formsWidget() Widget {
	return Widget{
		Kind:     models.WidgetForms,
		Controls: []ControlID{ControlTabSignIn, ControlTabSignUp, ControlSignInSubmit, ControlSignUpSubmit},
	}
}

func welcomeWidget(identity string) Widget {
	return Widget{
		Kind:     models.WidgetWelcome,
		Identity: identity,
		Controls: []ControlID{ControlLogout},
	}
}

var allTabs = [...]models.AuthTab{models.TabSignIn, models.TabSignUp}

// AuthForms owns the tab selection and the identity widget markup.
type AuthForms struct {
	mu      sync.RWMutex
	active  [len(allTabs)]bool
	widget  Widget
	renders int
}

// NewAuthForms returns the signed-out form bundle with the sign-in tab active.
func NewAuthForms() *AuthForms {
	f := &AuthForms{}
	f.RenderSignedOut()
	return f
}

// ActivateTab deactivates every tab and form, then activates tab.
func (f *AuthForms) ActivateTab(tab models.AuthTab) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.activate(tab)
}

func (f *AuthForms) activate(tab models.AuthTab) {
	for i := range f.active {
		f.active[i] = false
	}
	f.active[tab] = true
}

// ActiveTab returns the tab whose form is shown.
func (f *AuthForms) ActiveTab() models.AuthTab {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, tab := range allTabs {
		if f.active[tab] {
			return tab
		}
	}
	return models.TabSignIn
}

// ActiveTabs lists every tab currently marked active.
func (f *AuthForms) ActiveTabs() []models.AuthTab {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var tabs []models.AuthTab
	for _, tab := range allTabs {
		if f.active[tab] {
			tabs = append(tabs, tab)
		}
	}
	return tabs
}

// RenderSignedOut replaces the widget with the two-tab form bundle and
// resets the active tab to sign-in.
func (f *AuthForms) RenderSignedOut() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.widget = formsWidget()
	f.activate(models.TabSignIn)
	f.renders++
}

// RenderSignedIn replaces the widget with a welcome message for identity and
// a single logout control.
func (f *AuthForms) RenderSignedIn(identity string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.widget = welcomeWidget(identity)
	f.renders++
}

// Widget returns a copy of the current widget.
func (f *AuthForms) Widget() Widget {
	f.mu.RLock()
	defer f.mu.RUnlock()

	w := f.widget
	w.Controls = slices.Clone(f.widget.Controls)
	return w
}

// Renders returns how many times the widget was rebuilt.
func (f *AuthForms) Renders() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.renders
}
