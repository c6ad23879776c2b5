// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package page holds the render-side controllers of the terminal page.
//
// [Regions] toggles the estimate panel. [AuthForms] owns the active
// sign-in/sign-up tab and rebuilds the identity widget. [Delegator] is the
// single event binding on the identity widget region: handlers are keyed by
// control ID and survive any number of widget re-renders.
//
// None of these types decide anything about the session; the session machine
// drives them.
package page
