// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// SessionStatus is the authentication status of the single page session.
type SessionStatus int

const (
	// SignedOut means no visitor identity is known.
	SignedOut SessionStatus = iota
	// SignedIn means a visitor identity is known and the estimate is available.
	SignedIn
)

// String returns a lowercase label suitable for logs.
func (s SessionStatus) String() string {
	switch s {
	case SignedIn:
		return "signed_in"
	default:
		return "signed_out"
	}
}

// Session is the authoritative record of who is signed in.
//
// Status and Identity always change together: a Session is SignedIn exactly
// when Identity is non-empty. Use [SignedOutSession] and [SignedInSession]
// to build values instead of filling the fields by hand.
type Session struct {
	// Identity is the display name of the signed-in visitor.
	Identity string
	// Status is derived from Identity at construction time.
	Status SessionStatus
}

// SignedOutSession returns the empty session.
func SignedOutSession() Session {
	return Session{Status: SignedOut}
}

// SignedInSession returns a signed-in session for identity. A blank identity
// yields a signed-out session.
func SignedInSession(identity string) Session {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return SignedOutSession()
	}
	return Session{Identity: identity, Status: SignedIn}
}

// IsSignedIn reports whether the session carries an identity.
func (s Session) IsSignedIn() bool {
	return s.Status == SignedIn && s.Identity != ""
}

// AuthTab identifies one of the two auth forms on the page.
type AuthTab int

const (
	// TabSignIn is the sign-in form. It is the default tab.
	TabSignIn AuthTab = iota
	// TabSignUp is the sign-up form.
	TabSignUp
)

// String returns the tab name used as the tab/form identifier.
func (t AuthTab) String() string {
	if t == TabSignUp {
		return "signup"
	}
	return "signin"
}

// PersistedSessionKey is the key of the persisted session slot.
const PersistedSessionKey = "loggedInUser"
