// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// WidgetKind tells which markup the identity widget currently holds.
type WidgetKind int

const (
	// WidgetForms is the two-tab sign-in/sign-up form bundle.
	WidgetForms WidgetKind = iota
	// WidgetWelcome is the welcome message with a single logout control.
	WidgetWelcome
)

// NoticeLevel classifies a user-facing notice.
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeSuccess
	NoticeError
)

// Notice is a blocking message shown to the visitor until dismissed.
type Notice struct {
	Level   NoticeLevel
	Message string
}

// Empty reports whether there is nothing to show.
func (n Notice) Empty() bool {
	return n.Message == ""
}

// ViewState is a read-only snapshot of everything the page renders from
// session state. It is produced by the session machine after every
// transition.
type ViewState struct {
	Session         Session
	EstimateVisible bool
	ActiveTab       AuthTab
	Widget          WidgetKind
	Notice          Notice

	// LoginPending and RegisterPending are true while the corresponding
	// request is in flight; the submit controls are disabled meanwhile.
	LoginPending    bool
	RegisterPending bool

	// StorageDegraded is true once the persisted slot failed and the session
	// lives in memory only.
	StorageDegraded bool
}
