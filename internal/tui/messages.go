package tui

import (
	"github.com/MKhiriev/go-house-builder/internal/preview"
	tea "github.com/charmbracelet/bubbletea"
)

type sessionOp int

const (
	opRestore sessionOp = iota
	opLogin
	opRegister
	opLogout
	opSelectTab
	opConfirmDesign
)

// sessionMsg reports that a session machine call finished. The view state is
// re-read from the machine on receipt, so late messages never roll it back.
type sessionMsg struct {
	op  sessionOp
	err error
}

type previewProgressMsg struct {
	progress preview.Progress
	events   <-chan tea.Msg
}

type previewDoneMsg struct {
	status preview.Status
	err    error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
