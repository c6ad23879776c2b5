package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-house-builder/internal/logger"
	"github.com/MKhiriev/go-house-builder/internal/page"
	"github.com/MKhiriev/go-house-builder/internal/preview"
	"github.com/MKhiriev/go-house-builder/internal/service"
	"github.com/MKhiriev/go-house-builder/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWrite is swapped in tests.
var clipboardWrite = clipboard.WriteAll

// appModel is the single page: identity widget, estimate panel, preview and
// the blocking notice overlay.
type appModel struct {
	ctx       context.Context
	machine   service.SessionMachine
	delegator *page.Delegator[tea.Cmd]
	loader    *preview.Loader
	buildInfo models.AppBuildInfo

	state   models.ViewState
	inputs  *authInputs
	preview previewModel

	status        string
	showBuildInfo bool

	logger *logger.Logger
}

func newAppModel(ctx context.Context, services *service.ClientServices, loader *preview.Loader, buildInfo models.AppBuildInfo, log *logger.Logger) appModel {
	machine := services.SessionMachine
	inputs := newAuthInputs()

	// bound once; the widget re-renders underneath it
	d := page.NewDelegator[tea.Cmd](services.Forms)
	d.On(page.ControlTabSignIn, func() tea.Cmd {
		return cmdSelectTab(machine, models.TabSignIn)
	})
	d.On(page.ControlTabSignUp, func() tea.Cmd {
		return cmdSelectTab(machine, models.TabSignUp)
	})
	d.On(page.ControlSignInSubmit, func() tea.Cmd {
		email, password := inputs.credentials()
		return cmdLogin(ctx, machine, email, password)
	})
	d.On(page.ControlSignUpSubmit, func() tea.Cmd {
		return cmdRegister(ctx, machine, inputs.registerRequest())
	})
	d.On(page.ControlLogout, func() tea.Cmd {
		return cmdLogout(ctx, machine)
	})

	return appModel{
		ctx:       ctx,
		machine:   machine,
		delegator: d,
		loader:    loader,
		buildInfo: buildInfo,
		state:     machine.State(),
		inputs:    inputs,
		preview:   newPreviewModel(loader.ModelPath()),
		logger:    log,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(
		cmdRestore(m.ctx, m.machine),
		m.cmdLoadPreview(),
		m.preview.spinner.Tick,
		textinput.Blink,
	)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case sessionMsg:
		return m.onSession(msg), nil
	case previewProgressMsg:
		m.preview.status.State = preview.Loading
		m.preview.status.Progress = msg.progress
		return m, waitPreviewEvent(msg.events)
	case previewDoneMsg:
		m.preview.status = msg.status
		if msg.err != nil {
			m.logger.Debug().Err(msg.err).Msg("preview load finished with error")
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = "Clipboard unavailable"
			m.logger.Debug().Err(msg.err).Msg("copy estimate failed")
		} else {
			m.status = "Estimate copied!"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.preview.spinner, cmd = m.preview.spinner.Update(msg)
		return m, cmd
	}

	if m.state.Widget == models.WidgetForms {
		return m, m.inputs.update(m.state.ActiveTab, msg)
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	// the notice is modal, like alert()
	if !m.state.Notice.Empty() {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.state = m.machine.DismissNotice()
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.signIn):
		return m, m.click(page.ControlTabSignIn)
	case key.Matches(msg, keys.signUp):
		return m, m.click(page.ControlTabSignUp)
	case key.Matches(msg, keys.logout):
		return m, m.click(page.ControlLogout)
	case key.Matches(msg, keys.confirm):
		return m, cmdConfirmDesign(m.ctx, m.machine)
	case key.Matches(msg, keys.copy):
		if !m.state.EstimateVisible {
			return m, nil
		}
		return m, cmdCopyToClipboard(estimateText(m.state.Session.Identity, m.loader.ModelPath(), m.preview.status))
	case key.Matches(msg, keys.retry):
		if m.preview.status.State != preview.Failed {
			return m, nil
		}
		m.preview.status = preview.Status{State: preview.Loading, Progress: preview.Progress{Total: -1}}
		return m, m.cmdLoadPreview()
	}

	if m.state.Widget != models.WidgetForms {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.tab):
		m.inputs.focusNext(m.state.ActiveTab)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.inputs.focusPrev(m.state.ActiveTab)
		return m, nil
	case key.Matches(msg, keys.enter):
		return m.submit()
	}

	return m, m.inputs.update(m.state.ActiveTab, msg)
}

// submit presses the submit control of the active form. Presses while the
// same request is pending are ignored.
func (m appModel) submit() (tea.Model, tea.Cmd) {
	if m.state.ActiveTab == models.TabSignUp {
		if m.state.RegisterPending {
			return m, nil
		}
		cmd := m.click(page.ControlSignUpSubmit)
		if cmd != nil {
			m.state.RegisterPending = true
		}
		return m, cmd
	}

	if m.state.LoginPending {
		return m, nil
	}
	cmd := m.click(page.ControlSignInSubmit)
	if cmd != nil {
		m.state.LoginPending = true
	}
	return m, cmd
}

func (m appModel) click(id page.ControlID) tea.Cmd {
	cmd, ok := m.delegator.Click(id)
	if !ok {
		return nil
	}
	return cmd
}

func (m appModel) onSession(msg sessionMsg) appModel {
	m.state = m.machine.State()

	switch {
	case msg.err == nil && msg.op == opLogin:
		m.inputs.resetSignIn()
	case msg.err == nil && msg.op == opRegister:
		m.inputs.resetSignUp()
	case msg.err == nil && msg.op == opLogout:
		m.inputs.clearPasswords()
	case errors.Is(msg.err, service.ErrStaleResponse):
		m.logger.Debug().Msg("login response arrived after logout")
	case msg.err != nil:
		m.logger.Debug().Err(msg.err).Int("op", int(msg.op)).Msg("session transition rejected")
	}

	if m.state.Widget == models.WidgetForms {
		m.inputs.focusTab(m.state.ActiveTab)
	}
	return m
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder
	b.WriteString(m.viewIdentity())
	if m.state.EstimateVisible {
		b.WriteString("\n\n")
		b.WriteString(renderEstimate(m.state.Session.Identity, m.loader.ModelPath(), m.preview.status))
	}
	b.WriteString("\n\n")
	b.WriteString(m.preview.View())
	if m.state.StorageDegraded {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("session storage unavailable: sign-in will not survive a restart"))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(successStyle.Render(m.status))
	}

	body := renderPage("HOUSE BUILDER", b.String(), m.hotKeys())
	if !m.state.Notice.Empty() {
		body += "\n\n" + noticeOverlayModel{notice: m.state.Notice}.View()
	}

	return appStyle.Render(body)
}

func (m appModel) viewIdentity() string {
	if m.state.Widget == models.WidgetWelcome {
		return fmt.Sprintf("Welcome, %s\n\n[ Logout ]", fitText(m.state.Session.Identity, 40))
	}

	signIn, signUp := activeTabStyle.Render("Sign In"), inactiveTabStyle.Render("Sign Up")
	pending := m.state.LoginPending
	if m.state.ActiveTab == models.TabSignUp {
		signIn, signUp = inactiveTabStyle.Render("Sign In"), activeTabStyle.Render("Sign Up")
		pending = m.state.RegisterPending
	}

	return signIn + "   " + signUp + "\n\n" + m.inputs.view(m.state.ActiveTab, pending)
}

func (m appModel) hotKeys() string {
	if m.state.Widget == models.WidgetWelcome {
		return "ctrl+l: logout   ctrl+d: confirm design   ctrl+b: about"
	}
	return "tab/shift+tab: field   enter: submit   ctrl+s: sign in   ctrl+u: sign up   ctrl+d: confirm design   ctrl+b: about"
}

func (m appModel) cmdLoadPreview() tea.Cmd {
	ctx := m.ctx
	loader := m.loader
	events := make(chan tea.Msg, 16)

	go func() {
		defer close(events)
		st, err := loader.Load(ctx, func(p preview.Progress) {
			// progress is best effort; the final status is never dropped
			select {
			case events <- previewProgressMsg{progress: p, events: events}:
			default:
			}
		})
		events <- previewDoneMsg{status: st, err: err}
	}()

	return waitPreviewEvent(events)
}

func waitPreviewEvent(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}

func cmdRestore(ctx context.Context, machine service.SessionMachine) tea.Cmd {
	return func() tea.Msg {
		machine.Restore(ctx)
		return sessionMsg{op: opRestore}
	}
}

func cmdLogin(ctx context.Context, machine service.SessionMachine, email, password string) tea.Cmd {
	return func() tea.Msg {
		_, err := machine.Login(ctx, email, password)
		return sessionMsg{op: opLogin, err: err}
	}
}

func cmdRegister(ctx context.Context, machine service.SessionMachine, req models.RegisterRequest) tea.Cmd {
	return func() tea.Msg {
		_, err := machine.Register(ctx, req)
		return sessionMsg{op: opRegister, err: err}
	}
}

func cmdLogout(ctx context.Context, machine service.SessionMachine) tea.Cmd {
	return func() tea.Msg {
		_, err := machine.Logout(ctx)
		return sessionMsg{op: opLogout, err: err}
	}
}

func cmdSelectTab(machine service.SessionMachine, tab models.AuthTab) tea.Cmd {
	return func() tea.Msg {
		_, err := machine.SelectTab(tab)
		return sessionMsg{op: opSelectTab, err: err}
	}
}

func cmdConfirmDesign(ctx context.Context, machine service.SessionMachine) tea.Cmd {
	return func() tea.Msg {
		machine.ConfirmDesign(ctx)
		return sessionMsg{op: opConfirmDesign}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
