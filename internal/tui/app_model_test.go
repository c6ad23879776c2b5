package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-house-builder/internal/config"
	"github.com/MKhiriev/go-house-builder/internal/logger"
	"github.com/MKhiriev/go-house-builder/internal/mock"
	"github.com/MKhiriev/go-house-builder/internal/preview"
	"github.com/MKhiriev/go-house-builder/internal/service"
	"github.com/MKhiriev/go-house-builder/internal/store"
	"github.com/MKhiriev/go-house-builder/models"
	tea "github.com/charmbracelet/bubbletea"
)

type testPage struct {
	model   tea.Model
	gateway *mock.MockAuthGateway
	fetcher *mock.MockAssetFetcher
	store   store.SessionStore
}

func newTestPage(t *testing.T) *testPage {
	t.Helper()
	ctrl := gomock.NewController(t)

	gateway := mock.NewMockAuthGateway(ctrl)
	fetcher := mock.NewMockAssetFetcher(ctrl)
	sessionStore := store.NewMemorySessionStore()

	services := service.NewClientServices(sessionStore, gateway, logger.Nop())
	loader := preview.NewLoader(fetcher, config.ClientPreview{ModelPath: "/models/house.glb"}, logger.Nop())

	return &testPage{
		model:   newAppModel(context.Background(), services, loader, models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc123"), logger.Nop()),
		gateway: gateway,
		fetcher: fetcher,
		store:   sessionStore,
	}
}

// send feeds msg to the model and runs the returned command synchronously,
// feeding its result back once.
func (p *testPage) send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.model, cmd = p.model.Update(msg)
	return cmd
}

func (p *testPage) sendAndRun(msg tea.Msg) {
	cmd := p.send(msg)
	if cmd == nil {
		return
	}
	if out := cmd(); out != nil {
		p.send(out)
	}
}

func (p *testPage) typeText(s string) {
	for _, r := range s {
		p.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (p *testPage) state() models.ViewState {
	return p.model.(appModel).state
}

func (p *testPage) view() string {
	return p.model.View()
}

func press(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestAppModel_InitialView(t *testing.T) {
	p := newTestPage(t)
	p.send(cmdRestore(context.Background(), p.model.(appModel).machine)())

	v := p.view()
	assert.Contains(t, v, "Sign In")
	assert.Contains(t, v, "Sign Up")
	assert.Contains(t, v, "Email")
	assert.NotContains(t, v, "Estimate for")
	assert.Contains(t, v, "3D preview")
}

func TestAppModel_LoginFlow(t *testing.T) {
	p := newTestPage(t)
	p.gateway.EXPECT().Login(gomock.Any(), "alice@example.com", "secret").
		Return(models.LoginResponse{Success: true, User: "Alice"}, nil)

	p.typeText("alice@example.com")
	p.send(press(tea.KeyTab))
	p.typeText("secret")
	p.sendAndRun(press(tea.KeyEnter))

	st := p.state()
	assert.True(t, st.Session.IsSignedIn())
	assert.True(t, st.EstimateVisible)
	assert.Equal(t, "Welcome back Alice!", st.Notice.Message)

	v := p.view()
	assert.Contains(t, v, "Welcome back Alice!")
	assert.Contains(t, v, "Welcome, Alice")
	assert.Contains(t, v, "Estimate for: Alice")

	identity, ok, err := p.store.Read(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Alice", identity)

	// inputs are cleared after a successful sign-in
	email, password := p.model.(appModel).inputs.credentials()
	assert.Empty(t, email)
	assert.Empty(t, password)
}

func TestAppModel_NoticeIsModal(t *testing.T) {
	p := newTestPage(t)

	p.sendAndRun(press(tea.KeyCtrlD))
	require.Equal(t, service.MsgSignInToProceed, p.state().Notice.Message)

	// other keys are swallowed while the notice is up
	assert.Nil(t, p.send(press(tea.KeyCtrlU)))
	p.typeText("x")
	email, _ := p.model.(appModel).inputs.credentials()
	assert.Empty(t, email)

	p.send(press(tea.KeyEsc))
	assert.True(t, p.state().Notice.Empty())
	assert.NotContains(t, p.view(), service.MsgSignInToProceed)
}

func TestAppModel_LogoutOnlyWhenSignedIn(t *testing.T) {
	p := newTestPage(t)

	// the logout control is not in the signed-out widget
	assert.Nil(t, p.send(press(tea.KeyCtrlL)))

	require.NoError(t, p.store.Write(context.Background(), "Alice"))
	p.send(cmdRestore(context.Background(), p.model.(appModel).machine)())
	require.True(t, p.state().EstimateVisible)

	p.sendAndRun(press(tea.KeyCtrlL))

	st := p.state()
	assert.False(t, st.Session.IsSignedIn())
	assert.False(t, st.EstimateVisible)
	assert.Equal(t, models.TabSignIn, st.ActiveTab)
	assert.Equal(t, service.MsgLoggedOut, st.Notice.Message)
	_, ok, _ := p.store.Read(context.Background())
	assert.False(t, ok)
}

func TestAppModel_SignUpTab(t *testing.T) {
	p := newTestPage(t)

	p.sendAndRun(press(tea.KeyCtrlU))
	assert.Equal(t, models.TabSignUp, p.state().ActiveTab)
	assert.Contains(t, p.view(), "Full name")
	assert.Contains(t, p.view(), "[ Sign Up ]")

	p.sendAndRun(press(tea.KeyCtrlS))
	assert.Equal(t, models.TabSignIn, p.state().ActiveTab)
	assert.NotContains(t, p.view(), "Full name")
}

func TestAppModel_SignUpMismatchMakesNoRequest(t *testing.T) {
	p := newTestPage(t)
	// no Register expectation on the gateway

	p.sendAndRun(press(tea.KeyCtrlU))
	p.typeText("Alice")
	p.send(press(tea.KeyTab))
	p.typeText("alice@example.com")
	p.send(press(tea.KeyTab))
	p.typeText("one")
	p.send(press(tea.KeyTab))
	p.typeText("two")
	p.sendAndRun(press(tea.KeyEnter))

	assert.Equal(t, service.MsgPasswordsMismatch, p.state().Notice.Message)
	assert.False(t, p.state().Session.IsSignedIn())
}

func TestAppModel_SignUpSuccessReturnsToSignIn(t *testing.T) {
	p := newTestPage(t)
	p.gateway.EXPECT().Register(gomock.Any(), models.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "pass", ConfirmPassword: "pass",
	}).Return(models.RegisterResponse{Success: true}, nil)

	p.sendAndRun(press(tea.KeyCtrlU))
	p.typeText("Alice")
	p.send(press(tea.KeyTab))
	p.typeText("alice@example.com")
	p.send(press(tea.KeyTab))
	p.typeText("pass")
	p.send(press(tea.KeyTab))
	p.typeText("pass")
	p.sendAndRun(press(tea.KeyEnter))

	st := p.state()
	assert.Equal(t, models.TabSignIn, st.ActiveTab)
	assert.False(t, st.Session.IsSignedIn())
	assert.Equal(t, service.MsgAccountCreated, st.Notice.Message)
}

func TestAppModel_PendingSubmitIgnored(t *testing.T) {
	p := newTestPage(t)
	p.typeText("alice@example.com")
	p.send(press(tea.KeyTab))
	p.typeText("secret")

	first := p.send(press(tea.KeyEnter))
	require.NotNil(t, first)
	assert.True(t, p.state().LoginPending)
	assert.Contains(t, p.view(), "Signing in...")

	assert.Nil(t, p.send(press(tea.KeyEnter)))
}

func TestAppModel_CopyEstimate(t *testing.T) {
	var copied string
	orig := clipboardWrite
	clipboardWrite = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { clipboardWrite = orig })

	p := newTestPage(t)
	assert.Nil(t, p.send(press(tea.KeyCtrlY)), "no estimate to copy while signed out")

	require.NoError(t, p.store.Write(context.Background(), "Alice"))
	p.send(cmdRestore(context.Background(), p.model.(appModel).machine)())

	cmd := p.send(press(tea.KeyCtrlY))
	require.NotNil(t, cmd)
	p.send(cmd())

	assert.Contains(t, copied, "Estimate for: Alice")
	assert.Contains(t, p.view(), "Estimate copied!")

	clipboardWrite = func(string) error { return errors.New("no clipboard") }
	p.send(p.send(press(tea.KeyCtrlY))())
	assert.Contains(t, p.view(), "Clipboard unavailable")
}

func TestAppModel_PreviewStates(t *testing.T) {
	p := newTestPage(t)

	p.send(previewProgressMsg{progress: preview.Progress{Loaded: 512, Total: 2048}, events: make(chan tea.Msg)})
	assert.Contains(t, p.view(), "512 B / 2.0 KB")

	p.send(previewDoneMsg{status: preview.Status{State: preview.Failed, Err: preview.ErrInvalidAsset}, err: preview.ErrInvalidAsset})
	assert.Contains(t, p.view(), "model unavailable")
	assert.Contains(t, p.view(), "ctrl+r: retry")

	asset := []byte("glTF\x02\x00\x00\x00\x0c\x00\x00\x00")
	p.fetcher.EXPECT().Fetch(gomock.Any(), "/models/house.glb", gomock.Any()).Return(asset, nil)

	cmd := p.send(press(tea.KeyCtrlR))
	require.NotNil(t, cmd)
	for msg := cmd(); msg != nil; {
		next := p.send(msg)
		if next == nil {
			break
		}
		msg = next()
	}

	assert.Equal(t, preview.Loaded, p.model.(appModel).preview.status.State)
	assert.Contains(t, p.view(), "rendering (glTF 2)")
}

func TestAppModel_BuildInfo(t *testing.T) {
	p := newTestPage(t)

	p.send(press(tea.KeyCtrlB))
	v := p.view()
	assert.Contains(t, v, "ABOUT")
	assert.Contains(t, v, "1.0.0")
	assert.Contains(t, v, "abc123")

	p.send(press(tea.KeyEsc))
	assert.NotContains(t, p.view(), "ABOUT")
}

func TestAppModel_Quit(t *testing.T) {
	p := newTestPage(t)
	cmd := p.send(press(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
