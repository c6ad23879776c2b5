// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-house-builder/internal/adapter"
	"github.com/MKhiriev/go-house-builder/internal/logger"
	"github.com/MKhiriev/go-house-builder/internal/page"
	"github.com/MKhiriev/go-house-builder/internal/store"
	"github.com/MKhiriev/go-house-builder/models"
)

// Notices shown to the visitor.
const (
	MsgWelcomeBack       = "Welcome back %s!"
	MsgInvalidCreds      = "Invalid credentials"
	MsgLoginFailed       = "Something went wrong during login."
	MsgFillLoginFields   = "Please enter your email and password."
	MsgPasswordsMismatch = "Passwords do not match!"
	MsgAccountCreated    = "Account created successfully! Please sign in."
	MsgSignUpRejected    = "Sign up failed: %s"
	MsgSignUpFailed      = "Something went wrong during sign up."
	MsgLoggedOut         = "You have logged out."
	MsgSignInToProceed   = "Please sign in to proceed with the estimate."
	MsgDesignConfirmed   = "Design confirmed."
)

// degradable is implemented by session stores that can fall back to memory.
type degradable interface {
	Degraded() error
}

// sessionMachine is the mutex-guarded implementation of [SessionMachine].
//
// Gateway calls run outside the lock. Each operation has its own in-flight
// flag, and logoutEpoch is the request token: a login response is applied
// only if no logout happened since the request was issued.
type sessionMachine struct {
	mu sync.Mutex

	session models.Session
	notice  models.Notice

	loginInFlight    bool
	registerInFlight bool
	logoutEpoch      uint64
	storageFailed    bool

	store   store.SessionStore
	gateway adapter.AuthGateway
	regions *page.Regions
	forms   *page.AuthForms

	logger *logger.Logger
}

// NewSessionMachine wires a machine to its collaborators. The machine starts
// signed out; call Restore to load the persisted session.
func NewSessionMachine(sessionStore store.SessionStore, gateway adapter.AuthGateway, regions *page.Regions, forms *page.AuthForms, log *logger.Logger) SessionMachine {
	return &sessionMachine{
		session: models.SignedOutSession(),
		store:   sessionStore,
		gateway: gateway,
		regions: regions,
		forms:   forms,
		logger:  log,
	}
}

func (m *sessionMachine) Restore(ctx context.Context) models.ViewState {
	m.mu.Lock()
	defer m.mu.Unlock()

	identity, ok, err := m.store.Read(ctx)
	if err != nil {
		m.storageFailed = true
		m.logger.Warn().Err(err).Str("func", "*sessionMachine.Restore").Msg("session slot unreadable, starting signed out")
		ok = false
	}

	if session := models.SignedInSession(identity); ok && session.IsSignedIn() {
		m.applySignedIn(session)
	} else {
		m.applySignedOut()
	}

	m.logger.Debug().Str("status", m.session.Status.String()).Msg("session restored")
	return m.snapshot()
}

func (m *sessionMachine) Login(ctx context.Context, email, password string) (models.ViewState, error) {
	email = strings.TrimSpace(email)

	m.mu.Lock()
	if m.session.IsSignedIn() {
		defer m.mu.Unlock()
		return m.snapshot(), ErrNotSignedOut
	}
	if m.loginInFlight {
		defer m.mu.Unlock()
		return m.snapshot(), ErrRequestInFlight
	}
	if email == "" || strings.TrimSpace(password) == "" {
		defer m.mu.Unlock()
		m.notice = errorNotice(MsgFillLoginFields)
		return m.snapshot(), fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	m.loginInFlight = true
	token := m.logoutEpoch
	m.mu.Unlock()

	m.logger.Debug().Str("func", "*sessionMachine.Login").Msg("login request sent")
	resp, err := m.gateway.Login(ctx, email, password)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loginInFlight = false

	if token != m.logoutEpoch || m.session.IsSignedIn() {
		m.logger.Debug().Str("func", "*sessionMachine.Login").Msg("discarding login response issued before logout")
		return m.snapshot(), ErrStaleResponse
	}

	if err != nil {
		m.notice = errorNotice(MsgLoginFailed)
		return m.snapshot(), fmt.Errorf("%w: %w", ErrTransport, err)
	}

	if !resp.Success {
		msg := strings.TrimSpace(resp.Message)
		if msg == "" {
			msg = MsgInvalidCreds
		}
		m.notice = errorNotice(msg)
		return m.snapshot(), fmt.Errorf("%w: %s", ErrAuthRejected, msg)
	}

	session := models.SignedInSession(resp.User)
	if !session.IsSignedIn() {
		session = models.SignedInSession(email)
	}

	if err = m.store.Write(ctx, session.Identity); err != nil {
		m.storageFailed = true
		m.logger.Warn().Err(err).Str("func", "*sessionMachine.Login").Msg("session not persisted, keeping it in memory")
	}

	m.applySignedIn(session)
	m.notice = models.Notice{Level: models.NoticeSuccess, Message: fmt.Sprintf(MsgWelcomeBack, session.Identity)}
	m.logger.Debug().Str("status", m.session.Status.String()).Msg("signed in")

	return m.snapshot(), nil
}

func (m *sessionMachine) Register(ctx context.Context, req models.RegisterRequest) (models.ViewState, error) {
	m.mu.Lock()
	if m.session.IsSignedIn() {
		defer m.mu.Unlock()
		return m.snapshot(), ErrNotSignedOut
	}
	if m.registerInFlight {
		defer m.mu.Unlock()
		return m.snapshot(), ErrRequestInFlight
	}
	if !req.PasswordsMatch() {
		defer m.mu.Unlock()
		m.notice = errorNotice(MsgPasswordsMismatch)
		return m.snapshot(), fmt.Errorf("%w: passwords do not match", ErrValidation)
	}

	m.registerInFlight = true
	m.mu.Unlock()

	m.logger.Debug().Str("func", "*sessionMachine.Register").Msg("register request sent")
	resp, err := m.gateway.Register(ctx, req)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.registerInFlight = false

	if err != nil {
		m.notice = errorNotice(MsgSignUpFailed)
		return m.snapshot(), fmt.Errorf("%w: %w", ErrTransport, err)
	}

	if !resp.Success {
		m.notice = errorNotice(fmt.Sprintf(MsgSignUpRejected, resp.Message))
		return m.snapshot(), fmt.Errorf("%w: %s", ErrAuthRejected, resp.Message)
	}

	if !m.session.IsSignedIn() {
		m.forms.ActivateTab(models.TabSignIn)
	}
	m.notice = models.Notice{Level: models.NoticeSuccess, Message: MsgAccountCreated}

	return m.snapshot(), nil
}

func (m *sessionMachine) Logout(ctx context.Context) (models.ViewState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// any login issued before this point is stale
	m.logoutEpoch++

	if !m.session.IsSignedIn() {
		return m.snapshot(), ErrNotSignedIn
	}

	if err := m.store.Clear(ctx); err != nil {
		m.storageFailed = true
		m.logger.Warn().Err(err).Str("func", "*sessionMachine.Logout").Msg("session slot not cleared")
	}

	m.applySignedOut()
	m.notice = models.Notice{Level: models.NoticeInfo, Message: MsgLoggedOut}
	m.logger.Debug().Str("status", m.session.Status.String()).Msg("signed out")

	return m.snapshot(), nil
}

func (m *sessionMachine) ConfirmDesign(_ context.Context) models.ViewState {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session.IsSignedIn() {
		m.notice = models.Notice{Level: models.NoticeSuccess, Message: MsgDesignConfirmed}
		return m.snapshot()
	}

	m.regions.SetEstimateVisible(false)
	m.forms.ActivateTab(models.TabSignIn)
	m.notice = models.Notice{Level: models.NoticeInfo, Message: MsgSignInToProceed}

	return m.snapshot()
}

func (m *sessionMachine) SelectTab(tab models.AuthTab) (models.ViewState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session.IsSignedIn() {
		return m.snapshot(), ErrNotSignedOut
	}

	m.forms.ActivateTab(tab)
	if tab == models.TabSignUp {
		m.regions.SetEstimateVisible(false)
	}

	return m.snapshot(), nil
}

func (m *sessionMachine) State() models.ViewState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot()
}

func (m *sessionMachine) DismissNotice() models.ViewState {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.notice = models.Notice{}
	return m.snapshot()
}

// applySignedIn and applySignedOut move session, widget and estimate
// together. Callers hold mu.
func (m *sessionMachine) applySignedIn(session models.Session) {
	m.session = session
	m.forms.RenderSignedIn(session.Identity)
	m.regions.SetEstimateVisible(true)
}

func (m *sessionMachine) applySignedOut() {
	m.session = models.SignedOutSession()
	m.regions.SetEstimateVisible(false)
	m.forms.RenderSignedOut()
}

func (m *sessionMachine) snapshot() models.ViewState {
	degraded := m.storageFailed
	if d, ok := m.store.(degradable); ok && d.Degraded() != nil {
		degraded = true
	}

	return models.ViewState{
		Session:         m.session,
		EstimateVisible: m.regions.EstimateVisible(),
		ActiveTab:       m.forms.ActiveTab(),
		Widget:          m.forms.Widget().Kind,
		Notice:          m.notice,
		LoginPending:    m.loginInFlight,
		RegisterPending: m.registerInFlight,
		StorageDegraded: degraded,
	}
}

func errorNotice(msg string) models.Notice {
	return models.Notice{Level: models.NoticeError, Message: msg}
}
