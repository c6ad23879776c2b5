// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-house-builder/internal/adapter"
	"github.com/MKhiriev/go-house-builder/internal/logger"
	"github.com/MKhiriev/go-house-builder/internal/mock"
	"github.com/MKhiriev/go-house-builder/internal/page"
	"github.com/MKhiriev/go-house-builder/internal/store"
	"github.com/MKhiriev/go-house-builder/models"
)

// newTestMachine wires a machine over the given store with a gomock gateway.
func newTestMachine(t *testing.T, ctrl *gomock.Controller, sessionStore store.SessionStore) (*sessionMachine, *mock.MockAuthGateway) {
	t.Helper()
	gateway := mock.NewMockAuthGateway(ctrl)
	m := NewSessionMachine(sessionStore, gateway, page.NewRegions(), page.NewAuthForms(), logger.Nop()).(*sessionMachine)
	return m, gateway
}

// assertInvariants checks the properties that must hold in every reachable state.
func assertInvariants(t *testing.T, m *sessionMachine) {
	t.Helper()
	vs := m.State()

	assert.Equal(t, vs.Session.IsSignedIn(), vs.EstimateVisible, "estimate visible iff signed in")
	assert.Len(t, m.forms.ActiveTabs(), 1, "exactly one tab active")
	assert.Equal(t, vs.Session.IsSignedIn(), vs.Session.Identity != "")
	if vs.Session.IsSignedIn() {
		assert.Equal(t, models.WidgetWelcome, vs.Widget)
	} else {
		assert.Equal(t, models.WidgetForms, vs.Widget)
	}
}

// ── Restore ─────────────────────────────────────────────────────────────────

func TestSessionMachine_RestoreRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	persisted := store.NewMemorySessionStore()
	require.NoError(t, persisted.Write(ctx, "alice@example.com"))

	// reload: a fresh machine over the same slot
	m, _ := newTestMachine(t, ctrl, persisted)
	vs := m.Restore(ctx)

	assert.Equal(t, models.SignedIn, vs.Session.Status)
	assert.Equal(t, "alice@example.com", vs.Session.Identity)
	assert.True(t, vs.EstimateVisible)
	assert.Equal(t, models.WidgetWelcome, vs.Widget)
	assertInvariants(t, m)
}

func TestSessionMachine_RestoreEmptySlot(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _ := newTestMachine(t, ctrl, store.NewMemorySessionStore())

	vs := m.Restore(context.Background())

	assert.Equal(t, models.SignedOut, vs.Session.Status)
	assert.False(t, vs.EstimateVisible)
	assert.Equal(t, models.TabSignIn, vs.ActiveTab)
	assertInvariants(t, m)
}

func TestSessionMachine_RestoreUnreadableSlotStartsSignedOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	slot := mock.NewMockSessionStore(ctrl)
	slot.EXPECT().Read(gomock.Any()).Return("", false, errors.New("disk I/O error"))

	m, _ := newTestMachine(t, ctrl, slot)
	vs := m.Restore(context.Background())

	assert.Equal(t, models.SignedOut, vs.Session.Status)
	assert.True(t, vs.StorageDegraded)
	assertInvariants(t, m)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestSessionMachine_LoginSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	slot := mock.NewMockSessionStore(ctrl)

	m, gateway := newTestMachine(t, ctrl, slot)
	slot.EXPECT().Read(ctx).Return("", false, nil)
	m.Restore(ctx)

	gomock.InOrder(
		gateway.EXPECT().Login(ctx, "alice@example.com", "secret").
			Return(models.LoginResponse{Success: true, User: "Alice"}, nil),
		slot.EXPECT().Write(ctx, "Alice").Return(nil),
	)

	vs, err := m.Login(ctx, "  alice@example.com ", "secret")

	require.NoError(t, err)
	assert.Equal(t, models.SignedInSession("Alice"), vs.Session)
	assert.True(t, vs.EstimateVisible)
	assert.Equal(t, models.Notice{Level: models.NoticeSuccess, Message: "Welcome back Alice!"}, vs.Notice)
	assert.False(t, vs.LoginPending)
	assertInvariants(t, m)
}

func TestSessionMachine_LoginWithoutUserFallsBackToEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	m, gateway := newTestMachine(t, ctrl, store.NewMemorySessionStore())
	gateway.EXPECT().Login(ctx, "alice@example.com", "secret").Return(models.LoginResponse{Success: true}, nil)

	vs, err := m.Login(ctx, "alice@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", vs.Session.Identity)
}

func TestSessionMachine_LoginRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	slot := mock.NewMockSessionStore(ctrl)

	m, gateway := newTestMachine(t, ctrl, slot)
	gateway.EXPECT().Login(ctx, "alice@example.com", "wrong").
		Return(models.LoginResponse{Success: false, Message: "Invalid credentials"}, nil)

	vs, err := m.Login(ctx, "alice@example.com", "wrong")

	assert.ErrorIs(t, err, ErrAuthRejected)
	assert.Equal(t, models.SignedOut, vs.Session.Status)
	assert.Equal(t, "Invalid credentials", vs.Notice.Message)
	assert.Equal(t, models.NoticeError, vs.Notice.Level)
	assertInvariants(t, m)
}

func TestSessionMachine_LoginTransportFailureLeavesStateUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	// no Write expectation: any store write fails the test
	slot := mock.NewMockSessionStore(ctrl)

	m, gateway := newTestMachine(t, ctrl, slot)
	before := m.State()

	gateway.EXPECT().Login(ctx, "alice@example.com", "secret").
		Return(models.LoginResponse{}, adapter.ErrTransport)

	vs, err := m.Login(ctx, "alice@example.com", "secret")

	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, adapter.ErrTransport)
	assert.Equal(t, before.Session, vs.Session)
	assert.Equal(t, before.EstimateVisible, vs.EstimateVisible)
	assert.Equal(t, before.Widget, vs.Widget)
	assert.Equal(t, MsgLoginFailed, vs.Notice.Message)
	assertInvariants(t, m)
}

func TestSessionMachine_LoginEmptyFieldsMakeNoRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _ := newTestMachine(t, ctrl, store.NewMemorySessionStore())

	_, err := m.Login(context.Background(), "   ", "secret")
	assert.ErrorIs(t, err, ErrValidation)

	vs, err := m.Login(context.Background(), "alice@example.com", "")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, MsgFillLoginFields, vs.Notice.Message)
}

func TestSessionMachine_LoginWhileSignedIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	persisted := store.NewMemorySessionStore()
	require.NoError(t, persisted.Write(ctx, "Alice"))

	m, _ := newTestMachine(t, ctrl, persisted)
	m.Restore(ctx)

	_, err := m.Login(ctx, "bob@example.com", "secret")
	assert.ErrorIs(t, err, ErrNotSignedOut)
	assert.Equal(t, "Alice", m.State().Session.Identity)
}

func TestSessionMachine_LoginStorageWriteFailureStillSignsIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	slot := mock.NewMockSessionStore(ctrl)

	m, gateway := newTestMachine(t, ctrl, slot)
	gateway.EXPECT().Login(ctx, gomock.Any(), gomock.Any()).Return(models.LoginResponse{Success: true, User: "Alice"}, nil)
	slot.EXPECT().Write(ctx, "Alice").Return(errors.New("readonly database"))

	vs, err := m.Login(ctx, "alice@example.com", "secret")

	require.NoError(t, err)
	assert.True(t, vs.Session.IsSignedIn())
	assert.True(t, vs.StorageDegraded)
	assertInvariants(t, m)
}

// ── in-flight guard and stale responses ─────────────────────────────────────

// blockingLogin makes the gateway hold the login until release is closed.
func blockingLogin(gateway *mock.MockAuthGateway, started chan<- struct{}, release <-chan struct{}, resp models.LoginResponse) *gomock.Call {
	return gateway.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, string) (models.LoginResponse, error) {
			close(started)
			<-release
			return resp, nil
		})
}

func TestSessionMachine_DuplicateLoginIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	m, gateway := newTestMachine(t, ctrl, store.NewMemorySessionStore())

	started, release := make(chan struct{}), make(chan struct{})
	// Times(1): a second request would fail the test
	blockingLogin(gateway, started, release, models.LoginResponse{Success: true, User: "Alice"}).Times(1)

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = m.Login(ctx, "alice@example.com", "secret")
	}()

	<-started
	assert.True(t, m.State().LoginPending)

	_, err := m.Login(ctx, "alice@example.com", "secret")
	assert.ErrorIs(t, err, ErrRequestInFlight)

	close(release)
	wg.Wait()

	require.NoError(t, firstErr)
	assert.True(t, m.State().Session.IsSignedIn())
	assert.False(t, m.State().LoginPending)
}

func TestSessionMachine_LogoutWinsOverLateLoginResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	persisted := store.NewMemorySessionStore()

	m, gateway := newTestMachine(t, ctrl, persisted)
	m.Restore(ctx)

	started, release := make(chan struct{}), make(chan struct{})
	blockingLogin(gateway, started, release, models.LoginResponse{Success: true, User: "Alice"})

	done := make(chan error, 1)
	go func() {
		_, err := m.Login(ctx, "alice@example.com", "secret")
		done <- err
	}()

	<-started
	// explicit logout while the login is pending
	_, _ = m.Logout(ctx)
	close(release)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrStaleResponse)
	case <-time.After(2 * time.Second):
		t.Fatal("login did not return")
	}

	vs := m.State()
	assert.Equal(t, models.SignedOut, vs.Session.Status)
	assert.False(t, vs.EstimateVisible)
	_, ok, _ := persisted.Read(ctx)
	assert.False(t, ok, "stale login must not persist the identity")
	assertInvariants(t, m)
}

func TestSessionMachine_NewLoginAfterLogoutIsAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	m, gateway := newTestMachine(t, ctrl, store.NewMemorySessionStore())
	_, _ = m.Logout(ctx)

	gateway.EXPECT().Login(ctx, gomock.Any(), gomock.Any()).Return(models.LoginResponse{Success: true, User: "Alice"}, nil)

	vs, err := m.Login(ctx, "alice@example.com", "secret")
	require.NoError(t, err)
	assert.True(t, vs.Session.IsSignedIn())
}

// ── Register ────────────────────────────────────────────────────────────────

func TestSessionMachine_RegisterMismatchShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	// no gateway expectations: a network call fails the test
	m, _ := newTestMachine(t, ctrl, store.NewMemorySessionStore())

	vs, err := m.Register(context.Background(), models.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "a", ConfirmPassword: "b",
	})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, MsgPasswordsMismatch, vs.Notice.Message)
	assert.Equal(t, models.SignedOut, vs.Session.Status)
}

func TestSessionMachine_RegisterSuccessNeverSignsIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	slot := mock.NewMockSessionStore(ctrl)

	m, gateway := newTestMachine(t, ctrl, slot)
	_, err := m.SelectTab(models.TabSignUp)
	require.NoError(t, err)

	req := models.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "pass", ConfirmPassword: "pass"}
	gateway.EXPECT().Register(ctx, req).Return(models.RegisterResponse{Success: true, Message: "User registered successfully!"}, nil)

	vs, err := m.Register(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, models.SignedOut, vs.Session.Status)
	assert.False(t, vs.EstimateVisible)
	assert.Equal(t, models.TabSignIn, vs.ActiveTab)
	assert.Equal(t, MsgAccountCreated, vs.Notice.Message)
	assertInvariants(t, m)
}

func TestSessionMachine_RegisterRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	m, gateway := newTestMachine(t, ctrl, store.NewMemorySessionStore())
	_, _ = m.SelectTab(models.TabSignUp)

	gateway.EXPECT().Register(ctx, gomock.Any()).Return(models.RegisterResponse{Success: false, Message: "Email already exists"}, nil)

	vs, err := m.Register(ctx, models.RegisterRequest{Password: "x", ConfirmPassword: "x"})

	assert.ErrorIs(t, err, ErrAuthRejected)
	assert.Equal(t, "Sign up failed: Email already exists", vs.Notice.Message)
	assert.Equal(t, models.TabSignUp, vs.ActiveTab)
}

func TestSessionMachine_RegisterTransportFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	m, gateway := newTestMachine(t, ctrl, store.NewMemorySessionStore())
	gateway.EXPECT().Register(ctx, gomock.Any()).Return(models.RegisterResponse{}, adapter.ErrUnexpectedStatus)

	vs, err := m.Register(ctx, models.RegisterRequest{Password: "x", ConfirmPassword: "x"})

	assert.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, MsgSignUpFailed, vs.Notice.Message)
}

func TestSessionMachine_DuplicateRegisterIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	m, gateway := newTestMachine(t, ctrl, store.NewMemorySessionStore())

	started, release := make(chan struct{}), make(chan struct{})
	gateway.EXPECT().Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.RegisterRequest) (models.RegisterResponse, error) {
			close(started)
			<-release
			return models.RegisterResponse{Success: true}, nil
		}).Times(1)

	req := models.RegisterRequest{Password: "x", ConfirmPassword: "x"}
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = m.Register(ctx, req)
	}()

	<-started
	assert.True(t, m.State().RegisterPending)
	_, err := m.Register(ctx, req)
	assert.ErrorIs(t, err, ErrRequestInFlight)

	close(release)
	<-done
	assert.False(t, m.State().RegisterPending)
}

// ── Logout ──────────────────────────────────────────────────────────────────

func TestSessionMachine_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	persisted := store.NewMemorySessionStore()
	require.NoError(t, persisted.Write(ctx, "Alice"))

	m, _ := newTestMachine(t, ctrl, persisted)
	m.Restore(ctx)

	vs, err := m.Logout(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.SignedOut, vs.Session.Status)
	assert.False(t, vs.EstimateVisible)
	assert.Equal(t, models.TabSignIn, vs.ActiveTab)
	assert.Equal(t, models.WidgetForms, vs.Widget)
	assert.Equal(t, MsgLoggedOut, vs.Notice.Message)
	_, ok, _ := persisted.Read(ctx)
	assert.False(t, ok)
	assertInvariants(t, m)
}

func TestSessionMachine_LogoutWhenSignedOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _ := newTestMachine(t, ctrl, store.NewMemorySessionStore())

	vs, err := m.Logout(context.Background())

	assert.ErrorIs(t, err, ErrNotSignedIn)
	assert.True(t, vs.Notice.Empty())
}

// ── ConfirmDesign / SelectTab ───────────────────────────────────────────────

func TestSessionMachine_ConfirmDesignSignedOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _ := newTestMachine(t, ctrl, store.NewMemorySessionStore())
	_, _ = m.SelectTab(models.TabSignUp)

	vs := m.ConfirmDesign(context.Background())

	assert.False(t, vs.EstimateVisible)
	assert.Equal(t, models.TabSignIn, vs.ActiveTab)
	assert.Equal(t, MsgSignInToProceed, vs.Notice.Message)
	assertInvariants(t, m)
}

func TestSessionMachine_ConfirmDesignSignedIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	persisted := store.NewMemorySessionStore()
	require.NoError(t, persisted.Write(ctx, "Alice"))

	m, _ := newTestMachine(t, ctrl, persisted)
	m.Restore(ctx)

	vs := m.ConfirmDesign(ctx)

	assert.True(t, vs.EstimateVisible)
	assert.True(t, vs.Session.IsSignedIn())
	assert.Equal(t, MsgDesignConfirmed, vs.Notice.Message)
	assertInvariants(t, m)
}

func TestSessionMachine_SelectTab(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _ := newTestMachine(t, ctrl, store.NewMemorySessionStore())

	vs, err := m.SelectTab(models.TabSignUp)
	require.NoError(t, err)
	assert.Equal(t, models.TabSignUp, vs.ActiveTab)
	assert.False(t, vs.EstimateVisible)
	assertInvariants(t, m)

	vs, err = m.SelectTab(models.TabSignIn)
	require.NoError(t, err)
	assert.Equal(t, models.TabSignIn, vs.ActiveTab)
	assertInvariants(t, m)
}

func TestSessionMachine_SelectTabWhileSignedIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	persisted := store.NewMemorySessionStore()
	require.NoError(t, persisted.Write(ctx, "Alice"))

	m, _ := newTestMachine(t, ctrl, persisted)
	m.Restore(ctx)

	vs, err := m.SelectTab(models.TabSignUp)

	assert.ErrorIs(t, err, ErrNotSignedOut)
	assert.True(t, vs.EstimateVisible)
	assertInvariants(t, m)
}

func TestSessionMachine_DismissNotice(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _ := newTestMachine(t, ctrl, store.NewMemorySessionStore())
	m.ConfirmDesign(context.Background())
	require.False(t, m.State().Notice.Empty())

	vs := m.DismissNotice()
	assert.True(t, vs.Notice.Empty())
}

// TestSessionMachine_InvariantsAcrossSequence drives a mixed sequence of
// transitions and checks the invariants after each step.
func TestSessionMachine_InvariantsAcrossSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	m, gateway := newTestMachine(t, ctrl, store.NewMemorySessionStore())
	gateway.EXPECT().Login(ctx, gomock.Any(), gomock.Any()).Return(models.LoginResponse{Success: true, User: "Alice"}, nil).AnyTimes()
	gateway.EXPECT().Register(ctx, gomock.Any()).Return(models.RegisterResponse{Success: true}, nil).AnyTimes()

	steps := []func(){
		func() { m.Restore(ctx) },
		func() { _, _ = m.SelectTab(models.TabSignUp) },
		func() { _, _ = m.Register(ctx, models.RegisterRequest{Password: "p", ConfirmPassword: "p"}) },
		func() { m.ConfirmDesign(ctx) },
		func() { _, _ = m.Login(ctx, "alice@example.com", "p") },
		func() { _, _ = m.SelectTab(models.TabSignUp) },
		func() { m.ConfirmDesign(ctx) },
		func() { _, _ = m.Logout(ctx) },
		func() { _, _ = m.SelectTab(models.TabSignIn) },
		func() { _, _ = m.Logout(ctx) },
	}

	for _, step := range steps {
		step()
		assertInvariants(t, m)
	}
}
