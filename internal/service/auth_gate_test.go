package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/atomwalk/hrm-client/internal/logger"
	"github.com/atomwalk/hrm-client/internal/mock"
	"github.com/atomwalk/hrm-client/models"
)

// newTestGate is a helper creating an authGate with mocked deps.
func newTestGate(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*authGate,
	*mock.MockSessionManager,
	*mock.MockProfileService,
	*mock.MockConnectivityProbe,
	*mock.MockBiometricPrompter,
) {
	t.Helper()
	mockSession := mock.NewMockSessionManager(ctrl)
	mockProfiles := mock.NewMockProfileService(ctrl)
	mockProbe := mock.NewMockConnectivityProbe(ctrl)
	mockPrompter := mock.NewMockBiometricPrompter(ctrl)

	gate := NewAuthGate(mockSession, mockProfiles, mockProbe, mockPrompter, logger.Nop()).(*authGate)
	return gate, mockSession, mockProfiles, mockProbe, mockPrompter
}

// ── Start ────────────────────────────────────────────────────────────────────

func TestAuthGate_Start_NoPinExitsToFullLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate, mockSession, _, _, _ := newTestGate(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().HasPIN(ctx).Return(false)

	assert.Equal(t, GateFullLogin, gate.Start(ctx))
}

func TestAuthGate_Start_PinOnlyGoesStraightToPinEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate, mockSession, _, _, _ := newTestGate(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().HasPIN(ctx).Return(true)
	mockSession.EXPECT().BiometricEnabled(ctx).Return(false)

	assert.Equal(t, GatePinEntry, gate.Start(ctx))
	assert.Equal(t, pinAttempts, gate.AttemptsLeft())
}

func TestAuthGate_Start_BothMethodsOffersChoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate, mockSession, _, _, mockPrompter := newTestGate(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().HasPIN(ctx).Return(true)
	mockSession.EXPECT().BiometricEnabled(ctx).Return(true)
	mockPrompter.EXPECT().Available().Return(true)

	assert.Equal(t, GateChoosingMethod, gate.Start(ctx))
	assert.Equal(t, GatePinEntry, gate.ChoosePin())
}

func TestAuthGate_Start_BiometricPreferenceWithoutSensorFallsBackToPin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate, mockSession, _, _, mockPrompter := newTestGate(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().HasPIN(ctx).Return(true)
	mockSession.EXPECT().BiometricEnabled(ctx).Return(true)
	mockPrompter.EXPECT().Available().Return(false)

	assert.Equal(t, GatePinEntry, gate.Start(ctx))
}

// ── SubmitPIN ────────────────────────────────────────────────────────────────

func startAtPinEntry(t *testing.T, gate *authGate, mockSession *mock.MockSessionManager, ctx context.Context) {
	t.Helper()
	mockSession.EXPECT().HasPIN(ctx).Return(true)
	mockSession.EXPECT().BiometricEnabled(ctx).Return(false)
	require.Equal(t, GatePinEntry, gate.Start(ctx))
}

func TestAuthGate_SubmitPIN_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate, mockSession, _, mockProbe, _ := newTestGate(t, ctrl)
	ctx := context.Background()
	startAtPinEntry(t, gate, mockSession, ctx)

	gomock.InOrder(
		mockProbe.EXPECT().Ping(ctx).Return(nil),
		mockSession.EXPECT().VerifyPIN(ctx, "4271").Return(nil),
		mockSession.EXPECT().SilentLogin(ctx).Return(models.Token{Key: "fresh-key"}, nil),
	)

	state, token, err := gate.SubmitPIN(ctx, "4271")

	require.NoError(t, err)
	assert.Equal(t, GateAuthenticated, state)
	assert.Equal(t, "fresh-key", token.Key)
}

func TestAuthGate_SubmitPIN_OfflineDoesNotEvaluatePin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate, mockSession, _, mockProbe, _ := newTestGate(t, ctrl)
	ctx := context.Background()
	startAtPinEntry(t, gate, mockSession, ctx)

	// VerifyPIN must not be called
	mockProbe.EXPECT().Ping(ctx).Return(errors.New("no route to host"))

	state, _, err := gate.SubmitPIN(ctx, "4271")

	require.Error(t, err)
	assert.Equal(t, GateNetworkError, state)
	assert.Equal(t, pinAttempts, gate.AttemptsLeft(), "offline submission must not consume an attempt")

	// retry re-enters the triggering state
	assert.Equal(t, GatePinEntry, gate.Retry())
}

func TestAuthGate_SubmitPIN_MismatchDecrementsCounter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate, mockSession, _, mockProbe, _ := newTestGate(t, ctrl)
	ctx := context.Background()
	startAtPinEntry(t, gate, mockSession, ctx)

	mockProbe.EXPECT().Ping(ctx).Return(nil).Times(2)
	mockSession.EXPECT().VerifyPIN(ctx, "0000").Return(ErrPinMismatch).Times(2)

	state, _, err := gate.SubmitPIN(ctx, "0000")
	assert.ErrorIs(t, err, ErrPinMismatch)
	assert.Equal(t, GatePinEntry, state)
	assert.Equal(t, pinAttempts-1, gate.AttemptsLeft())

	// no lockout: the counter is cosmetic and submissions keep working
	_, _, err = gate.SubmitPIN(ctx, "0000")
	assert.ErrorIs(t, err, ErrPinMismatch)
	assert.Equal(t, pinAttempts-2, gate.AttemptsLeft())
}

func TestAuthGate_SubmitPIN_LoginFailureReturnsToEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate, mockSession, _, mockProbe, _ := newTestGate(t, ctrl)
	ctx := context.Background()
	startAtPinEntry(t, gate, mockSession, ctx)

	gomock.InOrder(
		mockProbe.EXPECT().Ping(ctx).Return(nil),
		mockSession.EXPECT().VerifyPIN(ctx, "4271").Return(nil),
		mockSession.EXPECT().SilentLogin(ctx).Return(models.Token{}, ErrLoginFailed),
	)

	state, _, err := gate.SubmitPIN(ctx, "4271")

	assert.ErrorIs(t, err, ErrLoginFailed)
	assert.Equal(t, GatePinEntry, state, "a failed backend login must not authenticate the gate")
}

func TestAuthGate_SubmitPIN_WrongState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate, _, _, _, _ := newTestGate(t, ctrl)

	_, _, err := gate.SubmitPIN(context.Background(), "4271")
	require.Error(t, err)
}

// ── AttemptFingerprint ───────────────────────────────────────────────────────

func startAtFingerprint(t *testing.T, gate *authGate, mockSession *mock.MockSessionManager, mockPrompter *mock.MockBiometricPrompter, ctx context.Context) {
	t.Helper()
	mockSession.EXPECT().HasPIN(ctx).Return(true)
	mockSession.EXPECT().BiometricEnabled(ctx).Return(true)
	mockPrompter.EXPECT().Available().Return(true)
	require.Equal(t, GateChoosingMethod, gate.Start(ctx))
	require.Equal(t, GateFingerprintEntry, gate.ChooseFingerprint())
}

func TestAuthGate_AttemptFingerprint_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate, mockSession, _, mockProbe, mockPrompter := newTestGate(t, ctrl)
	ctx := context.Background()
	startAtFingerprint(t, gate, mockSession, mockPrompter, ctx)

	gomock.InOrder(
		mockProbe.EXPECT().Ping(ctx).Return(nil),
		mockPrompter.EXPECT().Available().Return(true),
		mockPrompter.EXPECT().Prompt(ctx, gomock.Any()).Return(true, nil),
		mockSession.EXPECT().SilentLogin(ctx).Return(models.Token{Key: "fresh-key"}, nil),
	)

	state, token, err := gate.AttemptFingerprint(ctx)

	require.NoError(t, err)
	assert.Equal(t, GateAuthenticated, state)
	assert.Equal(t, "fresh-key", token.Key)
}

func TestAuthGate_AttemptFingerprint_RejectedStays(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate, mockSession, _, mockProbe, mockPrompter := newTestGate(t, ctrl)
	ctx := context.Background()
	startAtFingerprint(t, gate, mockSession, mockPrompter, ctx)

	gomock.InOrder(
		mockProbe.EXPECT().Ping(ctx).Return(nil),
		mockPrompter.EXPECT().Available().Return(true),
		mockPrompter.EXPECT().Prompt(ctx, gomock.Any()).Return(false, nil),
	)

	state, _, err := gate.AttemptFingerprint(ctx)

	assert.ErrorIs(t, err, ErrBiometricRejected)
	assert.Equal(t, GateFingerprintEntry, state)
	assert.Equal(t, pinAttempts, gate.AttemptsLeft(), "biometric failures never touch the pin counter")
}

func TestAuthGate_AttemptFingerprint_OfflineThenRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate, mockSession, _, mockProbe, mockPrompter := newTestGate(t, ctrl)
	ctx := context.Background()
	startAtFingerprint(t, gate, mockSession, mockPrompter, ctx)

	mockProbe.EXPECT().Ping(ctx).Return(errors.New("offline"))

	state, _, err := gate.AttemptFingerprint(ctx)
	require.Error(t, err)
	assert.Equal(t, GateNetworkError, state)
	assert.Equal(t, GateFingerprintEntry, gate.Retry())
}

// ── Greeting ─────────────────────────────────────────────────────────────────

func TestAuthGate_Greeting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate, _, mockProfiles, _, _ := newTestGate(t, ctrl)
	ctx := context.Background()

	mockProfiles.EXPECT().CachedProfileName(ctx).Return("Priya Nair")
	assert.Equal(t, "Priya Nair", gate.Greeting(ctx))
}
