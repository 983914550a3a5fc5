// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Atomwalk Technologies

package service

import (
	"context"
	"fmt"

	"github.com/atomwalk/hrm-client/internal/logger"
	"github.com/atomwalk/hrm-client/models"
)

// GateState is the explicit state of the local auth gate.
type GateState int

const (
	// GateChecking reads stored PIN presence and the biometric preference.
	GateChecking GateState = iota
	// GateChoosingMethod offers PIN and fingerprint unlock side by side.
	GateChoosingMethod
	// GatePinEntry collects the 4-digit unlock PIN.
	GatePinEntry
	// GateFingerprintEntry awaits the biometric prompt outcome.
	GateFingerprintEntry
	// GateNetworkError is entered when the connectivity probe fails; retry
	// re-enters the state that triggered the probe.
	GateNetworkError
	// GateAuthenticated is reached only after a fresh backend token.
	GateAuthenticated
	// GateFullLogin is the terminal exit to credential login when no PIN
	// is stored on the device.
	GateFullLogin
)

func (s GateState) String() string {
	switch s {
	case GateChecking:
		return "CHECKING"
	case GateChoosingMethod:
		return "CHOOSING_METHOD"
	case GatePinEntry:
		return "PIN_ENTRY"
	case GateFingerprintEntry:
		return "FINGERPRINT_ENTRY"
	case GateNetworkError:
		return "NETWORK_ERROR"
	case GateAuthenticated:
		return "AUTHENTICATED"
	case GateFullLogin:
		return "FULL_LOGIN"
	default:
		return fmt.Sprintf("GateState(%d)", int(s))
	}
}

// pinAttempts is the starting value of the attempt counter. The counter is
// informational only; there is no lockout.
const pinAttempts = 5

// AuthGate is the local unlock state machine shown on app start. It decides
// between PIN, fingerprint and full credential login, probes connectivity
// before evaluating any local secret, and hands out a fresh backend token on
// success.
type AuthGate interface {
	// Start runs the CHECKING step and returns the resulting state:
	// GateChoosingMethod, GatePinEntry or GateFullLogin.
	Start(ctx context.Context) GateState

	// State returns the current gate state.
	State() GateState

	// AttemptsLeft returns the informational PIN attempt counter.
	AttemptsLeft() int

	// Greeting returns the cached profile name for the unlock screen, or
	// "" when none is cached.
	Greeting(ctx context.Context) string

	// ChoosePin moves from GateChoosingMethod to GatePinEntry.
	ChoosePin() GateState

	// ChooseFingerprint moves from GateChoosingMethod to
	// GateFingerprintEntry.
	ChooseFingerprint() GateState

	// SubmitPIN evaluates the entered PIN. The connectivity probe runs
	// first; offline submissions land in GateNetworkError without the PIN
	// being evaluated or counted. A mismatch decrements the counter and
	// stays in GatePinEntry. A match triggers the silent backend login;
	// login failure returns to GatePinEntry with the error surfaced.
	SubmitPIN(ctx context.Context, pin string) (GateState, models.Token, error)

	// AttemptFingerprint runs the biometric prompt. The connectivity
	// probe runs first. Failure or cancel stays in GateFingerprintEntry
	// without touching any counter.
	AttemptFingerprint(ctx context.Context) (GateState, models.Token, error)

	// Retry leaves GateNetworkError and re-enters the state whose probe
	// failed.
	Retry() GateState
}

type authGate struct {
	session  SessionManager
	profiles ProfileService
	probe    ConnectivityProbe
	prompter BiometricPrompter

	state        GateState
	retryTarget  GateState
	attemptsLeft int

	logger *logger.Logger
}

// NewAuthGate constructs the unlock gate. The prompter may be a stub that
// reports unavailability; the gate then never offers fingerprint unlock.
func NewAuthGate(session SessionManager, profiles ProfileService, probe ConnectivityProbe, prompter BiometricPrompter, logger *logger.Logger) AuthGate {
	return &authGate{
		session:      session,
		profiles:     profiles,
		probe:        probe,
		prompter:     prompter,
		state:        GateChecking,
		attemptsLeft: pinAttempts,
		logger:       logger,
	}
}

func (g *authGate) Start(ctx context.Context) GateState {
	g.attemptsLeft = pinAttempts

	if !g.session.HasPIN(ctx) {
		g.state = GateFullLogin
		g.logger.Debug().Msg("no pin stored, full login required")
		return g.state
	}

	if g.session.BiometricEnabled(ctx) && g.prompter.Available() {
		g.state = GateChoosingMethod
	} else {
		g.state = GatePinEntry
	}

	return g.state
}

func (g *authGate) State() GateState { return g.state }

func (g *authGate) AttemptsLeft() int { return g.attemptsLeft }

func (g *authGate) Greeting(ctx context.Context) string {
	return g.profiles.CachedProfileName(ctx)
}

func (g *authGate) ChoosePin() GateState {
	if g.state == GateChoosingMethod {
		g.state = GatePinEntry
	}
	return g.state
}

func (g *authGate) ChooseFingerprint() GateState {
	if g.state == GateChoosingMethod {
		g.state = GateFingerprintEntry
	}
	return g.state
}

func (g *authGate) SubmitPIN(ctx context.Context, pin string) (GateState, models.Token, error) {
	if g.state != GatePinEntry {
		return g.state, models.Token{}, fmt.Errorf("pin submitted in state %s", g.state)
	}

	// offline submissions must not consume an attempt
	if err := g.probe.Ping(ctx); err != nil {
		g.state = GateNetworkError
		g.retryTarget = GatePinEntry
		return g.state, models.Token{}, err
	}

	if err := g.session.VerifyPIN(ctx, pin); err != nil {
		g.attemptsLeft--
		g.logger.Debug().Int("attempts_left", g.attemptsLeft).Msg("pin rejected")
		return g.state, models.Token{}, err
	}

	return g.completeLogin(ctx, GatePinEntry)
}

func (g *authGate) AttemptFingerprint(ctx context.Context) (GateState, models.Token, error) {
	if g.state != GateFingerprintEntry {
		return g.state, models.Token{}, fmt.Errorf("fingerprint attempted in state %s", g.state)
	}

	if err := g.probe.Ping(ctx); err != nil {
		g.state = GateNetworkError
		g.retryTarget = GateFingerprintEntry
		return g.state, models.Token{}, err
	}

	if !g.prompter.Available() {
		return g.state, models.Token{}, ErrBiometricUnavailable
	}

	ok, err := g.prompter.Prompt(ctx, "Unlock Atomwalk HRM")
	if err != nil {
		return g.state, models.Token{}, fmt.Errorf("biometric prompt: %w", err)
	}
	if !ok {
		return g.state, models.Token{}, ErrBiometricRejected
	}

	return g.completeLogin(ctx, GateFingerprintEntry)
}

func (g *authGate) Retry() GateState {
	if g.state == GateNetworkError {
		g.state = g.retryTarget
	}
	return g.state
}

// completeLogin performs the silent backend login after a successful local
// unlock. A failed login returns to the entry state with the error surfaced
// rather than pretending the unlock succeeded.
func (g *authGate) completeLogin(ctx context.Context, entryState GateState) (GateState, models.Token, error) {
	token, err := g.session.SilentLogin(ctx)
	if err != nil {
		g.state = entryState
		return g.state, models.Token{}, err
	}

	g.state = GateAuthenticated
	g.logger.Info().Str("via", entryState.String()).Msg("gate unlocked")
	return g.state, token, nil
}
