// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Atomwalk Technologies

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atomwalk/hrm-client/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// GateModel drives the local unlock gate: it renders whichever screen the
// gate state machine is in (method choice, PIN entry, fingerprint wait,
// network error) and dispatches async unlock commands. A successful unlock
// produces an [unlockDoneMsg] that [RootModel] uses to finish the flow;
// a gate without a stored PIN navigates straight to the full login page.
type GateModel struct {
	ctx  context.Context
	gate service.AuthGate

	pinInput   textinput.Model
	methodIdx  int
	greeting   string
	attempting bool
	errMsg     string
}

// NewGateModel creates a [GateModel] with a masked 4-digit PIN input.
func NewGateModel(ctx context.Context, gate service.AuthGate) *GateModel {
	pinInput := textinput.New()
	pinInput.Placeholder = "4 digits"
	pinInput.CharLimit = 4
	pinInput.Width = 10
	pinInput.EchoMode = textinput.EchoPassword
	pinInput.EchoCharacter = '*'
	pinInput.Focus()

	return &GateModel{
		ctx:      ctx,
		gate:     gate,
		pinInput: pinInput,
	}
}

func (m *GateModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdStart())
}

func (m *GateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case gateStartedMsg:
		m.greeting = msg.greeting
		if msg.state == service.GateFullLogin {
			return m, func() tea.Msg { return NavigateTo{Page: "login"} }
		}
		return m, nil
	case pinResultMsg:
		m.attempting = false
		m.pinInput.SetValue("")
		if msg.state == service.GateAuthenticated {
			return m, func() tea.Msg { return unlockDoneMsg{token: msg.token} }
		}
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
		}
		return m, nil
	case fingerprintResultMsg:
		m.attempting = false
		if msg.state == service.GateAuthenticated {
			return m, func() tea.Msg { return unlockDoneMsg{token: msg.token} }
		}
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.gate.State() {
	case service.GateChoosingMethod:
		return m.updateChoosingMethod(keyMsg)
	case service.GatePinEntry:
		return m.updatePinEntry(keyMsg)
	case service.GateFingerprintEntry:
		return m.updateFingerprint(keyMsg)
	case service.GateNetworkError:
		if key.Matches(keyMsg, keys.retry) || key.Matches(keyMsg, keys.enter) {
			m.errMsg = ""
			m.gate.Retry()
		}
		return m, nil
	}

	return m, nil
}

func (m *GateModel) updateChoosingMethod(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.methodIdx > 0 {
			m.methodIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.methodIdx < 1 {
			m.methodIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.errMsg = ""
		if m.methodIdx == 0 {
			m.gate.ChoosePin()
			return m, nil
		}
		m.gate.ChooseFingerprint()
		m.attempting = true
		return m, m.cmdFingerprint()
	}
	return m, nil
}

func (m *GateModel) updatePinEntry(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		// Forgot-PIN escape hatch: fall back to full credential login.
		return m, func() tea.Msg { return NavigateTo{Page: "login"} }
	case "enter":
		if m.attempting {
			return m, nil
		}
		pin := m.pinInput.Value()
		if len(pin) != 4 {
			m.errMsg = "The PIN is 4 digits"
			return m, nil
		}
		m.errMsg = ""
		m.attempting = true
		return m, m.cmdSubmitPIN(pin)
	}

	var cmd tea.Cmd
	m.pinInput, cmd = m.pinInput.Update(keyMsg)
	return m, cmd
}

func (m *GateModel) updateFingerprint(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Page: "login"} }
	case "enter":
		if m.attempting {
			return m, nil
		}
		m.errMsg = ""
		m.attempting = true
		return m, m.cmdFingerprint()
	}
	return m, nil
}

func (m *GateModel) View() string {
	switch m.gate.State() {
	case service.GateChoosingMethod:
		return m.viewChoosingMethod()
	case service.GatePinEntry:
		return m.viewPinEntry()
	case service.GateFingerprintEntry:
		return m.viewFingerprint()
	case service.GateNetworkError:
		return renderPage("NO CONNECTION",
			"The server could not be reached.\nYour PIN was not checked and no attempt was used.",
			"r/enter: retry")
	}
	return renderPage("UNLOCK", "Checking stored credentials...", "")
}

func (m *GateModel) viewChoosingMethod() string {
	var b strings.Builder
	if m.greeting != "" {
		b.WriteString("Welcome back, ")
		b.WriteString(m.greeting)
		b.WriteString("\n\n")
	}

	options := []string{"Unlock with PIN", "Unlock with fingerprint"}
	for i, option := range options {
		cursor := " "
		if i == m.methodIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", cursor, option))
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
	}

	return renderPage("UNLOCK", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move")
}

func (m *GateModel) viewPinEntry() string {
	var b strings.Builder
	if m.greeting != "" {
		b.WriteString("Welcome back, ")
		b.WriteString(m.greeting)
		b.WriteString("\n\n")
	}

	b.WriteString("PIN │ [")
	b.WriteString(m.pinInput.View())
	b.WriteString("]\n")

	if m.attempting {
		b.WriteString("\n[Unlocking...]")
	}
	if left := m.gate.AttemptsLeft(); left < 5 {
		b.WriteString(fmt.Sprintf("\nAttempts left: %d", left))
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
	}

	return renderPage("ENTER PIN", strings.TrimRight(b.String(), "\n"), "enter: unlock │ esc: full login")
}

func (m *GateModel) viewFingerprint() string {
	var b strings.Builder
	if m.attempting {
		b.WriteString("Waiting for the fingerprint sensor...")
	} else {
		b.WriteString("Press enter, then touch the fingerprint sensor.")
	}
	if m.errMsg != "" {
		b.WriteString("\n\nError: ")
		b.WriteString(m.errMsg)
	}
	return renderPage("FINGERPRINT", b.String(), "enter: try again │ esc: full login")
}

func (m *GateModel) cmdStart() tea.Cmd {
	ctx := m.ctx
	gate := m.gate

	return func() tea.Msg {
		state := gate.Start(ctx)
		return gateStartedMsg{state: state, greeting: gate.Greeting(ctx)}
	}
}

func (m *GateModel) cmdSubmitPIN(pin string) tea.Cmd {
	ctx := m.ctx
	gate := m.gate

	return func() tea.Msg {
		state, token, err := gate.SubmitPIN(ctx, pin)
		return pinResultMsg{state: state, token: token, err: err}
	}
}

func (m *GateModel) cmdFingerprint() tea.Cmd {
	ctx := m.ctx
	gate := m.gate

	return func() tea.Msg {
		state, token, err := gate.AttemptFingerprint(ctx)
		return fingerprintResultMsg{state: state, token: token, err: err}
	}
}
