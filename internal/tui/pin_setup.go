package tui

import (
	"context"
	"strings"

	"github.com/atomwalk/hrm-client/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PinSetupModel is shown right after a full credential login. It registers a
// 4-digit unlock PIN (fully replacing any previous one) and, when a sensor
// is present, records the fingerprint opt-in preference. Esc skips the setup
// and keeps the previous unlock configuration.
type PinSetupModel struct {
	ctx             context.Context
	session         service.SessionManager
	sensorAvailable bool

	inputs    []textinput.Model
	focus     int
	biometric bool
	saving    bool
	errMsg    string
}

func NewPinSetupModel(ctx context.Context, session service.SessionManager, sensorAvailable bool) *PinSetupModel {
	newPinInput := textinput.New()
	newPinInput.Placeholder = "4 digits"
	newPinInput.CharLimit = 4
	newPinInput.Width = 10
	newPinInput.EchoMode = textinput.EchoPassword
	newPinInput.EchoCharacter = '*'
	newPinInput.Focus()

	confirmInput := textinput.New()
	confirmInput.Placeholder = "repeat"
	confirmInput.CharLimit = 4
	confirmInput.Width = 10
	confirmInput.EchoMode = textinput.EchoPassword
	confirmInput.EchoCharacter = '*'

	return &PinSetupModel{
		ctx:             ctx,
		session:         session,
		sensorAvailable: sensorAvailable,
		inputs:          []textinput.Model{newPinInput, confirmInput},
	}
}

func (m *PinSetupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *PinSetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(pinSavedMsg); ok {
		m.saving = false
		if result.err != nil {
			m.errMsg = result.err.Error()
			return m, nil
		}
		return m, func() tea.Msg { return pinSetupDoneMsg{} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return pinSetupDoneMsg{} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "f":
			if m.sensorAvailable {
				m.biometric = !m.biometric
				return m, nil
			}
		case "enter":
			if m.saving {
				return m, nil
			}

			pin := m.inputs[0].Value()
			if pin != m.inputs[1].Value() {
				m.errMsg = "The PINs do not match"
				return m, nil
			}

			m.errMsg = ""
			m.saving = true
			return m, m.cmdSave(pin)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *PinSetupModel) View() string {
	var b strings.Builder
	b.WriteString("Pick a 4-digit PIN for the next unlock.\n\n")
	b.WriteString("PIN     │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Repeat  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.sensorAvailable {
		mark := " "
		if m.biometric {
			mark = "x"
		}
		b.WriteString("\n[")
		b.WriteString(mark)
		b.WriteString("] Also unlock with fingerprint (f toggles)\n")
	}

	if m.saving {
		b.WriteString("\n[Saving...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("SET UP UNLOCK", strings.TrimRight(b.String(), "\n"), "enter: save │ esc: skip")
}

func (m *PinSetupModel) cmdSave(pin string) tea.Cmd {
	ctx := m.ctx
	session := m.session
	biometric := m.biometric

	return func() tea.Msg {
		if err := session.SetPIN(ctx, pin); err != nil {
			return pinSavedMsg{err: err}
		}
		return pinSavedMsg{err: session.SetBiometricEnabled(ctx, biometric)}
	}
}

func (m *PinSetupModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *PinSetupModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
