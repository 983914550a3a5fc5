// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Atomwalk Technologies

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atomwalk/hrm-client/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// intakeModel drives the scan-driven intake loop. The scan prompt is fed by
// the USB barcode scanner, which types the decoded payload and terminates it
// with enter. Each screen mirrors one workflow state: scanning, the
// incomplete-scan notice, the rescan confirmation, the quantity form, and
// the submitted acknowledgement.
type intakeModel struct {
	ctx      context.Context
	workflow service.IntakeWorkflow

	scanInput    textinput.Model
	qtyInput     textinput.Model
	remarksInput textinput.Model
	formFocus    int
	busy         bool
	status       string
	errMsg       string
}

func newIntakeModel(ctx context.Context, workflow service.IntakeWorkflow) *intakeModel {
	scanInput := newPromptInput("scan a code...", 256, 44)
	qtyInput := newPromptInput("quantity", 16, 12)
	remarksInput := newPromptInput("remarks", 128, 44)

	return &intakeModel{
		ctx:          ctx,
		workflow:     workflow,
		scanInput:    scanInput,
		qtyInput:     qtyInput,
		remarksInput: remarksInput,
	}
}

func (m *intakeModel) Init() tea.Cmd {
	m.workflow.OpenScanner()
	m.status = ""
	m.errMsg = ""
	m.scanInput.SetValue("")
	m.scanInput.Focus()
	return textinput.Blink
}

// newPromptInput is the shared text-input factory of the intake pages.
func newPromptInput(placeholder string, charLimit, width int) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = charLimit
	input.Width = width
	return input
}

func (m *intakeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case scanHandledMsg:
		m.busy = false
		switch msg.state {
		case service.IntakeScanIncomplete:
			m.errMsg = "The code is missing the item or the batch number"
		case service.IntakeConfirmRescan:
			m.errMsg = ""
		case service.IntakeFormReady:
			m.openForm()
		default:
			if msg.err != nil {
				m.errMsg = humanizeServerUnavailableError(msg.err)
			}
			m.workflow.OpenScanner()
			m.scanInput.Focus()
		}
		return m, nil
	case submitDoneMsg:
		m.busy = false
		if msg.state == service.IntakeSubmitted {
			m.status = "Stock movement recorded"
			m.errMsg = ""
			return m, nil
		}
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
		} else {
			m.errMsg = ""
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocusedInput(msg)
	}

	switch m.workflow.State() {
	case service.IntakeScanning:
		return m.updateScanning(keyMsg)
	case service.IntakeScanIncomplete:
		return m.updateScanIncomplete(keyMsg)
	case service.IntakeConfirmRescan:
		return m.updateConfirmRescan(keyMsg)
	case service.IntakeFormReady:
		return m.updateForm(keyMsg)
	case service.IntakeSubmitted:
		return m.updateSubmitted(keyMsg)
	}

	return m, nil
}

func (m *intakeModel) updateScanning(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.workflow.Cancel()
		return m, func() tea.Msg { return NavigateTo{Page: "home"} }
	case "enter":
		if m.busy {
			return m, nil
		}
		raw := strings.TrimSpace(m.scanInput.Value())
		if raw == "" {
			return m, nil
		}
		m.scanInput.SetValue("")
		m.errMsg = ""
		m.busy = true
		return m, m.cmdHandleScan(raw)
	}

	var cmd tea.Cmd
	m.scanInput, cmd = m.scanInput.Update(keyMsg)
	return m, cmd
}

func (m *intakeModel) updateScanIncomplete(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "r", "enter":
		m.workflow.Rescan()
		m.errMsg = ""
		m.scanInput.Focus()
		return m, textinput.Blink
	case "esc":
		m.workflow.Cancel()
		return m, func() tea.Msg { return NavigateTo{Page: "home"} }
	}
	return m, nil
}

func (m *intakeModel) updateConfirmRescan(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "y":
		m.workflow.ConfirmRescan()
		m.openForm()
		return m, textinput.Blink
	case "n", "esc":
		m.workflow.CancelRescan()
		m.workflow.OpenScanner()
		m.scanInput.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m *intakeModel) updateForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.workflow.Cancel()
		return m, func() tea.Msg { return NavigateTo{Page: "home"} }
	case "tab", "shift+tab":
		if m.formFocus == 0 {
			m.formFocus = 1
			m.qtyInput.Blur()
			m.remarksInput.Focus()
		} else {
			m.formFocus = 0
			m.remarksInput.Blur()
			m.qtyInput.Focus()
		}
		return m, nil
	case "enter":
		if m.busy {
			return m, nil
		}
		m.workflow.SetQuantity(m.qtyInput.Value())
		m.workflow.SetRemarks(strings.TrimSpace(m.remarksInput.Value()))
		m.errMsg = ""
		m.busy = true
		return m, m.cmdSubmit()
	}

	var cmd tea.Cmd
	if m.formFocus == 0 {
		m.qtyInput, cmd = m.qtyInput.Update(keyMsg)
	} else {
		m.remarksInput, cmd = m.remarksInput.Update(keyMsg)
	}
	return m, cmd
}

func (m *intakeModel) updateSubmitted(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "enter":
		m.workflow.Acknowledge()
		m.status = ""
		m.scanInput.SetValue("")
		m.scanInput.Focus()
		return m, textinput.Blink
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Page: "home"} }
	}
	return m, nil
}

func (m *intakeModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.workflow.State() {
	case service.IntakeScanning:
		m.scanInput, cmd = m.scanInput.Update(msg)
	case service.IntakeFormReady:
		if m.formFocus == 0 {
			m.qtyInput, cmd = m.qtyInput.Update(msg)
		} else {
			m.remarksInput, cmd = m.remarksInput.Update(msg)
		}
	}
	return m, cmd
}

func (m *intakeModel) View() string {
	switch m.workflow.State() {
	case service.IntakeScanning:
		return m.viewScanning()
	case service.IntakeQuantityLookup:
		return renderPage("INTAKE", "Looking up the current quantity...", "")
	case service.IntakeScanIncomplete:
		return renderPage("INTAKE",
			"The scanned code could not be used:\n"+errorStyle.Render(m.errMsg),
			"r/enter: scan again │ esc: cancel")
	case service.IntakeConfirmRescan:
		return m.viewConfirmRescan()
	case service.IntakeFormReady:
		return m.viewForm()
	case service.IntakeSubmitting:
		return renderPage("INTAKE", "Submitting...", "")
	case service.IntakeSubmitted:
		return renderPage("INTAKE", okStyle.Render("OK: "+m.status), "enter: scan next │ esc: home")
	}
	return renderPage("INTAKE", "", "esc: back")
}

func (m *intakeModel) viewScanning() string {
	var b strings.Builder
	b.WriteString("Point the scanner at the item label.\n")
	b.WriteString("The payload appears below and submits itself.\n\n")
	b.WriteString("Scan │ [")
	b.WriteString(m.scanInput.View())
	b.WriteString("]\n")

	if m.busy {
		b.WriteString("\n[Working...]")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
	}

	return renderPage("INTAKE / SCAN", strings.TrimRight(b.String(), "\n"), "enter: accept │ esc: cancel")
}

func (m *intakeModel) viewConfirmRescan() string {
	form := m.workflow.Form()

	var b strings.Builder
	b.WriteString(titleStyle.Render("ALREADY SCANNED"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Item %s / batch %s was scanned on %s.\n",
		form.Record.ItemNumber, form.Record.BatchNumber, valueOrDash(form.Record.ScanDate)))
	b.WriteString("Record it again?\n\n")
	b.WriteString(helpStyle.Render("y: yes │ n/esc: no"))

	return appStyle.Render(overlayBoxStyle.Render(b.String()))
}

func (m *intakeModel) viewForm() string {
	form := m.workflow.Form()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Item   │ %s\n", form.Record.ItemNumber))
	b.WriteString(fmt.Sprintf("Batch  │ %s\n", form.Record.BatchNumber))
	b.WriteString(fmt.Sprintf("Bin    │ %s\n", valueOrDash(form.Record.BinLocationID)))
	b.WriteString("\n")
	b.WriteString("Qty     │ [")
	b.WriteString(m.qtyInput.View())
	b.WriteString("]\n")
	b.WriteString("Remarks │ [")
	b.WriteString(m.remarksInput.View())
	b.WriteString("]\n")

	if len(form.FieldErrors) > 0 {
		b.WriteString("\n")
		for field, problem := range form.FieldErrors {
			b.WriteString(fmt.Sprintf("%s: %s\n", field, problem))
		}
	}

	if m.busy {
		b.WriteString("\n[Submitting...]")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
	}

	return renderPage("INTAKE / CONFIRM", strings.TrimRight(b.String(), "\n"), "enter: submit │ tab: next field │ esc: cancel")
}

func (m *intakeModel) openForm() {
	m.errMsg = ""
	m.formFocus = 0
	m.qtyInput.SetValue(m.workflow.Form().Record.ScanQuantity)
	m.remarksInput.SetValue("")
	m.remarksInput.Blur()
	m.qtyInput.Focus()
}

func (m *intakeModel) cmdHandleScan(raw string) tea.Cmd {
	ctx := m.ctx
	workflow := m.workflow

	return func() tea.Msg {
		state, err := workflow.HandleScan(ctx, raw)
		return scanHandledMsg{state: state, err: err}
	}
}

func (m *intakeModel) cmdSubmit() tea.Cmd {
	ctx := m.ctx
	workflow := m.workflow

	return func() tea.Msg {
		state, err := workflow.Submit(ctx)
		return submitDoneMsg{state: state, err: err}
	}
}
