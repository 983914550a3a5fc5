// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Atomwalk Technologies

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atomwalk/hrm-client/internal/service"
	"github.com/atomwalk/hrm-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// linesModel shows the line items of one activity: the quality checks and
// the allocated inventory. Consumption quantities can be entered per
// inventory line and committed in one request; the commit is rejected
// locally when a line would exceed its allocation.
type linesModel struct {
	ctx        context.Context
	activities service.ActivityService

	activity models.Activity
	loading  bool
	showInv  bool
	qc       []models.QCLine
	inv      []models.InventoryLine
	entered  map[int]string
	idx      int

	editing    bool
	editInput  textinput.Model
	committing bool
	status     string
	errMsg     string
}

func newLinesModel(ctx context.Context, activities service.ActivityService) *linesModel {
	editInput := textinput.New()
	editInput.Placeholder = "quantity"
	editInput.CharLimit = 16
	editInput.Width = 12

	return &linesModel{
		ctx:        ctx,
		activities: activities,
		editInput:  editInput,
	}
}

func (m *linesModel) Init() tea.Cmd {
	return nil
}

func (m *linesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case linesRequestMsg:
		m.activity = msg.activity
		m.loading = true
		m.showInv = false
		m.entered = map[int]string{}
		m.idx = 0
		m.editing = false
		m.status = ""
		m.errMsg = ""
		return m, m.cmdLoad()
	case linesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.qc = msg.qc
		m.inv = msg.inv
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "Item number copied"
		return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case commitDoneMsg:
		m.committing = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrConsumptionExceedsAllocation) {
				m.errMsg = "A line exceeds its allocated quantity"
			} else {
				m.errMsg = humanizeServerUnavailableError(msg.err)
			}
			return m, nil
		}
		m.errMsg = ""
		m.status = "Consumption committed"
		m.entered = map[int]string{}
		m.loading = true
		return m, m.cmdLoad()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.editing {
			var cmd tea.Cmd
			m.editInput, cmd = m.editInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.editing {
		return m.updateEditing(keyMsg)
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Page: "activities"} }
	case "tab":
		m.showInv = !m.showInv
		m.idx = 0
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < m.lineCount()-1 {
			m.idx++
		}
	case "enter":
		if m.showInv && m.idx < len(m.inv) {
			m.editing = true
			m.editInput.SetValue(m.entered[m.idx])
			m.editInput.Focus()
			return m, textinput.Blink
		}
	case "s":
		if !m.showInv || m.committing || len(m.entered) == 0 {
			return m, nil
		}
		m.committing = true
		m.status = ""
		return m, m.cmdCommit()
	case "c":
		if !m.showInv || m.idx >= len(m.inv) {
			return m, nil
		}
		itemNumber := m.inv[m.idx].ItemNumber
		return m, func() tea.Msg {
			if err := clipboard.WriteAll(itemNumber); err != nil {
				return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
			}
			return copiedMsg{}
		}
	}

	return m, nil
}

func (m *linesModel) updateEditing(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.editing = false
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.editInput.Value())
		if value == "" {
			delete(m.entered, m.idx)
		} else {
			m.entered[m.idx] = service.SanitizeQuantity(value)
		}
		m.editing = false
		return m, nil
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(keyMsg)
	return m, cmd
}

func (m *linesModel) View() string {
	title := "LINE ITEMS / " + m.activity.ActivityID
	if m.loading {
		return renderPage(title, "Loading...", "esc: back")
	}

	var b strings.Builder
	if m.showInv {
		m.viewInventory(&b)
	} else {
		m.viewQC(&b)
	}

	if m.status != "" {
		b.WriteString("\nOK: ")
		b.WriteString(m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
	}

	hotKeys := "tab: inventory │ esc: back"
	if m.showInv {
		hotKeys = "enter: set qty │ s: commit │ c: copy item │ tab: quality checks │ esc: back"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *linesModel) viewQC(b *strings.Builder) {
	b.WriteString("Quality checks\n\n")
	if len(m.qc) == 0 {
		b.WriteString("No quality checks.")
		return
	}
	for i, line := range m.qc {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-25s │ expected %-10s │ actual %s\n",
			cursor, fitText(line.QCName, 25), valueOrDash(line.QCValue), valueOrDash(line.QCActual)))
	}
}

func (m *linesModel) viewInventory(b *strings.Builder) {
	b.WriteString("Allocated inventory\n\n")
	if len(m.inv) == 0 {
		b.WriteString("No inventory lines.")
		return
	}
	for i, line := range m.inv {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		current := m.entered[i]
		if m.editing && i == m.idx {
			current = m.editInput.View()
		}
		b.WriteString(fmt.Sprintf("%s %-12s │ %-20s │ alloc %-8s │ used %-8s │ now [%s]\n",
			cursor, line.ItemNumber, fitText(line.ItemName, 20),
			valueOrDash(line.AllocatedQty), valueOrDash(line.AlreadyConsumedQty), current))
	}
}

func (m *linesModel) lineCount() int {
	if m.showInv {
		return len(m.inv)
	}
	return len(m.qc)
}

func (m *linesModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	activities := m.activities
	activityID := m.activity.ActivityID

	return func() tea.Msg {
		qc, err := activities.GetQCLines(ctx, activityID, service.CallModeQCData)
		if err != nil {
			return linesLoadedMsg{err: err}
		}
		inv, err := activities.GetInventoryLines(ctx, activityID, service.CallModeInventoryIn)
		if err != nil {
			return linesLoadedMsg{err: err}
		}
		return linesLoadedMsg{qc: qc, inv: inv}
	}
}

func (m *linesModel) cmdCommit() tea.Cmd {
	ctx := m.ctx
	activities := m.activities

	update := models.ActivityInventoryUpdate{
		ActivityID: m.activity.ActivityID,
		CallMode:   service.CallModeInventoryIn,
	}
	for i, qty := range m.entered {
		if i >= len(m.inv) || qty == "" {
			continue
		}
		update.ItemList = append(update.ItemList, models.ItemQuantityEntry{
			ItemNumber:   m.inv[i].ItemNumber,
			CurrQuantity: qty,
		})
	}

	return func() tea.Msg {
		return commitDoneMsg{err: activities.CommitInventory(ctx, update)}
	}
}
