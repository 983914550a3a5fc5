package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atomwalk/hrm-client/internal/service"
	"github.com/atomwalk/hrm-client/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type serialStage int

const (
	serialStagePickItem serialStage = iota
	serialStageCollect
)

// serialModel registers brand-new stock: pick the inventory item, enter the
// manufacturer batch, then scan the serial number of every unit. The declared
// quantity is always the number of scanned serials.
type serialModel struct {
	ctx        context.Context
	activities service.ActivityService

	stage   serialStage
	loading bool
	items   []models.InventoryItem
	idx     int

	item        models.InventoryItem
	bins        []models.BinLocation
	batchInput  textinput.Model
	serialInput textinput.Model
	focus       int
	serials     []string

	saving bool
	status string
	errMsg string
}

func newSerialModel(ctx context.Context, activities service.ActivityService) *serialModel {
	batchInput := newPromptInput("manufacturer batch", 64, 30)
	serialInput := newPromptInput("scan a serial number...", 128, 44)

	return &serialModel{
		ctx:         ctx,
		activities:  activities,
		batchInput:  batchInput,
		serialInput: serialInput,
	}
}

func (m *serialModel) Init() tea.Cmd {
	m.stage = serialStagePickItem
	m.loading = true
	m.idx = 0
	m.serials = nil
	m.batchInput.SetValue("")
	m.serialInput.SetValue("")
	m.status = ""
	m.errMsg = ""
	return m.cmdLoadItems()
}

func (m *serialModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case serialItemsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.items = msg.items
		return m, nil
	case binsLoadedMsg:
		// Bin lookup is a hint only; a failure never blocks the intake.
		if msg.err == nil {
			m.bins = msg.bins
		}
		return m, nil
	case serialSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("%d units registered", len(m.serials))
		m.serials = nil
		m.serialInput.SetValue("")
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocusedInput(msg)
	}

	if m.stage == serialStagePickItem {
		return m.updatePickItem(keyMsg)
	}
	return m.updateCollect(keyMsg)
}

func (m *serialModel) updatePickItem(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Page: "home"} }
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		if m.loading || len(m.items) == 0 {
			return m, nil
		}
		m.item = m.items[m.idx]
		m.bins = nil
		m.stage = serialStageCollect
		m.focus = 0
		m.batchInput.Focus()
		m.serialInput.Blur()
		return m, tea.Batch(textinput.Blink, m.cmdLoadBins())
	}
	return m, nil
}

func (m *serialModel) updateCollect(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.stage = serialStagePickItem
		m.status = ""
		m.errMsg = ""
		return m, nil
	case "tab", "shift+tab":
		if m.focus == 0 {
			m.focus = 1
			m.batchInput.Blur()
			m.serialInput.Focus()
		} else {
			m.focus = 0
			m.serialInput.Blur()
			m.batchInput.Focus()
		}
		return m, nil
	case "enter":
		if m.focus == 0 {
			m.focus = 1
			m.batchInput.Blur()
			m.serialInput.Focus()
			return m, nil
		}
		serial := strings.TrimSpace(m.serialInput.Value())
		if serial == "" {
			return m, nil
		}
		m.serials = append(m.serials, serial)
		m.serialInput.SetValue("")
		m.status = ""
		return m, nil
	case "ctrl+d":
		if len(m.serials) > 0 {
			m.serials = m.serials[:len(m.serials)-1]
		}
		return m, nil
	case "ctrl+s":
		if m.saving || len(m.serials) == 0 {
			return m, nil
		}
		m.saving = true
		m.status = ""
		m.errMsg = ""
		return m, m.cmdSave()
	}

	return m.updateFocusedInput(keyMsg)
}

func (m *serialModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.stage != serialStageCollect {
		return m, nil
	}
	var cmd tea.Cmd
	if m.focus == 0 {
		m.batchInput, cmd = m.batchInput.Update(msg)
	} else {
		m.serialInput, cmd = m.serialInput.Update(msg)
	}
	return m, cmd
}

func (m *serialModel) View() string {
	if m.stage == serialStagePickItem {
		return m.viewPickItem()
	}
	return m.viewCollect()
}

func (m *serialModel) viewPickItem() string {
	if m.loading {
		return renderPage("SERIAL INTAKE", "Loading inventory items...", "esc: back")
	}

	var b strings.Builder
	if len(m.items) == 0 {
		b.WriteString("No inventory items.")
	}
	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-8d │ %s\n", cursor, item.ID, fitText(item.Name, 40)))
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
	}

	return renderPage("SERIAL INTAKE / ITEM", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move │ esc: back")
}

func (m *serialModel) viewCollect() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Item    │ %s\n", m.item.Name))
	if len(m.bins) > 0 {
		names := make([]string, 0, len(m.bins))
		for _, bin := range m.bins {
			names = append(names, bin.Name)
		}
		b.WriteString(fmt.Sprintf("Bins    │ %s\n", fitText(strings.Join(names, ", "), 44)))
	}
	b.WriteString("Batch   │ [")
	b.WriteString(m.batchInput.View())
	b.WriteString("]\n")
	b.WriteString("Serial  │ [")
	b.WriteString(m.serialInput.View())
	b.WriteString("]\n\n")

	b.WriteString(fmt.Sprintf("Scanned units: %d\n", len(m.serials)))
	for i, serial := range m.serials {
		b.WriteString(fmt.Sprintf("  %2d. %s\n", i+1, serial))
	}

	if m.saving {
		b.WriteString("\n[Registering...]")
	}
	if m.status != "" {
		b.WriteString("\nOK: ")
		b.WriteString(m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
	}

	return renderPage("SERIAL INTAKE / UNITS", strings.TrimRight(b.String(), "\n"),
		"enter: add serial │ ctrl+s: register │ ctrl+d: drop last │ tab: field │ esc: back")
}

func (m *serialModel) cmdLoadItems() tea.Cmd {
	ctx := m.ctx
	activities := m.activities

	return func() tea.Msg {
		items, err := activities.ListInventoryItems(ctx)
		return serialItemsLoadedMsg{items: items, err: err}
	}
}

func (m *serialModel) cmdLoadBins() tea.Cmd {
	ctx := m.ctx
	activities := m.activities
	itemID := strconv.FormatInt(m.item.ID, 10)

	return func() tea.Msg {
		bins, err := activities.ListBinLocations(ctx, itemID)
		return binsLoadedMsg{bins: bins, err: err}
	}
}

func (m *serialModel) cmdSave() tea.Cmd {
	ctx := m.ctx
	activities := m.activities

	intake := models.SerialIntake{
		ItemID:         strconv.FormatInt(m.item.ID, 10),
		InQuantity:     strconv.Itoa(len(m.serials)),
		MfgBatchNumber: strings.TrimSpace(m.batchInput.Value()),
		SerialNumbers:  append([]string(nil), m.serials...),
	}

	return func() tea.Msg {
		return serialSavedMsg{err: activities.RegisterSerialIntake(ctx, intake)}
	}
}
