package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// confirmData describes a yes/no dialog. Empty fields fall back to the
// shared defaults.
type confirmData struct {
	title       string
	message     string
	confirmText string
	cancelText  string
}

// confirmRequestMsg asks the app to open the confirm overlay and run
// onConfirm if the user accepts.
type confirmRequestMsg struct {
	data      confirmData
	onConfirm tea.Cmd
}

func confirmCmd(data confirmData, onConfirm tea.Cmd) tea.Cmd {
	return func() tea.Msg {
		return confirmRequestMsg{data: data, onConfirm: onConfirm}
	}
}

// confirmModel is the modal overlay. It captures all keys while open.
type confirmModel struct {
	data      confirmData
	onConfirm tea.Cmd
	open      bool
	cursor    int // 0 = confirm, 1 = cancel
}

func (m *confirmModel) show(msg confirmRequestMsg) {
	m.data = msg.data
	m.onConfirm = msg.onConfirm
	m.open = true
	m.cursor = 1 // default to the safe choice
}

// Update handles a key while the overlay is open. It returns the
// confirmed command, if any.
func (m *confirmModel) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "right", "h", "l", "tab":
		m.cursor = 1 - m.cursor
	case "y":
		m.open = false
		return m.onConfirm
	case "n", "esc":
		m.open = false
	case "enter":
		m.open = false
		if m.cursor == 0 {
			return m.onConfirm
		}
	}
	return nil
}

func (m *confirmModel) title() string {
	if m.data.title != "" {
		return m.data.title
	}
	return "Confirm"
}

func (m *confirmModel) message() string {
	if m.data.message != "" {
		return m.data.message
	}
	return "Are you sure?"
}

func (m *confirmModel) confirmText() string {
	if m.data.confirmText != "" {
		return m.data.confirmText
	}
	return "Delete"
}

func (m *confirmModel) cancelText() string {
	if m.data.cancelText != "" {
		return m.data.cancelText
	}
	return "Cancel"
}

func (m *confirmModel) View(width, height int) string {
	confirm := " " + m.confirmText() + " "
	cancel := " " + m.cancelText() + " "
	if m.cursor == 0 {
		confirm = selectedRowBg.Render(errorStyle.Render(confirm))
		cancel = dimStyle.Render(cancel)
	} else {
		confirm = errorStyle.Render(confirm)
		cancel = selectedRowBg.Render(selectedStyle.Render(cancel))
	}

	var b strings.Builder
	b.WriteString(selectedStyle.Render(m.title()) + "\n\n")
	b.WriteString(normalStyle.Render(m.message()) + "\n\n")
	b.WriteString(confirm + "   " + cancel)

	box := confirmBoxStyle.Render(b.String())
	return lipgloss.Place(max(width, 1), max(height, 1), lipgloss.Center, lipgloss.Center, box)
}
