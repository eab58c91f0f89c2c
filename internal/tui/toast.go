package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskdeck/taskdeck/pkg/client"
)

// NotifyMsg carries a notification into the program. The interceptor
// sends these from its hooks; views send their own contextual ones.
type NotifyMsg struct {
	Notification client.Notification
}

// toastExpiredMsg dismisses a toast after its duration.
type toastExpiredMsg struct {
	seq int
}

// toastModel is the transient notification bar. Only the most recent
// notification is shown; ordering across concurrent failures is not
// guaranteed and not needed.
type toastModel struct {
	message string
	label   string
	seq     int
}

func (t *toastModel) show(n client.Notification) tea.Cmd {
	t.seq++
	t.message = n.Message
	t.label = n.DismissLabel
	seq := t.seq
	d := n.Duration
	if d <= 0 {
		d = 5 * time.Second
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (t *toastModel) expire(msg toastExpiredMsg) {
	if msg.seq == t.seq {
		t.message = ""
	}
}

func (t *toastModel) dismiss() {
	t.message = ""
}

func (t *toastModel) visible() bool {
	return t.message != ""
}

// View renders the toast line, or "" when nothing is showing.
func (t *toastModel) View(width int) string {
	if t.message == "" {
		return ""
	}
	label := t.label
	if label == "" {
		label = "Close"
	}
	line := " " + t.message + "  [" + label + ": esc] "
	return toastStyle.Render(truncStr(line, max(width, 10)))
}

// toastCmd builds a fire-and-forget success notification from a view.
func toastCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return NotifyMsg{Notification: client.Notification{
			Message:      message,
			DismissLabel: "Close",
			Duration:     3 * time.Second,
			Placement:    "top",
		}}
	}
}
