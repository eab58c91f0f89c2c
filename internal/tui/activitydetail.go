package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskdeck/taskdeck/internal/nav"
	"github.com/taskdeck/taskdeck/pkg/client"
	"github.com/taskdeck/taskdeck/pkg/domain"
)

type activityDetailModel struct {
	client     *client.Client
	todoID     int
	activityID int
	form       itemForm
	activity   *domain.Activity
	loading    bool
	submitted  bool
	statusMsg  string
}

type activityDetailLoadedMsg struct {
	activity *domain.Activity
	err      error
}

type activityUpdatedMsg struct{ err error }

func newActivityDetailModel(c *client.Client, todoID, activityID int) activityDetailModel {
	return activityDetailModel{
		client:     c,
		todoID:     todoID,
		activityID: activityID,
		loading:    true,
		form:       itemForm{showCompleted: true},
	}
}

func (m activityDetailModel) Init() tea.Cmd {
	c := m.client
	id := m.activityID
	return func() tea.Msg {
		activity, err := c.GetActivity(context.Background(), id)
		return activityDetailLoadedMsg{activity: activity, err: err}
	}
}

func (m activityDetailModel) Update(msg tea.Msg) (activityDetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case activityDetailLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m, tea.Batch(
				toastCmd("Error loading activity. Please try again."),
				navCmd(nav.RouteActivities, m.todoID),
			)
		}
		m.activity = msg.activity
		m.form.fill(msg.activity.Title, msg.activity.Detail, msg.activity.Priority, msg.activity.IsCompleted)
		return m, nil

	case activityUpdatedMsg:
		m.submitted = false
		if msg.err != nil {
			m.statusMsg = "Error updating activity. Please try again."
			return m, nil
		}
		return m, tea.Batch(
			toastCmd("Activity updated successfully!"),
			navCmd(nav.RouteActivities, m.todoID),
		)

	case tea.KeyMsg:
		if m.loading || m.submitted {
			return m, nil
		}
		m.statusMsg = ""
		switch msg.String() {
		case "ctrl+s":
			return m.submit()
		case "esc":
			return m, navCmd(nav.RouteActivities, m.todoID)
		default:
			m.form.update(msg)
		}
	}
	return m, nil
}

func (m activityDetailModel) submit() (activityDetailModel, tea.Cmd) {
	if !m.form.valid() {
		m.statusMsg = "This field is required"
		m.form.focus = formTitle
		return m, nil
	}

	m.submitted = true
	dto := domain.UpdateActivity{
		Title:       strings.TrimSpace(m.form.title),
		IsCompleted: m.form.completed,
		Detail:      domain.OptionalString(strings.TrimSpace(m.form.detail)),
		Priority:    domain.OptionalString(m.form.priority),
	}
	c := m.client
	id := m.activityID
	return m, func() tea.Msg {
		err := c.UpdateActivity(context.Background(), id, dto)
		return activityUpdatedMsg{err: err}
	}
}

func (m activityDetailModel) View() string {
	var b strings.Builder

	b.WriteString(" " + sectionStyle.Render("EDIT ACTIVITY") + "\n")

	if m.loading {
		b.WriteString("\n " + dimStyle.Render("loading..."))
		return b.String()
	}

	if m.activity != nil {
		b.WriteString(" " + metaStyle.Render(fmt.Sprintf("created %s", formatDate(m.activity.CreatedDate))) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.form.View())

	b.WriteString("\n")
	if m.submitted {
		b.WriteString(" " + dimStyle.Render("saving..."))
	} else if m.statusMsg != "" {
		b.WriteString(" " + errorStyle.Render(m.statusMsg))
	}

	return b.String()
}
