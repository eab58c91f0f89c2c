package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskdeck/taskdeck/internal/nav"
	"github.com/taskdeck/taskdeck/pkg/client"
	"github.com/taskdeck/taskdeck/pkg/domain"
)

type activityCreateModel struct {
	client    *client.Client
	todoID    int
	form      itemForm
	submitted bool
	statusMsg string
}

type activityCreatedMsg struct {
	activity *domain.Activity
	err      error
}

func newActivityCreateModel(c *client.Client, todoID int) activityCreateModel {
	return activityCreateModel{client: c, todoID: todoID}
}

func (m activityCreateModel) Init() tea.Cmd {
	return nil
}

func (m activityCreateModel) Update(msg tea.Msg) (activityCreateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case activityCreatedMsg:
		m.submitted = false
		if msg.err != nil {
			m.statusMsg = "Error creating activity. Please try again."
			return m, nil
		}
		m.form.reset()
		return m, tea.Batch(
			toastCmd("Activity created successfully!"),
			navCmd(nav.RouteActivities, m.todoID),
		)

	case tea.KeyMsg:
		if m.submitted {
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

func (m activityCreateModel) submit() (activityCreateModel, tea.Cmd) {
	if !m.form.valid() {
		m.statusMsg = "This field is required"
		m.form.focus = formTitle
		return m, nil
	}

	m.submitted = true
	dto := domain.CreateActivity{
		TodoID:   m.todoID,
		Title:    strings.TrimSpace(m.form.title),
		Detail:   domain.OptionalString(strings.TrimSpace(m.form.detail)),
		Priority: domain.OptionalString(m.form.priority),
	}
	c := m.client
	return m, func() tea.Msg {
		activity, err := c.CreateActivity(context.Background(), dto)
		return activityCreatedMsg{activity: activity, err: err}
	}
}

func (m activityCreateModel) View() string {
	var b strings.Builder

	b.WriteString(" " + sectionStyle.Render("NEW ACTIVITY") + "\n\n")
	b.WriteString(m.form.View())

	b.WriteString("\n")
	if m.submitted {
		b.WriteString(" " + dimStyle.Render("creating..."))
	} else if m.statusMsg != "" {
		b.WriteString(" " + errorStyle.Render(m.statusMsg))
	}

	return b.String()
}
