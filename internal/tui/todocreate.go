package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/nav"
	"github.com/taskdeck/taskdeck/pkg/client"
	"github.com/taskdeck/taskdeck/pkg/domain"
)

type todoCreateModel struct {
	client    *client.Client
	auth      *auth.Gateway
	form      itemForm
	submitted bool
	statusMsg string
}

type todoCreatedMsg struct {
	todo *domain.TodoItem
	err  error
}

func newTodoCreateModel(c *client.Client, g *auth.Gateway) todoCreateModel {
	return todoCreateModel{client: c, auth: g}
}

func (m todoCreateModel) Init() tea.Cmd {
	return nil
}

func (m todoCreateModel) Update(msg tea.Msg) (todoCreateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case todoCreatedMsg:
		m.submitted = false
		if msg.err != nil {
			m.statusMsg = "Error creating todo. Please try again."
			return m, nil
		}
		m.form.reset()
		return m, tea.Batch(
			toastCmd("Todo created successfully!"),
			navCmd(nav.RouteTodos),
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
			return m, navCmd(nav.RouteTodos)
		default:
			m.form.update(msg)
		}
	}
	return m, nil
}

func (m todoCreateModel) submit() (todoCreateModel, tea.Cmd) {
	if !m.form.valid() {
		m.statusMsg = "This field is required"
		m.form.focus = formTitle
		return m, nil
	}

	userID, ok := m.auth.CurrentUserID()
	if !ok {
		return m, navCmd(nav.RouteLogin)
	}

	m.submitted = true
	dto := domain.CreateTodoItem{
		Title:    strings.TrimSpace(m.form.title),
		Detail:   domain.OptionalString(strings.TrimSpace(m.form.detail)),
		Priority: domain.OptionalString(m.form.priority),
	}
	c := m.client
	return m, func() tea.Msg {
		todo, err := c.CreateTodo(context.Background(), userID, dto)
		return todoCreatedMsg{todo: todo, err: err}
	}
}

func (m todoCreateModel) View() string {
	var b strings.Builder

	b.WriteString(" " + sectionStyle.Render("NEW TASK") + "\n\n")
	b.WriteString(m.form.View())

	b.WriteString("\n")
	if m.submitted {
		b.WriteString(" " + dimStyle.Render("creating..."))
	} else if m.statusMsg != "" {
		b.WriteString(" " + errorStyle.Render(m.statusMsg))
	}

	return b.String()
}
