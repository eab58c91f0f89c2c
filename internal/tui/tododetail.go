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

type todoDetailModel struct {
	client    *client.Client
	todoID    int
	form      itemForm
	todo      *domain.TodoItem
	loading   bool
	submitted bool
	statusMsg string
}

type todoDetailLoadedMsg struct {
	todo *domain.TodoItem
	err  error
}

type todoUpdatedMsg struct{ err error }

func newTodoDetailModel(c *client.Client, todoID int) todoDetailModel {
	return todoDetailModel{
		client:  c,
		todoID:  todoID,
		loading: true,
		form:    itemForm{showCompleted: true},
	}
}

func (m todoDetailModel) Init() tea.Cmd {
	c := m.client
	id := m.todoID
	return func() tea.Msg {
		todo, err := c.GetTodo(context.Background(), id)
		return todoDetailLoadedMsg{todo: todo, err: err}
	}
}

func (m todoDetailModel) Update(msg tea.Msg) (todoDetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case todoDetailLoadedMsg:
		m.loading = false
		if msg.err != nil {
			// Same recovery as the web client: complain and go back.
			return m, tea.Batch(
				toastCmd("Error loading todo. Please try again."),
				navCmd(nav.RouteTodos),
			)
		}
		m.todo = msg.todo
		m.form.fill(msg.todo.Title, msg.todo.Detail, msg.todo.Priority, msg.todo.IsCompleted)
		return m, nil

	case todoUpdatedMsg:
		m.submitted = false
		if msg.err != nil {
			m.statusMsg = "Error updating todo. Please try again."
			return m, nil
		}
		return m, tea.Batch(
			toastCmd("Todo updated successfully!"),
			navCmd(nav.RouteTodos),
		)

	case tea.KeyMsg:
		if m.loading || m.submitted {
			return m, nil
		}
		m.statusMsg = ""
		switch msg.String() {
		case "ctrl+s":
			return m.submit()
		case "ctrl+a":
			return m, navCmd(nav.RouteActivities, m.todoID)
		case "esc":
			return m, navCmd(nav.RouteTodos)
		default:
			m.form.update(msg)
		}
	}
	return m, nil
}

func (m todoDetailModel) submit() (todoDetailModel, tea.Cmd) {
	if !m.form.valid() {
		m.statusMsg = "This field is required"
		m.form.focus = formTitle
		return m, nil
	}

	m.submitted = true
	dto := domain.UpdateTodoItem{
		Title:       strings.TrimSpace(m.form.title),
		IsCompleted: m.form.completed,
		Detail:      domain.OptionalString(strings.TrimSpace(m.form.detail)),
		Priority:    domain.OptionalString(m.form.priority),
	}
	c := m.client
	id := m.todoID
	return m, func() tea.Msg {
		err := c.UpdateTodo(context.Background(), id, dto)
		return todoUpdatedMsg{err: err}
	}
}

func (m todoDetailModel) View() string {
	var b strings.Builder

	b.WriteString(" " + sectionStyle.Render("EDIT TASK") + "\n")

	if m.loading {
		b.WriteString("\n " + dimStyle.Render("loading..."))
		return b.String()
	}

	if m.todo != nil {
		meta := fmt.Sprintf("created %s · %d of %d activities done",
			formatDate(m.todo.CreatedDate), m.todo.CompletedActivityCount, m.todo.ActivityCount)
		b.WriteString(" " + metaStyle.Render(meta) + "\n")
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
