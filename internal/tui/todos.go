package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/nav"
	"github.com/taskdeck/taskdeck/pkg/client"
	"github.com/taskdeck/taskdeck/pkg/domain"
)

type todosModel struct {
	client    *client.Client
	auth      *auth.Gateway
	todos     []domain.TodoItem
	cursor    int
	loading   bool
	err       error
	statusMsg string
	width     int
	height    int
}

type todosLoadedMsg struct {
	todos []domain.TodoItem
	err   error
}

type todoToggledMsg struct{ err error }
type todoDeletedMsg struct{ err error }
type copyResultMsg struct{ err error }

func newTodosModel(c *client.Client, g *auth.Gateway) todosModel {
	return todosModel{client: c, auth: g, loading: true}
}

func (m todosModel) load() tea.Cmd {
	c := m.client
	g := m.auth
	return func() tea.Msg {
		userID, ok := g.CurrentUserID()
		if !ok {
			return todosLoadedMsg{err: fmt.Errorf("no session")}
		}
		todos, err := c.ListTodos(context.Background(), userID)
		return todosLoadedMsg{todos: todos, err: err}
	}
}

func (m todosModel) Init() tea.Cmd {
	return m.load()
}

func (m todosModel) Update(msg tea.Msg) (todosModel, tea.Cmd) {
	switch msg := msg.(type) {
	case todosLoadedMsg:
		m.loading = false
		m.todos = msg.todos
		m.err = msg.err
		if m.cursor >= len(m.todos) {
			m.cursor = 0
		}
		return m, nil

	case todoToggledMsg:
		if msg.err != nil {
			m.statusMsg = "Error toggling todo. Please try again."
			return m, nil
		}
		// The server owns the counters; refetch instead of patching in place.
		m.loading = true
		return m, m.load()

	case todoDeletedMsg:
		if msg.err != nil {
			m.statusMsg = "Error deleting todo. Please try again."
			return m, nil
		}
		m.statusMsg = "Todo deleted"
		m.loading = true
		return m, m.load()

	case copyResultMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			m.statusMsg = "copied!"
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m todosModel) updateKeys(msg tea.KeyMsg) (todosModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.todos)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		if m.cursor < len(m.todos) {
			return m, navCmd(nav.RouteTodoDetail, m.todos[m.cursor].TodoID)
		}
	case "a":
		if m.cursor < len(m.todos) {
			return m, navCmd(nav.RouteActivities, m.todos[m.cursor].TodoID)
		}
	case "n":
		return m, navCmd(nav.RouteTodoCreate)
	case " ", "x":
		if m.cursor < len(m.todos) {
			todo := m.todos[m.cursor]
			c := m.client
			return m, func() tea.Msg {
				err := c.ToggleTodo(context.Background(), todo.TodoID)
				return todoToggledMsg{err: err}
			}
		}
	case "d":
		if m.cursor < len(m.todos) {
			todo := m.todos[m.cursor]
			c := m.client
			return m, confirmCmd(confirmData{
				title:   "Delete Todo",
				message: fmt.Sprintf("Are you sure you want to delete %q and all its activities?", truncStr(todo.Title, 40)),
			}, func() tea.Msg {
				err := c.DeleteTodo(context.Background(), todo.TodoID)
				return todoDeletedMsg{err: err}
			})
		}
	case "c":
		if m.cursor < len(m.todos) {
			todo := m.todos[m.cursor]
			text := todo.Title
			if detail := domain.StringOrEmpty(todo.Detail); detail != "" {
				text += "\n" + detail
			}
			return m, func() tea.Msg {
				err := clipboard.WriteAll(text)
				return copyResultMsg{err: err}
			}
		}
	case "r":
		m.loading = true
		return m, m.load()
	}
	return m, nil
}

func (m todosModel) View() string {
	var b strings.Builder

	b.WriteString(" " + sectionStyle.Render("TASKS") + "\n")

	sepW := m.width - 2
	if sepW < 4 {
		sepW = 4
	}
	b.WriteString(" " + metaStyle.Render(strings.Repeat("─", sepW)) + "\n")

	if m.statusMsg != "" {
		b.WriteString(" " + statusStyle.Render(m.statusMsg) + "\n")
	}

	if m.loading {
		b.WriteString(" " + dimStyle.Render("loading..."))
		return b.String()
	}

	if m.err != nil {
		b.WriteString(" " + errorStyle.Render("Error loading todos. Please try again.") + "\n")
		b.WriteString(" " + dimStyle.Render(fmt.Sprintf("%v", m.err)))
		return b.String()
	}

	if len(m.todos) == 0 {
		b.WriteString(" " + dimStyle.Render("no todos yet — press n to create one"))
		return b.String()
	}

	return b.String() + m.viewList()
}

func (m todosModel) viewList() string {
	var b strings.Builder

	viewChrome := 8 // section + separator + detail preview
	available := m.height - viewChrome
	if available < 6 {
		available = 6
	}
	maxVisible := available * 3 / 5
	if maxVisible < 3 {
		maxVisible = 3
	}

	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}

	for i := start; i < len(m.todos) && i < start+maxVisible; i++ {
		todo := m.todos[i]

		cursor := "  "
		titleStyle := dimStyle
		if i == m.cursor {
			cursor = accentStyle.Render("▸") + " "
			titleStyle = normalStyle.Bold(true)
		}

		check := metaStyle.Render("[ ]")
		if todo.IsCompleted {
			check = doneStyle.Render("[x]")
		}

		// Right columns: activities (7), priority (6), date (11)
		acts := metaStyle.Render(fmt.Sprintf("%d/%d ≡", todo.CompletedActivityCount, todo.ActivityCount))
		prio := strings.Repeat(" ", 6)
		if p := domain.StringOrEmpty(todo.Priority); p != "" {
			prio = PriorityStyle(p).Render(fmt.Sprintf("%-6s", truncStr(p, 6)))
		}
		date := metaStyle.Render(fmt.Sprintf("%11s", formatDate(todo.CreatedDate)))

		rightWidth := 7 + 6 + 11 + 3
		titleWidth := m.width - 8 - rightWidth // cursor(2) + check(4) + gaps
		if titleWidth < 10 {
			titleWidth = 10
		}
		title := truncStr(strings.ReplaceAll(todo.Title, "\n", " "), titleWidth)
		if todo.IsCompleted {
			title = metaStyle.Strikethrough(true).Render(fmt.Sprintf("%-*s", titleWidth, title))
		} else {
			title = titleStyle.Render(fmt.Sprintf("%-*s", titleWidth, title))
		}

		line := cursor + check + " " + title + " " + acts + " " + prio + " " + date
		if i == m.cursor {
			padded := line + strings.Repeat(" ", max(m.width-lipgloss.Width(line), 0))
			b.WriteString(selectedRowBg.Render(padded) + "\n")
		} else {
			b.WriteString(line + "\n")
		}
	}

	// Detail preview for the selected todo
	if m.cursor < len(m.todos) {
		todo := m.todos[m.cursor]
		b.WriteString("\n")

		header := " " + selectedStyle.Render(truncStr(todo.Title, 60))
		if p := domain.StringOrEmpty(todo.Priority); p != "" {
			header += "  " + PriorityStyle(p).Render(p)
		}
		header += "  " + metaStyle.Render(fmt.Sprintf("%d of %d activities done", todo.CompletedActivityCount, todo.ActivityCount))
		b.WriteString(header + "\n")

		if detail := domain.StringOrEmpty(todo.Detail); detail != "" {
			detailWidth := m.width - 4
			if detailWidth < 40 {
				detailWidth = 40
			}
			wrapped := lipgloss.NewStyle().Width(detailWidth).Render(detail)
			lines := strings.Split(wrapped, "\n")
			if len(lines) > 3 {
				lines = lines[:3]
			}
			for _, line := range lines {
				b.WriteString(" " + normalStyle.Render(line) + "\n")
			}
		}
	}

	return truncateToHeight(b.String(), m.height)
}
