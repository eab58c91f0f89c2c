package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/nav"
	"github.com/taskdeck/taskdeck/pkg/client"
	"github.com/taskdeck/taskdeck/pkg/domain"
)

// activitiesModel is the per-todo activity list. Same surface as the
// todo list, scoped to one parent item.
type activitiesModel struct {
	client     *client.Client
	todoID     int
	todoTitle  string
	activities []domain.Activity
	cursor     int
	loading    bool
	err        error
	statusMsg  string
	width      int
	height     int
}

type activitiesLoadedMsg struct {
	todo       *domain.TodoItem
	activities []domain.Activity
	err        error
}

type activityToggledMsg struct{ err error }
type activityDeletedMsg struct{ err error }

func newActivitiesModel(c *client.Client, todoID int) activitiesModel {
	return activitiesModel{client: c, todoID: todoID, loading: true}
}

func (m activitiesModel) load() tea.Cmd {
	c := m.client
	id := m.todoID
	return func() tea.Msg {
		todo, err := c.GetTodo(context.Background(), id)
		if err != nil {
			return activitiesLoadedMsg{err: err}
		}
		activities, err := c.ListActivities(context.Background(), id)
		return activitiesLoadedMsg{todo: todo, activities: activities, err: err}
	}
}

func (m activitiesModel) Init() tea.Cmd {
	return m.load()
}

func (m activitiesModel) Update(msg tea.Msg) (activitiesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case activitiesLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.todo != nil {
			m.todoTitle = msg.todo.Title
		}
		m.activities = msg.activities
		if m.cursor >= len(m.activities) {
			m.cursor = 0
		}
		return m, nil

	case activityToggledMsg:
		if msg.err != nil {
			m.statusMsg = "Error toggling activity. Please try again."
			return m, nil
		}
		m.loading = true
		return m, m.load()

	case activityDeletedMsg:
		if msg.err != nil {
			m.statusMsg = "Error deleting activity. Please try again."
			return m, nil
		}
		m.statusMsg = "Activity deleted"
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

func (m activitiesModel) updateKeys(msg tea.KeyMsg) (activitiesModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.activities)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		if m.cursor < len(m.activities) {
			return m, navCmd(nav.RouteActivityDetail, m.todoID, m.activities[m.cursor].ActivityID)
		}
	case "n":
		return m, navCmd(nav.RouteActivityCreate, m.todoID)
	case " ", "x":
		if m.cursor < len(m.activities) {
			activity := m.activities[m.cursor]
			c := m.client
			return m, func() tea.Msg {
				err := c.ToggleActivity(context.Background(), activity.ActivityID)
				return activityToggledMsg{err: err}
			}
		}
	case "d":
		if m.cursor < len(m.activities) {
			activity := m.activities[m.cursor]
			c := m.client
			return m, confirmCmd(confirmData{
				title:   "Delete Activity",
				message: "Are you sure you want to delete this activity?",
			}, func() tea.Msg {
				err := c.DeleteActivity(context.Background(), activity.ActivityID)
				return activityDeletedMsg{err: err}
			})
		}
	case "c":
		if m.cursor < len(m.activities) {
			activity := m.activities[m.cursor]
			text := activity.Title
			if detail := domain.StringOrEmpty(activity.Detail); detail != "" {
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
	case "esc", "b":
		return m, navCmd(nav.RouteTodos)
	}
	return m, nil
}

func (m activitiesModel) View() string {
	var b strings.Builder

	b.WriteString(" " + sectionStyle.Render("ACTIVITIES"))
	if m.todoTitle != "" {
		b.WriteString("  " + normalStyle.Render(truncStr(m.todoTitle, 40)))
	}
	b.WriteString("\n")

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
		b.WriteString(" " + errorStyle.Render("Error loading activities. Please try again.") + "\n")
		b.WriteString(" " + dimStyle.Render(fmt.Sprintf("%v", m.err)))
		return b.String()
	}

	if len(m.activities) == 0 {
		b.WriteString(" " + dimStyle.Render("no activities yet — press n to create one"))
		return b.String()
	}

	viewChrome := 5
	available := m.height - viewChrome
	if available < 4 {
		available = 4
	}

	start := 0
	if m.cursor >= available {
		start = m.cursor - available + 1
	}

	for i := start; i < len(m.activities) && i < start+available; i++ {
		activity := m.activities[i]

		cursor := "  "
		titleStyle := dimStyle
		if i == m.cursor {
			cursor = accentStyle.Render("▸") + " "
			titleStyle = normalStyle.Bold(true)
		}

		check := metaStyle.Render("[ ]")
		if activity.IsCompleted {
			check = doneStyle.Render("[x]")
		}

		prio := strings.Repeat(" ", 6)
		if p := domain.StringOrEmpty(activity.Priority); p != "" {
			prio = PriorityStyle(p).Render(fmt.Sprintf("%-6s", truncStr(p, 6)))
		}
		date := metaStyle.Render(fmt.Sprintf("%11s", formatDate(activity.CreatedDate)))

		rightWidth := 6 + 11 + 2
		titleWidth := m.width - 8 - rightWidth
		if titleWidth < 10 {
			titleWidth = 10
		}
		atitle := truncStr(strings.ReplaceAll(activity.Title, "\n", " "), titleWidth)
		if activity.IsCompleted {
			atitle = metaStyle.Strikethrough(true).Render(fmt.Sprintf("%-*s", titleWidth, atitle))
		} else {
			atitle = titleStyle.Render(fmt.Sprintf("%-*s", titleWidth, atitle))
		}

		line := cursor + check + " " + atitle + " " + prio + " " + date
		if i == m.cursor {
			padded := line + strings.Repeat(" ", max(m.width-lipgloss.Width(line), 0))
			b.WriteString(selectedRowBg.Render(padded) + "\n")
		} else {
			b.WriteString(line + "\n")
		}
	}

	return truncateToHeight(b.String(), m.height)
}
