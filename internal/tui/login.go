package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/nav"
	"github.com/taskdeck/taskdeck/pkg/domain"
)

type loginField int

const (
	fieldUsername loginField = iota
	fieldPassword
	numLoginFields
)

type loginModel struct {
	auth       *auth.Gateway
	fields     [numLoginFields]string
	focus      loginField
	submitting bool
	errMsg     string
}

// loginResultMsg carries the outcome of a login attempt.
type loginResultMsg struct {
	session *domain.Session
	err     error
}

func newLoginModel(g *auth.Gateway) loginModel {
	return loginModel{auth: g}
}

func (m loginModel) Init() tea.Cmd {
	return nil
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		// Re-enable the form on failure; the error stays local to it.
		m.submitting = false
		if msg.err != nil {
			if authErr, ok := msg.err.(*auth.AuthError); ok {
				m.errMsg = authErr.UserMessage()
			} else {
				m.errMsg = "An error occurred during login"
			}
			m.fields[fieldPassword] = ""
			m.focus = fieldPassword
			return m, nil
		}
		return m, navCmd(nav.RouteTodos)

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m loginModel) updateKeys(msg tea.KeyMsg) (loginModel, tea.Cmd) {
	m.errMsg = ""

	switch msg.String() {
	case "tab", "down":
		m.focus = (m.focus + 1) % numLoginFields
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + numLoginFields) % numLoginFields
	case "enter":
		if m.focus == fieldUsername {
			m.focus = fieldPassword
			return m, nil
		}
		return m.submit()
	default:
		m.fields[m.focus] = editRune(m.fields[m.focus], msg.String())
	}
	return m, nil
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	username := strings.TrimSpace(m.fields[fieldUsername])
	password := m.fields[fieldPassword]

	if username == "" || password == "" {
		m.errMsg = "This field is required"
		return m, nil
	}

	m.submitting = true
	g := m.auth
	return m, func() tea.Msg {
		sess, err := g.Login(context.Background(), username, password)
		return loginResultMsg{session: sess, err: err}
	}
}

func (m loginModel) View() string {
	var b strings.Builder

	b.WriteString(" " + sectionStyle.Render("SIGN IN") + "\n\n")

	labels := [numLoginFields]string{"username", "password"}
	for i := loginField(0); i < numLoginFields; i++ {
		cursor := " "
		style := metaStyle
		if i == m.focus {
			cursor = ">"
			style = selectedStyle
		}

		value := m.fields[i]
		if i == fieldPassword {
			value = strings.Repeat("•", len([]rune(value)))
		}
		if i == m.focus && !m.submitting {
			value += "█"
		}
		if value == "" && i != m.focus {
			value = inputPlaceholderStyle.Render("...")
		}
		b.WriteString(" " + cursor + " " + style.Render(labels[i]) + ": " + value + "\n")
	}

	b.WriteString("\n")
	if m.submitting {
		b.WriteString(" " + dimStyle.Render("signing in..."))
	} else if m.errMsg != "" {
		b.WriteString(" " + errorStyle.Render(m.errMsg))
	}

	return b.String()
}
