package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskdeck/taskdeck/pkg/domain"
)

type formField int

const (
	formTitle formField = iota
	formDetail
	formPriority
	formCompleted
	numFormFields
)

// itemForm is the shared title/detail/priority form behind the create
// and detail views. Detail views also expose the completion checkbox.
type itemForm struct {
	title     string
	detail    string
	priority  string
	completed bool

	showCompleted bool
	focus         formField
}

func (f *itemForm) fieldCount() formField {
	if f.showCompleted {
		return numFormFields
	}
	return formCompleted
}

func (f *itemForm) reset() {
	f.title = ""
	f.detail = ""
	f.priority = ""
	f.completed = false
	f.focus = formTitle
}

func (f *itemForm) fill(title string, detail, priority *string, completed bool) {
	f.title = title
	f.detail = domain.StringOrEmpty(detail)
	f.priority = domain.StringOrEmpty(priority)
	f.completed = completed
	f.focus = formTitle
}

// update consumes one keystroke. Submit (ctrl+s) and cancel (esc) are
// the wrapping view's business; everything else lands here.
func (f *itemForm) update(msg tea.KeyMsg) {
	n := f.fieldCount()
	switch msg.String() {
	case "tab", "down":
		f.focus = (f.focus + 1) % n
	case "shift+tab", "up":
		f.focus = (f.focus - 1 + n) % n
	case "enter":
		if f.focus == formDetail {
			f.detail += "\n"
		} else {
			f.focus = (f.focus + 1) % n
		}
	case "backspace":
		switch f.focus {
		case formTitle:
			f.title = editRune(f.title, "backspace")
		case formDetail:
			f.detail = editRune(f.detail, "backspace")
		case formPriority:
			f.priority = ""
		}
	case " ":
		if f.focus == formCompleted {
			f.completed = !f.completed
			return
		}
		f.typeKey(" ")
	case "h", "left":
		if f.focus == formPriority {
			f.priority = cyclePriority(f.priority, false, domain.Priorities)
			return
		}
		f.typeKey(msg.String())
	case "l", "right":
		if f.focus == formPriority {
			f.priority = cyclePriority(f.priority, true, domain.Priorities)
			return
		}
		f.typeKey(msg.String())
	default:
		f.typeKey(msg.String())
	}
}

func (f *itemForm) typeKey(key string) {
	switch f.focus {
	case formTitle:
		f.title = editRune(f.title, key)
	case formDetail:
		f.detail = editRune(f.detail, key)
	}
}

// valid reports whether the one required field is filled.
func (f *itemForm) valid() bool {
	return strings.TrimSpace(f.title) != ""
}

func (f *itemForm) View() string {
	var b strings.Builder

	type row struct {
		field formField
		label string
	}
	rows := []row{
		{formTitle, "title"},
		{formDetail, "detail"},
		{formPriority, "priority"},
	}
	if f.showCompleted {
		rows = append(rows, row{formCompleted, "completed"})
	}

	for _, r := range rows {
		cursor := " "
		style := metaStyle
		if r.field == f.focus {
			cursor = ">"
			style = selectedStyle
		}

		switch r.field {
		case formPriority:
			value := f.priority
			if value == "" {
				value = inputPlaceholderStyle.Render("none")
			} else {
				value = PriorityStyle(f.priority).Render(f.priority)
			}
			fmt.Fprintf(&b, " %s %s: %s  %s\n", cursor, style.Render(r.label), value, metaStyle.Render("(h/l to cycle)"))
		case formCompleted:
			check := "[ ]"
			if f.completed {
				check = doneStyle.Render("[x]")
			}
			fmt.Fprintf(&b, " %s %s: %s  %s\n", cursor, style.Render(r.label), check, metaStyle.Render("(space to toggle)"))
		default:
			value := f.title
			if r.field == formDetail {
				value = f.detail
			}
			display := strings.ReplaceAll(value, "\n", "⏎")
			if r.field == f.focus {
				display += "█"
			} else if display == "" {
				display = inputPlaceholderStyle.Render("...")
			}
			fmt.Fprintf(&b, " %s %s: %s\n", cursor, style.Render(r.label), display)
		}
	}

	return b.String()
}
