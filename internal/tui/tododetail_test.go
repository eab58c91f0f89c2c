package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskdeck/taskdeck/internal/nav"
	"github.com/taskdeck/taskdeck/pkg/domain"
)

func loadedDetailModel() todoDetailModel {
	m := newTodoDetailModel(nil, 42)
	detail := "with detail"
	priority := "High"
	m, _ = m.Update(todoDetailLoadedMsg{todo: &domain.TodoItem{
		TodoID:   42,
		Title:    "Existing task",
		Detail:   &detail,
		Priority: &priority,
	}})
	return m
}

func TestDetailPrefillsForm(t *testing.T) {
	m := loadedDetailModel()
	if m.form.title != "Existing task" {
		t.Errorf("title = %q", m.form.title)
	}
	if m.form.detail != "with detail" {
		t.Errorf("detail = %q", m.form.detail)
	}
	if m.form.priority != "High" {
		t.Errorf("priority = %q", m.form.priority)
	}
	if !m.form.showCompleted {
		t.Error("detail form must expose the completed checkbox")
	}
}

func TestDetailLoadFailureGoesBack(t *testing.T) {
	m := newTodoDetailModel(nil, 42)
	_, cmd := m.Update(todoDetailLoadedMsg{err: errTest})
	if cmd == nil {
		t.Fatal("load failure produced no command")
	}

	// The batch carries both the toast and the redirect.
	var sawToast, sawNav bool
	collectMsgs(t, cmd, func(msg tea.Msg) {
		switch msg := msg.(type) {
		case NotifyMsg:
			sawToast = true
			if msg.Notification.Message != "Error loading todo. Please try again." {
				t.Errorf("toast = %q", msg.Notification.Message)
			}
		case navigateMsg:
			sawNav = true
			if msg.route != nav.RouteTodos {
				t.Errorf("redirect = %s, want todos", msg.route)
			}
		}
	})
	if !sawToast || !sawNav {
		t.Errorf("sawToast=%v sawNav=%v, want both", sawToast, sawNav)
	}
}

func TestDetailSaveRequiresTitle(t *testing.T) {
	m := loadedDetailModel()
	m.form.title = "  "
	m, cmd := m.Update(pressKey("ctrl+s"))
	if cmd != nil {
		t.Error("save ran with an empty title")
	}
	if m.statusMsg != "This field is required" {
		t.Errorf("statusMsg = %q", m.statusMsg)
	}
}

func TestDetailUpdateFailureShowsStatus(t *testing.T) {
	m := loadedDetailModel()
	m.submitted = true
	m, cmd := m.Update(todoUpdatedMsg{err: errTest})
	if cmd != nil {
		t.Error("update failure should stay on the form")
	}
	if m.submitted {
		t.Error("form still disabled after failure")
	}
	if !strings.Contains(m.View(), "Error updating todo. Please try again.") {
		t.Errorf("expected update error, got:\n%s", m.View())
	}
}

func TestDetailUpdateSuccessToastsAndGoesBack(t *testing.T) {
	m := loadedDetailModel()
	m.submitted = true
	_, cmd := m.Update(todoUpdatedMsg{})
	if cmd == nil {
		t.Fatal("update success produced no command")
	}
	var sawToast, sawNav bool
	collectMsgs(t, cmd, func(msg tea.Msg) {
		switch msg := msg.(type) {
		case NotifyMsg:
			sawToast = msg.Notification.Message == "Todo updated successfully!"
		case navigateMsg:
			sawNav = msg.route == nav.RouteTodos
		}
	})
	if !sawToast || !sawNav {
		t.Errorf("sawToast=%v sawNav=%v, want both", sawToast, sawNav)
	}
}

func TestDetailCtrlAOpensActivities(t *testing.T) {
	m := loadedDetailModel()
	_, cmd := m.Update(pressKey("ctrl+a"))
	if cmd == nil {
		t.Fatal("ctrl+a produced no command")
	}
	msg, ok := cmd().(navigateMsg)
	if !ok || msg.route != nav.RouteActivities || len(msg.ids) != 1 || msg.ids[0] != 42 {
		t.Errorf("got %+v, want activities for todo 42", cmd())
	}
}
