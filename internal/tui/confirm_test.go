package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func openConfirm(onConfirm tea.Cmd) *confirmModel {
	m := &confirmModel{}
	m.show(confirmRequestMsg{
		data:      confirmData{title: "Delete Todo", message: "Are you sure you want to delete this?"},
		onConfirm: onConfirm,
	})
	return m
}

func TestConfirmDefaultsToCancel(t *testing.T) {
	m := openConfirm(nil)
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1 (cancel)", m.cursor)
	}
	if cmd := m.Update(pressKey("enter")); cmd != nil {
		t.Error("enter on default selection confirmed the action")
	}
	if m.open {
		t.Error("dialog still open after enter")
	}
}

func TestConfirmEnterOnConfirm(t *testing.T) {
	var ran bool
	m := openConfirm(func() tea.Msg { ran = true; return nil })
	m.Update(pressKey("tab"))
	cmd := m.Update(pressKey("enter"))
	if cmd == nil {
		t.Fatal("confirm selection returned no command")
	}
	cmd()
	if !ran {
		t.Error("confirmed command did not run")
	}
}

func TestConfirmShortcuts(t *testing.T) {
	// y accepts regardless of cursor, n and esc reject.
	m := openConfirm(func() tea.Msg { return nil })
	if cmd := m.Update(pressKey("y")); cmd == nil {
		t.Error("y did not confirm")
	}
	if m.open {
		t.Error("dialog open after y")
	}

	for _, k := range []string{"n", "esc"} {
		m := openConfirm(func() tea.Msg { return nil })
		if cmd := m.Update(pressKey(k)); cmd != nil {
			t.Errorf("%s confirmed the action", k)
		}
		if m.open {
			t.Errorf("dialog open after %s", k)
		}
	}
}

func TestConfirmViewShowsContent(t *testing.T) {
	m := openConfirm(nil)
	view := m.View(80, 24)
	for _, want := range []string{"Delete Todo", "delete this", "Delete", "Cancel"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view, got:\n%s", want, view)
		}
	}
}

func TestConfirmDefaultsWhenEmpty(t *testing.T) {
	m := &confirmModel{}
	m.show(confirmRequestMsg{})
	view := m.View(80, 24)
	if !strings.Contains(view, "Are you sure?") {
		t.Errorf("expected default message, got:\n%s", view)
	}
	if !strings.Contains(view, "Confirm") {
		t.Errorf("expected default title, got:\n%s", view)
	}
}
