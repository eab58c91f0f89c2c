package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/taskdeck/taskdeck/internal/nav"
	"github.com/taskdeck/taskdeck/pkg/domain"
)

func newTestActivitiesModel() activitiesModel {
	m := newActivitiesModel(nil, 42)
	m.width = 100
	m.height = 30
	m.loading = false
	return m
}

func makeTestActivity(id int, title string, completed bool) domain.Activity {
	return domain.Activity{
		ActivityID:  id,
		TodoID:      42,
		Title:       title,
		IsCompleted: completed,
		CreatedDate: time.Now(),
	}
}

func TestActivitiesRendersParentAndItems(t *testing.T) {
	m := newTestActivitiesModel()
	m, _ = m.Update(activitiesLoadedMsg{
		todo: &domain.TodoItem{TodoID: 42, Title: "Plan the trip"},
		activities: []domain.Activity{
			makeTestActivity(1, "Book flights", false),
			makeTestActivity(2, "Pack bags", true),
		},
	})

	view := m.View()
	if !strings.Contains(view, "Plan the trip") {
		t.Errorf("parent todo title missing:\n%s", view)
	}
	if !strings.Contains(view, "Book flights") || !strings.Contains(view, "Pack bags") {
		t.Errorf("activity titles missing:\n%s", view)
	}
}

func TestActivitiesEmptyState(t *testing.T) {
	m := newTestActivitiesModel()
	m, _ = m.Update(activitiesLoadedMsg{todo: &domain.TodoItem{TodoID: 42, Title: "Plan"}})

	if !strings.Contains(m.View(), "no activities yet") {
		t.Errorf("expected empty-state hint, got:\n%s", m.View())
	}
}

func TestActivitiesEnterOpensDetail(t *testing.T) {
	m := newTestActivitiesModel()
	m, _ = m.Update(activitiesLoadedMsg{activities: []domain.Activity{makeTestActivity(7, "one", false)}})

	_, cmd := m.Update(pressKey("enter"))
	if cmd == nil {
		t.Fatal("enter produced no command")
	}
	msg, ok := cmd().(navigateMsg)
	if !ok || msg.route != nav.RouteActivityDetail {
		t.Fatalf("got %+v, want activity detail", cmd())
	}
	if len(msg.ids) != 2 || msg.ids[0] != 42 || msg.ids[1] != 7 {
		t.Errorf("ids = %v, want [42 7]", msg.ids)
	}
}

func TestActivitiesNOpensCreate(t *testing.T) {
	m := newTestActivitiesModel()
	m, _ = m.Update(activitiesLoadedMsg{})

	_, cmd := m.Update(pressKey("n"))
	if cmd == nil {
		t.Fatal("n produced no command")
	}
	msg, ok := cmd().(navigateMsg)
	if !ok || msg.route != nav.RouteActivityCreate || len(msg.ids) != 1 || msg.ids[0] != 42 {
		t.Errorf("got %+v, want activity create for todo 42", cmd())
	}
}

func TestActivitiesEscGoesBack(t *testing.T) {
	m := newTestActivitiesModel()
	m, _ = m.Update(activitiesLoadedMsg{})

	_, cmd := m.Update(pressKey("esc"))
	if cmd == nil {
		t.Fatal("esc produced no command")
	}
	if msg, ok := cmd().(navigateMsg); !ok || msg.route != nav.RouteTodos {
		t.Errorf("got %+v, want todos", cmd())
	}
}

func TestActivitiesDeleteAsksForConfirmation(t *testing.T) {
	m := newTestActivitiesModel()
	m, _ = m.Update(activitiesLoadedMsg{activities: []domain.Activity{makeTestActivity(7, "doomed", false)}})

	_, cmd := m.Update(pressKey("d"))
	if cmd == nil {
		t.Fatal("d produced no command")
	}
	req, ok := cmd().(confirmRequestMsg)
	if !ok {
		t.Fatalf("d did not request confirmation, got %T", cmd())
	}
	if req.data.title != "Delete Activity" {
		t.Errorf("title = %q", req.data.title)
	}
}

func TestActivitiesToggleErrorShowsStatus(t *testing.T) {
	m := newTestActivitiesModel()
	m, _ = m.Update(activitiesLoadedMsg{activities: []domain.Activity{makeTestActivity(7, "one", false)}})

	m, _ = m.Update(activityToggledMsg{err: errTest})
	if !strings.Contains(m.View(), "Error toggling activity. Please try again.") {
		t.Errorf("expected toggle error status, got:\n%s", m.View())
	}
}

func TestActivitiesLoadErrorRendered(t *testing.T) {
	m := newTestActivitiesModel()
	m, _ = m.Update(activitiesLoadedMsg{err: errTest})

	if !strings.Contains(m.View(), "Error loading activities. Please try again.") {
		t.Errorf("expected load error message, got:\n%s", m.View())
	}
}
