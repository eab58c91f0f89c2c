package domain

import "time"

// TodoItem is a to-do item as returned by the backend, including the
// server-maintained activity counters.
type TodoItem struct {
	TodoID                 int       `json:"todoId"`
	UserID                 int       `json:"userId"`
	Title                  string    `json:"title"`
	CreatedDate            time.Time `json:"createdDate"`
	IsCompleted            bool      `json:"isCompleted"`
	Detail                 *string   `json:"detail"`
	Priority               *string   `json:"priority"`
	ActivityCount          int       `json:"activityCount"`
	CompletedActivityCount int       `json:"completedActivityCount"`
}

// CreateTodoItem is the payload for creating a to-do item.
// The server assigns todoId, createdDate and the counters.
type CreateTodoItem struct {
	Title    string  `json:"title"`
	Detail   *string `json:"detail"`
	Priority *string `json:"priority"`
}

// UpdateTodoItem is the payload for updating a to-do item.
// The item's identity travels in the URL path, not the body.
type UpdateTodoItem struct {
	Title       string  `json:"title"`
	IsCompleted bool    `json:"isCompleted"`
	Detail      *string `json:"detail"`
	Priority    *string `json:"priority"`
}

// Priorities are the options offered by the forms. The backend treats
// priority as an opaque string; anything else it returns is shown as-is.
var Priorities = []string{"Low", "Medium", "High"}

// OptionalString maps a form value to the nullable DTO representation:
// empty input is sent as null rather than "".
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringOrEmpty unwraps a nullable DTO field for display.
func StringOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
