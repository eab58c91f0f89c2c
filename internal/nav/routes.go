// Package nav names the application's views and maps them to paths.
// The TUI owns the actual navigation; this is just the route table the
// guard and views agree on.
package nav

import (
	"strconv"
	"strings"
)

// Route is an abstract view name. The zero value is not a valid route.
type Route string

const (
	RouteLogin          Route = "login"
	RouteTodos          Route = "todos"
	RouteTodoCreate     Route = "todos/create"
	RouteTodoDetail     Route = "todos/:id"
	RouteActivities     Route = "todos/:todoId/activities"
	RouteActivityCreate Route = "todos/:todoId/activities/create"
	RouteActivityDetail Route = "todos/:todoId/activities/:id"
)

// Protected reports whether entering the route requires a session.
// Everything except the login view is protected.
func (r Route) Protected() bool {
	return r != RouteLogin
}

// Path renders the route with its parameterized segments filled in
// order, e.g. RouteActivityDetail.Path(3, 7) -> "todos/3/activities/7".
func (r Route) Path(ids ...int) string {
	parts := strings.Split(string(r), "/")
	next := 0
	for i, p := range parts {
		if strings.HasPrefix(p, ":") && next < len(ids) {
			parts[i] = strconv.Itoa(ids[next])
			next++
		}
	}
	return strings.Join(parts, "/")
}
