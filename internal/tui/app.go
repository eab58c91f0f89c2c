package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/nav"
	"github.com/taskdeck/taskdeck/pkg/client"
	"github.com/taskdeck/taskdeck/pkg/domain"
)

// SessionExpiredMsg forces the login view after the interceptor's 401
// side effect has cleared the session.
type SessionExpiredMsg struct{}

// SessionChangedMsg is the session stream feeding the header.
type SessionChangedMsg struct {
	Session *domain.Session
}

// navigateMsg moves the app to another view. Parameterized routes carry
// their IDs in order.
type navigateMsg struct {
	route nav.Route
	ids   []int
}

func navCmd(route nav.Route, ids ...int) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{route: route, ids: ids}
	}
}

// App is the root Bubbletea model. It owns navigation: every view
// switch is checked against the route guard, and denied switches land
// on the login view instead.
type App struct {
	client  *client.Client
	auth    *auth.Gateway
	guard   *auth.Guard
	version string

	route          nav.Route
	routeIDs       []int
	login          loginModel
	todos          todosModel
	todoCreate     todoCreateModel
	todoDetail     todoDetailModel
	activities     activitiesModel
	activityCreate activityCreateModel
	activityDetail activityDetailModel

	confirm  confirmModel
	toast    toastModel
	username string

	width  int
	height int
	frame  int // logo shimmer animation frame
}

// NewApp creates the root TUI model.
func NewApp(c *client.Client, g *auth.Gateway, version string) App {
	a := App{
		client:  c,
		auth:    g,
		guard:   auth.NewGuard(g),
		version: version,
		route:   nav.RouteLogin,
		login:   newLoginModel(g),
	}
	if name, ok := g.CurrentUsername(); ok {
		a.username = name
	}
	return a
}

func (a App) Init() tea.Cmd {
	start := navCmd(nav.RouteTodos)
	if !a.guard.CanEnter(nav.RouteTodos) {
		start = navCmd(nav.RouteLogin)
	}
	return tea.Batch(shimmerTickCmd(), start)
}

// chrome is the fixed line budget around the body: header(2) + toast(1) + help(1).
const chrome = 4

func (a App) bodySize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: a.width, Height: a.height - chrome}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		body := a.bodySize()
		a.todos, _ = a.todos.Update(body)
		a.activities, _ = a.activities.Update(body)
		return a, nil

	case shimmerTickMsg:
		a.frame++
		return a, shimmerTickCmd()

	case navigateMsg:
		return a.navigate(msg)

	case NotifyMsg:
		return a, a.toast.show(msg.Notification)

	case toastExpiredMsg:
		a.toast.expire(msg)
		return a, nil

	case SessionExpiredMsg:
		// The gateway already cleared the store; drop whatever view was
		// active and show the login form.
		a.route = nav.RouteLogin
		a.login = newLoginModel(a.auth)
		return a, nil

	case SessionChangedMsg:
		if msg.Session != nil {
			a.username = msg.Session.Username
		} else {
			a.username = ""
		}
		return a, nil

	case confirmRequestMsg:
		a.confirm.show(msg)
		return a, nil

	case tea.KeyMsg:
		// Modal dialog captures all keys while open.
		if a.confirm.open {
			return a, a.confirm.Update(msg)
		}

		if a.toast.visible() && msg.String() == "esc" {
			a.toast.dismiss()
		}

		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "ctrl+l":
			if a.route.Protected() {
				a.auth.Logout()
				a.route = nav.RouteLogin
				a.login = newLoginModel(a.auth)
				return a, toastCmd("Logged out")
			}
		case "q":
			if !a.isEditing() {
				return a, tea.Quit
			}
		}
	}

	return a.routeMsg(msg)
}

// navigate runs the guard and activates the target view. A denied route
// never activates; the login view shows instead.
func (a App) navigate(msg navigateMsg) (tea.Model, tea.Cmd) {
	route := msg.route
	ids := msg.ids
	if !a.guard.CanEnter(route) {
		route = nav.RouteLogin
		ids = nil
	}
	a.route = route
	a.routeIDs = ids

	body := a.bodySize()
	switch route {
	case nav.RouteLogin:
		a.login = newLoginModel(a.auth)
		return a, a.login.Init()
	case nav.RouteTodos:
		a.todos = newTodosModel(a.client, a.auth)
		a.todos, _ = a.todos.Update(body)
		return a, a.todos.Init()
	case nav.RouteTodoCreate:
		a.todoCreate = newTodoCreateModel(a.client, a.auth)
		return a, a.todoCreate.Init()
	case nav.RouteTodoDetail:
		if len(ids) < 1 {
			return a, navCmd(nav.RouteTodos)
		}
		a.todoDetail = newTodoDetailModel(a.client, ids[0])
		return a, a.todoDetail.Init()
	case nav.RouteActivities:
		if len(ids) < 1 {
			return a, navCmd(nav.RouteTodos)
		}
		a.activities = newActivitiesModel(a.client, ids[0])
		a.activities, _ = a.activities.Update(body)
		return a, a.activities.Init()
	case nav.RouteActivityCreate:
		if len(ids) < 1 {
			return a, navCmd(nav.RouteTodos)
		}
		a.activityCreate = newActivityCreateModel(a.client, ids[0])
		return a, a.activityCreate.Init()
	case nav.RouteActivityDetail:
		if len(ids) < 2 {
			return a, navCmd(nav.RouteTodos)
		}
		a.activityDetail = newActivityDetailModel(a.client, ids[0], ids[1])
		return a, a.activityDetail.Init()
	}
	// Unknown routes fall back to login, like the web client's wildcard.
	a.route = nav.RouteLogin
	a.login = newLoginModel(a.auth)
	return a, a.login.Init()
}

// routeMsg forwards a message to the active view. Results for views the
// user already left are dropped with it.
func (a App) routeMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.route {
	case nav.RouteLogin:
		a.login, cmd = a.login.Update(msg)
	case nav.RouteTodos:
		a.todos, cmd = a.todos.Update(msg)
	case nav.RouteTodoCreate:
		a.todoCreate, cmd = a.todoCreate.Update(msg)
	case nav.RouteTodoDetail:
		a.todoDetail, cmd = a.todoDetail.Update(msg)
	case nav.RouteActivities:
		a.activities, cmd = a.activities.Update(msg)
	case nav.RouteActivityCreate:
		a.activityCreate, cmd = a.activityCreate.Update(msg)
	case nav.RouteActivityDetail:
		a.activityDetail, cmd = a.activityDetail.Update(msg)
	}
	return a, cmd
}

func (a App) isEditing() bool {
	switch a.route {
	case nav.RouteLogin, nav.RouteTodoCreate, nav.RouteTodoDetail,
		nav.RouteActivityCreate, nav.RouteActivityDetail:
		return true
	}
	return false
}

func (a App) View() string {
	logo := renderShimmerLogo(a.frame)

	logoWidth := lipgloss.Width(logo)
	logoPad := (a.width - logoWidth) / 2
	if logoPad < 0 {
		logoPad = 0
	}
	header := strings.Repeat(" ", logoPad) + logo

	// Breadcrumb line: who and where.
	crumb := a.route.Path(a.routeIDs...)
	if a.username != "" {
		crumb = a.username + " · " + crumb
	}
	crumbLine := metaStyle.Render(crumb)
	crumbWidth := lipgloss.Width(crumbLine)
	crumbPad := (a.width - crumbWidth) / 2
	if crumbPad < 0 {
		crumbPad = 0
	}
	header += "\n" + strings.Repeat(" ", crumbPad) + crumbLine

	var body string
	if a.confirm.open {
		body = a.confirm.View(a.width, a.height-chrome)
	} else {
		switch a.route {
		case nav.RouteLogin:
			body = a.login.View()
		case nav.RouteTodos:
			body = a.todos.View()
		case nav.RouteTodoCreate:
			body = a.todoCreate.View()
		case nav.RouteTodoDetail:
			body = a.todoDetail.View()
		case nav.RouteActivities:
			body = a.activities.View()
		case nav.RouteActivityCreate:
			body = a.activityCreate.View()
		case nav.RouteActivityDetail:
			body = a.activityDetail.View()
		}
	}

	help := " " + a.helpLine()
	toast := a.toast.View(a.width)

	body = strings.TrimRight(truncateToHeight(body, a.height-chrome), "\n")
	return header + "\n" + body + "\n" + toast + "\n" + help
}

func (a App) helpLine() string {
	if a.confirm.open {
		return helpEntry("h/l", "choose") + "  " + helpEntry("enter", "select") + "  " + helpEntry("y/n", "confirm/cancel")
	}
	switch a.route {
	case nav.RouteLogin:
		return helpEntry("tab", "next") + "  " + helpEntry("enter", "sign in") + "  " + helpEntry("ctrl+c", "quit")
	case nav.RouteTodos:
		return helpEntry("j/k", "nav") + "  " + helpEntry("space", "toggle") + "  " + helpEntry("enter", "edit") + "  " +
			helpEntry("a", "activities") + "  " + helpEntry("n", "new") + "  " + helpEntry("d", "delete") + "  " +
			helpEntry("c", "copy") + "  " + helpEntry("r", "reload") + "  " + helpEntry("ctrl+l", "logout") + "  " + helpEntry("q", "quit")
	case nav.RouteActivities:
		return helpEntry("j/k", "nav") + "  " + helpEntry("space", "toggle") + "  " + helpEntry("enter", "edit") + "  " +
			helpEntry("n", "new") + "  " + helpEntry("d", "delete") + "  " + helpEntry("esc", "back") + "  " + helpEntry("q", "quit")
	case nav.RouteTodoDetail:
		return helpEntry("tab", "next") + "  " + helpEntry("ctrl+s", "save") + "  " + helpEntry("ctrl+a", "activities") + "  " + helpEntry("esc", "back")
	default:
		return helpEntry("tab", "next") + "  " + helpEntry("ctrl+s", "save") + "  " + helpEntry("esc", "back")
	}
}
