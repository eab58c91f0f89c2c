package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/logging"
	"github.com/taskdeck/taskdeck/internal/session"
	"github.com/taskdeck/taskdeck/internal/tui"
	"github.com/taskdeck/taskdeck/pkg/client"
	"github.com/taskdeck/taskdeck/pkg/domain"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env next to the binary's working dir; absence is fine.
	godotenv.Load() //nolint:errcheck

	apiURL := os.Getenv("TASKDECK_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:5000/api"
	}

	dir := session.DefaultDir()
	log := logging.Open(logPath(dir)).Level(logging.Level())
	c := client.New(apiURL, log)
	store := session.New(dir)
	gw := auth.New(c, store, log)

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version", "-v":
			fmt.Println("taskdeck " + version)
			return nil
		case "help", "--help", "-h":
			printHelp()
			return nil
		case "login":
			return runLogin(c, gw)
		case "logout":
			return runLogout(store, gw)
		}
	}

	return runTUI(c, gw)
}

func logPath(dir string) string {
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "taskdeck.log")
}

func runTUI(c *client.Client, gw *auth.Gateway) error {
	app := tui.NewApp(c, gw, version)
	p := tea.NewProgram(app, tea.WithAltScreen())

	// Late-bind the interceptor side effects now that there is a
	// program to notify. Session clearing goes through the gateway,
	// which is the only writer of the store.
	c.Interceptor().Bind(client.Hooks{
		Notify: func(n client.Notification) {
			p.Send(tui.NotifyMsg{Notification: n})
		},
		Unauthorized: func() {
			gw.Logout()
			p.Send(tui.SessionExpiredMsg{})
		},
	})

	// Feed the session stream into the running program. Subscribe emits
	// the current state immediately, so this waits on the goroutine for
	// the program to start consuming.
	go gw.Subscribe(func(s *domain.Session) {
		p.Send(tui.SessionChangedMsg{Session: s})
	})

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

// runLogin prompts on the terminal, authenticates, then drops into the TUI.
func runLogin(c *client.Client, gw *auth.Gateway) error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Username: ")
	username, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("read username: %w", err)
	}
	username = strings.TrimSpace(username)

	fmt.Print("Password: ")
	rawPassword, err := terminal.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	sess, err := gw.Login(context.Background(), username, string(rawPassword))
	if err != nil {
		if authErr, ok := err.(*auth.AuthError); ok {
			return fmt.Errorf("%s", authErr.UserMessage())
		}
		return err
	}
	fmt.Printf("Logged in as %s\n\n", sess.Username)

	return runTUI(c, gw)
}

func runLogout(store *session.Store, gw *auth.Gateway) error {
	if store.Read() == nil {
		fmt.Println("Already logged out.")
		return nil
	}
	gw.Logout()
	fmt.Println("Logged out.")
	return nil
}

func printHelp() {
	fmt.Println(`taskdeck — terminal client for your to-do list

Usage:
  taskdeck            Open the task list (or the sign-in view)
  taskdeck login      Sign in from the terminal
  taskdeck logout     Clear the local session
  taskdeck version    Show version

Environment:
  TASKDECK_API_URL    Backend base URL (default http://localhost:5000/api)
  TASKDECK_LOG_LEVEL  Log level for ~/.taskdeck/taskdeck.log (default info)`)
}
