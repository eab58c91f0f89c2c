package client

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Notification is the fire-and-forget tuple handed to the notification
// surface for every failed call.
type Notification struct {
	Message      string
	DismissLabel string
	Duration     time.Duration
	Placement    string
}

// Hooks are the side effects the interceptor may trigger. Both are
// optional; an unbound hook is skipped. Unauthorized fires only on 401,
// after the session-expired notification, and the caller is expected to
// clear the persisted session and force the login view.
type Hooks struct {
	Notify       func(Notification)
	Unauthorized func()
}

// Interceptor wraps the HTTP transport so every outgoing API call gets
// uniform failure handling: classify, notify once, fire the 401 side
// effect, then pass the response (or error) through unchanged. It never
// swallows a failure; callers still see the original outcome.
type Interceptor struct {
	next http.RoundTripper
	log  zerolog.Logger

	mu    sync.Mutex
	hooks Hooks
}

// NewInterceptor decorates next (nil means http.DefaultTransport).
func NewInterceptor(next http.RoundTripper, log zerolog.Logger) *Interceptor {
	if next == nil {
		next = http.DefaultTransport
	}
	return &Interceptor{next: next, log: log}
}

// Bind registers the side-effect hooks. The TUI program does not exist
// yet when the client is built, so hooks arrive late; calls before Bind
// notify nobody.
func (i *Interceptor) Bind(h Hooks) {
	i.mu.Lock()
	i.hooks = h
	i.mu.Unlock()
}

func (i *Interceptor) notify(message string) {
	i.mu.Lock()
	h := i.hooks
	i.mu.Unlock()
	if h.Notify != nil {
		h.Notify(Notification{
			Message:      message,
			DismissLabel: "Close",
			Duration:     5 * time.Second,
			Placement:    "top",
		})
	}
}

func (i *Interceptor) unauthorized() {
	i.mu.Lock()
	h := i.hooks
	i.mu.Unlock()
	if h.Unauthorized != nil {
		h.Unauthorized()
	}
}

func (i *Interceptor) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the caller's request.
	req = req.Clone(req.Context())
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := i.next.RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		i.log.Warn().
			Str("request_id", reqID).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Dur("elapsed", elapsed).
			Err(err).
			Msg("request failed without response")
		i.notify(unreachableMessage)
		return nil, err
	}

	i.log.Debug().
		Str("request_id", reqID).
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", elapsed).
		Msg("request")

	if resp.StatusCode >= 400 {
		// The body stays with the caller; the generic message falls back
		// to the status line instead.
		i.notify(userMessage(resp.StatusCode, resp.Status))
		if resp.StatusCode == http.StatusUnauthorized {
			i.unauthorized()
		}
	}
	return resp, nil
}
