package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/taskdeck/taskdeck/internal/session"
	"github.com/taskdeck/taskdeck/pkg/client"
	"github.com/taskdeck/taskdeck/pkg/domain"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) (*Gateway, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	store := session.New(t.TempDir())
	c := client.New(srv.URL, zerolog.Nop())
	return New(c, store, zerolog.Nop()), store
}

func loginHandler(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		var req client.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode login request: %v", err)
		}
		if req.Username == "alice" && req.Password == "secret" {
			json.NewEncoder(w).Encode(client.LoginResponse{UserID: 7, Username: "alice", Message: "Login successful"}) //nolint:errcheck
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"}) //nolint:errcheck
	}
}

func TestLoginSuccess(t *testing.T) {
	gw, store := newTestGateway(t, loginHandler(t))

	sess, err := gw.Login(context.Background(), "alice", "secret")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if sess.UserID != 7 || sess.Username != "alice" {
		t.Errorf("session = %+v, want {7 alice}", sess)
	}

	stored := store.Read()
	if stored == nil {
		t.Fatal("store is empty after successful login")
	}
	if *stored != *sess {
		t.Errorf("stored session %+v differs from returned %+v", stored, sess)
	}
	if !gw.IsAuthenticated() {
		t.Error("IsAuthenticated() = false after login")
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	gw, store := newTestGateway(t, loginHandler(t))

	_, err := gw.Login(context.Background(), "alice", "wrong")
	if err == nil {
		t.Fatal("Login() error = nil, want invalid credentials")
	}
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("error %v is not an AuthError", err)
	}
	if authErr.Kind != KindInvalidCredentials {
		t.Errorf("Kind = %v, want KindInvalidCredentials", authErr.Kind)
	}
	if got := authErr.UserMessage(); got != "Invalid username or password" {
		t.Errorf("UserMessage() = %q", got)
	}
	if store.Read() != nil {
		t.Error("failed login mutated the session store")
	}
	if gw.IsAuthenticated() {
		t.Error("IsAuthenticated() = true after failed login")
	}
}

func TestLoginUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	store := session.New(t.TempDir())
	gw := New(client.New(srv.URL, zerolog.Nop()), store, zerolog.Nop())

	_, err := gw.Login(context.Background(), "alice", "secret")
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("error %v is not an AuthError", err)
	}
	if authErr.Kind != KindUnreachable {
		t.Errorf("Kind = %v, want KindUnreachable", authErr.Kind)
	}
	if got := authErr.UserMessage(); got != "Unable to connect to server. Please check if the API is running." {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestLoginServerError(t *testing.T) {
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "database down"}) //nolint:errcheck
	})

	_, err := gw.Login(context.Background(), "alice", "secret")
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("error %v is not an AuthError", err)
	}
	if authErr.Kind != KindServerError {
		t.Errorf("Kind = %v, want KindServerError", authErr.Kind)
	}
	if authErr.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", authErr.Status)
	}
}

func TestLogout(t *testing.T) {
	gw, store := newTestGateway(t, loginHandler(t))
	if _, err := gw.Login(context.Background(), "alice", "secret"); err != nil {
		t.Fatalf("Login() error: %v", err)
	}

	gw.Logout()
	if store.Read() != nil {
		t.Error("store still holds a session after logout")
	}
	if gw.IsAuthenticated() {
		t.Error("IsAuthenticated() = true after logout")
	}
	if _, ok := gw.CurrentUserID(); ok {
		t.Error("CurrentUserID() still reports a user after logout")
	}
}

func TestSubscribeEmitsImmediately(t *testing.T) {
	gw, _ := newTestGateway(t, loginHandler(t))

	var got []*domain.Session
	gw.Subscribe(func(s *domain.Session) { got = append(got, s) })
	if len(got) != 1 {
		t.Fatalf("got %d emissions on subscribe, want 1", len(got))
	}
	if got[0] != nil {
		t.Errorf("initial emission = %+v, want nil", got[0])
	}
}

func TestSubscribeSeesTransitions(t *testing.T) {
	gw, _ := newTestGateway(t, loginHandler(t))

	var got []*domain.Session
	gw.Subscribe(func(s *domain.Session) { got = append(got, s) })

	if _, err := gw.Login(context.Background(), "alice", "secret"); err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	gw.Logout()

	// nil (initial), session (login), nil (logout)
	if len(got) != 3 {
		t.Fatalf("got %d emissions, want 3: %+v", len(got), got)
	}
	if got[1] == nil || got[1].Username != "alice" {
		t.Errorf("login emission = %+v", got[1])
	}
	if got[2] != nil {
		t.Errorf("logout emission = %+v, want nil", got[2])
	}
}

func TestFailedLoginEmitsNothing(t *testing.T) {
	gw, _ := newTestGateway(t, loginHandler(t))

	var emissions int
	gw.Subscribe(func(*domain.Session) { emissions++ })
	if _, err := gw.Login(context.Background(), "alice", "wrong"); err == nil {
		t.Fatal("Login() error = nil, want failure")
	}
	if emissions != 1 {
		t.Errorf("emissions = %d after failed login, want 1 (initial only)", emissions)
	}
}

func TestLogoutWhileLoggedOutEmitsNothing(t *testing.T) {
	gw, _ := newTestGateway(t, loginHandler(t))

	var emissions int
	gw.Subscribe(func(*domain.Session) { emissions++ })
	gw.Logout()
	if emissions != 1 {
		t.Errorf("emissions = %d, want 1: logout with no session is not a transition", emissions)
	}
}

func TestInitialStateFromStore(t *testing.T) {
	store := session.New(t.TempDir())
	if err := store.Save(7, "alice"); err != nil {
		t.Fatal(err)
	}
	gw := New(client.New("http://localhost:0", zerolog.Nop()), store, zerolog.Nop())

	if !gw.IsAuthenticated() {
		t.Error("IsAuthenticated() = false with a persisted session")
	}
	var got []*domain.Session
	gw.Subscribe(func(s *domain.Session) { got = append(got, s) })
	if len(got) != 1 || got[0] == nil || got[0].Username != "alice" {
		t.Errorf("initial emission = %+v, want persisted session", got)
	}
}
