// Package auth owns login/logout semantics. The Gateway is the only
// writer of the session store; everything else reads session state
// through its queries or the subscription stream.
package auth

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/taskdeck/taskdeck/internal/session"
	"github.com/taskdeck/taskdeck/pkg/client"
	"github.com/taskdeck/taskdeck/pkg/domain"
)

// Gateway performs the auth network calls and mutates the session store.
type Gateway struct {
	client *client.Client
	store  *session.Store
	log    zerolog.Logger

	mu      sync.Mutex
	current *domain.Session        // last published state, for transition dedup
	subs    []func(*domain.Session) // called in registration order on each transition
}

// New builds a gateway over the given client and store. The initial
// stream value is whatever the store holds; no network call is made.
func New(c *client.Client, store *session.Store, log zerolog.Logger) *Gateway {
	return &Gateway{
		client:  c,
		store:   store,
		log:     log,
		current: store.Read(),
	}
}

// Login exchanges credentials for an identity and persists it. On any
// failure the stored session is left untouched and an *AuthError is
// returned for the login form.
func (g *Gateway) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	res, err := g.client.Login(ctx, username, password)
	if err != nil {
		authErr := classifyLoginError(err)
		g.log.Warn().Str("username", username).Str("kind", authErr.Kind.String()).Msg("login failed")
		return nil, authErr
	}

	sess := &domain.Session{UserID: res.UserID, Username: res.Username}
	if err := g.store.Save(sess.UserID, sess.Username); err != nil {
		g.log.Error().Err(err).Msg("persist session")
	}
	g.log.Info().Int("user_id", sess.UserID).Str("username", sess.Username).Msg("logged in")
	g.publish(sess)
	return sess, nil
}

// Logout clears the persisted session. It always succeeds and makes no
// network call: there is no server-side token to invalidate.
func (g *Gateway) Logout() {
	if err := g.store.Clear(); err != nil {
		g.log.Error().Err(err).Msg("clear session")
	}
	g.log.Info().Msg("logged out")
	g.publish(nil)
}

// IsAuthenticated reports whether the store currently holds a session.
func (g *Gateway) IsAuthenticated() bool {
	return g.store.Read() != nil
}

// CurrentSession returns the stored session, or nil.
func (g *Gateway) CurrentSession() *domain.Session {
	return g.store.Read()
}

// CurrentUserID returns the logged-in user's ID, if any.
func (g *Gateway) CurrentUserID() (int, bool) {
	sess := g.store.Read()
	if sess == nil {
		return 0, false
	}
	return sess.UserID, true
}

// CurrentUsername returns the logged-in username, if any.
func (g *Gateway) CurrentUsername() (string, bool) {
	sess := g.store.Read()
	if sess == nil {
		return "", false
	}
	return sess.Username, true
}

// Subscribe registers fn on the session stream. It is invoked
// immediately with the current state, then once per transition, in the
// order transitions occur.
func (g *Gateway) Subscribe(fn func(*domain.Session)) {
	g.mu.Lock()
	g.subs = append(g.subs, fn)
	current := g.current
	g.mu.Unlock()
	fn(current)
}

// publish records the new state and notifies subscribers. A logout with
// no session is not a transition and publishes nothing.
func (g *Gateway) publish(sess *domain.Session) {
	g.mu.Lock()
	if sess == nil && g.current == nil {
		g.mu.Unlock()
		return
	}
	g.current = sess
	subs := make([]func(*domain.Session), len(g.subs))
	copy(subs, g.subs)
	g.mu.Unlock()

	for _, fn := range subs {
		fn(sess)
	}
}
