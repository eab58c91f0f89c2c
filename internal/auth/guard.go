package auth

import "github.com/taskdeck/taskdeck/internal/nav"

// Authenticator is the single query the guard needs from the gateway.
type Authenticator interface {
	IsAuthenticated() bool
}

// Guard gates navigation to protected views. It only renders a verdict;
// redirecting to the login view on denial is the navigator's job.
type Guard struct {
	auth Authenticator
}

// NewGuard creates a guard over the given authenticator.
func NewGuard(a Authenticator) *Guard {
	return &Guard{auth: a}
}

// CanEnter reports whether the target route may be activated right now.
func (g *Guard) CanEnter(route nav.Route) bool {
	if !route.Protected() {
		return true
	}
	return g.auth.IsAuthenticated()
}
