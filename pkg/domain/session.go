package domain

// Session is the locally persisted identity of the logged-in user.
// A session exists only when both fields are known; there is no token.
type Session struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
}
