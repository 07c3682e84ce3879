package entity

// UserLoginData is the identity carried in a verified access token.
type UserLoginData struct {
	ID       string
	Email    string
	Username string
}

// AuthContext travels with every conversation call instead of being read
// from ambient state: the session key decides which transcript is active and
// the raw bearer token is forwarded verbatim to the chat-log collaborator.
type AuthContext struct {
	// SessionKey identifies the caller: the user id from a verified token,
	// or an anonymous fingerprint when no token was presented.
	SessionKey string
	// Token is the raw bearer token, empty for anonymous callers.
	Token string
}
