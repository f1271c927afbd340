package auth

import "context"

// User is the signed-in identity the rest of the system sees
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

// State is delivered to auth state change subscribers on every transition
type State struct {
	User      *User `json:"user"`
	IsLoading bool  `json:"is_loading"`
}

// Callback receives auth state transitions
type Callback func(State)

// Provider is the opaque auth collaborator. The core never sees the wire
// protocol; it only exchanges tokens for users.
type Provider interface {
	// Login resolves a username to a user and opens a session, returning
	// the session token.
	Login(ctx context.Context, username string) (*User, string, error)
	// Logout closes the session for a token.
	Logout(ctx context.Context, token string) error
	// UserForToken resolves a session token, nil user if unknown/expired.
	UserForToken(ctx context.Context, token string) (*User, error)
}
