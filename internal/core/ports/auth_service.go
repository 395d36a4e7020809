package ports

import "context"

// LoginResult is returned to the transport layer after a successful login so
// the client can redirect appropriately.
type LoginResult struct {
	SessionID    string
	Role         string
	TempPassword bool
}

// ChangePasswordInput carries a password-change request for the user bound to
// an active session. When TempFlow is true the current password is not
// checked: the forced flow exists precisely so a user holding a provisional
// secret can set a new one.
type ChangePasswordInput struct {
	SessionID       string
	UserID          string
	NewPassword     string
	CurrentPassword string
	TempFlow        bool
}

// AuthService implements the login/logout/password-change flows.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
	ChangePassword(ctx context.Context, in ChangePasswordInput) error
}
