package domain

import "time"

// Session is the server-held authentication state issued at login.
// Role and TempPassword are a snapshot of the credential record taken at
// login time; they are not re-derived per request. The only mutation after
// issue is clearing TempPassword when the user completes a password change.
type Session struct {
	UserID       string    `json:"user_id"`
	Role         string    `json:"user_type"`
	TempPassword bool      `json:"senha_temporaria"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsAdmin reports whether the session belongs to an administrator.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
