package domain

// SessionUser is the identity snapshot carried inside the session cookie.
// IsFirstLogin and IsBanned are snapshotted at issue time; the ban flag is
// re-validated against live storage by the request pipeline, so a stale
// value here only ever errs towards forcing a re-login.
type SessionUser struct {
	ID           string  `json:"id"`
	Username     string  `json:"username"`
	Email        *string `json:"email"`
	Role         Role    `json:"role"`
	IsFirstLogin bool    `json:"isFirstLogin"`
	IsBanned     bool    `json:"isBanned"`
}

// NewSessionUser builds the cookie snapshot for a user. The password hash
// is deliberately not part of the snapshot.
func NewSessionUser(u *User) SessionUser {
	return SessionUser{
		ID:           u.UserID,
		Username:     u.Username,
		Email:        u.Email,
		Role:         u.Role,
		IsFirstLogin: u.IsFirstLogin,
		IsBanned:     u.IsBanned,
	}
}
