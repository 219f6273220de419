package domain

import "time"

// User is the persisted account record. The password hash never crosses the
// API boundary: it is excluded from JSON and from session snapshots.
type User struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	PasswordHash      string    `json:"-"`
	Country           string    `json:"country"`
	PreferredCurrency string    `json:"preferred_currency"`
	CreatedAt         time.Time `json:"created_at"`
	LastLogin         time.Time `json:"last_login"`
}

// Session is the denormalized identity snapshot handed to the client after a
// successful sign-up or sign-in. It is a point-in-time copy: profile changes
// after issuance are not reflected until the next sign-in.
type Session struct {
	UserID            string    `json:"id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	PreferredCurrency string    `json:"preferred_currency"`
	Country           string    `json:"country"`
	LastLogin         time.Time `json:"last_login"`
}

// NewSession builds the session snapshot for a user.
func NewSession(u *User) *Session {
	return &Session{
		UserID:            u.ID,
		Email:             u.Email,
		Name:              u.Name,
		PreferredCurrency: u.PreferredCurrency,
		Country:           u.Country,
		LastLogin:         u.LastLogin,
	}
}
