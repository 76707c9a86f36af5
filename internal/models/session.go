package models

import "time"

// LoginSession is the server-side record behind an issued token. The token
// itself carries only the session id; revocation and expiry are decided
// here, never from anything the client sent.
type LoginSession struct {
	ID        string    `gorm:"primaryKey;size:64"` // UUID
	UserID    uint      `gorm:"index;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	Revoked   bool      `gorm:"index;not null"`
	CreatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}

// Live reports whether the session can still authenticate requests.
func (s *LoginSession) Live(now time.Time) bool {
	return !s.Revoked && now.Before(s.ExpiresAt)
}
