package models

import "time"

// User represents an application account. Presence reads it to validate
// identities; only LastSeen is updated as a login side effect.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:64;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Email        string `gorm:"size:128"`
	Role         string `gorm:"size:16;default:user"` // user / admin

	// AccessGranted gates the verified area of the portal. It is flipped
	// by an admin, never by the user themselves.
	AccessGranted bool       `gorm:"not null;default:false"`
	LastSeen      *time.Time `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
