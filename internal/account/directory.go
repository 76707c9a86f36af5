// Package account adapts the gorm user table to the presence Directory.
package account

import (
	"errors"
	"time"

	"github.com/ME-Tii/customer-list/internal/models"
	"github.com/ME-Tii/customer-list/internal/presence"

	"gorm.io/gorm"
)

type Directory struct {
	DB *gorm.DB
}

func NewDirectory(db *gorm.DB) *Directory {
	return &Directory{DB: db}
}

func (d *Directory) Find(username string) (*presence.Account, error) {
	var user models.User
	err := d.DB.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &presence.Account{
		Username:      user.Username,
		AccessGranted: user.AccessGranted,
	}, nil
}

func (d *Directory) MarkSeen(username string, when time.Time) error {
	return d.DB.Model(&models.User{}).
		Where("username = ?", username).
		Update("last_seen", when).Error
}
