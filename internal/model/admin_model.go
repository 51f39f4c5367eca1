package model

import "time"

type AdminUser struct {
	AdminID      int64  `json:"adminid"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`

	FailedAttempts int        `json:"-"`
	LockedUntil    *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
