package entity

import "time"

type User struct {
	Id           uint
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type PasswordResetToken struct {
	Id        uint
	UserId    uint
	Token     string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}
