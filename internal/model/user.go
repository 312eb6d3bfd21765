package model

import "time"

type UserCreate struct {
	Email        string
	PasswordHash string
	DisplayName  string
	Photo        string
}

type User struct {
	ID          int64
	CreatedAt   time.Time
	LastLoginAt time.Time
	UserCreate
}
