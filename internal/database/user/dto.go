package user

import (
	"time"

	"github.com/daygrid/calendar-backend/internal/model"
)

type userDTO struct {
	ID           int64
	Email        string
	PasswordHash string
	DisplayName  string
	Photo        string
	CreatedAt    time.Time
	LastLoginAt  time.Time
}

func mapToUser(dto *userDTO) *model.User {
	return &model.User{
		ID:          dto.ID,
		CreatedAt:   dto.CreatedAt,
		LastLoginAt: dto.LastLoginAt,
		UserCreate: model.UserCreate{
			Email:        dto.Email,
			PasswordHash: dto.PasswordHash,
			DisplayName:  dto.DisplayName,
			Photo:        dto.Photo,
		},
	}
}
