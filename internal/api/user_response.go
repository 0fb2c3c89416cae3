package api

import (
	"time"

	"clg-navigator/internal/model"
)

// swagger:model api.UserResponse
type UserResponse struct {
	ID             string    `json:"_id" example:"662a1f9e8b3f4c1d2e5a6b7c"`
	GoogleID       string    `json:"google_id" example:"104857203948572039485"`
	Name           string    `json:"name" example:"Alice"`
	Email          string    `json:"email" example:"alice@example.com"`
	ProfilePicture string    `json:"profile_picture" example:"https://lh3.googleusercontent.com/a/photo"`
	Role           string    `json:"role" example:"student"`
	LastLogin      time.Time `json:"last_login" example:"2025-05-01T15:04:05Z"`
	CreatedAt      time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:             u.ID.Hex(),
		GoogleID:       u.GoogleID,
		Name:           u.Name,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
		Role:           u.Role,
		LastLogin:      u.LastLogin,
		CreatedAt:      u.CreatedAt,
	}
}
