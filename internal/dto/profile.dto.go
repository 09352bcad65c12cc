package dto

import (
	"github.com/BruksfildServices01/home-services/internal/domain/user"
	"github.com/BruksfildServices01/home-services/internal/models"
)

type ProfileDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Initial   string `json:"initial"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

func NewProfileDTO(u *models.User) ProfileDTO {
	return ProfileDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Initial:   user.Initial(u.Name),
		Phone:     u.Phone,
		Address:   u.Address,
		AvatarURL: u.AvatarURL,
	}
}

type ProfileStatsDTO struct {
	TotalBookings     int `json:"total_bookings"`
	CompletedBookings int `json:"completed_bookings"`
}
