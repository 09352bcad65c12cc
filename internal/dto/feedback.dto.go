package dto

import (
	"time"

	"github.com/BruksfildServices01/home-services/internal/domain/feedback"
	"github.com/BruksfildServices01/home-services/internal/models"
)

type FeedbackDTO struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Service   string    `json:"service"`
	Rating    int       `json:"rating"`
	Stars     string    `json:"stars"`
	Message   string    `json:"message"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

func NewFeedbackDTOs(items []models.Feedback, author *models.User) []FeedbackDTO {
	out := make([]FeedbackDTO, 0, len(items))
	for _, f := range items {
		d := FeedbackDTO{
			ID:        f.ID,
			Email:     f.Email,
			Phone:     f.Phone,
			Service:   f.Service,
			Rating:    f.Rating,
			Stars:     feedback.Stars(f.Rating),
			Message:   f.Message,
			Category:  f.Category,
			CreatedAt: f.CreatedAt,
		}
		if author != nil {
			d.Author = author.Name
		}
		out = append(out, d)
	}
	return out
}

type FeedbackPageDTO struct {
	Stats    feedback.Stats `json:"stats"`
	Feedback []FeedbackDTO  `json:"feedback"`
	Message  string         `json:"message,omitempty"`
}
