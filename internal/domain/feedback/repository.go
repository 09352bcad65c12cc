package feedback

import (
	"context"

	"github.com/BruksfildServices01/home-services/internal/models"
)

type Repository interface {
	Create(ctx context.Context, f *models.Feedback) error

	// ListByUser returns feedback newest first.
	ListByUser(ctx context.Context, userID string) ([]models.Feedback, error)
}
