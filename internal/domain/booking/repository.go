package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/home-services/internal/models"
)

var ErrNotFound = errors.New("booking not found")

type Repository interface {
	Create(ctx context.Context, b *models.Booking) error
	Update(ctx context.Context, b *models.Booking) error

	// GetForUser returns ErrNotFound when the booking does not exist or
	// belongs to someone else.
	GetForUser(ctx context.Context, id string, userID string) (*models.Booking, error)

	// ListByUser returns bookings in insertion order.
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)

	// ListRecentByUser returns at most limit bookings, newest first.
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]models.Booking, error)
}
