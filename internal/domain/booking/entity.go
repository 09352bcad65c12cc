package booking

import (
	"time"

	"github.com/BruksfildServices01/home-services/internal/models"
)

// Cancel moves a booking to Cancelled. It reports whether anything changed;
// cancelling an already cancelled booking is a no-op.
func Cancel(b *models.Booking, now time.Time) (bool, error) {
	current := Status(b.Status)
	if err := CanCancel(current); err != nil {
		return false, err
	}
	if current == StatusCancelled {
		return false, nil
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return true, nil
}

func Complete(b *models.Booking, now time.Time) error {
	if err := CanComplete(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCompleted)
	b.CompletedAt = &now
	return nil
}
