package booking

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/home-services/internal/audit"
	domain "github.com/BruksfildServices01/home-services/internal/domain/booking"
	"github.com/BruksfildServices01/home-services/internal/domain/user"
	"github.com/BruksfildServices01/home-services/internal/dto"
	"github.com/BruksfildServices01/home-services/internal/httperr"
	"github.com/BruksfildServices01/home-services/internal/metrics"
)

type CancelInput struct {
	BookingID string
	Confirmed bool
	Filter    string
}

type CancelBooking struct {
	bookings domain.Repository
	list     *ListBookings
	audit    *audit.Dispatcher
	now      func() time.Time
}

func NewCancelBooking(
	bookings domain.Repository,
	list *ListBookings,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		bookings: bookings,
		list:     list,
		audit:    audit,
		now:      time.Now,
	}
}

// Execute cancels one of the session owner's bookings and re-renders the
// list. Every call must carry a fresh confirmation. Unknown ids and other
// users' bookings are ignored.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	sess *user.Session,
	in CancelInput,
) (*dto.BookingListDTO, error) {

	if err := user.Require(sess); err != nil {
		return nil, err
	}
	if !in.Confirmed {
		return nil, httperr.ErrBusiness("confirmation_required")
	}
	if _, err := domain.ParseFilter(in.Filter); err != nil {
		return nil, err
	}

	changed, err := uc.cancel(ctx, sess, in.BookingID)
	if err != nil {
		return nil, err
	}

	out, err := uc.list.Execute(ctx, sess, in.Filter)
	if err != nil {
		return nil, err
	}
	if changed {
		out.Message = "Booking cancelled successfully"
	}
	return out, nil
}

func (uc *CancelBooking) cancel(ctx context.Context, sess *user.Session, id string) (bool, error) {
	b, err := uc.bookings.GetForUser(ctx, id, sess.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	changed, err := domain.Cancel(b, uc.now())
	if err != nil || !changed {
		return false, err
	}

	if err := uc.bookings.Update(ctx, b); err != nil {
		return false, err
	}

	metrics.IncBookingCancelled()
	uc.audit.Dispatch(audit.Event{
		UserID:   sess.UserID,
		Action:   audit.ActionBookingCancelled,
		Entity:   audit.EntityBooking,
		EntityID: b.ID,
	})
	return true, nil
}
