package booking

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/home-services/internal/audit"
	domain "github.com/BruksfildServices01/home-services/internal/domain/booking"
	"github.com/BruksfildServices01/home-services/internal/domain/user"
	"github.com/BruksfildServices01/home-services/internal/dto"
	"github.com/BruksfildServices01/home-services/internal/httperr"
	"github.com/BruksfildServices01/home-services/internal/metrics"
	"github.com/BruksfildServices01/home-services/internal/models"
	"github.com/BruksfildServices01/home-services/internal/pages"
	"github.com/BruksfildServices01/home-services/internal/sessionstore"
	"github.com/BruksfildServices01/home-services/internal/timezone"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type SubmitInput struct {
	Address string
	Date    string
	Time    string
}

type SubmitResult struct {
	Booking  dto.BookingDTO `json:"booking"`
	Message  string         `json:"message"`
	Redirect pages.Page     `json:"redirect"`
}

// ======================================================
// USE CASE
// ======================================================

type SubmitBooking struct {
	bookings domain.Repository
	users    user.Repository
	sessions *sessionstore.Store
	audit    *audit.Dispatcher
	tz       string
	now      func() time.Time
}

func NewSubmitBooking(
	bookings domain.Repository,
	users user.Repository,
	sessions *sessionstore.Store,
	audit *audit.Dispatcher,
	tz string,
) *SubmitBooking {
	return &SubmitBooking{
		bookings: bookings,
		users:    users,
		sessions: sessions,
		audit:    audit,
		tz:       tz,
		now:      time.Now,
	}
}

func (uc *SubmitBooking) Execute(
	ctx context.Context,
	sess *user.Session,
	in SubmitInput,
) (*SubmitResult, error) {

	if err := user.Require(sess); err != nil {
		return nil, err
	}

	draft, err := uc.sessions.LoadDraft(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, httperr.ErrBusiness("no_open_dialog")
	}

	// --------------------------------------------------
	// Form
	// --------------------------------------------------
	address := strings.TrimSpace(in.Address)
	date := strings.TrimSpace(in.Date)
	at := strings.TrimSpace(in.Time)

	if address == "" {
		return nil, httperr.ErrBusiness("address_required")
	}
	if date == "" {
		return nil, httperr.ErrBusiness("date_required")
	}
	if _, err := time.Parse(timezone.DateLayout, date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	now := uc.now()
	minDate := timezone.Today(now, uc.tz)
	if draft.MinDate > minDate {
		minDate = draft.MinDate
	}
	if date < minDate {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	if _, err := time.Parse(timezone.TimeLayout, at); err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	// --------------------------------------------------
	// Create
	// --------------------------------------------------
	b := &models.Booking{
		UserID:    sess.UserID,
		Service:   draft.Service,
		Price:     draft.Price,
		Address:   address,
		Date:      date,
		Time:      at,
		Status:    string(domain.InitialStatus()),
		CreatedAt: now,
	}
	if err := uc.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if err := uc.sessions.DeleteDraft(ctx, sess.ID); err != nil {
		return nil, err
	}

	metrics.IncBookingCreated()
	uc.audit.Dispatch(audit.Event{
		UserID:   sess.UserID,
		Action:   audit.ActionBookingCreated,
		Entity:   audit.EntityBooking,
		EntityID: b.ID,
		Metadata: map[string]string{"service": b.Service, "price": b.Price, "date": b.Date},
	})

	// Customer details are display-only; a failed lookup leaves them empty.
	owner, _ := uc.users.GetByID(ctx, sess.UserID)

	return &SubmitResult{
		Booking:  dto.NewBookingDTO(*b, owner),
		Message:  "Booking confirmed successfully!",
		Redirect: pages.Bookings,
	}, nil
}
