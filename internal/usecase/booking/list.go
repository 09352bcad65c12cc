package booking

import (
	"context"

	domain "github.com/BruksfildServices01/home-services/internal/domain/booking"
	"github.com/BruksfildServices01/home-services/internal/domain/user"
	"github.com/BruksfildServices01/home-services/internal/dto"
)

type ListBookings struct {
	bookings domain.Repository
	users    user.Repository
	codec    domain.PriceCodec
}

func NewListBookings(
	bookings domain.Repository,
	users user.Repository,
	codec domain.PriceCodec,
) *ListBookings {
	return &ListBookings{bookings: bookings, users: users, codec: codec}
}

// Execute renders the session owner's bookings that match filter, in
// insertion order, together with the running total.
func (uc *ListBookings) Execute(
	ctx context.Context,
	sess *user.Session,
	filter string,
) (*dto.BookingListDTO, error) {

	if err := user.Require(sess); err != nil {
		return nil, err
	}

	f, err := domain.ParseFilter(filter)
	if err != nil {
		return nil, err
	}

	all, err := uc.bookings.ListByUser(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	total, err := uc.codec.Total(all)
	if err != nil {
		return nil, err
	}

	owner, _ := uc.users.GetByID(ctx, sess.UserID)

	return &dto.BookingListDTO{
		Filter:   f.String(),
		Bookings: dto.NewBookingDTOs(f.Apply(all), owner),
		Total:    uc.codec.FormatTotal(total),
	}, nil
}

type TotalPrice struct {
	bookings domain.Repository
	codec    domain.PriceCodec
}

func NewTotalPrice(bookings domain.Repository, codec domain.PriceCodec) *TotalPrice {
	return &TotalPrice{bookings: bookings, codec: codec}
}

// Execute sums the prices of every booking that is not cancelled.
func (uc *TotalPrice) Execute(ctx context.Context, sess *user.Session) (string, error) {
	if err := user.Require(sess); err != nil {
		return "", err
	}

	all, err := uc.bookings.ListByUser(ctx, sess.UserID)
	if err != nil {
		return "", err
	}

	total, err := uc.codec.Total(all)
	if err != nil {
		return "", err
	}
	return uc.codec.FormatTotal(total), nil
}
