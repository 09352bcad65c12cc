package profile

import (
	"context"

	"github.com/BruksfildServices01/home-services/internal/domain/booking"
	"github.com/BruksfildServices01/home-services/internal/domain/user"
	"github.com/BruksfildServices01/home-services/internal/dto"
)

const recentActivityLimit = 5

type LoadProfile struct {
	users    user.Repository
	bookings booking.Repository
}

func NewLoadProfile(users user.Repository, bookings booking.Repository) *LoadProfile {
	return &LoadProfile{users: users, bookings: bookings}
}

func (uc *LoadProfile) Execute(ctx context.Context, sess *user.Session) (*dto.ProfileDTO, error) {
	if err := user.Require(sess); err != nil {
		return nil, err
	}

	u, err := uc.users.GetByID(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	out := dto.NewProfileDTO(u)
	return &out, nil
}

// Stats counts all bookings and the completed ones.
func (uc *LoadProfile) Stats(ctx context.Context, sess *user.Session) (*dto.ProfileStatsDTO, error) {
	if err := user.Require(sess); err != nil {
		return nil, err
	}

	all, err := uc.bookings.ListByUser(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	out := &dto.ProfileStatsDTO{TotalBookings: len(all)}
	for _, b := range all {
		if booking.Status(b.Status) == booking.StatusCompleted {
			out.CompletedBookings++
		}
	}
	return out, nil
}

func (uc *LoadProfile) RecentActivity(ctx context.Context, sess *user.Session) ([]dto.ActivityDTO, error) {
	if err := user.Require(sess); err != nil {
		return nil, err
	}

	recent, err := uc.bookings.ListRecentByUser(ctx, sess.UserID, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	return dto.NewActivityDTOs(recent), nil
}
