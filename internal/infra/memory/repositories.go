package memory

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/home-services/internal/domain/booking"
	"github.com/BruksfildServices01/home-services/internal/domain/feedback"
	"github.com/BruksfildServices01/home-services/internal/domain/user"
	"github.com/BruksfildServices01/home-services/internal/models"
)

type UserRepository struct{ s *State }

type BookingRepository struct{ s *State }

type FeedbackRepository struct{ s *State }

func (s *State) Users() *UserRepository         { return &UserRepository{s: s} }
func (s *State) Bookings() *BookingRepository   { return &BookingRepository{s: s} }
func (s *State) Feedbacks() *FeedbackRepository { return &FeedbackRepository{s: s} }

var (
	_ user.Repository     = (*UserRepository)(nil)
	_ booking.Repository  = (*BookingRepository)(nil)
	_ feedback.Repository = (*FeedbackRepository)(nil)
)

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	return r.s.mutate(ctx, func() error {
		for i := range r.s.users {
			if r.s.users[i].Email == u.Email {
				return user.ErrEmailTaken
			}
		}
		r.s.stamp(&u.ID, &u.CreatedAt)
		u.UpdatedAt = u.CreatedAt
		r.s.users = append(r.s.users, *u)
		return nil
	})
}

func (r *UserRepository) Update(ctx context.Context, u *models.User) error {
	return r.s.mutate(ctx, func() error {
		for i := range r.s.users {
			if r.s.users[i].ID == u.ID {
				u.UpdatedAt = r.s.now()
				r.s.users[i] = *u
				return nil
			}
		}
		return user.ErrNotFound
	})
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.ID == id })
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Email == email })
}

func (r *UserRepository) find(match func(*models.User) bool) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for i := range r.s.users {
		if match(&r.s.users[i]) {
			u := r.s.users[i]
			return &u, nil
		}
	}
	return nil, user.ErrNotFound
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (r *BookingRepository) Create(ctx context.Context, b *models.Booking) error {
	return r.s.mutate(ctx, func() error {
		r.s.stamp(&b.ID, &b.CreatedAt)
		b.UpdatedAt = b.CreatedAt
		r.s.bookings = append(r.s.bookings, *b)
		return nil
	})
}

func (r *BookingRepository) Update(ctx context.Context, b *models.Booking) error {
	return r.s.mutate(ctx, func() error {
		for i := range r.s.bookings {
			if r.s.bookings[i].ID == b.ID {
				b.UpdatedAt = r.s.now()
				r.s.bookings[i] = *b
				return nil
			}
		}
		return booking.ErrNotFound
	})
}

func (r *BookingRepository) GetForUser(_ context.Context, id, userID string) (*models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for i := range r.s.bookings {
		b := r.s.bookings[i]
		if b.ID == id && b.UserID == userID {
			return &b, nil
		}
	}
	return nil, booking.ErrNotFound
}

// ListByUser keeps storage order, which is insertion order.
func (r *BookingRepository) ListByUser(_ context.Context, userID string) ([]models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Booking{}
	for _, b := range r.s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *BookingRepository) ListRecentByUser(ctx context.Context, userID string, limit int) ([]models.Booking, error) {
	all, err := r.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Reverse insertion order first so equal timestamps stay newest first.
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// --------------------------------------------------
// Feedback
// --------------------------------------------------

func (r *FeedbackRepository) Create(ctx context.Context, f *models.Feedback) error {
	return r.s.mutate(ctx, func() error {
		r.s.stamp(&f.ID, &f.CreatedAt)
		r.s.feedbacks = append(r.s.feedbacks, *f)
		return nil
	})
}

func (r *FeedbackRepository) ListByUser(_ context.Context, userID string) ([]models.Feedback, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Feedback{}
	for i := len(r.s.feedbacks) - 1; i >= 0; i-- {
		if f := r.s.feedbacks[i]; f.UserID == userID {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
