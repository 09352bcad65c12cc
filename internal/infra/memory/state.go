package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/home-services/internal/models"
	"github.com/BruksfildServices01/home-services/internal/sessionstore"
)

// State owns the three collections and mirrors them into the session
// store after every mutation.
type State struct {
	mu    sync.RWMutex
	store *sessionstore.Store
	now   func() time.Time

	users     []models.User
	bookings  []models.Booking
	feedbacks []models.Feedback
}

// NewState restores any previously saved collections from store.
func NewState(ctx context.Context, store *sessionstore.Store) (*State, error) {
	s := &State{store: store, now: time.Now}

	var snap sessionstore.Snapshot
	if err := store.Load(ctx, &snap); err != nil {
		return nil, err
	}

	for _, r := range snap.Users {
		s.users = append(s.users, userFromRecord(r))
	}
	for _, r := range snap.Bookings {
		s.bookings = append(s.bookings, bookingFromRecord(r))
	}
	for _, r := range snap.Feedbacks {
		s.feedbacks = append(s.feedbacks, feedbackFromRecord(r))
	}
	return s, nil
}

// mutate runs fn under the write lock and persists when it succeeds.
func (s *State) mutate(ctx context.Context, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(); err != nil {
		return err
	}
	return s.store.Save(ctx, s.snapshotLocked())
}

func (s *State) snapshotLocked() *sessionstore.Snapshot {
	snap := &sessionstore.Snapshot{
		Users:     make([]sessionstore.UserRecord, 0, len(s.users)),
		Bookings:  make([]sessionstore.BookingRecord, 0, len(s.bookings)),
		Feedbacks: make([]sessionstore.FeedbackRecord, 0, len(s.feedbacks)),
	}
	for _, u := range s.users {
		snap.Users = append(snap.Users, userToRecord(u))
	}
	for _, b := range s.bookings {
		snap.Bookings = append(snap.Bookings, bookingToRecord(b))
	}
	for _, f := range s.feedbacks {
		snap.Feedbacks = append(snap.Feedbacks, feedbackToRecord(f))
	}
	return snap
}

func (s *State) stamp(id *string, created *time.Time) {
	if *id == "" {
		*id = uuid.NewString()
	}
	if created.IsZero() {
		*created = s.now()
	}
}

func userToRecord(u models.User) sessionstore.UserRecord {
	return sessionstore.UserRecord{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
		PasswordHash: u.PasswordHash,
		Address:      u.Address,
		AvatarURL:    u.AvatarURL,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func userFromRecord(r sessionstore.UserRecord) models.User {
	return models.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		PasswordHash: r.PasswordHash,
		Address:      r.Address,
		AvatarURL:    r.AvatarURL,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func bookingToRecord(b models.Booking) sessionstore.BookingRecord {
	return sessionstore.BookingRecord{
		ID:          b.ID,
		UserID:      b.UserID,
		Service:     b.Service,
		Price:       b.Price,
		Address:     b.Address,
		Date:        b.Date,
		Time:        b.Time,
		Status:      b.Status,
		CancelledAt: b.CancelledAt,
		CompletedAt: b.CompletedAt,
		CreatedAt:   b.CreatedAt,
	}
}

func bookingFromRecord(r sessionstore.BookingRecord) models.Booking {
	return models.Booking{
		ID:          r.ID,
		UserID:      r.UserID,
		Service:     r.Service,
		Price:       r.Price,
		Address:     r.Address,
		Date:        r.Date,
		Time:        r.Time,
		Status:      r.Status,
		CancelledAt: r.CancelledAt,
		CompletedAt: r.CompletedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.CreatedAt,
	}
}

func feedbackToRecord(f models.Feedback) sessionstore.FeedbackRecord {
	return sessionstore.FeedbackRecord{
		ID:        f.ID,
		UserID:    f.UserID,
		Email:     f.Email,
		Phone:     f.Phone,
		Service:   f.Service,
		Rating:    f.Rating,
		Message:   f.Message,
		Category:  f.Category,
		CreatedAt: f.CreatedAt,
	}
}

func feedbackFromRecord(r sessionstore.FeedbackRecord) models.Feedback {
	return models.Feedback{
		ID:        r.ID,
		UserID:    r.UserID,
		Email:     r.Email,
		Phone:     r.Phone,
		Service:   r.Service,
		Rating:    r.Rating,
		Message:   r.Message,
		Category:  r.Category,
		CreatedAt: r.CreatedAt,
	}
}
