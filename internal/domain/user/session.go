package user

import (
	"time"

	"github.com/BruksfildServices01/home-services/internal/httperr"
	"github.com/BruksfildServices01/home-services/internal/models"
	"github.com/google/uuid"
)

// Session is the reduced identity of the logged-in user, kept in the
// session store under its own id.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func NewSession(u *models.User, now time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: now,
	}
}

// Refresh copies the editable fields of u onto the projection.
func (s *Session) Refresh(u *models.User) {
	s.Name = u.Name
	s.Phone = u.Phone
}

// Require fails with login_required when there is no active session.
func Require(s *Session) error {
	if s == nil || s.UserID == "" {
		return httperr.ErrBusiness("login_required")
	}
	return nil
}
