package audit

import "time"

const (
	ActionUserRegistered    = "user_registered"
	ActionUserLoggedIn      = "user_logged_in"
	ActionBookingCreated    = "booking_created"
	ActionBookingCancelled  = "booking_cancelled"
	ActionFeedbackSubmitted = "feedback_submitted"
	ActionProfileUpdated    = "profile_updated"
	ActionAvatarUpdated     = "avatar_updated"
)

const (
	EntityUser     = "user"
	EntityBooking  = "booking"
	EntityFeedback = "feedback"
)

type Event struct {
	UserID     string    `json:"user_id"`
	Action     string    `json:"action"`
	Entity     string    `json:"entity"`
	EntityID   string    `json:"entity_id"`
	Metadata   any       `json:"metadata,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
