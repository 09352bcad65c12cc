package sessionstore

import "time"

// SchemaVersion is bumped whenever the persisted layout changes.
const SchemaVersion = 1

type UserRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"passwordHash"`
	Address      string    `json:"address"`
	AvatarURL    string    `json:"avatarUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type BookingRecord struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Service     string     `json:"service"`
	Price       string     `json:"price"`
	Address     string     `json:"address"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Status      string     `json:"status"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type FeedbackRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Service   string    `json:"service"`
	Rating    int       `json:"rating"`
	Message   string    `json:"message"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// Snapshot is the whole application state. A nil slice means the
// collection was not loaded and is left alone.
type Snapshot struct {
	Users     []UserRecord
	Bookings  []BookingRecord
	Feedbacks []FeedbackRecord
}

// Draft is the open booking dialog of one session.
type Draft struct {
	Service  string    `json:"service"`
	Price    string    `json:"price"`
	MinDate  string    `json:"minDate"`
	OpenedAt time.Time `json:"openedAt"`
}
