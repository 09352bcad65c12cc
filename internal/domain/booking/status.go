package booking

import "github.com/BruksfildServices01/home-services/internal/httperr"

type Status string

const (
	StatusConfirmed Status = "Confirmed"
	StatusCancelled Status = "Cancelled"
	// StatusCompleted is valid but no operation sets it yet.
	StatusCompleted Status = "Completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

func InitialStatus() Status {
	return StatusConfirmed
}

// CanCancel accepts confirmed bookings and, idempotently, cancelled ones.
func CanCancel(current Status) error {
	switch current {
	case StatusConfirmed, StatusCancelled:
		return nil
	}
	return httperr.ErrBusiness("invalid_state")
}

func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
