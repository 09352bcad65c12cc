package booking

import (
	"strings"

	"github.com/BruksfildServices01/home-services/internal/httperr"
	"github.com/BruksfildServices01/home-services/internal/models"
)

// Filter selects bookings by status. The zero value matches everything.
type Filter struct {
	status Status
}

var FilterAll = Filter{}

func ParseFilter(raw string) (Filter, error) {
	v := strings.TrimSpace(raw)
	if v == "" || strings.EqualFold(v, "all") {
		return FilterAll, nil
	}

	for _, s := range []Status{StatusConfirmed, StatusCancelled, StatusCompleted} {
		if strings.EqualFold(v, string(s)) {
			return Filter{status: s}, nil
		}
	}

	return Filter{}, httperr.ErrBusiness("invalid_filter")
}

func (f Filter) String() string {
	if f.status == "" {
		return "all"
	}
	return string(f.status)
}

func (f Filter) Matches(b *models.Booking) bool {
	return f.status == "" || Status(b.Status) == f.status
}

// Apply keeps the input order.
func (f Filter) Apply(bookings []models.Booking) []models.Booking {
	out := make([]models.Booking, 0, len(bookings))
	for i := range bookings {
		if f.Matches(&bookings[i]) {
			out = append(out, bookings[i])
		}
	}
	return out
}
