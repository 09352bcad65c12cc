package feedback

import (
	"strings"

	"github.com/BruksfildServices01/home-services/internal/httperr"
)

const (
	MinRating = 1
	MaxRating = 5

	DefaultService = "General"
)

// ValidateRating treats 0 as "nothing selected".
func ValidateRating(r int) error {
	if r == 0 {
		return httperr.ErrBusiness("rating_required")
	}
	if r < MinRating || r > MaxRating {
		return httperr.ErrBusiness("invalid_rating")
	}
	return nil
}

// Stars renders r on a fixed five-glyph scale.
func Stars(r int) string {
	if r < 0 {
		r = 0
	}
	if r > MaxRating {
		r = MaxRating
	}
	return strings.Repeat("★", r) + strings.Repeat("☆", MaxRating-r)
}
