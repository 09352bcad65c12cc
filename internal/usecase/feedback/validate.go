package feedback

import (
	"strings"

	"github.com/BruksfildServices01/home-services/internal/httperr"
	"github.com/BruksfildServices01/home-services/internal/validators"
)

const (
	FieldEmail = "email"
	FieldPhone = "phone"

	EventInput = "input"
	EventBlur  = "blur"
)

// FieldState is what the form should show for a field after an event.
type FieldState struct {
	Field string `json:"field"`
	Value string `json:"value"`
	Error string `json:"error"`
	Valid bool   `json:"valid"`
}

// ValidateField runs the as-you-type checks of the feedback form. Phone
// input is reduced to digits immediately; email errors appear on blur and
// clear as soon as the value is valid.
func ValidateField(field, value, event string) (*FieldState, error) {
	switch event {
	case EventInput, EventBlur:
	default:
		return nil, httperr.ErrBusiness("invalid_event")
	}

	switch field {
	case FieldPhone:
		digits := validators.DigitsOnly(value)
		st := &FieldState{Field: field, Value: digits, Valid: validators.IsPhone(digits)}
		if event == EventInput {
			st.Error = validators.PhoneHint(digits)
		} else {
			st.Error = validators.PhoneBlurError(digits)
		}
		return st, nil

	case FieldEmail:
		v := strings.TrimSpace(value)
		st := &FieldState{Field: field, Value: v, Valid: validators.IsEmail(v)}
		if event == EventBlur {
			st.Error = validators.EmailError(v)
		}
		return st, nil
	}

	return nil, httperr.ErrBusiness("invalid_field")
}
