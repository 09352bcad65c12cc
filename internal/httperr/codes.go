package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type entry struct {
	status  int
	message string
}

var codes = map[string]entry{
	"weak_password":            {http.StatusBadRequest, "Password must be at least 6 characters long"},
	"email_already_registered": {http.StatusBadRequest, "Email already registered. Please login."},
	"invalid_email":            {http.StatusBadRequest, "Please enter a valid email address"},
	"invalid_email_domain":     {http.StatusBadRequest, "The email domain does not seem to exist"},
	"invalid_phone":            {http.StatusBadRequest, "Phone number must be exactly 10 digits"},
	"name_required":            {http.StatusBadRequest, "Please enter your name"},
	"invalid_credentials":      {http.StatusUnauthorized, "Invalid email or password"},
	"login_required":           {http.StatusUnauthorized, "Please login first"},
	"no_open_dialog":           {http.StatusConflict, "Please choose a service first"},
	"date_required":            {http.StatusBadRequest, "Please choose a date"},
	"invalid_date":             {http.StatusBadRequest, "Date must be in YYYY-MM-DD format"},
	"date_in_past":             {http.StatusBadRequest, "Please choose today or a later date"},
	"invalid_time":             {http.StatusBadRequest, "Time must be in HH:MM format"},
	"address_required":         {http.StatusBadRequest, "Please enter the service address"},
	"service_required":         {http.StatusBadRequest, "Please choose a service"},
	"invalid_price":            {http.StatusBadRequest, "Price is not valid"},
	"price_required":           {http.StatusBadRequest, "Please choose a service price"},
	"time_required":            {http.StatusBadRequest, "Please choose a time"},
	"invalid_filter":           {http.StatusBadRequest, "Unknown booking filter"},
	"confirmation_required":    {http.StatusConflict, "Are you sure you want to cancel this booking?"},
	"invalid_state":            {http.StatusConflict, "This booking can no longer be cancelled"},
	"rating_required":          {http.StatusBadRequest, "Please select a rating"},
	"invalid_rating":           {http.StatusBadRequest, "Rating must be between 1 and 5"},
	"invalid_avatar_url":       {http.StatusBadRequest, "Please enter a valid image URL"},
	"invalid_field":            {http.StatusBadRequest, "Unknown form field"},
	"invalid_event":            {http.StatusBadRequest, "Unknown form event"},
	"field_required":           {http.StatusBadRequest, "Please choose a form field"},
	"event_required":           {http.StatusBadRequest, "Please choose a form event"},
	"invalid_request":          {http.StatusBadRequest, "Please check the highlighted fields"},
	"unknown_page":             {http.StatusNotFound, "Page not found"},
	"feedback_disabled":        {http.StatusNotFound, "Feedback is not available"},
}

// Known reports whether code has an entry in the table.
func Known(code string) bool {
	_, ok := codes[code]
	return ok
}

// FromBusiness maps a business code to its HTTP status and message.
// Unknown codes are treated as bad requests.
func FromBusiness(code string) (int, string) {
	if e, ok := codes[code]; ok {
		return e.status, e.message
	}
	return http.StatusBadRequest, code
}

// Respond writes err as an HTTPError. It reports false for errors that are
// not business errors so the caller can log and fall back to Internal.
func Respond(c *gin.Context, err error) bool {
	code, ok := CodeOf(err)
	if !ok {
		return false
	}

	status, message := FromBusiness(code)
	Write(c, status, code, message)
	return true
}
