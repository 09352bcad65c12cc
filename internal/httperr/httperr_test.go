package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestIsBusiness(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", ErrBusiness("invalid_state"))

	assert.True(t, IsBusiness(err, "invalid_state"))
	assert.False(t, IsBusiness(err, "invalid_filter"))
	assert.False(t, IsBusiness(errors.New("plain"), "invalid_state"))
}

func TestRespond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	assert.True(t, Respond(c, ErrBusiness("email_already_registered")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error_code":"email_already_registered","message":"Email already registered. Please login."}`, w.Body.String())

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	assert.False(t, Respond(c, errors.New("db down")))
	assert.Equal(t, 0, w.Body.Len())
}

func TestFromBusiness_Unknown(t *testing.T) {
	status, msg := FromBusiness("something_new")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "something_new", msg)
}

func TestKnown_BindingCodes(t *testing.T) {
	for _, code := range []string{
		"name_required", "service_required", "price_required", "address_required",
		"date_required", "time_required", "field_required", "event_required",
		"invalid_price", "invalid_field", "invalid_event", "invalid_request",
	} {
		assert.True(t, Known(code), code)
		_, msg := FromBusiness(code)
		assert.NotEqual(t, code, msg, code)
	}
	assert.False(t, Known("something_new"))
}
