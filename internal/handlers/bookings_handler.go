package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/home-services/internal/logging"
	"github.com/BruksfildServices01/home-services/internal/middleware"
	bookinguc "github.com/BruksfildServices01/home-services/internal/usecase/booking"
)

type BookingsHandler struct {
	list   *bookinguc.ListBookings
	cancel *bookinguc.CancelBooking
	total  *bookinguc.TotalPrice
	logger logging.Logger
}

func NewBookingsHandler(
	list *bookinguc.ListBookings,
	cancel *bookinguc.CancelBooking,
	total *bookinguc.TotalPrice,
	logger logging.Logger,
) *BookingsHandler {
	return &BookingsHandler{list: list, cancel: cancel, total: total, logger: logger}
}

type CancelBookingRequest struct {
	Confirm bool   `json:"confirm"`
	Filter  string `json:"filter"`
}

// GET /api/bookings?filter=all|Confirmed|Cancelled|Completed
func (h *BookingsHandler) List(c *gin.Context) {
	out, err := h.list.Execute(c.Request.Context(), middleware.SessionFrom(c), c.Query("filter"))
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *BookingsHandler) Cancel(c *gin.Context) {
	var req CancelBookingRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	out, err := h.cancel.Execute(c.Request.Context(), middleware.SessionFrom(c), bookinguc.CancelInput{
		BookingID: c.Param("id"),
		Confirmed: req.Confirm,
		Filter:    req.Filter,
	})
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *BookingsHandler) Total(c *gin.Context) {
	total, err := h.total.Execute(c.Request.Context(), middleware.SessionFrom(c))
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}
