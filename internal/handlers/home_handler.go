package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/home-services/internal/logging"
	"github.com/BruksfildServices01/home-services/internal/middleware"
	bookinguc "github.com/BruksfildServices01/home-services/internal/usecase/booking"
)

type HomeHandler struct {
	home   *bookinguc.LoadHome
	open   *bookinguc.OpenDialog
	close  *bookinguc.CloseDialog
	submit *bookinguc.SubmitBooking
	logger logging.Logger
}

func NewHomeHandler(
	home *bookinguc.LoadHome,
	open *bookinguc.OpenDialog,
	close *bookinguc.CloseDialog,
	submit *bookinguc.SubmitBooking,
	logger logging.Logger,
) *HomeHandler {
	return &HomeHandler{home: home, open: open, close: close, submit: submit, logger: logger}
}

type OpenDialogRequest struct {
	Service string `json:"service" binding:"required"`
	Price   int    `json:"price" binding:"required,gt=0"`
}

type SubmitBookingRequest struct {
	Address string `json:"address" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
}

func (h *HomeHandler) Init(c *gin.Context) {
	view, err := h.home.Execute(c.Request.Context(), middleware.SessionFrom(c))
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *HomeHandler) OpenDialog(c *gin.Context) {
	var req OpenDialogRequest
	if !bindJSON(c, &req) {
		return
	}

	draft, err := h.open.Execute(c.Request.Context(), middleware.SessionFrom(c), req.Service, req.Price)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *HomeHandler) CloseDialog(c *gin.Context) {
	if err := h.close.Execute(c.Request.Context(), middleware.SessionFrom(c)); err != nil {
		fail(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HomeHandler) Submit(c *gin.Context) {
	var req SubmitBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.submit.Execute(c.Request.Context(), middleware.SessionFrom(c), bookinguc.SubmitInput{
		Address: req.Address,
		Date:    req.Date,
		Time:    req.Time,
	})
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}
