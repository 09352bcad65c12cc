package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/home-services/internal/logging"
	"github.com/BruksfildServices01/home-services/internal/middleware"
	feedbackuc "github.com/BruksfildServices01/home-services/internal/usecase/feedback"
)

type FeedbackHandler struct {
	page   *feedbackuc.LoadPage
	submit *feedbackuc.SubmitFeedback
	logger logging.Logger
}

func NewFeedbackHandler(
	page *feedbackuc.LoadPage,
	submit *feedbackuc.SubmitFeedback,
	logger logging.Logger,
) *FeedbackHandler {
	return &FeedbackHandler{page: page, submit: submit, logger: logger}
}

type SubmitFeedbackRequest struct {
	Email    string `json:"email" binding:"looseemail"`
	Phone    string `json:"phone" binding:"phone10"`
	Service  string `json:"service"`
	Rating   int    `json:"rating"`
	Message  string `json:"message"`
	Category string `json:"category"`
}

type ValidateFieldRequest struct {
	Field string `json:"field" binding:"required,oneof=email phone"`
	Value string `json:"value"`
	Event string `json:"event" binding:"required,oneof=input blur"`
}

func (h *FeedbackHandler) List(c *gin.Context) {
	out, err := h.page.Execute(c.Request.Context(), middleware.SessionFrom(c))
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *FeedbackHandler) Stats(c *gin.Context) {
	stats, err := h.page.Stats(c.Request.Context(), middleware.SessionFrom(c))
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req SubmitFeedbackRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.submit.Execute(c.Request.Context(), middleware.SessionFrom(c), feedbackuc.SubmitInput{
		Email:    req.Email,
		Phone:    req.Phone,
		Service:  req.Service,
		Rating:   req.Rating,
		Message:  req.Message,
		Category: req.Category,
	})
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *FeedbackHandler) Validate(c *gin.Context) {
	var req ValidateFieldRequest
	if !bindJSON(c, &req) {
		return
	}

	st, err := feedbackuc.ValidateField(req.Field, req.Value, req.Event)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, st)
}
