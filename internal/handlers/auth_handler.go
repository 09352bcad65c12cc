package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/home-services/internal/logging"
	"github.com/BruksfildServices01/home-services/internal/middleware"
	authuc "github.com/BruksfildServices01/home-services/internal/usecase/auth"
)

type AuthHandler struct {
	register *authuc.Register
	login    *authuc.Login
	logout   *authuc.Logout
	logger   logging.Logger
}

func NewAuthHandler(
	register *authuc.Register,
	login *authuc.Login,
	logout *authuc.Logout,
	logger logging.Logger,
) *AuthHandler {
	return &AuthHandler{register: register, login: login, logout: logout, logger: logger}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"looseemail"`
	Phone    string `json:"phone" binding:"phone10=optional"`
	Password string `json:"password" binding:"min=6"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.register.Execute(c.Request.Context(), authuc.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	redirect, err := h.logout.Execute(c.Request.Context(), sess.ID)
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"redirect": redirect})
}
