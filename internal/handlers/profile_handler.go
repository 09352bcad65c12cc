package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/home-services/internal/httpresp"
	"github.com/BruksfildServices01/home-services/internal/logging"
	"github.com/BruksfildServices01/home-services/internal/middleware"
	profileuc "github.com/BruksfildServices01/home-services/internal/usecase/profile"
)

type ProfileHandler struct {
	load   *profileuc.LoadProfile
	update *profileuc.UpdateProfile
	avatar *profileuc.UpdateAvatar
	logger logging.Logger
}

func NewProfileHandler(
	load *profileuc.LoadProfile,
	update *profileuc.UpdateProfile,
	avatar *profileuc.UpdateAvatar,
	logger logging.Logger,
) *ProfileHandler {
	return &ProfileHandler{load: load, update: update, avatar: avatar, logger: logger}
}

type UpdateProfileRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"phone10=optional"`
	Address string `json:"address"`
}

type UpdateAvatarRequest struct {
	AvatarURL string `json:"avatar_url"`
}

// GET /api/profile returns the profile with its booking stats.
func (h *ProfileHandler) Load(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.SessionFrom(c)

	profile, err := h.load.Execute(ctx, sess)
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	stats, err := h.load.Stats(ctx, sess)
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile, "stats": stats})
}

func (h *ProfileHandler) Activity(c *gin.Context) {
	items, err := h.load.RecentActivity(c.Request.Context(), middleware.SessionFrom(c))
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	httpresp.List(c, items)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.update.Execute(c.Request.Context(), middleware.SessionFrom(c), profileuc.UpdateInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ProfileHandler) Avatar(c *gin.Context) {
	var req UpdateAvatarRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.avatar.Execute(c.Request.Context(), middleware.SessionFrom(c), req.AvatarURL)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
