package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/home-services/internal/catalog"
	"github.com/BruksfildServices01/home-services/internal/httpresp"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler serves the endpoints that need no session.
type PublicHandler struct {
	services []catalog.Service
}

func NewPublicHandler(services []catalog.Service) *PublicHandler {
	return &PublicHandler{services: services}
}

// GET /api/services
func (h *PublicHandler) Services(c *gin.Context) {
	httpresp.List(c, h.services)
}

// GET /health
func (h *PublicHandler) Health(c *gin.Context) {
	httpresp.OK(c, gin.H{"status": "ok"})
}
