package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/home-services/internal/domain/user"
	"github.com/BruksfildServices01/home-services/internal/logging"
	"github.com/BruksfildServices01/home-services/internal/middleware"
	"github.com/BruksfildServices01/home-services/internal/pages"
)

// PageInit builds the initial view of a page for an authenticated session.
type PageInit func(ctx context.Context, sess *user.Session) (any, error)

// WebHandler runs the bootstrap state machine for GET /web/:page.
type WebHandler struct {
	pages  pages.Set
	table  pages.Table
	inits  map[pages.Page]PageInit
	logger logging.Logger
}

func NewWebHandler(
	set pages.Set,
	table pages.Table,
	inits map[pages.Page]PageInit,
	logger logging.Logger,
) *WebHandler {
	return &WebHandler{pages: set, table: table, inits: inits, logger: logger}
}

func (h *WebHandler) Page(c *gin.Context) {
	p, err := h.pages.Parse(c.Param("page"))
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	sess := middleware.SessionFrom(c)
	d := pages.Resolve(sess != nil, p)
	if d.IsRedirect() {
		c.Redirect(http.StatusFound, "/web/"+string(d.Redirect))
		return
	}

	view := any(gin.H{})
	if build, ok := h.inits[d.Init]; ok && sess != nil {
		view, err = build(c.Request.Context(), sess)
		if err != nil {
			fail(c, h.logger, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"page":    d.Init,
		"actions": h.actions(d.Init, sess != nil),
		"view":    view,
	})
}

func (h *WebHandler) actions(p pages.Page, authenticated bool) []string {
	out := h.table.Actions(p)
	if authenticated {
		out = append(out, h.table.Actions(pages.Any)...)
	}
	if out == nil {
		out = []string{}
	}
	return out
}
