package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zamwe/zamwe-web/app/feed"
)

// GetUpdatesRSS exports the session's updates, honouring the same q and
// type parameters as the updates page.
func (h *Handler) GetUpdatesRSS(c *gin.Context) {
	sess := currentSession(c)
	site := h.store.Catalog().Site

	category, err := feed.ParseCategory(c.Query("type"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result := h.filterer.Run(sess.Items(), c.Query("q"), category)

	base := h.baseURL(c)
	channel := feed.Channel{
		Title:       site.Name + " Updates & Events",
		Link:        base,
		Description: site.Tagline,
		SelfLink:    base + "/updates/rss",
		Generator:   site.Name + " " + h.settings.Version,
	}

	rss, err := h.generator.Run(channel, result.Items)
	if err != nil {
		slog.Error("RSS generation error", "session", sess.ID.String(), "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.Header("X-Feed-Items", strconv.Itoa(len(result.Items)))

	c.String(http.StatusOK, rss)
}
