package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zamwe/zamwe-web/app/feed"
	"github.com/zamwe/zamwe-web/app/forms"
	"github.com/zamwe/zamwe-web/app/session"
	"github.com/zamwe/zamwe-web/app/tasks"
)

func NewHandler(store *session.Store, gate *feed.Gate, scheduler tasks.TaskSchedulerInterface,
	settings Settings) (*Handler, error) {
	presenter := feed.NewPresenter(gate)

	templates, err := parseTemplates(gate, presenter)
	if err != nil {
		return nil, err
	}

	return &Handler{
		store:     store,
		gate:      gate,
		filterer:  feed.NewFilterer(),
		presenter: presenter,
		generator: feed.NewGenerator(gate),
		validator: forms.NewValidator(store.Catalog().BusinessTypes),
		scheduler: scheduler,
		templates: templates,
		settings:  settings,
		startedAt: time.Now(),
	}, nil
}

func (h *Handler) GetHealth(c *gin.Context) {
	catalog := h.store.Catalog()

	c.JSON(http.StatusOK, gin.H{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"version":   h.settings.Version,
		"uptime":    time.Since(h.startedAt).Round(time.Second).String(),
		"sessions":  h.store.Len(),
		"items":     len(catalog.Items),
		"tiers":     len(catalog.Tiers),
	})
}

// render adds the layout data every page needs and writes the template.
func (h *Handler) render(c *gin.Context, name string, data gin.H) {
	sess := currentSession(c)

	data["Site"] = h.store.Catalog().Site
	data["Navigation"] = navigation
	data["Path"] = c.Request.URL.Path
	data["Notifications"] = sess.Notifications().Active()
	data["LoggedIn"] = sess.LoggedIn()
	data["Version"] = h.settings.Version

	c.HTML(http.StatusOK, name, data)
}

// view runs the filter and presenter over the session's items.
func (h *Handler) view(sess *session.Session, query string, category feed.Category) feed.View {
	result := h.filterer.Run(sess.Items(), query, category)
	return h.presenter.Run(result)
}

// followUp is the gate hook for the session's notification queue.
func (h *Handler) followUp(sess *session.Session) feed.FollowUp {
	if h.scheduler == nil {
		return nil
	}
	return h.scheduler.FollowUp(sess.Notifications())
}

func (h *Handler) baseURL(c *gin.Context) string {
	if h.settings.BaseURL != "" {
		return h.settings.BaseURL
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, c.Request.Host)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		slog.Debug("Invalid id parameter", "path", c.Request.URL.Path, "id", c.Param("id"))
		return 0, false
	}
	return id, true
}

// seeOther finishes a form post.
func seeOther(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}
