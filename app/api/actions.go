package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zamwe/zamwe-web/app/feed"
	"github.com/zamwe/zamwe-web/app/forms"
	"github.com/zamwe/zamwe-web/app/notify"
	"github.com/zamwe/zamwe-web/app/session"
	"github.com/zamwe/zamwe-web/app/tasks"
)

// submit reports a form outcome on the session queue and redirects. It
// answers 500 only for errors that are not validation failures.
func (h *Handler) submit(c *gin.Context, err error, success forms.Message, location string) {
	sess := currentSession(c)
	if _, reportErr := forms.Report(sess.Notifications(), err, success); reportErr != nil {
		slog.Error("Form submission failed", "path", c.Request.URL.Path, "error", reportErr)
		c.Status(http.StatusInternalServerError)
		return
	}
	seeOther(c, location)
}

func (h *Handler) PostLogin(c *gin.Context) {
	var form forms.Login
	if err := c.ShouldBind(&form); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	h.submit(c, h.validator.Login(form), forms.LoginSuccess, "/login")
}

func (h *Handler) PostRegister(c *gin.Context) {
	var form forms.Registration
	if err := c.ShouldBind(&form); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	h.submit(c, h.validator.Register(form), forms.RegisterSuccess, "/register")
}

func (h *Handler) PostContact(c *gin.Context) {
	var form forms.Contact
	if err := c.ShouldBind(&form); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	h.submit(c, h.validator.Contact(form), forms.ContactSuccess, "/#contact")
}

func (h *Handler) PostUpdateAction(c *gin.Context) {
	sess := currentSession(c)
	back := updatesLocation(c.PostForm("q"), c.PostForm("type"))

	id, ok := parseID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	item, err := sess.FindItem(id)
	if err != nil {
		sess.Notifications().Emit("Update Not Found", "The update no longer exists.", notify.SeverityDestructive)
		seeOther(c, back)
		return
	}

	h.gate.Invoke(item.Offer(), sess.Notifications(), h.followUp(sess))
	seeOther(c, back)
}

func (h *Handler) PostMembershipPay(c *gin.Context) {
	sess := currentSession(c)
	tierID := c.Param("tier")

	for _, tier := range h.store.Catalog().Tiers {
		if tier.ID == tierID {
			h.gate.Invoke(tier.Offer(), sess.Notifications(), h.followUp(sess))
			seeOther(c, "/membership")
			return
		}
	}

	c.Status(http.StatusNotFound)
}

func (h *Handler) PostNoticePay(c *gin.Context) {
	sess := currentSession(c)

	id, ok := parseID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	notice, err := sess.FindNotice(id)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	h.gate.Invoke(notice.Offer(), sess.Notifications(), h.followUp(sess))
	seeOther(c, "/dashboard")
}

func (h *Handler) PostAdminCreateUpdate(c *gin.Context) {
	sess := currentSession(c)

	var draft forms.UpdateDraft
	if err := c.ShouldBind(&draft); err != nil {
		sess.Notifications().Emit("Invalid Amount", "Please enter the amount as a number.", notify.SeverityDestructive)
		seeOther(c, "/admin#updates")
		return
	}

	item, err := h.validator.CreateUpdate(draft)
	if err == nil {
		if _, addErr := sess.AddItem(item); addErr != nil {
			err = &forms.ValidationError{Title: "Invalid Update", Description: addErr.Error()}
		}
	}

	h.submit(c, err, forms.UpdateCreated, "/admin#updates")
}

func (h *Handler) PostAdminDeleteUpdate(c *gin.Context) {
	sess := currentSession(c)

	id, ok := parseID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	err := sess.RemoveItem(id)
	if errors.Is(err, session.ErrItemNotFound) {
		err = &forms.ValidationError{Title: "Update Not Found", Description: "The update no longer exists."}
	}

	h.submit(c, err, forms.UpdateDeleted, "/admin#updates")
}

func (h *Handler) PostAdminSettings(c *gin.Context) {
	message, err := h.validator.Settings(c.Param("section"))
	h.submit(c, err, message, "/admin#settings")
}

func (h *Handler) PostAdminImport(c *gin.Context) {
	sess := currentSession(c)
	queue := sess.Notifications()

	feedURL := strings.TrimSpace(c.PostForm("url"))
	data := []byte(strings.TrimSpace(c.PostForm("document")))

	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			slog.Error("Failed to open uploaded feed", "error", err)
			c.Status(http.StatusBadRequest)
			return
		}
		data, err = io.ReadAll(io.LimitReader(f, feed.MaxDocumentSize+1))
		f.Close()
		if err != nil {
			slog.Error("Failed to read uploaded feed", "error", err)
			c.Status(http.StatusBadRequest)
			return
		}
	}

	if len(data) > feed.MaxDocumentSize {
		queue.Emit("Document Too Large", "Feed documents are limited to 2 MB.", notify.SeverityDestructive)
		seeOther(c, "/admin#import")
		return
	}

	if feedURL == "" && len(data) == 0 {
		queue.Emit("Missing Information", "Please provide a feed address or an RSS document.", notify.SeverityDestructive)
		seeOther(c, "/admin#import")
		return
	}

	if feedURL != "" {
		parsed, err := url.Parse(feedURL)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			queue.Emit("Invalid Address", "Please enter a full http or https feed address.", notify.SeverityDestructive)
			seeOther(c, "/admin#import")
			return
		}
		data = nil
	}

	task := tasks.NewImportFeedTask(sess, feedURL, data, h.settings.Import)
	if err := h.scheduler.EnqueueTask(task); err != nil {
		slog.Warn("Failed to enqueue ImportFeedTask", "subject", task.GetSubject(), "error", err)
		queue.Emit("Import Failed", "The import could not be started. Please try again.", notify.SeverityDestructive)
		seeOther(c, "/admin#import")
		return
	}

	queue.Emit("Import Started", "The feed is being imported. New updates will appear shortly.", notify.SeverityNormal)
	seeOther(c, "/admin#import")
}

func updatesLocation(query, category string) string {
	values := url.Values{}
	if query != "" {
		values.Set("q", query)
	}
	if parsed, err := feed.ParseCategory(category); err == nil && parsed != feed.CategoryAll {
		values.Set("type", string(parsed))
	}
	if len(values) == 0 {
		return "/updates"
	}
	return "/updates?" + values.Encode()
}
