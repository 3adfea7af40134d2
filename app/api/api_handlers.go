package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zamwe/zamwe-web/app/feed"
	"github.com/zamwe/zamwe-web/app/forms"
)

func (h *Handler) APIListUpdates(c *gin.Context) {
	sess := currentSession(c)

	category, err := feed.ParseCategory(c.Query("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown update type", "type": c.Query("type")})
		return
	}

	c.JSON(http.StatusOK, h.view(sess, c.Query("q"), category))
}

func (h *Handler) APIUpdateAction(c *gin.Context) {
	sess := currentSession(c)

	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update id"})
		return
	}

	item, err := sess.FindItem(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Update not found"})
		return
	}

	affordance := h.gate.Invoke(item.Offer(), sess.Notifications(), h.followUp(sess))

	c.JSON(http.StatusOK, gin.H{
		"affordance":    affordance,
		"notifications": sess.Notifications().Active(),
	})
}

func (h *Handler) APIListNotifications(c *gin.Context) {
	active := currentSession(c).Notifications().Active()

	c.JSON(http.StatusOK, gin.H{
		"notifications": active,
		"total":         len(active),
	})
}

func (h *Handler) APIDismissNotification(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification id"})
		return
	}

	if !currentSession(c).Notifications().Dismiss(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// APIRegister validates a registration. Nothing is stored; the outcome is the
// notification the visitor sees.
func (h *Handler) APIRegister(c *gin.Context) {
	sess := currentSession(c)

	var form forms.Registration
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	err := h.validator.Register(form)
	accepted, reportErr := forms.Report(sess.Notifications(), err, forms.RegisterSuccess)
	if reportErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	var verr *forms.ValidationError
	if !accepted && errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         verr.Title,
			"message":       verr.Description,
			"notifications": sess.Notifications().Active(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       forms.RegisterSuccess.Title,
		"notifications": sess.Notifications().Active(),
	})
}
