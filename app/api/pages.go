package api

import (
	"github.com/gin-gonic/gin"

	"github.com/zamwe/zamwe-web/app/feed"
	"github.com/zamwe/zamwe-web/app/seed"
)

type tierView struct {
	Tier       seed.Tier
	Affordance feed.Affordance
}

type noticeView struct {
	Card feed.Card
	Read bool
}

func (h *Handler) GetHome(c *gin.Context) {
	h.render(c, "home.html", gin.H{
		"Title": "Home",
	})
}

func (h *Handler) GetAbout(c *gin.Context) {
	h.render(c, "about.html", gin.H{
		"Title": "About Us",
		"Tiers": h.store.Catalog().Tiers,
	})
}

func (h *Handler) GetContact(c *gin.Context) {
	seeOther(c, "/#contact")
}

func (h *Handler) GetLogin(c *gin.Context) {
	h.render(c, "login.html", gin.H{
		"Title": "Login",
	})
}

func (h *Handler) GetRegister(c *gin.Context) {
	h.render(c, "register.html", gin.H{
		"Title":         "Register",
		"BusinessTypes": h.store.Catalog().BusinessTypes,
	})
}

func (h *Handler) GetMembership(c *gin.Context) {
	tiers := h.store.Catalog().Tiers
	views := make([]tierView, 0, len(tiers))
	for _, tier := range tiers {
		views = append(views, tierView{
			Tier:       tier,
			Affordance: h.gate.Decide(tier.Offer()),
		})
	}

	h.render(c, "membership.html", gin.H{
		"Title": "Membership",
		"Tiers": views,
	})
}

func (h *Handler) GetUpdates(c *gin.Context) {
	sess := currentSession(c)

	// Unknown selectors fall back to all rather than failing the page.
	category, err := feed.ParseCategory(c.Query("type"))
	if err != nil {
		category = feed.CategoryAll
	}

	h.render(c, "updates.html", gin.H{
		"Title":      "Updates & Events",
		"View":       h.view(sess, c.Query("q"), category),
		"Categories": feed.Categories(),
	})
}

func (h *Handler) GetDashboard(c *gin.Context) {
	sess := currentSession(c)
	catalog := h.store.Catalog()

	notices := sess.Notices()
	views := make([]noticeView, 0, len(notices))
	for _, notice := range notices {
		views = append(views, noticeView{
			Card: h.presenter.Card(notice.Item),
			Read: notice.Read,
		})
	}

	h.render(c, "dashboard.html", gin.H{
		"Title":        "Dashboard",
		"Member":       catalog.Member,
		"Notices":      views,
		"Unread":       sess.UnreadNotices(),
		"Transactions": catalog.Transactions,
		"Profile":      feed.Ratio{Part: float64(catalog.Member.ProfileComplete), Whole: 100},
	})
}

func (h *Handler) GetAdmin(c *gin.Context) {
	sess := currentSession(c)
	catalog := h.store.Catalog()

	items := sess.Items()
	cards := make([]feed.Card, 0, len(items))
	for _, item := range items {
		cards = append(cards, h.presenter.Card(item))
	}

	h.render(c, "admin.html", gin.H{
		"Title":    "Admin Dashboard",
		"Stats":    catalog.Admin.Stats,
		"Users":    catalog.Admin.Users,
		"Admins":   catalog.Admin.Admins,
		"Payment":  catalog.Admin.Payment,
		"Branding": catalog.Admin.Branding,
		"Updates":  cards,
		"Kinds":    feed.FeedKinds,
	})
}
