package api

import (
	"html/template"
	"time"

	"github.com/zamwe/zamwe-web/app/feed"
	"github.com/zamwe/zamwe-web/app/forms"
	"github.com/zamwe/zamwe-web/app/session"
	"github.com/zamwe/zamwe-web/app/tasks"
)

type GeneratorInterface interface {
	Run(channel feed.Channel, items []feed.Item) (string, error)
}

var _ GeneratorInterface = (*feed.Generator)(nil)

// Settings are the handler options that come from configuration.
type Settings struct {
	BaseURL    string
	Version    string
	SessionTTL time.Duration
	Import     tasks.ImportOptions
}

type Handler struct {
	store     *session.Store
	gate      *feed.Gate
	filterer  *feed.Filterer
	presenter *feed.Presenter
	generator GeneratorInterface
	validator *forms.Validator
	scheduler tasks.TaskSchedulerInterface
	templates *template.Template
	settings  Settings
	startedAt time.Time
}

type navLink struct {
	Name string
	Path string
}

var navigation = []navLink{
	{Name: "Home", Path: "/"},
	{Name: "About Us", Path: "/about"},
	{Name: "Updates", Path: "/updates"},
	{Name: "Membership", Path: "/membership"},
	{Name: "Contact", Path: "/contact"},
}
