// Package seed loads the mock catalog the site is rendered from.
package seed

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zamwe/zamwe-web/app/feed"
)

//go:embed seed.yml
var defaultSeed []byte

type itemSpec struct {
	feed.Item `yaml:",inline"`
	Date      string `yaml:"date"`
}

type noticeSpec struct {
	Item itemSpec `yaml:",inline"`
	Read bool     `yaml:"read"`
}

type rawCatalog struct {
	Site          Site          `yaml:"site"`
	Items         []itemSpec    `yaml:"items"`
	Notices       []noticeSpec  `yaml:"notices"`
	Tiers         []Tier        `yaml:"tiers"`
	Member        Member        `yaml:"member"`
	Transactions  []Transaction `yaml:"transactions"`
	Admin         Admin         `yaml:"admin"`
	BusinessTypes []string      `yaml:"business_types"`
}

type Loader struct {
	path string
}

// NewLoader reads path when set, the embedded catalog otherwise.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

func Default() (*Catalog, error) {
	return NewLoader("").Run()
}

func (l *Loader) Run() (*Catalog, error) {
	data := defaultSeed
	source := "embedded"

	if l.path != "" {
		var err error
		data, err = os.ReadFile(l.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		source = l.path
	}

	catalog, err := l.parse(data)
	if err != nil {
		return nil, fmt.Errorf("error loading %s seed: %w", source, err)
	}

	slog.Debug("Seed catalog loaded", "source", source, "items", len(catalog.Items),
		"notices", len(catalog.Notices), "tiers", len(catalog.Tiers))

	return catalog, nil
}

func (l *Loader) parse(data []byte) (*Catalog, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	l.setDefaults(&raw)

	catalog := &Catalog{
		Site:          raw.Site,
		Tiers:         raw.Tiers,
		Member:        raw.Member,
		Transactions:  raw.Transactions,
		Admin:         raw.Admin,
		BusinessTypes: raw.BusinessTypes,
	}

	for i, spec := range raw.Items {
		item, err := spec.toItem()
		if err != nil {
			return nil, fmt.Errorf("invalid item at index %d: %w", i, err)
		}
		catalog.Items = append(catalog.Items, item)
	}

	for i, spec := range raw.Notices {
		item, err := spec.Item.toItem()
		if err != nil {
			return nil, fmt.Errorf("invalid notice at index %d: %w", i, err)
		}
		catalog.Notices = append(catalog.Notices, Notice{Item: item, Read: spec.Read})
	}

	if err := l.validate(catalog); err != nil {
		return nil, err
	}

	return catalog, nil
}

func (l *Loader) setDefaults(raw *rawCatalog) {
	if raw.Site.Name == "" {
		raw.Site.Name = "ZAMWE"
	}
	if raw.Admin.Branding.SiteName == "" {
		raw.Admin.Branding.SiteName = raw.Site.Name
	}
	for i := range raw.Tiers {
		if raw.Tiers[i].ID == "" {
			raw.Tiers[i].ID = strings.ToLower(strings.ReplaceAll(raw.Tiers[i].Name, " ", "-"))
		}
	}
}

func (s itemSpec) toItem() (feed.Item, error) {
	item := s.Item
	item.Kind = feed.Kind(strings.ToLower(string(item.Kind)))

	if s.Date != "" {
		occursOn, err := time.ParseInLocation(feed.DateLayout, s.Date, time.Local)
		if err != nil {
			return feed.Item{}, fmt.Errorf("invalid date %q: %w", s.Date, err)
		}
		item.OccursOn = occursOn
	}

	if err := item.Validate(); err != nil {
		return feed.Item{}, err
	}
	return item, nil
}

func (l *Loader) validate(catalog *Catalog) error {
	itemIDs := make(map[int64]bool, len(catalog.Items))
	for _, item := range catalog.Items {
		if item.ID <= 0 {
			return fmt.Errorf("item %q must have a positive id", item.Title)
		}
		if itemIDs[item.ID] {
			return fmt.Errorf("duplicate item id %d", item.ID)
		}
		itemIDs[item.ID] = true
	}

	noticeIDs := make(map[int64]bool, len(catalog.Notices))
	for _, notice := range catalog.Notices {
		if noticeIDs[notice.ID] {
			return fmt.Errorf("duplicate notice id %d", notice.ID)
		}
		noticeIDs[notice.ID] = true
	}

	tierIDs := make(map[string]bool, len(catalog.Tiers))
	for i, tier := range catalog.Tiers {
		requiredFields := map[string]string{
			"tier name": tier.Name,
			"tier id":   tier.ID,
		}
		for fieldName, fieldValue := range requiredFields {
			if fieldValue == "" {
				return fmt.Errorf("%s is required at index %d", fieldName, i)
			}
		}
		if tier.Price <= 0 {
			return fmt.Errorf("tier %s must have a positive price", tier.ID)
		}
		if tierIDs[tier.ID] {
			return fmt.Errorf("duplicate tier id %s", tier.ID)
		}
		tierIDs[tier.ID] = true
	}

	if p := catalog.Member.ProfileComplete; p < 0 || p > 100 {
		return fmt.Errorf("profile completion %d outside [0, 100]", p)
	}

	return nil
}
