package feed

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Kind is the closed set of feed item categories. KindMembership is an
// offer-only kind: the gate accepts it, feed items never carry it.
type Kind string

const (
	KindEvent        Kind = "event"
	KindUpdate       Kind = "update"
	KindContribution Kind = "contribution"
	KindAnnouncement Kind = "announcement"
	KindMembership   Kind = "membership"
)

// FeedKinds lists the item kinds in the order the category selector shows them.
var FeedKinds = []Kind{KindEvent, KindContribution, KindAnnouncement, KindUpdate}

var ErrUnknownKind = errors.New("unknown kind")

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsFeedKind() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

func (k Kind) IsFeedKind() bool {
	switch k {
	case KindEvent, KindUpdate, KindContribution, KindAnnouncement:
		return true
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}

// Category is the selector handed to the filter: a feed kind or "all".
type Category string

const CategoryAll Category = "all"

// Categories lists every selector value, "all" first.
func Categories() []Category {
	out := []Category{CategoryAll}
	for _, k := range FeedKinds {
		out = append(out, Category(k))
	}
	return out
}

// ParseCategory maps free input to a selector. Empty input selects all.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == string(CategoryAll) {
		return CategoryAll, nil
	}
	k, err := ParseKind(s)
	if err != nil {
		return "", err
	}
	return Category(k), nil
}

func (c Category) Matches(k Kind) bool {
	return c == CategoryAll || Kind(c) == k
}

type Media struct {
	HasImage bool `yaml:"image" json:"has_image"`
	HasVideo bool `yaml:"video" json:"has_video"`
}

type Item struct {
	ID              int64     `yaml:"id" json:"id"`
	Kind            Kind      `yaml:"kind" json:"kind"`
	Title           string    `yaml:"title" json:"title"`
	Description     string    `yaml:"description" json:"description"`
	OccursOn        time.Time `yaml:"-" json:"occurs_on"`
	Time            string    `yaml:"time,omitempty" json:"time,omitempty"` // free text, e.g. "10:00 AM"
	Location        string    `yaml:"location,omitempty" json:"location,omitempty"`
	PaymentRequired bool      `yaml:"payment_required" json:"payment_required"`
	Amount          float64   `yaml:"amount,omitempty" json:"amount,omitempty"`
	Capacity        *int      `yaml:"capacity,omitempty" json:"capacity,omitempty"`
	RegisteredCount *int      `yaml:"registered,omitempty" json:"registered,omitempty"`
	TargetAmount    *float64  `yaml:"target_amount,omitempty" json:"target_amount,omitempty"`
	CurrentAmount   *float64  `yaml:"current_amount,omitempty" json:"current_amount,omitempty"`
	Featured        bool      `yaml:"featured" json:"featured"`
	Media           Media     `yaml:"media" json:"media"`
}

const DateLayout = "2006-01-02"

func (i Item) Date() string {
	if i.OccursOn.IsZero() {
		return ""
	}
	return i.OccursOn.Format(DateLayout)
}

// HasCapacity reports whether capacity figures are meaningful for the item.
func (i Item) HasCapacity() bool {
	return i.Kind == KindEvent && i.Capacity != nil && i.RegisteredCount != nil
}

// HasTarget reports whether fundraising figures are meaningful for the item.
func (i Item) HasTarget() bool {
	return i.Kind == KindContribution && i.TargetAmount != nil
}

func (i Item) Offer() Offer {
	return Offer{
		Subject:         i.Title,
		Kind:            i.Kind,
		PaymentRequired: i.PaymentRequired,
		Amount:          i.Amount,
	}
}

// Validate checks the data-entry invariants of an item.
func (i Item) Validate() error {
	if !i.Kind.IsFeedKind() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, i.Kind)
	}
	if strings.TrimSpace(i.Title) == "" {
		return errors.New("title is required")
	}
	if i.PaymentRequired && i.Amount <= 0 {
		return errors.New("amount must be positive when payment is required")
	}
	if !i.PaymentRequired && i.Amount < 0 {
		return errors.New("amount must be non-negative")
	}

	if i.Capacity != nil || i.RegisteredCount != nil {
		if i.Kind != KindEvent {
			return fmt.Errorf("capacity is only allowed on events, got %s", i.Kind)
		}
		if i.Capacity == nil || i.RegisteredCount == nil {
			return errors.New("capacity and registered must be given together")
		}
		if *i.Capacity <= 0 {
			return errors.New("capacity must be positive")
		}
		if *i.RegisteredCount < 0 || *i.RegisteredCount > *i.Capacity {
			return fmt.Errorf("registered %d outside [0, %d]", *i.RegisteredCount, *i.Capacity)
		}
	}

	if i.TargetAmount != nil || i.CurrentAmount != nil {
		if i.Kind != KindContribution {
			return fmt.Errorf("target amount is only allowed on contributions, got %s", i.Kind)
		}
		if i.TargetAmount == nil || *i.TargetAmount <= 0 {
			return errors.New("target amount must be positive")
		}
		if i.CurrentAmount != nil && *i.CurrentAmount < 0 {
			return errors.New("current amount must be non-negative")
		}
	}

	if i.Location != "" && i.Kind != KindEvent {
		return fmt.Errorf("location is only allowed on events, got %s", i.Kind)
	}

	return nil
}
