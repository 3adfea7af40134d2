package feed

import (
	"math"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ratio is a part/whole pair. Malformed data (part > whole) is kept as is;
// only Display clamps.
type Ratio struct {
	Part  float64 `json:"part"`
	Whole float64 `json:"whole"`
}

func (r Ratio) Percent() float64 {
	if r.Whole == 0 {
		return 0
	}
	return r.Part * 100 / r.Whole
}

// Display is the percentage clamped to [0, 100] for bars and badges.
func (r Ratio) Display() float64 {
	return math.Min(100, math.Max(0, r.Percent()))
}

func (r Ratio) Rounded() int {
	return int(math.Round(r.Display()))
}

type Card struct {
	Item       Item       `json:"item"`
	KindLabel  string     `json:"kind_label"`
	Affordance Affordance `json:"affordance"`
	Capacity   *Ratio     `json:"capacity,omitempty"`
	Progress   *Ratio     `json:"progress,omitempty"`
	Featured   bool       `json:"featured"`
}

type EmptyState string

const (
	EmptyNone      EmptyState = ""
	EmptyNoItems   EmptyState = "no_items"
	EmptyNoMatches EmptyState = "no_matches"
)

type View struct {
	Featured     []Card     `json:"featured"`
	Standard     []Card     `json:"standard"`
	Total        int        `json:"total"`
	Query        string     `json:"query"`
	Category     Category   `json:"category"`
	EmptyState   EmptyState `json:"empty_state,omitempty"`
	EmptyTitle   string     `json:"empty_title,omitempty"`
	EmptyMessage string     `json:"empty_message,omitempty"`
}

func (v View) Empty() bool {
	return v.EmptyState != EmptyNone
}

type Presenter struct {
	gate *Gate
	lang language.Tag
}

func NewPresenter(gate *Gate) *Presenter {
	return &Presenter{
		gate: gate,
		lang: language.English,
	}
}

// Run splits a filter result into featured and standard cards, keeping the
// relative order of each partition.
func (p *Presenter) Run(result FilterResult) View {
	view := View{
		Featured: make([]Card, 0),
		Standard: make([]Card, 0),
		Total:    len(result.Items),
		Query:    result.Query,
		Category: result.Category,
	}

	for _, item := range result.Items {
		card := p.Card(item)
		if item.Featured {
			view.Featured = append(view.Featured, card)
		} else {
			view.Standard = append(view.Standard, card)
		}
	}

	switch {
	case result.SourceEmpty():
		view.EmptyState = EmptyNoItems
		view.EmptyTitle = "No updates yet"
		view.EmptyMessage = "Check back soon for news, events and opportunities"
	case result.NoMatches():
		view.EmptyState = EmptyNoMatches
		view.EmptyTitle = "No updates found"
		view.EmptyMessage = "Try adjusting your search terms or filters"
	}

	return view
}

func (p *Presenter) Card(item Item) Card {
	card := Card{
		Item:       item,
		KindLabel:  p.KindLabel(item.Kind),
		Affordance: p.gate.Decide(item.Offer()),
		Featured:   item.Featured,
	}

	if item.HasCapacity() {
		card.Capacity = &Ratio{
			Part:  float64(*item.RegisteredCount),
			Whole: float64(*item.Capacity),
		}
	}

	if item.HasTarget() {
		current := 0.0
		if item.CurrentAmount != nil {
			current = *item.CurrentAmount
		}
		card.Progress = &Ratio{Part: current, Whole: *item.TargetAmount}
	}

	return card
}

// A Caser is stateful, so each label gets its own.
func (p *Presenter) KindLabel(k Kind) string {
	return cases.Title(p.lang).String(string(k))
}

func (p *Presenter) CategoryLabel(c Category) string {
	return cases.Title(p.lang).String(string(c))
}
