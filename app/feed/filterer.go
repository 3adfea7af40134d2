package feed

import (
	"strings"
)

// FilterResult is the outcome of a filter pass. Source is the size of the
// collection that was filtered so an empty match set can be told apart from
// an empty catalog.
type FilterResult struct {
	Items    []Item
	Source   int
	Query    string
	Category Category
}

func (r FilterResult) SourceEmpty() bool {
	return r.Source == 0
}

func (r FilterResult) NoMatches() bool {
	return r.Source > 0 && len(r.Items) == 0
}

type Filterer struct{}

func NewFilterer() *Filterer {
	return &Filterer{}
}

// Run keeps the items of the selected category whose title or description
// contains query, ignoring case. The query is matched verbatim, surrounding
// whitespace included; only "" disables it. Source order is preserved.
func (f *Filterer) Run(items []Item, query string, category Category) FilterResult {
	if category == "" {
		category = CategoryAll
	}

	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if !category.Matches(item.Kind) {
			continue
		}
		if query != "" && !f.matchesQuery(item, query) {
			continue
		}
		filtered = append(filtered, item)
	}

	return FilterResult{
		Items:    filtered,
		Source:   len(items),
		Query:    query,
		Category: category,
	}
}

func (f *Filterer) matchesQuery(item Item, query string) bool {
	return f.matchesFilter(item.Title, query) || f.matchesFilter(item.Description, query)
}

func (f *Filterer) matchesFilter(value, pattern string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(pattern))
}
