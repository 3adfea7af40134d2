package feed

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"
)

// MaxDocumentSize bounds an imported RSS/Atom document, fetched or uploaded.
const MaxDocumentSize = 2 << 20

var ErrDocumentTooLarge = errors.New("feed document too large")

// Parser turns an RSS/Atom document into feed items for the admin import.
// Imported items are free and carry no id; the session assigns one.
type Parser struct {
	mu           sync.Mutex
	gofeedParser *gofeed.Parser
	extractor    *ContentExtractor
	now          func() time.Time
}

func NewParser(extractor *ContentExtractor) *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
		extractor:    extractor,
		now:          time.Now,
	}
}

func (p *Parser) Run(data []byte) ([]Item, error) {
	if len(data) > MaxDocumentSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrDocumentTooLarge, len(data))
	}

	p.mu.Lock()
	parsed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	p.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := make([]Item, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		if entry == nil {
			continue
		}
		item := p.normalizeItem(entry)
		if err := item.Validate(); err != nil {
			slog.Warn("Skipping imported entry", "title", entry.Title, "error", err)
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

func (p *Parser) normalizeItem(entry *gofeed.Item) Item {
	item := Item{
		Kind:        KindUpdate,
		Title:       strings.TrimSpace(entry.Title),
		Description: p.plainText(cmp.Or(entry.Description, entry.Content)),
		OccursOn:    p.now(),
	}

	if entry.PublishedParsed != nil {
		item.OccursOn = *entry.PublishedParsed
	} else if entry.UpdatedParsed != nil {
		item.OccursOn = *entry.UpdatedParsed
	}

	for _, category := range entry.Categories {
		category = strings.ToLower(strings.TrimSpace(category))
		if category == "featured" {
			item.Featured = true
			continue
		}
		if kind, err := ParseKind(category); err == nil {
			item.Kind = kind
		}
	}

	item.Media.HasImage = entry.Image != nil
	for _, enclosure := range entry.Enclosures {
		if enclosure == nil {
			continue
		}
		switch {
		case strings.HasPrefix(enclosure.Type, "image/"):
			item.Media.HasImage = true
		case strings.HasPrefix(enclosure.Type, "video/"):
			item.Media.HasVideo = true
		}
	}

	return item
}

// plainText strips markup; fragments readability cannot score are unescaped as is.
func (p *Parser) plainText(s string) string {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "<") {
		return html.UnescapeString(s)
	}

	text, err := p.extractor.Run([]byte(s))
	if err != nil {
		slog.Debug("Falling back to raw description", "error", err)
		return html.UnescapeString(s)
	}
	return text
}
