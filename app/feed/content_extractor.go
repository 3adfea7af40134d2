package feed

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-shiori/go-readability"
)

// SummaryLength caps an imported description so it fits a feed card.
const SummaryLength = 400

// ContentExtractor reduces the HTML body of an imported entry to the short
// plain-text description shown on update cards.
type ContentExtractor struct {
	maxLength int
}

func NewContentExtractor() *ContentExtractor {
	return &ContentExtractor{maxLength: SummaryLength}
}

// Run returns the readable text of an HTML document or fragment, whitespace
// collapsed and cut at a word boundary to at most SummaryLength runes.
func (e *ContentExtractor) Run(data []byte) (string, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return "", fmt.Errorf("HTML data is empty")
	}

	article, err := readability.FromReader(bytes.NewReader(data), nil)
	if err != nil {
		return "", fmt.Errorf("failed to extract description: %w", err)
	}

	text := strings.Join(strings.Fields(article.TextContent), " ")
	if text == "" {
		return "", fmt.Errorf("no description extracted from HTML data")
	}

	summary := e.summarize(text)
	slog.Debug("Description extracted",
		"title", article.Title,
		"text_length", len(text),
		"truncated", len(summary) < len(text))

	return summary, nil
}

func (e *ContentExtractor) summarize(text string) string {
	runes := []rune(text)
	if e.maxLength <= 0 || len(runes) <= e.maxLength {
		return text
	}

	cut := string(runes[:e.maxLength-3])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,;:.") + "..."
}
