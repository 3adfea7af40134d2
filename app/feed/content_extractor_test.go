package feed

import (
	"strings"
	"testing"
)

const announcementPage = `
<!DOCTYPE html>
<html>
<head>
	<title>Micro-Loan Program Now Available</title>
</head>
<body>
	<header>
		<h1>ZAMWE</h1>
		<nav>Home | About | Updates</nav>
	</header>
	<main>
		<article>
			<h1>Micro-Loan Program Now Available</h1>
			<p>We are pleased to announce that our <strong>micro-loan program</strong> is now available for eligible ZAMWE members across Zamfara State.</p>
			<p>Members can apply for funding to expand their businesses, purchase equipment, or increase stock. Applications are reviewed every month by the finance committee.</p>
			<p>Repayment terms are flexible and tailored to the cash flow of small enterprises, with mentorship offered alongside every approved loan.</p>
		</article>
	</main>
	<footer>
		<p>Copyright 2024 ZAMWE</p>
	</footer>
	<script>console.log("tracking")</script>
</body>
</html>
`

func TestContentExtractor_Run_Article(t *testing.T) {
	extractor := NewContentExtractor()

	result, err := extractor.Run([]byte(announcementPage))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !strings.Contains(result, "micro-loan program is now available") {
		t.Errorf("Expected extracted text to contain the article body, got: %s", result)
	}
	if strings.Contains(result, "<strong>") || strings.Contains(result, "<p>") {
		t.Errorf("Expected plain text without markup, got: %s", result)
	}
	if strings.Contains(result, "tracking") {
		t.Errorf("Expected scripts to be removed, got: %s", result)
	}
	if strings.Contains(result, "\n") || strings.Contains(result, "  ") {
		t.Errorf("Expected collapsed whitespace, got: %q", result)
	}
}

func TestContentExtractor_Run_EmptyData(t *testing.T) {
	extractor := NewContentExtractor()

	for _, data := range [][]byte{nil, {}, []byte("   \n\t")} {
		result, err := extractor.Run(data)
		if err == nil {
			t.Errorf("Expected error for empty data %q", data)
		}
		if result != "" {
			t.Errorf("Expected empty result for empty data, got: %s", result)
		}
	}
}

func TestContentExtractor_Run_TruncatesLongText(t *testing.T) {
	extractor := NewContentExtractor()

	sentence := "Members shared practical lessons on packaging, pricing and export paperwork. "
	page := "<html><body><article><p>" + strings.Repeat(sentence, 20) + "</p></article></body></html>"

	result, err := extractor.Run([]byte(page))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len([]rune(result)) > SummaryLength {
		t.Errorf("Expected at most %d runes, got %d", SummaryLength, len([]rune(result)))
	}
	if !strings.HasSuffix(result, "...") {
		t.Errorf("Expected an ellipsis on truncated text, got: %q", result)
	}
	if !strings.HasPrefix(result, "Members shared practical lessons") {
		t.Errorf("Expected the summary to keep the opening, got: %q", result)
	}
	if strings.HasSuffix(strings.TrimSuffix(result, "..."), " ") {
		t.Errorf("Expected a cut at a word boundary, got: %q", result)
	}
}

func TestContentExtractor_Summarize_ShortTextUnchanged(t *testing.T) {
	extractor := NewContentExtractor()

	if got := extractor.summarize("Short note."); got != "Short note." {
		t.Errorf("Expected short text unchanged, got %q", got)
	}
}
