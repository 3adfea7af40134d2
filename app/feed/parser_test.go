package feed

import (
	"testing"
	"time"
)

const importRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Partner News</title>
    <link>https://partner.example.org</link>
    <description>Partner updates</description>
    <item>
      <title>Export Fair Registration Opens</title>
      <description>Registration for the regional export fair is open to all members.</description>
      <pubDate>Mon, 02 Sep 2024 09:00:00 +0000</pubDate>
      <category>Event</category>
      <category>featured</category>
    </item>
    <item>
      <title>  Grant Results Published  </title>
      <description>&lt;p&gt;The &lt;b&gt;grant&lt;/b&gt; results are out.&lt;/p&gt;</description>
      <category>announcement</category>
      <enclosure url="https://partner.example.org/clip.mp4" length="1024" type="video/mp4" />
    </item>
    <item>
      <title></title>
      <description>Entry without a title is skipped</description>
    </item>
  </channel>
</rss>`

func TestParser_Run(t *testing.T) {
	parser := NewParser(NewContentExtractor())
	fixed := time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC)
	parser.now = func() time.Time { return fixed }

	items, err := parser.Run([]byte(importRSS))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}

	fair := items[0]
	if fair.Kind != KindEvent {
		t.Errorf("Expected event kind, got %s", fair.Kind)
	}
	if !fair.Featured {
		t.Error("Expected featured flag from category")
	}
	if fair.PaymentRequired {
		t.Error("Imported items are free")
	}
	if fair.Date() != "2024-09-02" {
		t.Errorf("Expected pubDate 2024-09-02, got %s", fair.Date())
	}

	grant := items[1]
	if grant.Title != "Grant Results Published" {
		t.Errorf("Expected trimmed title, got %q", grant.Title)
	}
	if grant.Kind != KindAnnouncement {
		t.Errorf("Expected announcement kind, got %s", grant.Kind)
	}
	if !grant.Media.HasVideo {
		t.Error("Expected video flag from enclosure")
	}
	if !grant.OccursOn.Equal(fixed) {
		t.Errorf("Undated entry should use the current time, got %v", grant.OccursOn)
	}
	if grant.Description == "" {
		t.Error("Expected a description")
	}
}

func TestParser_Run_InvalidDocument(t *testing.T) {
	parser := NewParser(NewContentExtractor())

	if _, err := parser.Run([]byte("not a feed")); err == nil {
		t.Error("Expected error for invalid document")
	}
}
