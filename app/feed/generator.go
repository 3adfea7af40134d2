package feed

import (
	"bytes"
	"cmp"
	"encoding/xml"
	"fmt"
	"html"
	"strconv"
	"time"
)

// Channel describes the RSS channel the updates are exported under.
type Channel struct {
	Title       string
	Link        string
	Description string
	SelfLink    string
	Generator   string
}

type Generator struct {
	gate *Gate
}

func NewGenerator(gate *Gate) *Generator {
	return &Generator{gate: gate}
}

func (g *Generator) Run(channel Channel, items []Item) (string, error) {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
	buf.WriteString("\n  <channel>\n")

	g.writeElement(&buf, "title", channel.Title, 4)
	g.writeElement(&buf, "link", channel.Link, 4)
	g.writeElement(&buf, "description", cmp.Or(channel.Description, channel.Title), 4)

	if channel.SelfLink != "" {
		buf.WriteString(fmt.Sprintf("    <atom:link href=\"%s\" rel=\"self\" type=\"application/rss+xml\" />\n",
			html.EscapeString(channel.SelfLink)))
	}

	var lastBuildDate time.Time
	for _, item := range items {
		if item.OccursOn.After(lastBuildDate) {
			lastBuildDate = item.OccursOn
		}
	}
	if lastBuildDate.IsZero() {
		lastBuildDate = time.Now().In(time.Local)
	}
	g.writeElement(&buf, "lastBuildDate", lastBuildDate.Format(time.RFC1123Z), 4)
	g.writeElement(&buf, "generator", channel.Generator, 4)

	for _, item := range items {
		g.writeItem(&buf, channel, item)
	}

	buf.WriteString("  </channel>\n</rss>")

	return buf.String(), nil
}

func (g *Generator) writeItem(buf *bytes.Buffer, channel Channel, item Item) {
	buf.WriteString("    <item>\n")

	guid := fmt.Sprintf("%s/updates#%d", channel.Link, item.ID)
	buf.WriteString("      <guid isPermaLink=\"false\">")
	xml.EscapeText(buf, []byte(guid))
	buf.WriteString("</guid>\n")

	g.writeElement(buf, "title", item.Title, 6)
	g.writeElement(buf, "link", guid, 6)
	g.writeElement(buf, "description", g.describe(item), 6)

	if !item.OccursOn.IsZero() {
		g.writeElement(buf, "pubDate", item.OccursOn.Format(time.RFC1123Z), 6)
	}

	g.writeElement(buf, "category", string(item.Kind), 6)
	if item.Featured {
		g.writeElement(buf, "category", "featured", 6)
	}

	buf.WriteString("    </item>\n")
}

// describe appends the practical details a reader of the feed needs.
func (g *Generator) describe(item Item) string {
	description := cmp.Or(item.Description, "No description available")

	if item.Location != "" {
		description += "\nLocation: " + item.Location
	}
	if item.Time != "" {
		description += "\nTime: " + item.Time
	}
	if item.HasCapacity() {
		description += "\nRegistered: " + strconv.Itoa(*item.RegisteredCount) + "/" + strconv.Itoa(*item.Capacity)
	}
	if item.PaymentRequired {
		description += "\n" + g.gate.Decide(item.Offer()).Label
	}

	return description
}

func (g *Generator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}
