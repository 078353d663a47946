// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package aggregate

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// NormalizeLabel returns the canonical anchor label for a section or
// subsection heading. Legacy catalog data embeds HTML anchor tags in some
// labels (e.g. `<a name="android">Android</a>`); when present, the quoted
// id or name attribute is the canonical label and must be used for slugging
// so generated links match the published anchors (R2.3). A label with an
// anchor marker but no well-formed attribute falls back to its visible text,
// and failing that to the raw label, rather than propagating an error (R2.4).
func NormalizeLabel(label string) string {
	if !strings.Contains(label, "<a") {
		return label
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(label))
	if err != nil {
		return label
	}

	anchor := doc.Find("a").First()
	if id, ok := anchor.Attr("id"); ok && id != "" {
		return id
	}
	if name, ok := anchor.Attr("name"); ok && name != "" {
		return name
	}

	if text := strings.TrimSpace(doc.Text()); text != "" {
		return text
	}
	return label
}

// DisplayLabel returns the human-readable text of a label, stripping any
// embedded markup.
func DisplayLabel(label string) string {
	if !strings.Contains(label, "<a") {
		return label
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(label))
	if err != nil {
		return label
	}
	if text := strings.TrimSpace(doc.Text()); text != "" {
		return text
	}
	return label
}

// Slugify derives the URL-anchor-safe identifier for a label: lowercase,
// spaces become hyphens, and the characters ( ) & / . are stripped. The
// result must exactly match the public site's published anchors (R2.5).
// Slugifying an already-slugified string returns it unchanged.
func Slugify(label string) string {
	s := strings.ToLower(strings.TrimSpace(label))
	s = strings.ReplaceAll(s, " ", "-")
	return strings.Map(func(r rune) rune {
		switch r {
		case '(', ')', '&', '/', '.':
			return -1
		}
		return r
	}, s)
}
