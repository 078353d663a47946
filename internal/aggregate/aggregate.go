// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package aggregate post-processes ranked matches: it synthesizes grouped
// "list of all X" entries with deep-linked anchors and merges them ahead of
// the literal results. Aggregation is a pure function of its inputs.
// Implements: prd004-aggregate (R1-R3);
//
//	docs/ARCHITECTURE § Aggregator.
package aggregate

import (
	"fmt"

	"github.com/pdiddy/bookfinder/internal/engine"
	"github.com/pdiddy/bookfinder/pkg/types"
)

// Anchor page files on the public site. Subject-index documents and
// per-language documents both live under language code "en"; the owning
// document's IsSubject flag selects the family. Getting this wrong 404s
// every generated link (R2.2).
const (
	langsPage    = "free-programming-books-langs.html"
	subjectsPage = "free-programming-books-subjects.html"
)

// Meta resolves a language code to its catalog metadata.
type Meta map[string]types.Language

// MetaFromCatalog collects the language metadata of every document. On a
// code collision the subject-index document wins for the IsSubject flag
// only through its own entries; the first-seen document is kept.
func MetaFromCatalog(cat types.Catalog) Meta {
	meta := make(Meta)
	for _, doc := range cat.Documents {
		key := metaKey(doc.Language)
		if _, ok := meta[key]; !ok {
			meta[key] = doc.Language
		}
	}
	return meta
}

// metaKey disambiguates the two "en" families (R2.2).
func metaKey(lang types.Language) string {
	if lang.IsSubject {
		return lang.Code + "/subjects"
	}
	return lang.Code
}

// Synthesize iterates matches in rank order and emits one listing per
// distinct (section, language code) grouping key whose language code is
// resolvable, capped at maxListings, in rank order with no re-sort (R1).
func Synthesize(matches []engine.Match, meta Meta, siteBase string, maxListings int) []types.Result {
	var listings []types.Result
	seen := make(map[string]bool)

	for _, m := range matches {
		if len(listings) >= maxListings {
			break
		}

		key := m.Entry.Section + "\x00" + m.Entry.Language.Code
		if seen[key] {
			continue
		}

		lang, ok := meta[metaKey(m.Entry.Language)]
		if !ok {
			continue
		}
		seen[key] = true

		listings = append(listings, types.Result{
			Title:    fmt.Sprintf("List of all %s resources in %s", DisplayLabel(m.Entry.Section), lang.Name),
			URL:      anchorURL(siteBase, m.Entry.Section, lang),
			Language: lang.Name,
			Section:  DisplayLabel(m.Entry.Section),
			Listing:  true,
		})
	}
	return listings
}

// Merge produces the final ordered display list: synthesized listings first,
// then the literal ranked matches, regardless of score (R3.2).
func Merge(listings []types.Result, matches []engine.Match) []types.Result {
	out := make([]types.Result, 0, len(listings)+len(matches))
	out = append(out, listings...)
	for _, m := range matches {
		out = append(out, matchResult(m))
	}
	return out
}

func matchResult(m engine.Match) types.Result {
	spans := make(map[string][]int, len(m.Positions))
	for f, idx := range m.Positions {
		spans[f.String()] = idx
	}
	return types.Result{
		Author:     m.Entry.Author,
		Title:      m.Entry.Title,
		URL:        m.Entry.URL,
		Language:   m.Entry.Language.Name,
		Section:    DisplayLabel(m.Entry.Section),
		Subsection: DisplayLabel(m.Entry.Subsection),
		Score:      m.Score,
		Spans:      spans,
	}
}

// anchorURL builds the deep-linked anchor for a section on the public site.
func anchorURL(siteBase, section string, lang types.Language) string {
	page := langsPage
	if lang.IsSubject {
		page = subjectsPage
	}
	return fmt.Sprintf("%s/%s#%s", siteBase, page, Slugify(NormalizeLabel(section)))
}
