// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog loads the nested catalog tree and flattens it into the
// ordered entry sequence the search engine indexes.
// Implements: prd001-catalog (R1-R4);
//
//	docs/ARCHITECTURE § Catalog.
package catalog

import (
	"fmt"
	"io"

	"github.com/pdiddy/bookfinder/pkg/types"
)

// Flatten walks the catalog tree in document, section, entry, subsection,
// entry order and returns the flat entry sequence plus the deduplicated
// section-name list in first-seen order (R2.1, R2.2). Traversal order is
// load-bearing: downstream deduplication uses first-seen position as the
// tie-break. Malformed nodes are skipped with a warning to w; the build
// never aborts (R4.1). An empty catalog yields an empty slice.
func Flatten(cat types.Catalog, w io.Writer) ([]types.Entry, []string) {
	var entries []types.Entry
	var sections []string
	seen := make(map[string]bool)

	addSection := func(name string) {
		if !seen[name] {
			seen[name] = true
			sections = append(sections, name)
		}
	}

	for _, doc := range cat.Documents {
		if doc.Language.Code == "" {
			fmt.Fprintf(w, "warning: skipping document with no language code (%d sections)\n", len(doc.Sections))
			continue
		}
		for _, sec := range doc.Sections {
			if sec.Name == "" {
				fmt.Fprintf(w, "warning: skipping unnamed section in %s\n", doc.Language.Code)
				continue
			}
			addSection(sec.Name)

			for _, be := range sec.Entries {
				e, ok := flatEntry(be, doc.Language, sec.Name, "")
				if !ok {
					fmt.Fprintf(w, "warning: skipping malformed entry in %s/%s\n", doc.Language.Code, sec.Name)
					continue
				}
				entries = append(entries, e)
			}

			for _, sub := range sec.Subsections {
				if sub.Name == "" {
					fmt.Fprintf(w, "warning: skipping unnamed subsection in %s/%s\n", doc.Language.Code, sec.Name)
					continue
				}
				for _, be := range sub.Entries {
					e, ok := flatEntry(be, doc.Language, sec.Name, sub.Name)
					if !ok {
						fmt.Fprintf(w, "warning: skipping malformed entry in %s/%s/%s\n", doc.Language.Code, sec.Name, sub.Name)
						continue
					}
					entries = append(entries, e)
				}
			}
		}
	}

	return entries, sections
}

// flatEntry stamps a book record with its owning language, section, and
// subsection. An entry with neither title nor URL is malformed (R4.2).
func flatEntry(be types.BookEntry, lang types.Language, section, subsection string) (types.Entry, bool) {
	if be.Title == "" && be.URL == "" {
		return types.Entry{}, false
	}
	return types.Entry{
		Author:     be.Author,
		Title:      be.Title,
		URL:        be.URL,
		Language:   lang,
		Section:    section,
		Subsection: subsection,
	}, true
}
