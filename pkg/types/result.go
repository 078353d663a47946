// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Result is one display item in the final ordered result list: either a
// literal ranked match or a synthesized listing that links to a full catalog
// section page. Listings carry an empty author and no score ordering of
// their own; they always precede literal matches (prd004-aggregate R3.2).
type Result struct {
	// Author is empty for synthesized listings.
	Author string `json:"author" yaml:"author"`

	// Title is the book title, or "List of all <section> resources in
	// <language>" for a listing.
	Title string `json:"title" yaml:"title"`

	// URL is the resource link, or the deep-linked anchor-page URL for a listing.
	URL string `json:"url" yaml:"url"`

	// Language is the human-readable language name of the owning document.
	Language string `json:"language,omitempty" yaml:"language,omitempty"`

	// Section and Subsection locate the entry in the catalog tree.
	Section    string `json:"section,omitempty" yaml:"section,omitempty"`
	Subsection string `json:"subsection,omitempty" yaml:"subsection,omitempty"`

	// Score is the normalized match distance: 0 is exact, 1 is no match.
	Score float64 `json:"score" yaml:"score"`

	// Spans maps field names ("author", "title", ...) to matched character
	// positions, for highlighting.
	Spans map[string][]int `json:"match_spans,omitempty" yaml:"match_spans,omitempty"`

	// Listing marks a synthesized aggregate result.
	Listing bool `json:"listing,omitempty" yaml:"listing,omitempty"`
}
