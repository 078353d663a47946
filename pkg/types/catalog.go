// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the bookfinder pipeline.
// Implements: prd001-catalog (Catalog, Entry);
//
//	prd005-pipeline (Result);
//	docs/ARCHITECTURE § Data Structures.
package types

// Language identifies the language (or pseudo-language) a catalog document
// covers. The catalog encodes general subject overview pages as documents
// under code "en" with IsSubject set; the flag selects which anchor-page
// family generated links target (prd004-aggregate R2.2).
type Language struct {
	// Code is the ISO-style language code (e.g. "en", "fr").
	Code string `json:"code" yaml:"code"`

	// Name is the human-readable language name (e.g. "English").
	Name string `json:"name" yaml:"name"`

	// IsSubject marks a subject-index document rather than a per-language one.
	IsSubject bool `json:"isSubject" yaml:"is_subject"`
}

// Catalog is the root of the fetched catalog tree.
type Catalog struct {
	Documents []Document `json:"documents" yaml:"documents"`
}

// Document groups the sections of one per-language (or per-subject) catalog page.
type Document struct {
	Language Language  `json:"language" yaml:"language"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// Section is a topical grouping of book entries, optionally subdivided.
// The catalog JSON uses the key "section" for the name.
type Section struct {
	Name        string       `json:"section" yaml:"section"`
	Entries     []BookEntry  `json:"entries" yaml:"entries"`
	Subsections []Subsection `json:"subsections" yaml:"subsections"`
}

// Subsection is a second-level grouping inside a Section.
type Subsection struct {
	Name    string      `json:"section" yaml:"section"`
	Entries []BookEntry `json:"entries" yaml:"entries"`
}

// BookEntry is a single book or resource record as it appears in the catalog.
type BookEntry struct {
	Author string `json:"author" yaml:"author"`
	Title  string `json:"title" yaml:"title"`
	URL    string `json:"url" yaml:"url"`
}

// Entry is a flattened, searchable record. It carries its owning language,
// section, and (when present) subsection by value; entries are never shared
// or mutated after the flatten pass (prd001-catalog R2.4).
type Entry struct {
	Author     string   `json:"author" yaml:"author"`
	Title      string   `json:"title" yaml:"title"`
	URL        string   `json:"url" yaml:"url"`
	Language   Language `json:"language" yaml:"language"`
	Section    string   `json:"section" yaml:"section"`
	Subsection string   `json:"subsection,omitempty" yaml:"subsection,omitempty"`
}
