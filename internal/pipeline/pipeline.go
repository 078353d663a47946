// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline wires the stages together: flatten the catalog once,
// build the engine index once, then recompute the full display list from
// scratch on every session change. The whole path is synchronous and
// single-threaded; the index is read-only after construction, so there is
// no locking anywhere (prd005-pipeline R1, R2).
//
// See docs/ARCHITECTURE § Pipeline.
package pipeline

import (
	"io"

	"github.com/pdiddy/bookfinder/internal/aggregate"
	"github.com/pdiddy/bookfinder/internal/catalog"
	"github.com/pdiddy/bookfinder/internal/engine"
	"github.com/pdiddy/bookfinder/internal/query"
	"github.com/pdiddy/bookfinder/pkg/types"
)

// Pipeline holds the immutable per-catalog state.
type Pipeline struct {
	entries  []types.Entry
	sections []string
	index    *engine.Index
	meta     aggregate.Meta
	cfg      types.SearchConfig
}

// New flattens the catalog and builds the search index. Malformed node
// warnings go to w. An empty catalog yields a working pipeline over zero
// entries; callers surface that as a load-state concern.
func New(cat types.Catalog, cfg types.SearchConfig, w io.Writer) *Pipeline {
	entries, sections := catalog.Flatten(cat, w)
	return &Pipeline{
		entries:  entries,
		sections: sections,
		index:    engine.New(entries),
		meta:     aggregate.MetaFromCatalog(cat),
		cfg:      cfg.WithDefaults(),
	}
}

// EntryCount returns the number of searchable entries.
func (p *Pipeline) EntryCount() int {
	return len(p.entries)
}

// Sections returns the deduplicated section names in first-seen order.
func (p *Pipeline) Sections() []string {
	return p.sections
}

// Search recomputes the display list for the session from scratch: build
// the query, execute, cap the raw matches, synthesize listings, merge.
// A session with no active parameters returns an empty list without
// touching the engine; an unconstrained ranking over the whole catalog is
// never run (prd003-query R3.3).
func (p *Pipeline) Search(s query.Session) []types.Result {
	expr, ok := s.Build()
	if !ok {
		return nil
	}

	matches := p.index.Execute(expr)
	if len(matches) > p.cfg.MaxResults {
		matches = matches[:p.cfg.MaxResults]
	}

	listings := aggregate.Synthesize(matches, p.meta, p.cfg.SiteBaseURL, p.cfg.MaxListings)
	return aggregate.Merge(listings, matches)
}
