// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine builds an in-memory fuzzy index over the flat catalog
// entries and executes boolean query trees against it.
// Implements: prd002-engine (R1-R4);
//
//	docs/ARCHITECTURE § Search Engine.
package engine

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/pdiddy/bookfinder/pkg/types"
)

// Threshold is the fixed fuzzy distance cutoff on the normalized 0 (exact)
// to 1 (no match) scale. Matches above it are dropped (R2.3).
const Threshold = 0.2

// Field selects which entry field a clause matches against (R1.1).
type Field int

const (
	FieldAuthor Field = iota
	FieldTitle
	FieldLanguage
	FieldSection

	fieldCount
)

// String returns the field name used in match-span metadata.
func (f Field) String() string {
	switch f {
	case FieldAuthor:
		return "author"
	case FieldTitle:
		return "title"
	case FieldLanguage:
		return "language"
	case FieldSection:
		return "section"
	}
	return "unknown"
}

// Expr is a node in a boolean query tree.
type Expr interface {
	isExpr()
}

// Clause matches one field against a term. In the default fuzzy mode the
// term is matched approximately anywhere in the field; with Anchored set it
// must match exactly from position 0 (prefix mode, R2.4).
type Clause struct {
	Field    Field
	Term     string
	Anchored bool
}

// And matches when every child matches. An empty And is vacuously true at
// distance 0.
type And struct {
	Exprs []Expr
}

// Or matches when at least one child matches. An empty Or matches nothing;
// query builders must omit empty groups rather than rely on it degrading to
// "no constraint".
type Or struct {
	Exprs []Expr
}

func (Clause) isExpr() {}
func (And) isExpr()    {}
func (Or) isExpr()     {}

// Match is one ranked hit: the entry, its normalized distance score, and
// the matched character positions per field (R4.1).
type Match struct {
	Entry     types.Entry
	Score     float64
	Positions map[Field][]int
}

// Index is the searchable view over the flat entry sequence. It is built
// once per catalog load and is read-only afterwards; Execute never mutates
// it, so concurrent readers need no locking (R1.2).
type Index struct {
	entries []types.Entry
	fields  [][fieldCount]string // lowercased field values, by entry
}

// New builds the index over entries. Field values are lowercased up front
// so matching is case-insensitive throughout (R2.1).
func New(entries []types.Entry) *Index {
	ix := &Index{
		entries: entries,
		fields:  make([][fieldCount]string, len(entries)),
	}
	for i, e := range entries {
		ix.fields[i][FieldAuthor] = strings.ToLower(e.Author)
		ix.fields[i][FieldTitle] = strings.ToLower(e.Title)
		ix.fields[i][FieldLanguage] = strings.ToLower(e.Language.Code)
		ix.fields[i][FieldSection] = strings.ToLower(e.Section)
	}
	return ix
}

// Len returns the number of indexed entries.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Execute evaluates expr against every indexed entry (exhaustive, R2.2) and
// returns matches sorted by ascending distance. The sort is stable, so ties
// keep catalog order; downstream aggregation relies on that first-seen
// tie-break (R3.1). The result is uncapped; the caller truncates.
func (ix *Index) Execute(expr Expr) []Match {
	if expr == nil {
		return nil
	}

	var out []Match
	for i := range ix.entries {
		score, pos, ok := ix.eval(expr, i)
		if !ok {
			continue
		}
		out = append(out, Match{Entry: ix.entries[i], Score: score, Positions: pos})
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Score < out[b].Score
	})
	return out
}

// eval returns the distance score and matched positions for entry i, and
// whether the expression matched at all.
//
// AND combines children pessimistically (worst child distance); OR combines
// optimistically (best matching child). Both merge positions from all
// matching children so every contributing span is reported.
func (ix *Index) eval(expr Expr, i int) (float64, map[Field][]int, bool) {
	switch e := expr.(type) {
	case Clause:
		return ix.evalClause(e, i)

	case And:
		var score float64
		positions := make(map[Field][]int)
		for _, child := range e.Exprs {
			s, p, ok := ix.eval(child, i)
			if !ok {
				return 0, nil, false
			}
			if s > score {
				score = s
			}
			mergePositions(positions, p)
		}
		return score, positions, true

	case Or:
		best := 1.0
		matched := false
		positions := make(map[Field][]int)
		for _, child := range e.Exprs {
			s, p, ok := ix.eval(child, i)
			if !ok {
				continue
			}
			matched = true
			if s < best {
				best = s
			}
			mergePositions(positions, p)
		}
		if !matched {
			return 0, nil, false
		}
		return best, positions, true
	}
	return 0, nil, false
}

func (ix *Index) evalClause(c Clause, i int) (float64, map[Field][]int, bool) {
	term := strings.ToLower(strings.TrimSpace(c.Term))
	if term == "" {
		return 0, nil, false
	}
	value := ix.fields[i][c.Field]

	if c.Anchored {
		if !strings.HasPrefix(value, term) {
			return 0, nil, false
		}
		return 0, singleSpan(c.Field, len(term)), true
	}

	d, idx, ok := fuzzyDistance(term, value)
	if !ok {
		return 0, nil, false
	}
	return d, map[Field][]int{c.Field: idx}, true
}

// fuzzyDistance scores term against value on the normalized 0-1 scale. The
// subsequence matcher (sahilm/fuzzy) finds the candidate positions; the
// distance is 1 - |term| / window, where window is the span of text
// covering the matched characters. A contiguous (substring) match scores 0
// regardless of the surrounding text length; scattered matches drift
// towards 1 and fall past Threshold (R2.3).
func fuzzyDistance(term, value string) (float64, []int, bool) {
	matches := fuzzy.Find(term, []string{value})
	if len(matches) == 0 || len(matches[0].MatchedIndexes) == 0 {
		return 1, nil, false
	}

	idx := matches[0].MatchedIndexes
	window := idx[len(idx)-1] - idx[0] + 1
	d := 1 - float64(len(idx))/float64(window)
	if d < 0 {
		d = 0
	}
	if d > Threshold {
		return d, nil, false
	}
	return d, idx, true
}

func singleSpan(f Field, n int) map[Field][]int {
	span := make([]int, n)
	for i := range span {
		span[i] = i
	}
	return map[Field][]int{f: span}
}

func mergePositions(dst map[Field][]int, src map[Field][]int) {
	for f, idx := range src {
		dst[f] = append(dst[f], idx...)
	}
}
