// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query models the user's search parameters as an immutable session
// and translates them into boolean query trees for the engine.
// Implements: prd003-query (R1-R3);
//
//	docs/ARCHITECTURE § Query Builder.
package query

import (
	"strings"

	"github.com/pdiddy/bookfinder/internal/engine"
)

// Kind is a fixed, tagged search parameter. Each kind carries its own
// combinator rule in the static rules table; there is no runtime key
// iteration (R1.1).
type Kind int

const (
	// FreeText fuzzy-matches the term against author OR title.
	FreeText Kind = iota

	// LanguageFilter is a strict anchored-prefix filter on the language code.
	LanguageFilter

	// SectionFilter is a strict anchored-prefix filter on the section name.
	SectionFilter
)

// kinds lists all parameter kinds in the order Build assembles clauses:
// strict filters first, then the free-text group. The order is cosmetic;
// AND is commutative.
var kinds = []Kind{LanguageFilter, SectionFilter, FreeText}

// keyKinds maps the presentation layer's string keys to parameter kinds.
// Unrecognized keys are ignored for forward compatibility (R1.3).
var keyKinds = map[string]Kind{
	"searchTerm": FreeText,
	"lang.code":  LanguageFilter,
	"section":    SectionFilter,
}

// kindKeys is the reverse mapping, used when serializing a session.
var kindKeys = map[Kind]string{
	FreeText:       "searchTerm",
	LanguageFilter: "lang.code",
	SectionFilter:  "section",
}

// rule builds the engine clause for one parameter kind.
type rule func(term string) engine.Expr

// rules is the static dispatch table: one combinator per kind (R1.2).
// FreeText produces the fuzzy author-OR-title group; the filters produce
// anchored-prefix clauses, exact categorical matching rather than fuzzy.
var rules = map[Kind]rule{
	FreeText: func(term string) engine.Expr {
		return engine.Or{Exprs: []engine.Expr{
			engine.Clause{Field: engine.FieldAuthor, Term: term},
			engine.Clause{Field: engine.FieldTitle, Term: term},
		}}
	},
	LanguageFilter: func(term string) engine.Expr {
		return engine.Clause{Field: engine.FieldLanguage, Term: term, Anchored: true}
	},
	SectionFilter: func(term string) engine.Expr {
		return engine.Clause{Field: engine.FieldSection, Term: term, Anchored: true}
	},
}

// Session holds one logical search session's parameters. Sessions are
// immutable: With returns a new session and never mutates the receiver, so
// derived results can always be recomputed from a consistent snapshot (R2.1).
type Session struct {
	params map[Kind]string
}

// NewSession returns an empty session.
func NewSession() Session {
	return Session{params: map[Kind]string{}}
}

// With returns a copy of the session with one parameter merged in.
// An empty value clears the constraint.
func (s Session) With(k Kind, value string) Session {
	next := make(map[Kind]string, len(s.params)+1)
	for kk, vv := range s.params {
		next[kk] = vv
	}
	next[k] = strings.TrimSpace(value)
	return Session{params: next}
}

// WithKey merges a parameter by its presentation-layer string key.
// Unrecognized keys leave the session unchanged.
func (s Session) WithKey(key, value string) Session {
	k, ok := keyKinds[key]
	if !ok {
		return s
	}
	return s.With(k, value)
}

// Get returns the current value for a parameter kind.
func (s Session) Get(k Kind) string {
	return s.params[k]
}

// IsEmpty reports whether every parameter is empty or absent.
func (s Session) IsEmpty() bool {
	for _, v := range s.params {
		if v != "" {
			return false
		}
	}
	return true
}

// Params returns the session's non-empty parameters keyed by their
// presentation-layer string keys, for serialization.
func (s Session) Params() map[string]string {
	out := make(map[string]string)
	for k, v := range s.params {
		if v != "" {
			out[kindKeys[k]] = v
		}
	}
	return out
}

// Build translates the session into a boolean query tree. Empty values
// contribute no constraint; in particular the free-text OR group is omitted
// entirely when the term is empty, because the engine treats an empty OR as
// "match nothing" and a strict-filter-only search must not be suppressed
// (R3.2). When every parameter is empty there is no active query and Build
// reports false; the caller must skip execution rather than rank the whole
// catalog (R3.3).
func (s Session) Build() (engine.Expr, bool) {
	var exprs []engine.Expr
	for _, k := range kinds {
		term := s.params[k]
		if term == "" {
			continue
		}
		exprs = append(exprs, rules[k](term))
	}

	switch len(exprs) {
	case 0:
		return nil, false
	case 1:
		return exprs[0], true
	default:
		return engine.And{Exprs: exprs}, true
	}
}
