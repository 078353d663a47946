package engine

import (
	"testing"

	"github.com/pdiddy/bookfinder/pkg/types"
)

func testEntries() []types.Entry {
	english := types.Language{Code: "en", Name: "English"}
	french := types.Language{Code: "fr", Name: "French"}
	return []types.Entry{
		{Author: "Jake Wharton", Title: "Kotlin Basics", Language: english, Section: "Android"},
		{Author: "Dennis Ritchie", Title: "The C Programming Language", Language: english, Section: "C"},
		{Author: "Pierre Dupont", Title: "Kotlin en pratique", Language: french, Section: "Android"},
		{Author: "Grace Hopper", Title: "Compilers", Language: english, Section: "Compilers"},
	}
}

func titles(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Entry.Title
	}
	return out
}

func TestFuzzyDistance(t *testing.T) {
	tests := []struct {
		name      string
		term      string
		value     string
		wantScore float64
		wantMatch bool
	}{
		{"exact", "kotlin", "kotlin", 0, true},
		{"substring scores zero", "kotlin", "kotlin basics", 0, true},
		{"substring mid-value", "kotlin", "the kotlin book", 0, true},
		{"single gap within threshold", "kotln", "kotlin basics", 1.0 / 6.0, true},
		{"scattered past threshold", "ktln", "kotlin basics", 1.0 / 3.0, false},
		{"no subsequence", "zzz", "kotlin basics", 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, idx, ok := fuzzyDistance(tt.term, tt.value)
			if ok != tt.wantMatch {
				t.Fatalf("fuzzyDistance(%q, %q) ok = %v, want %v", tt.term, tt.value, ok, tt.wantMatch)
			}
			if d != tt.wantScore {
				t.Errorf("fuzzyDistance(%q, %q) = %v, want %v", tt.term, tt.value, d, tt.wantScore)
			}
			if tt.wantMatch && len(idx) == 0 {
				t.Error("matched but no positions reported")
			}
		})
	}
}

func TestAnchoredClause(t *testing.T) {
	ix := New(testEntries())

	tests := []struct {
		name   string
		clause Clause
		want   []string
	}{
		{
			"language prefix",
			Clause{Field: FieldLanguage, Term: "en", Anchored: true},
			[]string{"Kotlin Basics", "The C Programming Language", "Compilers"},
		},
		{
			"section prefix",
			Clause{Field: FieldSection, Term: "and", Anchored: true},
			[]string{"Kotlin Basics", "Kotlin en pratique"},
		},
		{
			"case insensitive",
			Clause{Field: FieldSection, Term: "ANDROID", Anchored: true},
			[]string{"Kotlin Basics", "Kotlin en pratique"},
		},
		{
			"non-prefix substring rejected",
			Clause{Field: FieldSection, Term: "droid", Anchored: true},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(ix.Execute(tt.clause))
			if len(got) != len(tt.want) {
				t.Fatalf("matches = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("matches[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
			for _, m := range ix.Execute(tt.clause) {
				if m.Score != 0 {
					t.Errorf("anchored match score = %v, want 0", m.Score)
				}
			}
		})
	}
}

func TestFuzzyClauseCaseInsensitive(t *testing.T) {
	ix := New(testEntries())
	got := titles(ix.Execute(Clause{Field: FieldTitle, Term: "KOTLIN"}))
	want := []string{"Kotlin Basics", "Kotlin en pratique"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("matches = %v, want %v", got, want)
	}
}

func TestOrTakesBestChild(t *testing.T) {
	ix := New(testEntries())
	expr := Or{Exprs: []Expr{
		Clause{Field: FieldAuthor, Term: "kotlin"},
		Clause{Field: FieldTitle, Term: "kotlin"},
	}}

	matches := ix.Execute(expr)
	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2: %v", len(matches), titles(matches))
	}
	for _, m := range matches {
		if m.Score != 0 {
			t.Errorf("%q score = %v, want 0 (best child)", m.Entry.Title, m.Score)
		}
		if len(m.Positions[FieldTitle]) == 0 {
			t.Errorf("%q missing title positions", m.Entry.Title)
		}
	}
}

func TestAndTakesWorstChild(t *testing.T) {
	ix := New(testEntries())
	expr := And{Exprs: []Expr{
		Clause{Field: FieldLanguage, Term: "en", Anchored: true}, // distance 0
		Clause{Field: FieldTitle, Term: "kotln"},                 // distance 1/6
	}}

	matches := ix.Execute(expr)
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1: %v", len(matches), titles(matches))
	}
	if got, want := matches[0].Score, 1.0/6.0; got != want {
		t.Errorf("Score = %v, want %v (worst child)", got, want)
	}
}

func TestAndFailsWhenAnyChildFails(t *testing.T) {
	ix := New(testEntries())
	expr := And{Exprs: []Expr{
		Clause{Field: FieldTitle, Term: "kotlin"},
		Clause{Field: FieldLanguage, Term: "de", Anchored: true},
	}}
	if got := ix.Execute(expr); len(got) != 0 {
		t.Errorf("len(matches) = %d, want 0", len(got))
	}
}

func TestEmptyAndIsVacuouslyTrue(t *testing.T) {
	ix := New(testEntries())
	matches := ix.Execute(And{})
	if len(matches) != ix.Len() {
		t.Fatalf("len(matches) = %d, want %d", len(matches), ix.Len())
	}
	for _, m := range matches {
		if m.Score != 0 {
			t.Errorf("%q score = %v, want 0", m.Entry.Title, m.Score)
		}
	}
}

func TestEmptyOrMatchesNothing(t *testing.T) {
	ix := New(testEntries())
	if got := ix.Execute(Or{}); len(got) != 0 {
		t.Errorf("len(matches) = %d, want 0", len(got))
	}
}

func TestExecuteSortsAscendingKeepingCatalogOrderOnTies(t *testing.T) {
	english := types.Language{Code: "en", Name: "English"}
	entries := []types.Entry{
		{Title: "Kotlzin Guide", Language: english, Section: "Android"}, // gap: 1/7
		{Title: "Kotlin First", Language: english, Section: "Android"},  // exact: 0
		{Title: "Kotlin Second", Language: english, Section: "Android"}, // exact: 0
	}
	ix := New(entries)

	got := titles(ix.Execute(Clause{Field: FieldTitle, Term: "kotlin"}))
	want := []string{"Kotlin First", "Kotlin Second", "Kotlzin Guide"}
	if len(got) != len(want) {
		t.Fatalf("matches = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("matches[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExecuteNilExpr(t *testing.T) {
	ix := New(testEntries())
	if got := ix.Execute(nil); got != nil {
		t.Errorf("Execute(nil) = %v, want nil", got)
	}
}

func TestEmptyTermClauseMatchesNothing(t *testing.T) {
	ix := New(testEntries())
	if got := ix.Execute(Clause{Field: FieldTitle, Term: "   "}); len(got) != 0 {
		t.Errorf("len(matches) = %d, want 0", len(got))
	}
}
