package catalog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pdiddy/bookfinder/pkg/types"
)

func english() types.Language {
	return types.Language{Code: "en", Name: "English"}
}

func sampleCatalog() types.Catalog {
	return types.Catalog{Documents: []types.Document{
		{
			Language: english(),
			Sections: []types.Section{
				{
					Name: "Android",
					Entries: []types.BookEntry{
						{Author: "A", Title: "Android Internals", URL: "http://example.com/a"},
					},
					Subsections: []types.Subsection{
						{
							Name: "Kotlin",
							Entries: []types.BookEntry{
								{Author: "B", Title: "Kotlin Basics", URL: "http://example.com/b"},
								{Author: "C", Title: "Kotlin in Depth", URL: "http://example.com/c"},
							},
						},
					},
				},
				{
					Name: "C",
					Entries: []types.BookEntry{
						{Author: "D", Title: "The C Book", URL: "http://example.com/d"},
					},
				},
			},
		},
		{
			Language: types.Language{Code: "fr", Name: "French"},
			Sections: []types.Section{
				{
					Name: "Android",
					Entries: []types.BookEntry{
						{Author: "E", Title: "Android en français", URL: "http://example.com/e"},
					},
				},
			},
		},
	}}
}

func TestFlattenCountsAndOrder(t *testing.T) {
	var buf bytes.Buffer
	entries, _ := Flatten(sampleCatalog(), &buf)

	// 2 direct entries + 2 subsection entries in en, 1 direct in fr.
	if len(entries) != 5 {
		t.Fatalf("len(entries) = %d, want 5", len(entries))
	}

	wantTitles := []string{
		"Android Internals",
		"Kotlin Basics",
		"Kotlin in Depth",
		"The C Book",
		"Android en français",
	}
	for i, want := range wantTitles {
		if entries[i].Title != want {
			t.Errorf("entries[%d].Title = %q, want %q", i, entries[i].Title, want)
		}
	}
}

func TestFlattenStampsSubsection(t *testing.T) {
	var buf bytes.Buffer
	entries, _ := Flatten(sampleCatalog(), &buf)

	kotlin := entries[1]
	if kotlin.Section != "Android" {
		t.Errorf("Section = %q, want %q", kotlin.Section, "Android")
	}
	if kotlin.Subsection != "Kotlin" {
		t.Errorf("Subsection = %q, want %q", kotlin.Subsection, "Kotlin")
	}
	if kotlin.Language.Code != "en" {
		t.Errorf("Language.Code = %q, want %q", kotlin.Language.Code, "en")
	}

	direct := entries[0]
	if direct.Subsection != "" {
		t.Errorf("direct entry Subsection = %q, want empty", direct.Subsection)
	}
}

func TestFlattenSectionDedup(t *testing.T) {
	var buf bytes.Buffer
	_, sections := Flatten(sampleCatalog(), &buf)

	// "Android" appears in both documents but is listed once, first-seen order.
	want := []string{"Android", "C"}
	if len(sections) != len(want) {
		t.Fatalf("len(sections) = %d, want %d (%v)", len(sections), len(want), sections)
	}
	for i := range want {
		if sections[i] != want[i] {
			t.Errorf("sections[%d] = %q, want %q", i, sections[i], want[i])
		}
	}
}

func TestFlattenSkipsMalformedNodes(t *testing.T) {
	cat := types.Catalog{Documents: []types.Document{
		{
			// No language code: whole document skipped.
			Sections: []types.Section{
				{Name: "Ghost", Entries: []types.BookEntry{{Title: "Lost", URL: "http://x"}}},
			},
		},
		{
			Language: english(),
			Sections: []types.Section{
				{
					// Unnamed section skipped.
					Entries: []types.BookEntry{{Title: "Also lost", URL: "http://x"}},
				},
				{
					Name: "Android",
					Entries: []types.BookEntry{
						{}, // no title, no URL: malformed
						{Author: "A", Title: "Survivor", URL: "http://example.com"},
					},
					Subsections: []types.Subsection{
						{Entries: []types.BookEntry{{Title: "In unnamed sub", URL: "http://x"}}},
					},
				},
			},
		},
	}}

	var buf bytes.Buffer
	entries, sections := Flatten(cat, &buf)

	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1: %+v", len(entries), entries)
	}
	if entries[0].Title != "Survivor" {
		t.Errorf("Title = %q, want %q", entries[0].Title, "Survivor")
	}
	if len(sections) != 1 || sections[0] != "Android" {
		t.Errorf("sections = %v, want [Android]", sections)
	}
	if !strings.Contains(buf.String(), "warning:") {
		t.Error("expected warnings for skipped nodes")
	}
}

func TestFlattenEmptyCatalog(t *testing.T) {
	var buf bytes.Buffer
	entries, sections := Flatten(types.Catalog{}, &buf)
	if len(entries) != 0 {
		t.Errorf("len(entries) = %d, want 0", len(entries))
	}
	if len(sections) != 0 {
		t.Errorf("len(sections) = %d, want 0", len(sections))
	}
}
