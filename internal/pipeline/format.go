// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/bookfinder/pkg/types"
)

// FormatTable writes results as a human-readable table to w.
func FormatTable(results []types.Result, w io.Writer) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-50s  %-20s  %-18s  %-10s  %s\n",
		"Rank", "Title", "Author", "Section", "Language", "Score")
	fmt.Fprintln(w, strings.Repeat("-", 112))

	for i, r := range results {
		title := r.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		author := r.Author
		if len(author) > 20 {
			author = author[:17] + "..."
		}
		section := r.Section
		if len(section) > 18 {
			section = section[:15] + "..."
		}
		score := fmt.Sprintf("%.2f", r.Score)
		if r.Listing {
			score = "-"
		}
		fmt.Fprintf(w, "%-4d  %-50s  %-20s  %-18s  %-10s  %s\n",
			i+1, title, author, section, r.Language, score)
	}

	listings := 0
	for _, r := range results {
		if r.Listing {
			listings++
		}
	}
	fmt.Fprintf(w, "\n%d results", len(results))
	if listings > 0 {
		fmt.Fprintf(w, " (%d listings)", listings)
	}
	fmt.Fprintln(w)
}

// FormatJSON writes results as indented JSON to w.
func FormatJSON(results []types.Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
