package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bookfinder/internal/pipeline"
	"github.com/pdiddy/bookfinder/internal/query"
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search the catalog by free text, language, and section",
	Long: `Search runs a fuzzy free-text query over authors and titles, optionally
narrowed by strict language-code and section prefix filters. Matching
sections also yield "List of all ..." entries linking into the public site.

At least one of the term, --lang, or --section must be given; an empty
search returns nothing rather than ranking the whole catalog.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	session := query.NewSession()
	if len(args) > 0 {
		session = session.With(query.FreeText, args[0])
	}
	if term, _ := cmd.Flags().GetString("query"); term != "" {
		session = session.With(query.FreeText, term)
	}
	if lang, _ := cmd.Flags().GetString("lang"); lang != "" {
		session = session.With(query.LanguageFilter, lang)
	}
	if section, _ := cmd.Flags().GetString("section"); section != "" {
		session = session.With(query.SectionFilter, section)
	}

	if session.IsEmpty() {
		return fmt.Errorf("empty search: provide a term, --lang, or --section")
	}

	refresh, _ := cmd.Flags().GetBool("refresh")
	cat, err := loadCatalog(ctx, catalogConfig(cmd), refresh)
	if err != nil {
		return err
	}

	p := pipeline.New(cat, searchConfig(cmd), os.Stderr)
	if p.EntryCount() == 0 {
		return fmt.Errorf("catalog is empty: nothing to search")
	}

	results := p.Search(session)

	if path, _ := cmd.Flags().GetString("save"); path != "" {
		if err := query.WriteSaveFile(path, session, results); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved search to %s\n", path)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return pipeline.FormatJSON(results, os.Stdout)
	}
	pipeline.FormatTable(results, os.Stdout)
	return nil
}

func init() {
	searchCmd.Flags().String("query", "", "free-text search term (fuzzy, author or title)")
	searchCmd.Flags().String("lang", "", "language code filter (anchored prefix, e.g. en)")
	searchCmd.Flags().String("section", "", "section name filter (anchored prefix)")
	searchCmd.Flags().Int("max-results", 0, "raw match cap before aggregation (0 = default 40)")
	searchCmd.Flags().String("site-base", "", "public site base URL for listing anchors")
	searchCmd.Flags().String("catalog", "", "catalog source URL or file path")
	searchCmd.Flags().String("cache-dir", "", "snapshot cache directory")
	searchCmd.Flags().Bool("refresh", false, "refetch the catalog instead of using the cache")
	searchCmd.Flags().String("save", "", "write the search and results to a YAML file")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}
