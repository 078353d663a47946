package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bookfinder/internal/pipeline"
	"github.com/pdiddy/bookfinder/pkg/types"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the catalog's section names",
	Long: `Sections prints the deduplicated section names of the cached catalog in
first-seen order. Use the names as --section filter values for search.`,
	RunE: runSections,
}

func runSections(cmd *cobra.Command, args []string) error {
	refresh, _ := cmd.Flags().GetBool("refresh")
	cat, err := loadCatalog(context.Background(), catalogConfig(cmd), refresh)
	if err != nil {
		return err
	}

	p := pipeline.New(cat, types.SearchConfig{}, os.Stderr)
	for _, name := range p.Sections() {
		fmt.Println(name)
	}
	fmt.Fprintf(os.Stderr, "\n%d sections, %d entries\n", len(p.Sections()), p.EntryCount())
	return nil
}

func init() {
	sectionsCmd.Flags().String("catalog", "", "catalog source URL or file path")
	sectionsCmd.Flags().String("cache-dir", "", "snapshot cache directory")
	sectionsCmd.Flags().Bool("refresh", false, "refetch the catalog instead of using the cache")

	rootCmd.AddCommand(sectionsCmd)
}
