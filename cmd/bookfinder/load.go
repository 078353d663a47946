// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bookfinder/internal/catalog"
	"github.com/pdiddy/bookfinder/pkg/types"
)

// catalogConfig assembles the catalog settings from flags, falling back to
// the config file and finally to the published defaults.
func catalogConfig(cmd *cobra.Command) types.CatalogConfig {
	source, _ := cmd.Flags().GetString("catalog")
	if source == "" {
		source = viper.GetString("catalog.source")
	}
	if source == "" {
		source = types.DefaultCatalogSource
	}

	cacheDir, _ := cmd.Flags().GetString("cache-dir")
	if cacheDir == "" {
		cacheDir = viper.GetString("catalog.cache_dir")
	}
	if cacheDir == "" {
		cacheDir = "cache"
	}

	return types.CatalogConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   30 * time.Second,
			UserAgent: "bookfinder/" + version,
		},
		Source:   source,
		CacheDir: cacheDir,
	}
}

// searchConfig assembles the search settings from flags and config file.
func searchConfig(cmd *cobra.Command) types.SearchConfig {
	maxResults, _ := cmd.Flags().GetInt("max-results")
	siteBase, _ := cmd.Flags().GetString("site-base")
	if siteBase == "" {
		siteBase = viper.GetString("search.site_base_url")
	}
	return types.SearchConfig{
		MaxResults:  maxResults,
		SiteBaseURL: siteBase,
	}.WithDefaults()
}

// loadCatalog returns the catalog, preferring the local snapshot cache.
// With refresh set (or on a cache miss) it fetches from the source and
// stores the new snapshot.
func loadCatalog(ctx context.Context, cfg types.CatalogConfig, refresh bool) (types.Catalog, error) {
	cache, err := catalog.OpenCache(cfg.CacheDir)
	if err != nil {
		return types.Catalog{}, err
	}
	defer cache.Close()

	if !refresh {
		raw, fetchedAt, ok, err := cache.Get(ctx, cfg.Source)
		if err != nil {
			return types.Catalog{}, err
		}
		if ok {
			cat, err := catalog.Parse(raw)
			if err == nil {
				fmt.Fprintf(os.Stderr, "Using cached catalog from %s\n", fetchedAt.Format(time.RFC3339))
				return cat, nil
			}
			fmt.Fprintf(os.Stderr, "warning: cached catalog unreadable, refetching: %v\n", err)
		}
	}

	cat, raw, err := catalog.Fetch(ctx, &http.Client{Timeout: cfg.Timeout}, cfg)
	if err != nil {
		return types.Catalog{}, err
	}
	if err := cache.Put(ctx, cfg.Source, raw); err != nil {
		fmt.Fprintf(os.Stderr, "warning: snapshot not cached: %v\n", err)
	}
	return cat, nil
}
