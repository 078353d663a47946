// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/pdiddy/bookfinder/pkg/types"
)

// Fetch performs the one-shot catalog load from an HTTP(S) URL or a local
// file path (R1.1). It returns the parsed catalog together with the raw
// bytes so the caller can snapshot them. A fetch or parse failure is a
// terminal load error for the session; there is no retry here (R1.3).
func Fetch(ctx context.Context, client *http.Client, cfg types.CatalogConfig) (types.Catalog, []byte, error) {
	var (
		raw []byte
		err error
	)

	if isURL(cfg.Source) {
		raw, err = fetchHTTP(ctx, client, cfg)
	} else {
		raw, err = os.ReadFile(cfg.Source)
	}
	if err != nil {
		return types.Catalog{}, nil, fmt.Errorf("loading catalog from %s: %w", cfg.Source, err)
	}

	cat, err := Parse(raw)
	if err != nil {
		return types.Catalog{}, nil, fmt.Errorf("catalog %s: %w", cfg.Source, err)
	}
	return cat, raw, nil
}

// Parse decodes raw catalog JSON. An empty or absent document list is not a
// parse error; the caller treats it as a load-state concern (R1.4).
func Parse(raw []byte) (types.Catalog, error) {
	var cat types.Catalog
	if err := json.Unmarshal(raw, &cat); err != nil {
		return types.Catalog{}, fmt.Errorf("parsing catalog JSON: %w", err)
	}
	return cat, nil
}

func fetchHTTP(ctx context.Context, client *http.Client, cfg types.CatalogConfig) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.Source, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
		req = req.WithContext(ctx)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog server returned HTTP %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading catalog body: %w", err)
	}
	return raw, nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
