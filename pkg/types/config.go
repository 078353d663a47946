package types

import "time"

// HTTPConfig holds shared HTTP settings for the catalog fetch.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "bookfinder/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CatalogConfig holds settings for loading the catalog.
// Per prd001-catalog R1.1-R1.3.
type CatalogConfig struct {
	HTTPConfig `yaml:",inline"`

	// Source is the catalog location: an HTTP(S) URL or a local file path.
	Source string `json:"source" yaml:"source"`

	// CacheDir is the directory holding the SQLite snapshot cache.
	CacheDir string `json:"cache_dir" yaml:"cache_dir"`
}

// SearchConfig holds settings for the search and aggregation stages.
// Per prd002-engine R3.2, prd004-aggregate R1.3, R3.1.
type SearchConfig struct {
	// MaxResults caps the raw ranked matches fed to aggregation (default 40).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// MaxListings caps the synthesized listing entries (default 5).
	MaxListings int `json:"max_listings" yaml:"max_listings"`

	// SiteBaseURL is the public site base the listing anchors point at.
	SiteBaseURL string `json:"site_base_url" yaml:"site_base_url"`
}

// DefaultCatalogSource is the published catalog JSON location.
const DefaultCatalogSource = "https://ebookfoundation.github.io/free-programming-books-search/fpb.json"

// DefaultSiteBaseURL is the published location of the anchor pages that
// synthesized listings deep-link into.
const DefaultSiteBaseURL = "https://ebookfoundation.github.io/free-programming-books/books"

const (
	// DefaultMaxResults is the raw match cap applied before aggregation.
	DefaultMaxResults = 40

	// DefaultMaxListings is the synthesized listing cap.
	DefaultMaxListings = 5
)

// WithDefaults fills unset fields with the published defaults.
func (c SearchConfig) WithDefaults() SearchConfig {
	if c.MaxResults <= 0 {
		c.MaxResults = DefaultMaxResults
	}
	if c.MaxListings <= 0 {
		c.MaxListings = DefaultMaxListings
	}
	if c.SiteBaseURL == "" {
		c.SiteBaseURL = DefaultSiteBaseURL
	}
	return c
}
