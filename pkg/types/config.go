package types

import "time"

// HTTPConfig holds shared HTTP settings for requests against the catalog.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "booklist/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CatalogConfig holds settings for the catalog client.
type CatalogConfig struct {
	HTTPConfig `yaml:",inline"`

	// HitsPerPage is the maximum number of publications the catalog returns
	// per search response (default 30, matching the CARL.X web UI).
	HitsPerPage int `json:"hits_per_page" yaml:"hits_per_page"`
}
