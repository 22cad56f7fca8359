// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config reads and validates the booklist YAML config file.
//
// The file names the library's catalog URL, an optional default media type
// ("book" is assumed otherwise), and the list of authors to search for.
// Validation collects every violation instead of stopping at the first, and
// runs before any network activity.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/kbalk/booklist/pkg/types"
)

// file mirrors the YAML layout of the config file.
type file struct {
	CatalogURL string        `yaml:"catalog-url"`
	MediaType  string        `yaml:"media-type"`
	Authors    []authorEntry `yaml:"authors"`
}

type authorEntry struct {
	FirstName string `yaml:"firstname"`
	LastName  string `yaml:"lastname"`
	MediaType string `yaml:"media-type"`
}

// Author is one validated author entry. Media is the effective media type:
// the author's own override when present, else the file-level default.
type Author struct {
	FirstName string
	LastName  string
	Media     types.MediaType
}

// SearchName returns the "Last, First" form the catalog search expects.
func (a Author) SearchName() string {
	return a.LastName + ", " + a.FirstName
}

// Config is a validated configuration.
type Config struct {
	CatalogURL   string
	DefaultMedia types.MediaType
	Authors      []Author
}

// ValidationError lists every violation found in a config file.
type ValidationError struct {
	Path     string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config file %q fails validation:\n  %s",
		e.Path, strings.Join(e.Problems, "\n  "))
}

// Load reads and validates the config file at path. On validation failure
// the returned error is a *ValidationError naming all offending fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config file %q is not valid YAML: %w", path, err)
	}

	var problems []string

	if f.CatalogURL == "" {
		problems = append(problems, "catalog-url: required field is missing")
	} else if err := validateURL(f.CatalogURL); err != nil {
		problems = append(problems, fmt.Sprintf("catalog-url: %v", err))
	}

	defaultMedia := types.DefaultMediaType
	if f.MediaType != "" {
		m, ok := types.LookupMediaType(f.MediaType)
		if !ok {
			problems = append(problems, fmt.Sprintf("media-type: %q is not a supported media type", f.MediaType))
		} else {
			defaultMedia = m
		}
	}

	if len(f.Authors) == 0 {
		problems = append(problems, "authors: at least one author is required")
	}

	cfg := &Config{CatalogURL: f.CatalogURL, DefaultMedia: defaultMedia}
	for i, entry := range f.Authors {
		author := Author{
			FirstName: entry.FirstName,
			LastName:  entry.LastName,
			Media:     defaultMedia,
		}
		if entry.FirstName == "" {
			problems = append(problems, fmt.Sprintf("authors[%d]: firstname: required field is missing", i))
		}
		if entry.LastName == "" {
			problems = append(problems, fmt.Sprintf("authors[%d]: lastname: required field is missing", i))
		}
		if entry.MediaType != "" {
			m, ok := types.LookupMediaType(entry.MediaType)
			if !ok {
				problems = append(problems, fmt.Sprintf("authors[%d]: media-type: %q is not a supported media type", i, entry.MediaType))
			} else {
				author.Media = m
			}
		}
		cfg.Authors = append(cfg.Authors, author)
	}

	if len(problems) > 0 {
		return nil, &ValidationError{Path: path, Problems: problems}
	}
	return cfg, nil
}

// validateURL requires an absolute http or https URL.
func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%q is not a valid URL: %v", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%q must be an absolute http or https URL", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%q has no host", raw)
	}
	return nil
}
