// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog issues search requests against a CARL.X Integrated Library
// System catalog and returns the matching publications.
//
// A search for one author needs two request kinds: search/count reports how
// many publications match a set of facet filters, and search returns pages of
// publications up to hitsPerPage at a time. Both are issued once for
// publications with an unknown year and once for the client's year filter;
// unknown-year entries are future releases that may become available within
// the year.
package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/kbalk/booklist/internal/httputil"
	"github.com/kbalk/booklist/pkg/types"
)

const (
	countEndpoint  = "search/count"
	searchEndpoint = "search"

	defaultHitsPerPage = 30
	defaultTimeout     = 5 * time.Second
	defaultUserAgent   = "booklist/0.1"
)

// tsIncrement keeps successive cache-buster values unique within one run.
var tsIncrement atomic.Int64

// Client searches one CARL.X catalog. Year is the publication-year facet and
// defaults to the current calendar year; tests override it to pin a known
// result set. Debug receives request tracing when non-nil.
type Client struct {
	Client  *http.Client
	BaseURL *url.URL
	Cfg     types.CatalogConfig
	Year    int
	Debug   io.Writer
}

// New returns a client for the catalog at rawURL. Zero-valued settings fall
// back to the defaults the CARL.X web UI uses.
func New(rawURL string, cfg types.CatalogConfig) (*Client, error) {
	if rawURL == "" {
		return nil, fmt.Errorf("catalog URL must not be empty")
	}
	base, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog URL: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.HitsPerPage <= 0 {
		cfg.HitsPerPage = defaultHitsPerPage
	}
	return &Client{
		Client:  &http.Client{Timeout: cfg.Timeout},
		BaseURL: base,
		Cfg:     cfg,
		Year:    time.Now().Year(),
	}, nil
}

// Search returns the publications by author with the given media type,
// published in the client's filter year or with no known year. The author
// must be in "Last, First" form.
func (c *Client) Search(ctx context.Context, author string, media types.MediaType) ([]types.Publication, error) {
	if author == "" {
		return nil, fmt.Errorf("author must not be empty")
	}

	var results []types.Publication
	for _, year := range []string{"unknown", strconv.Itoa(c.Year)} {
		filters := []facetFilter{
			{FacetDisplay: year, FacetValue: year, FacetName: "Year"},
			{FacetDisplay: media.FacetName, FacetValue: media.FacetName, FacetName: "Format"},
		}

		total, err := c.count(ctx, author, filters)
		if err != nil {
			return nil, err
		}
		c.debugf("expected matches for year %s: %d", year, total)
		if total == 0 {
			continue
		}

		accumulated := 0
		for accumulated < total {
			resources, err := c.page(ctx, author, filters, accumulated)
			if err != nil {
				return nil, err
			}
			if len(resources) == 0 {
				return nil, fmt.Errorf("catalog promised %d publications but stopped after %d", total, accumulated)
			}
			accumulated += len(resources)
			results = append(results, keepAuthorMatches(author, resources)...)
		}
		if accumulated > total {
			return nil, fmt.Errorf("received more publications than expected: expected %d, have %d", total, accumulated)
		}
	}
	return results, nil
}

// count asks the catalog how many publications match the filters, so the
// pagination loop knows when to stop.
func (c *Client) count(ctx context.Context, author string, filters []facetFilter) (int, error) {
	var out countResponse
	if err := httputil.PostJSON(ctx, c.Client, c.endpoint(countEndpoint), c.header(), c.requestBody(author, filters, 0), &out); err != nil {
		return 0, fmt.Errorf("count request: %w", err)
	}
	if !out.Success {
		return 0, fmt.Errorf("catalog reported failure counting matches on author, media and year")
	}
	return out.TotalHits, nil
}

// page retrieves one page of publications starting at startIndex.
func (c *Client) page(ctx context.Context, author string, filters []facetFilter, startIndex int) ([]resource, error) {
	var out searchResponse
	if err := httputil.PostJSON(ctx, c.Client, c.endpoint(searchEndpoint), c.header(), c.requestBody(author, filters, startIndex), &out); err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	c.debugf("search page at index %d returned %d resources", startIndex, len(out.Resources))
	return out.Resources, nil
}

func (c *Client) requestBody(author string, filters []facetFilter, startIndex int) searchRequest {
	return searchRequest{
		AddToHistory: true,
		DBCodes:      []string{},
		HitsPerPage:  c.Cfg.HitsPerPage,
		SortCriteria: "NewlyAdded",
		StartIndex:   startIndex,
		FacetFilters: filters,
		SearchTerm:   author,
	}
}

// endpoint resolves name against the catalog URL and appends the `_`
// cache-buster parameter.
func (c *Client) endpoint(name string) string {
	ref := &url.URL{
		Path:     name,
		RawQuery: url.Values{"_": {strconv.FormatInt(cacheBuster(), 10)}}.Encode(),
	}
	return c.BaseURL.ResolveReference(ref).String()
}

// cacheBuster returns a 13-digit value for the `_` query parameter. CARL.X
// compares it against the prior request's value to decide whether to serve
// cached data, so the increment keeps requests within the same millisecond
// distinct.
func cacheBuster() int64 {
	return time.Now().UnixMilli() + tsIncrement.Add(1)
}

// header returns the headers the LS2 PAC web UI sends with search requests.
func (c *Client) header() http.Header {
	h := http.Header{}
	h.Set("X-Requested-With", "XMLHttpRequest")
	h.Set("Accept", "application/json, text/javascript, */*; q=0.01")
	h.Set("Accept-Language", "en-US,en;q=0.8")
	h.Set("Ls2pac-config-type", "pac")
	h.Set("Ls2pac-config-name", "default - Go Live load")
	h.Set("Referer", c.BaseURL.String())
	h.Set("User-Agent", c.Cfg.UserAgent)
	return h
}

func (c *Client) debugf(format string, args ...any) {
	if c.Debug != nil {
		fmt.Fprintf(c.Debug, format+"\n", args...)
	}
}

// keepAuthorMatches applies the filters the search request cannot express.
// Authorless resources are dropped: some publications carry no shortAuthor
// ('The Mystery Writers of America cookbook' shows up in a search for Sue
// Grafton) and would be misleading. The author match is a substring test
// because the searched author may be one of several credited on a
// publication.
func keepAuthorMatches(author string, resources []resource) []types.Publication {
	var pubs []types.Publication
	for _, r := range resources {
		if r.ShortAuthor == "" {
			continue
		}
		shortAuthor := stripMarkup(r.ShortAuthor)
		if !strings.Contains(shortAuthor, author) {
			continue
		}
		pub := types.Publication{
			Title:  stripMarkup(r.ShortTitle),
			Author: shortAuthor,
			Format: r.Format,
			Year:   publicationYear(r.PublicationDate),
		}
		if pub.Title == "" {
			pub.Title = "Unknown"
		}
		if pub.Format == "" {
			pub.Format = "Unknown"
		}
		pubs = append(pubs, pub)
	}
	return pubs
}

// stripMarkup flattens markup the catalog embeds in result fields (highlight
// spans, entities) to plain text.
func stripMarkup(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(doc.Text())
}

// publicationYear extracts the year from a resource's publicationDate, which
// the catalog reports in forms like "2015" or "2015-06-01". 0 means unknown.
func publicationYear(date string) int {
	date = strings.TrimSpace(date)
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}
