// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report filters catalog search results and prints them grouped by
// author in configuration order.
package report

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/kbalk/booklist/pkg/types"
)

// Filter keeps publications from year or with an unknown year. Unknown-year
// entries are kept because they are future releases that may land within the
// year.
func Filter(pubs []types.Publication, year int) []types.Publication {
	var kept []types.Publication
	for _, p := range pubs {
		if p.Year == 0 || p.Year == year {
			kept = append(kept, p)
		}
	}
	return kept
}

// Collapse drops entries whose format the requested media type subsumes when
// the same title is already present under another format: a search for books
// also returns large-print editions, and listing both lines for one title is
// noise. Returns the surviving entries and the number removed. Entries whose
// title appears only under the subsumed format survive.
func Collapse(pubs []types.Publication, requested types.MediaType) ([]types.Publication, int) {
	seen := make(map[string]bool)
	for _, p := range pubs {
		if !requested.Subsumes(p.Format) {
			seen[collapseKey(p)] = true
		}
	}

	var kept []types.Publication
	removed := 0
	for _, p := range pubs {
		if requested.Subsumes(p.Format) && seen[collapseKey(p)] {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	return kept, removed
}

func collapseKey(p types.Publication) string {
	return normalizeTitle(p.Title) + "|" + p.Author
}

// normalizeTitle returns a lowercased, punctuation-stripped version of the
// title.
func normalizeTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Print writes one line per publication to w, the format tag left-aligned in
// a column sized to the widest tag. Some formats are supersets of others, so
// showing which format matched each entry is useful.
func Print(w io.Writer, pubs []types.Publication) {
	width := 0
	for _, p := range pubs {
		if len(p.Format) > width {
			width = len(p.Format)
		}
	}
	for _, p := range pubs {
		fmt.Fprintf(w, "  [%-*s]  %s\n", width, p.Format, p.Title)
	}
}
