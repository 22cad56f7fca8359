// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"testing"

	"github.com/kbalk/booklist/pkg/types"
)

func media(t *testing.T, name string) types.MediaType {
	t.Helper()
	m, ok := types.LookupMediaType(name)
	if !ok {
		t.Fatalf("LookupMediaType(%q) failed", name)
	}
	return m
}

// --- Filter ---

func TestFilter(t *testing.T) {
	pubs := []types.Publication{
		{Title: "This year", Year: 2015},
		{Title: "Unknown year", Year: 0},
		{Title: "Last year", Year: 2014},
		{Title: "Next year", Year: 2016},
	}

	kept := Filter(pubs, 2015)
	if len(kept) != 2 {
		t.Fatalf("len(kept) = %d, want 2", len(kept))
	}
	if kept[0].Title != "This year" || kept[1].Title != "Unknown year" {
		t.Errorf("kept = %v, want current-year and unknown-year entries", kept)
	}
}

func TestFilterEmpty(t *testing.T) {
	if kept := Filter(nil, 2015); len(kept) != 0 {
		t.Errorf("Filter(nil) = %v, want empty", kept)
	}
}

// --- Collapse ---

func TestCollapseBookSubsumesLargePrint(t *testing.T) {
	pubs := []types.Publication{
		{Title: "X", Author: "Grafton, Sue", Format: "Book"},
		{Title: "X", Author: "Grafton, Sue", Format: "Large Print"},
		{Title: "O is for outlaw", Author: "Grafton, Sue", Format: "Large Print"},
	}

	kept, removed := Collapse(pubs, media(t, "book"))
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if len(kept) != 2 {
		t.Fatalf("len(kept) = %d, want 2", len(kept))
	}
	// The large-print duplicate of "X" goes; the large-print-only title stays.
	if kept[0].Format != "Book" || kept[1].Title != "O is for outlaw" {
		t.Errorf("kept = %v", kept)
	}
}

func TestCollapseElectronicResourceSubsumesEbook(t *testing.T) {
	pubs := []types.Publication{
		{Title: "X is for", Author: "Grafton, Sue", Format: "Electronic Resource"},
		{Title: "X is for", Author: "Grafton, Sue", Format: "eBook"},
	}

	kept, removed := Collapse(pubs, media(t, "electronic resource"))
	if removed != 1 || len(kept) != 1 {
		t.Fatalf("kept = %v, removed = %d; want one Electronic Resource entry", kept, removed)
	}
	if kept[0].Format != "Electronic Resource" {
		t.Errorf("kept format = %q", kept[0].Format)
	}
}

func TestCollapseOnlyWhenSupersetRequested(t *testing.T) {
	pubs := []types.Publication{
		{Title: "X", Author: "Grafton, Sue", Format: "Book"},
		{Title: "X", Author: "Grafton, Sue", Format: "Large Print"},
	}

	// Requesting large print directly keeps both entries.
	kept, removed := Collapse(pubs, media(t, "large print"))
	if removed != 0 || len(kept) != 2 {
		t.Errorf("kept = %v, removed = %d; want no collapsing", kept, removed)
	}
}

func TestCollapseIgnoresPunctuationInTitles(t *testing.T) {
	pubs := []types.Publication{
		{Title: "K is for killer", Author: "Grafton, Sue", Format: "Book"},
		{Title: "K is for Killer!", Author: "Grafton, Sue", Format: "Large Print"},
	}

	_, removed := Collapse(pubs, media(t, "book"))
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"K is for Killer!", "k is for killer"},
		{"  spaced   out  ", "spaced out"},
		{"X", "x"},
	}
	for _, tt := range tests {
		if got := normalizeTitle(tt.in); got != tt.want {
			t.Errorf("normalizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// --- Print ---

func TestPrintAlignsFormatColumn(t *testing.T) {
	pubs := []types.Publication{
		{Title: "X", Format: "Book"},
		{Title: "O is for outlaw", Format: "Large Print"},
	}

	var buf bytes.Buffer
	Print(&buf, pubs)

	want := "  [Book       ]  X\n" +
		"  [Large Print]  O is for outlaw\n"
	if buf.String() != want {
		t.Errorf("Print output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestPrintNothing(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, nil)
	if buf.Len() != 0 {
		t.Errorf("Print(nil) wrote %q, want nothing", buf.String())
	}
}
