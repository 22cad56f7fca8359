package types

// Publication is a single catalog search result. Entries are created per
// response, consumed immediately for filtering and printing, and never
// persisted.
type Publication struct {
	// Title is the publication's short title.
	Title string

	// Author is the "Last, First" author string reported by the catalog.
	Author string

	// Format is the catalog's format facet for the entry (e.g. "Large Print").
	Format string

	// Year is the publication year, or 0 when the catalog does not report one.
	Year int
}
