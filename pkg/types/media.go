package types

import "strings"

// MediaType is one entry of the closed set of formats the catalog can filter
// on. ConfigName is the lowercase spelling accepted in the config file;
// FacetName is the spelling the catalog expects in a Format facet filter.
type MediaType struct {
	ConfigName string
	FacetName  string
}

// MediaTypes lists the supported CARL.X formats.
//
// Formats whose resources carry no shortAuthor field (Visual Materials,
// Video Recording, eVideo, eJournal) are excluded: authorless resources are
// dropped during filtering, so searches on those formats would silently
// return nothing. AudioBook is excluded in favor of eAudioBook because the
// non-"e" format returns duplicate entries.
var MediaTypes = []MediaType{
	{ConfigName: "book", FacetName: "Book"},
	{ConfigName: "electronic resource", FacetName: "Electronic Resource"},
	{ConfigName: "ebook", FacetName: "eBook"},
	{ConfigName: "eaudiobook", FacetName: "eAudioBook"},
	{ConfigName: "book on cd", FacetName: "Book on CD"},
	{ConfigName: "large print", FacetName: "Large Print"},
	{ConfigName: "music cd", FacetName: "Music CD"},
	{ConfigName: "dvd", FacetName: "DVD"},
	{ConfigName: "blu-ray", FacetName: "Blu-Ray"},
	{ConfigName: "emusic", FacetName: "eMusic"},
}

// DefaultMediaType is assumed when the config file names no media type.
var DefaultMediaType = MediaTypes[0]

// supersets maps a format facet to the facet that subsumes it: a search for
// the superset format also returns entries tagged with the subset format.
var supersets = map[string]string{
	"Large Print": "Book",
	"eBook":       "Electronic Resource",
}

// LookupMediaType resolves a config-file spelling to its media type. The
// match is case-insensitive. ok is false when the name is not in the
// supported set.
func LookupMediaType(name string) (MediaType, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, m := range MediaTypes {
		if m.ConfigName == lower {
			return m, true
		}
	}
	return MediaType{}, false
}

// Subsumes reports whether a search for m also returns entries tagged with
// the given format facet, e.g. Book subsumes Large Print.
func (m MediaType) Subsumes(facet string) bool {
	return supersets[facet] == m.FacetName
}
