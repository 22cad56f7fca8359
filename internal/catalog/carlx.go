// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

// CARL.X LS2 PAC JSON structures. The search form is the same one the
// catalog's web UI submits; there is no published contract for it.

type searchRequest struct {
	AddToHistory   bool          `json:"addToHistory"`
	DBCodes        []string      `json:"dbCodes"`
	HitsPerPage    int           `json:"hitsPerPage"`
	SortCriteria   string        `json:"sortCriteria"`
	StartIndex     int           `json:"startIndex"`
	TargetAudience string        `json:"targetAudience"`
	FacetFilters   []facetFilter `json:"facetFilters"`
	SearchTerm     string        `json:"searchTerm"`
}

type facetFilter struct {
	FacetDisplay string `json:"facetDisplay"`
	FacetValue   string `json:"facetValue"`
	FacetName    string `json:"facetName"`
}

type countResponse struct {
	Success   bool `json:"success"`
	TotalHits int  `json:"totalHits"`
}

type searchResponse struct {
	Resources []resource `json:"resources"`
}

type resource struct {
	ShortTitle      string `json:"shortTitle"`
	ShortAuthor     string `json:"shortAuthor"`
	Format          string `json:"format"`
	PublicationDate string `json:"publicationDate"`
}
