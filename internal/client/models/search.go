package models

// SearchCriteria holds the hotel-search form fields plus the ordered list of
// selected filter names. Field tags follow the portal API's naming.
type SearchCriteria struct {
	Name            string   `json:"name"`
	CountryID       string   `json:"country_id"`
	RegionID        string   `json:"region_id"`
	ResidenceTypeID string   `json:"resd_type_id"`
	DistanceName    string   `json:"distance_name"`
	SelectedFilters []string `json:"selected_filters"`
}

// NormalizeFilters collapses duplicate filter names while preserving the
// order of first occurrence. The order matters on restore: it drives the
// select-all / indeterminate state of the filter checkboxes.
func NormalizeFilters(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Pagination is a 1-based pagination cursor over a result set.
type Pagination struct {
	Total    int `json:"total"`
	Current  int `json:"current"`
	PageSize int `json:"pageSize"`
}

// PageCount returns the number of pages, 0 when the result set is empty.
func (p Pagination) PageCount() int {
	if p.Total <= 0 || p.PageSize <= 0 {
		return 0
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}

// Normalized clamps Current into [1, PageCount]. With an empty result set
// Current is defined to be 1 regardless of the stored value, so page-count
// displays never divide by zero.
func (p Pagination) Normalized() Pagination {
	if p.Total <= 0 {
		p.Current = 1
		return p
	}
	if pages := p.PageCount(); p.Current > pages && pages > 0 {
		p.Current = pages
	}
	if p.Current < 1 {
		p.Current = 1
	}
	return p
}
