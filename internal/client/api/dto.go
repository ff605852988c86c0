package api

import "encoding/json"

// PaginationRequest is the body shape shared by the portal's list endpoints.
// Page is 0-based on the wire; Search carries per-column search values.
type PaginationRequest struct {
	Page       int
	Size       int
	SortColumn string
	SortOrder  string
	Search     map[string]string
}

// MarshalJSON flattens the per-column search values next to the paging
// fields, the way the backend expects them.
func (r PaginationRequest) MarshalJSON() ([]byte, error) {
	body := make(map[string]any, len(r.Search)+5)
	for k, v := range r.Search {
		body[k] = v
	}
	body["page"] = r.Page
	body["size"] = r.Size
	body["sortColumn"] = r.SortColumn
	body["sortOrder"] = r.SortOrder
	body["orderBy"] = ""
	return json.Marshal(body)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	UserID    string `json:"user_id"`
	LoggerID  string `json:"logger_id"`
}

type heartbeatRequest struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
}

type searchRequest struct {
	Name            string `json:"name"`
	CountryID       string `json:"country_id"`
	RegionID        string `json:"region_id"`
	ResidenceTypeID string `json:"resd_type_id"`
	DistanceName    string `json:"distance_name"`
	// SelectedFilters is a JSON-encoded string list, a quirk of the portal
	// API kept for compatibility.
	SelectedFilters string `json:"selectedFilters"`
	Page            int    `json:"page"`
	SortColumn      string `json:"sortColumn"`
	SortOrder       string `json:"sortOrder"`
	Size            int    `json:"size"`
}

type categoriesCounterRequest struct {
	CountryID string `json:"country_id"`
	RegionID  string `json:"region_id"`
	TypeID    string `json:"resd_type_id"`
}

// envelope is the generic response wrapper used by the portal backend.
type envelope struct {
	Success       bool            `json:"success"`
	Data          json.RawMessage `json:"data"`
	TotalElements int             `json:"totalElements"`
}
