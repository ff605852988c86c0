package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sunvoyage/portal/internal/client/models"
)

// HTTPClient talks JSON over HTTP to the portal backend. It carries the
// current session and attaches its bearer credential to every request.
type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu      sync.RWMutex
	session models.Session
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SetSession installs the credentials used for subsequent requests, e.g. a
// session restored from the state store at startup. A zero Session clears
// them.
func (c *HTTPClient) SetSession(s models.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = s
}

func (c *HTTPClient) currentSession() models.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (models.Session, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "api/users/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return models.Session{}, err
	}
	if !resp.Success {
		return models.Session{}, fmt.Errorf("login: %w", ErrUnauthorized)
	}

	s := models.Session{
		UserID:    resp.UserID,
		LoggerID:  resp.LoggerID,
		Token:     resp.Token,
		TokenType: resp.TokenType,
	}
	c.SetSession(s)
	return s, nil
}

func (c *HTTPClient) Heartbeat(ctx context.Context, loggerID, userID string) (bool, error) {
	var env envelope
	err := c.do(ctx, http.MethodPut, "api/outing_loggers/heartbeat", heartbeatRequest{ID: loggerID, UserID: userID}, &env)
	if err != nil {
		return false, err
	}
	return env.Success, nil
}

func (c *HTTPClient) SearchHotels(ctx context.Context, criteria models.SearchCriteria, page, size int) ([]models.Hotel, int, error) {
	filters, err := json.Marshal(models.NormalizeFilters(criteria.SelectedFilters))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to encode filters: %w", err)
	}

	req := searchRequest{
		Name:            criteria.Name,
		CountryID:       criteria.CountryID,
		RegionID:        criteria.RegionID,
		ResidenceTypeID: criteria.ResidenceTypeID,
		DistanceName:    criteria.DistanceName,
		SelectedFilters: string(filters),
		Page:            page,
		SortColumn:      "name",
		SortOrder:       "ASC",
		Size:            size,
	}

	var env envelope
	if err := c.do(ctx, http.MethodPost, "api/residencies/search_pagination_table", req, &env); err != nil {
		return nil, 0, err
	}
	if !env.Success {
		return nil, 0, fmt.Errorf("hotel search: %w", ErrRequestFailed)
	}

	var hotels []models.Hotel
	if err := json.Unmarshal(env.Data, &hotels); err != nil {
		return nil, 0, fmt.Errorf("failed to decode hotels: %w", err)
	}
	return hotels, env.TotalElements, nil
}

func (c *HTTPClient) CategoriesByType(ctx context.Context, categoryType string) ([]models.Category, error) {
	var categories []models.Category
	path := "api/categories/get_constants_by_type/" + categoryType
	if err := c.getList(ctx, path, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *HTTPClient) AvailableFilters(ctx context.Context) ([]models.Filter, error) {
	var filters []models.Filter
	if err := c.getList(ctx, "api/filters/all_avble_filters", &filters); err != nil {
		return nil, err
	}
	return filters, nil
}

func (c *HTTPClient) Agencies(ctx context.Context) ([]models.Agency, error) {
	var agencies []models.Agency
	if err := c.getList(ctx, "api/agencies/all_agencies", &agencies); err != nil {
		return nil, err
	}
	return agencies, nil
}

func (c *HTTPClient) EuroTrips(ctx context.Context) ([]models.EuroTrip, error) {
	var trips []models.EuroTrip
	if err := c.getList(ctx, "api/euro_trips/all_eurotrips", &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

func (c *HTTPClient) UpdateCounter(ctx context.Context, route, id string) error {
	var env envelope
	return c.do(ctx, http.MethodGet, "api/"+route+"/update_counter/"+id, nil, &env)
}

func (c *HTTPClient) UpdateCategoriesCounter(ctx context.Context, countryID, regionID, typeID string) error {
	req := categoriesCounterRequest{CountryID: countryID, RegionID: regionID, TypeID: typeID}
	var env envelope
	return c.do(ctx, http.MethodPost, "api/residencies/update_categories_counter", req, &env)
}

func (c *HTTPClient) PaginationTable(ctx context.Context, route string, req PaginationRequest) ([]map[string]any, int, error) {
	var env envelope
	if err := c.do(ctx, http.MethodPost, "api/"+route+"/pagination_table", req, &env); err != nil {
		return nil, 0, err
	}

	var rows []map[string]any
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		return nil, 0, fmt.Errorf("failed to decode %s rows: %w", route, err)
	}
	return rows, env.TotalElements, nil
}

func (c *HTTPClient) OutingLoggers(ctx context.Context, req PaginationRequest) ([]models.LoggerRecord, int, error) {
	var env envelope
	if err := c.do(ctx, http.MethodPost, "api/outing_loggers/pagination_table_upd", req, &env); err != nil {
		return nil, 0, err
	}

	var records []models.LoggerRecord
	if err := json.Unmarshal(env.Data, &records); err != nil {
		return nil, 0, fmt.Errorf("failed to decode logger records: %w", err)
	}
	return records, env.TotalElements, nil
}

// getList fetches an endpoint returning the standard envelope and decodes
// its data array into out.
func (c *HTTPClient) getList(ctx context.Context, path string, out any) error {
	var env envelope
	if err := c.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return err
	}
	if !env.Success {
		return fmt.Errorf("%s: %w", path, ErrRequestFailed)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if s := c.currentSession(); s.Token != "" {
		req.Header.Set("Authorization", s.AuthorizationHeader())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, ErrUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%s %s: status %d: %w", method, path, resp.StatusCode, ErrRequestFailed)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
