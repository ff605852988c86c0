// Package api implements the HTTP client for the portal backend. Only the
// client side of the contract lives here; response envelopes follow the
// backend's {success, data, totalElements} shape.
package api

import (
	"context"

	"github.com/sunvoyage/portal/internal/client/models"
)

// Client is the portal API surface the rest of the application depends on.
// Implementations must honor context cancellation and timeouts.
type Client interface {
	// Login authenticates and returns the new session credentials.
	Login(ctx context.Context, email, password string) (models.Session, error)

	// Heartbeat asks the portal whether the login session identified by
	// loggerID/userID is still valid. A false result with a nil error is an
	// explicit server-side invalidation.
	Heartbeat(ctx context.Context, loggerID, userID string) (bool, error)

	// SearchHotels runs the customer hotel search.
	SearchHotels(ctx context.Context, criteria models.SearchCriteria, page, size int) ([]models.Hotel, int, error)

	// CategoriesByType lists lookup constants (COUNTRY, REGION, HOTEL TYPE).
	CategoriesByType(ctx context.Context, categoryType string) ([]models.Category, error)

	// AvailableFilters lists every searchable hotel attribute.
	AvailableFilters(ctx context.Context) ([]models.Filter, error)

	// Agencies and EuroTrips list the browsable profile entities.
	Agencies(ctx context.Context) ([]models.Agency, error)
	EuroTrips(ctx context.Context) ([]models.EuroTrip, error)

	// UpdateCounter bumps the search counter of one entity
	// (route "agencies", "euro_trips", or "residencies").
	UpdateCounter(ctx context.Context, route, id string) error

	// UpdateCategoriesCounter bumps the counters of the categories a search
	// was filtered by.
	UpdateCategoriesCounter(ctx context.Context, countryID, regionID, typeID string) error

	// PaginationTable fetches one page of an admin list screen.
	PaginationTable(ctx context.Context, route string, req PaginationRequest) ([]map[string]any, int, error)

	// OutingLoggers fetches one page of the user-activity report.
	OutingLoggers(ctx context.Context, req PaginationRequest) ([]models.LoggerRecord, int, error)
}
