package services

import (
	"context"
	"fmt"

	"github.com/sunvoyage/portal/internal/client/api"
	"github.com/sunvoyage/portal/internal/client/models"
	"github.com/sunvoyage/portal/internal/client/state"
	"github.com/sunvoyage/portal/internal/logging"
)

// SearchService runs hotel searches and keeps their state restorable across
// screens: every successful search is persisted, and row selection saves a
// denormalized snapshot for the details screens.
//
// Contract:
//   - Search: run a search page and persist criteria+pagination+results.
//   - Restore: load the last persisted search, ErrNoSavedSearch when none.
//   - SelectHotel/SelectAgency/SelectEuroTrip: persist the snapshot and bump
//     the entity's search counter (best effort).
//   - SelectedHotel/SelectedAgency/SelectedEuroTrip: load the snapshot,
//     ErrNoSelection when the slot is empty.
type SearchService interface {
	Search(ctx context.Context, criteria models.SearchCriteria, page, pageSize int) (state.SavedSearch, error)
	Restore(ctx context.Context) (state.SavedSearch, error)

	SelectHotel(ctx context.Context, h models.Hotel) error
	SelectAgency(ctx context.Context, a models.Agency) error
	SelectEuroTrip(ctx context.Context, e models.EuroTrip) error

	SelectedHotel(ctx context.Context) (models.Hotel, error)
	SelectedAgency(ctx context.Context) (models.Agency, error)
	SelectedEuroTrip(ctx context.Context) (models.EuroTrip, error)
}

type searchService struct {
	client    api.Client
	persistor *state.Persistor
	logger    logging.Logger
}

func NewSearchService(client api.Client, persistor *state.Persistor, logger logging.Logger) SearchService {
	return &searchService{client: client, persistor: persistor, logger: logger}
}

// Search fetches one result page (1-based page number, 0-based on the wire)
// and persists the full search state in a single transaction. Category search
// counters are bumped best-effort; a counter failure never fails the search.
func (s *searchService) Search(ctx context.Context, criteria models.SearchCriteria, page, pageSize int) (state.SavedSearch, error) {
	if page < 1 {
		page = 1
	}
	criteria.SelectedFilters = models.NormalizeFilters(criteria.SelectedFilters)

	results, total, err := s.client.SearchHotels(ctx, criteria, page-1, pageSize)
	if err != nil {
		return state.SavedSearch{}, fmt.Errorf("search error: %w", err)
	}

	pagination := models.Pagination{Total: total, Current: page, PageSize: pageSize}.Normalized()
	if err := s.persistor.SaveSearch(ctx, criteria, pagination, results); err != nil {
		return state.SavedSearch{}, fmt.Errorf("search state saving error: %w", err)
	}

	s.bumpCategoryCounters(ctx, criteria)

	return state.SavedSearch{Criteria: criteria, Pagination: pagination, Results: results}, nil
}

func (s *searchService) bumpCategoryCounters(ctx context.Context, criteria models.SearchCriteria) {
	if criteria.CountryID == "" && criteria.RegionID == "" && criteria.ResidenceTypeID == "" {
		return
	}
	if err := s.client.UpdateCategoriesCounter(ctx, criteria.CountryID, criteria.RegionID, criteria.ResidenceTypeID); err != nil {
		s.logger.Warn(ctx, "failed to update category counters", "error", err.Error())
	}
}

func (s *searchService) Restore(ctx context.Context) (state.SavedSearch, error) {
	return s.persistor.LoadSearch(ctx)
}

func (s *searchService) SelectHotel(ctx context.Context, h models.Hotel) error {
	if err := s.persistor.SaveSelectedHotel(ctx, h); err != nil {
		return err
	}
	s.bumpCounter(ctx, "residencies", h.ID)
	return nil
}

func (s *searchService) SelectAgency(ctx context.Context, a models.Agency) error {
	if err := s.persistor.SaveSelectedAgency(ctx, a); err != nil {
		return err
	}
	s.bumpCounter(ctx, "agencies", a.ID)
	return nil
}

func (s *searchService) SelectEuroTrip(ctx context.Context, e models.EuroTrip) error {
	if err := s.persistor.SaveSelectedEuroTrip(ctx, e); err != nil {
		return err
	}
	s.bumpCounter(ctx, "euro_trips", e.ID)
	return nil
}

func (s *searchService) bumpCounter(ctx context.Context, route, id string) {
	if id == "" {
		return
	}
	if err := s.client.UpdateCounter(ctx, route, id); err != nil {
		s.logger.Warn(ctx, "failed to update search counter", "route", route, "id", id, "error", err.Error())
	}
}

func (s *searchService) SelectedHotel(ctx context.Context) (models.Hotel, error) {
	return s.persistor.LoadSelectedHotel(ctx)
}

func (s *searchService) SelectedAgency(ctx context.Context) (models.Agency, error) {
	return s.persistor.LoadSelectedAgency(ctx)
}

func (s *searchService) SelectedEuroTrip(ctx context.Context) (models.EuroTrip, error) {
	return s.persistor.LoadSelectedEuroTrip(ctx)
}
