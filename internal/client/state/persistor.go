package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sunvoyage/portal/internal/client/models"
)

// Storage keys. The layout mirrors the browser portal's localStorage slots.
const (
	keySessionUserID    = "session.user_id"
	keySessionLoggerID  = "session.logger_id"
	keySessionToken     = "session.token"
	keySessionTokenType = "session.token_type"

	keySearchCriteria   = "search.criteria"
	keySearchPagination = "search.pagination"
	keySearchResults    = "search.results"

	keySelectedAgency   = "selected.agency"
	keySelectedEuroTrip = "selected.eurotrip"
	keySelectedHotel    = "selected.hotel"
)

var (
	// ErrNoSavedSearch means no complete prior search is stored; callers fall
	// back to an empty search form.
	ErrNoSavedSearch = errors.New("no saved search")

	// ErrNoSelection means the selected-entity slot is empty; callers redirect
	// to a safe default screen instead of rendering nothing.
	ErrNoSelection = errors.New("no selected entity")
)

// SavedSearch is a restorable snapshot of an in-progress hotel search.
type SavedSearch struct {
	Criteria   models.SearchCriteria
	Pagination models.Pagination
	Results    []models.Hotel
}

// Persistor round-trips session, search, and selected-entity state through a
// Store so that screens can be decoupled from one another.
type Persistor struct {
	store Store
}

func NewPersistor(store Store) *Persistor {
	return &Persistor{store: store}
}

// SaveSession writes all four session attributes in one atomic write.
func (p *Persistor) SaveSession(ctx context.Context, s models.Session) error {
	if !s.Present() {
		return errors.New("refusing to save a partial session")
	}
	return p.store.SetMany(ctx, map[string][]byte{
		keySessionUserID:    []byte(s.UserID),
		keySessionLoggerID:  []byte(s.LoggerID),
		keySessionToken:     []byte(s.Token),
		keySessionTokenType: []byte(s.TokenType),
	})
}

// LoadSession reads the stored session. A partially stored session (any
// attribute missing) is reported as absent, not as an error: the returned
// Session has Present() == false.
func (p *Persistor) LoadSession(ctx context.Context) (models.Session, error) {
	var s models.Session
	fields := map[string]*string{
		keySessionUserID:    &s.UserID,
		keySessionLoggerID:  &s.LoggerID,
		keySessionToken:     &s.Token,
		keySessionTokenType: &s.TokenType,
	}
	for key, dst := range fields {
		value, err := p.store.Get(ctx, key)
		if err != nil {
			return models.Session{}, fmt.Errorf("failed to load session: %w", err)
		}
		if value == nil {
			return models.Session{}, nil
		}
		*dst = string(value)
	}
	return s, nil
}

// SaveSearch stores criteria, pagination, and results under their keys in a
// single atomic write, with duplicate filter names collapsed order-preserving.
func (p *Persistor) SaveSearch(ctx context.Context, criteria models.SearchCriteria, pagination models.Pagination, results []models.Hotel) error {
	criteria.SelectedFilters = models.NormalizeFilters(criteria.SelectedFilters)
	if results == nil {
		results = []models.Hotel{}
	}

	pairs := make(map[string][]byte, 3)
	for key, v := range map[string]any{
		keySearchCriteria:   criteria,
		keySearchPagination: pagination,
		keySearchResults:    results,
	} {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", key, err)
		}
		pairs[key] = b
	}
	return p.store.SetMany(ctx, pairs)
}

// LoadSearch restores the last saved search. If any of the three pieces is
// absent or fails to parse, it returns ErrNoSavedSearch so the caller renders
// its default empty state instead of a partial view. Pagination comes back
// normalized: with a zero total the current page is 1, otherwise it is
// clamped into the valid page range. The stored page size wins over any
// screen default.
func (p *Persistor) LoadSearch(ctx context.Context) (SavedSearch, error) {
	var saved SavedSearch

	if err := p.loadJSON(ctx, keySearchCriteria, &saved.Criteria, ErrNoSavedSearch); err != nil {
		return SavedSearch{}, err
	}
	if err := p.loadJSON(ctx, keySearchPagination, &saved.Pagination, ErrNoSavedSearch); err != nil {
		return SavedSearch{}, err
	}
	if err := p.loadJSON(ctx, keySearchResults, &saved.Results, ErrNoSavedSearch); err != nil {
		return SavedSearch{}, err
	}

	saved.Pagination = saved.Pagination.Normalized()
	return saved, nil
}

// SaveSelectedAgency stores the agency snapshot for the profile screen.
// The slot is last-write-wins.
func (p *Persistor) SaveSelectedAgency(ctx context.Context, a models.Agency) error {
	return p.saveJSON(ctx, keySelectedAgency, a)
}

func (p *Persistor) LoadSelectedAgency(ctx context.Context) (models.Agency, error) {
	var a models.Agency
	if err := p.loadJSON(ctx, keySelectedAgency, &a, ErrNoSelection); err != nil {
		return models.Agency{}, err
	}
	return a, nil
}

func (p *Persistor) SaveSelectedEuroTrip(ctx context.Context, e models.EuroTrip) error {
	return p.saveJSON(ctx, keySelectedEuroTrip, e)
}

func (p *Persistor) LoadSelectedEuroTrip(ctx context.Context) (models.EuroTrip, error) {
	var e models.EuroTrip
	if err := p.loadJSON(ctx, keySelectedEuroTrip, &e, ErrNoSelection); err != nil {
		return models.EuroTrip{}, err
	}
	return e, nil
}

func (p *Persistor) SaveSelectedHotel(ctx context.Context, h models.Hotel) error {
	return p.saveJSON(ctx, keySelectedHotel, h)
}

func (p *Persistor) LoadSelectedHotel(ctx context.Context) (models.Hotel, error) {
	var h models.Hotel
	if err := p.loadJSON(ctx, keySelectedHotel, &h, ErrNoSelection); err != nil {
		return models.Hotel{}, err
	}
	return h, nil
}

// ClearAll wipes every persisted slot: session, search state, and selected
// entities. Used at logout so nothing leaks into the next user's session.
func (p *Persistor) ClearAll(ctx context.Context) error {
	return p.store.Clear(ctx)
}

func (p *Persistor) saveJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return p.store.Set(ctx, key, b)
}

// loadJSON reads and decodes one slot. Absent and malformed values are both
// reported as the provided sentinel.
func (p *Persistor) loadJSON(ctx context.Context, key string, dst any, missing error) error {
	value, err := p.store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", key, err)
	}
	if value == nil {
		return missing
	}
	if err := json.Unmarshal(value, dst); err != nil {
		return missing
	}
	return nil
}
