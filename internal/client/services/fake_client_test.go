package services

import (
	"context"

	"github.com/sunvoyage/portal/internal/client/api"
	"github.com/sunvoyage/portal/internal/client/models"
)

// fakeClient implements api.Client for the service unit tests. Behavior is
// scripted through the Ret/Err fields; Last* fields record arguments.
type fakeClient struct {
	LoginRet models.Session
	LoginErr error

	HeartbeatRet bool
	HeartbeatErr error

	SearchHotelsRet   []models.Hotel
	SearchHotelsTotal int
	SearchHotelsErr   error

	CategoriesRet map[string][]models.Category
	CategoriesErr error

	FiltersRet []models.Filter
	FiltersErr error

	AgenciesRet []models.Agency
	AgenciesErr error

	EuroTripsRet []models.EuroTrip
	EuroTripsErr error

	UpdateCounterErr           error
	UpdateCategoriesCounterErr error

	PaginationTableRet   []map[string]any
	PaginationTableTotal int
	PaginationTableErr   error

	OutingLoggersRet   []models.LoggerRecord
	OutingLoggersTotal int
	OutingLoggersErr   error

	LastLoginEmail    string
	LastLoginPassword string

	LastSearchCriteria models.SearchCriteria
	LastSearchPage     int
	LastSearchSize     int

	LastCategoryType string

	LastCounterRoute string
	LastCounterID    string
	CounterCalls     int

	LastCategoriesCountry string
	LastCategoriesRegion  string
	LastCategoriesType    string
	CategoriesCounterCalls int

	LastTableRoute string
	LastTableReq   api.PaginationRequest

	LastLoggersReq api.PaginationRequest
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (models.Session, error) {
	f.LastLoginEmail = email
	f.LastLoginPassword = password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Heartbeat(ctx context.Context, loggerID, userID string) (bool, error) {
	return f.HeartbeatRet, f.HeartbeatErr
}

func (f *fakeClient) SearchHotels(ctx context.Context, criteria models.SearchCriteria, page, size int) ([]models.Hotel, int, error) {
	f.LastSearchCriteria = criteria
	f.LastSearchPage = page
	f.LastSearchSize = size
	return f.SearchHotelsRet, f.SearchHotelsTotal, f.SearchHotelsErr
}

func (f *fakeClient) CategoriesByType(ctx context.Context, categoryType string) ([]models.Category, error) {
	f.LastCategoryType = categoryType
	return f.CategoriesRet[categoryType], f.CategoriesErr
}

func (f *fakeClient) AvailableFilters(ctx context.Context) ([]models.Filter, error) {
	return f.FiltersRet, f.FiltersErr
}

func (f *fakeClient) Agencies(ctx context.Context) ([]models.Agency, error) {
	return f.AgenciesRet, f.AgenciesErr
}

func (f *fakeClient) EuroTrips(ctx context.Context) ([]models.EuroTrip, error) {
	return f.EuroTripsRet, f.EuroTripsErr
}

func (f *fakeClient) UpdateCounter(ctx context.Context, route, id string) error {
	f.CounterCalls++
	f.LastCounterRoute = route
	f.LastCounterID = id
	return f.UpdateCounterErr
}

func (f *fakeClient) UpdateCategoriesCounter(ctx context.Context, countryID, regionID, typeID string) error {
	f.CategoriesCounterCalls++
	f.LastCategoriesCountry = countryID
	f.LastCategoriesRegion = regionID
	f.LastCategoriesType = typeID
	return f.UpdateCategoriesCounterErr
}

func (f *fakeClient) PaginationTable(ctx context.Context, route string, req api.PaginationRequest) ([]map[string]any, int, error) {
	f.LastTableRoute = route
	f.LastTableReq = req
	return f.PaginationTableRet, f.PaginationTableTotal, f.PaginationTableErr
}

func (f *fakeClient) OutingLoggers(ctx context.Context, req api.PaginationRequest) ([]models.LoggerRecord, int, error) {
	f.LastLoggersReq = req
	return f.OutingLoggersRet, f.OutingLoggersTotal, f.OutingLoggersErr
}

var _ api.Client = (*fakeClient)(nil)
