package services

import (
	"context"
	"fmt"

	"github.com/sunvoyage/portal/internal/client/api"
	"github.com/sunvoyage/portal/internal/client/models"
	"github.com/sunvoyage/portal/internal/client/report"
)

// ActivityRow is one line of the user-activity report: the raw logger record
// plus its aggregated session duration.
type ActivityRow struct {
	Record  models.LoggerRecord
	Summary report.Summary
}

// ActivityService serves the admin screens: the user-activity report and the
// generic entity list tables.
type ActivityService interface {
	// Report returns one page of the activity report with per-user totals
	// (1-based page number) and the overall row count.
	Report(ctx context.Context, page, pageSize int) ([]ActivityRow, int, error)

	// List returns one page of an admin entity table for the given route
	// (agencies, categories, category_types, residencies, euro_trips, users).
	List(ctx context.Context, route string, req api.PaginationRequest) ([]map[string]any, int, error)
}

type activityService struct {
	client api.Client
}

func NewActivityService(client api.Client) ActivityService {
	return &activityService{client: client}
}

func (a *activityService) Report(ctx context.Context, page, pageSize int) ([]ActivityRow, int, error) {
	if page < 1 {
		page = 1
	}
	records, total, err := a.client.OutingLoggers(ctx, api.PaginationRequest{
		Page:       page - 1,
		Size:       pageSize,
		SortColumn: "login_at",
		SortOrder:  "desc",
	})
	if err != nil {
		return nil, 0, fmt.Errorf("activity report error: %w", err)
	}

	rows := make([]ActivityRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, ActivityRow{Record: r, Summary: report.Aggregate(r.Intervals)})
	}
	return rows, total, nil
}

func (a *activityService) List(ctx context.Context, route string, req api.PaginationRequest) ([]map[string]any, int, error) {
	rows, total, err := a.client.PaginationTable(ctx, route, req)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s error: %w", route, err)
	}
	return rows, total, nil
}
