package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sunvoyage/portal/internal/client/api"
)

// listRoutes maps the REPL entity names onto backend list routes.
var listRoutes = map[string]string{
	"agencies":       "agencies",
	"categories":     "categories",
	"category_types": "category_types",
	"hotels":         "residencies",
	"eurotrips":      "euro_trips",
	"users":          "users",
}

// List renders one page of an admin entity table. Rows come back as loose
// maps since every entity has its own column set. Trailing col=value
// arguments become per-column search values, e.g. "list hotels name=Lux".
func (a *App) List(ctx context.Context, entity string, filters []string) error {
	route, ok := listRoutes[entity]
	if !ok {
		known := make([]string, 0, len(listRoutes))
		for name := range listRoutes {
			known = append(known, name)
		}
		sort.Strings(known)
		printlnFn("Unknown entity. Known:", strings.Join(known, ", "))
		return nil
	}

	search, err := parseColumnSearch(filters)
	if err != nil {
		printlnFn(err.Error())
		printlnFn("Usage: list <entity> [col=value ...]")
		return nil
	}

	rows, total, err := a.activityService.List(ctx, route, api.PaginationRequest{
		Page:      0,
		Size:      a.config.PageSize,
		SortOrder: "asc",
		Search:    search,
	})
	if err != nil {
		printlnFn("List failed:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("%s (%d total):", entity, total))
	for i, row := range rows {
		printlnFn(fmt.Sprintf("  %d. %s", i+1, formatRow(row)))
	}
	return nil
}

// parseColumnSearch turns "col=value" tokens into the per-column search map.
// A nil map means no filtering.
func parseColumnSearch(filters []string) (map[string]string, error) {
	if len(filters) == 0 {
		return nil, nil
	}
	search := make(map[string]string, len(filters))
	for _, f := range filters {
		col, val, ok := strings.Cut(f, "=")
		if !ok || col == "" || val == "" {
			return nil, fmt.Errorf("bad filter %q, expected col=value", f)
		}
		search[col] = val
	}
	return search, nil
}

// formatRow renders a loose row as sorted key=value pairs, skipping nested
// structures and empty values.
func formatRow(row map[string]any) string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		switch v := row[k].(type) {
		case string:
			if v != "" {
				parts = append(parts, fmt.Sprintf("%s=%s", k, v))
			}
		case float64:
			parts = append(parts, fmt.Sprintf("%s=%v", k, v))
		case bool:
			parts = append(parts, fmt.Sprintf("%s=%v", k, v))
		}
	}
	return strings.Join(parts, " ")
}
