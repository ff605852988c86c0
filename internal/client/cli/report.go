package cli

import (
	"context"
	"fmt"
)

// Report renders the first page of the user-activity report: one line per
// user with their aggregated session time and online flag.
func (a *App) Report(ctx context.Context) error {
	rows, total, err := a.activityService.Report(ctx, 1, a.config.PageSize)
	if err != nil {
		printlnFn("Report failed:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("User activity (%d users):", total))
	for _, row := range rows {
		status := "offline"
		if row.Summary.Online {
			status = "online"
		}
		printlnFn(fmt.Sprintf("  %-20s %-25s %s", row.Record.UserName, row.Summary.TotalTime, status))
	}
	return nil
}
