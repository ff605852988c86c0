package cli

import (
	"context"
	"errors"

	"github.com/sunvoyage/portal/internal/client/state"
)

// Results restores and renders the saved search. Without a prior search the
// user is pointed back to the search form instead of an empty screen.
func (a *App) Results(ctx context.Context) error {
	saved, err := a.searchService.Restore(ctx)
	if err != nil {
		if errors.Is(err, state.ErrNoSavedSearch) {
			printlnFn("No saved search. Run 'search' first.")
			return nil
		}
		a.logger.Warn(ctx, "failed to restore search", "error", err.Error())
		return err
	}
	a.renderResults(saved)
	return nil
}

// NextPage re-runs the saved search one page forward.
func (a *App) NextPage(ctx context.Context) error {
	return a.pageBy(ctx, 1)
}

// PrevPage re-runs the saved search one page back.
func (a *App) PrevPage(ctx context.Context) error {
	return a.pageBy(ctx, -1)
}

func (a *App) pageBy(ctx context.Context, delta int) error {
	saved, err := a.searchService.Restore(ctx)
	if err != nil {
		if errors.Is(err, state.ErrNoSavedSearch) {
			printlnFn("No saved search. Run 'search' first.")
			return nil
		}
		return err
	}

	page := saved.Pagination.Current + delta
	if page < 1 || (saved.Pagination.PageCount() > 0 && page > saved.Pagination.PageCount()) {
		printlnFn("No more pages.")
		return nil
	}

	fresh, err := a.searchService.Search(ctx, saved.Criteria, page, saved.Pagination.PageSize)
	if err != nil {
		printlnFn("Search failed:", err.Error())
		return err
	}
	a.renderResults(fresh)
	return nil
}

// Open selects row n (1-based) of the current result page, persists the
// snapshot for the details screen, and renders it.
func (a *App) Open(ctx context.Context, row int) error {
	saved, err := a.searchService.Restore(ctx)
	if err != nil {
		if errors.Is(err, state.ErrNoSavedSearch) {
			printlnFn("No saved search. Run 'search' first.")
			return nil
		}
		return err
	}

	if row < 1 || row > len(saved.Results) {
		printlnFn("No such row.")
		return nil
	}

	hotel := saved.Results[row-1]
	if err := a.searchService.SelectHotel(ctx, hotel); err != nil {
		a.logger.Warn(ctx, "failed to save hotel snapshot", "error", err.Error())
		return err
	}
	a.renderHotel(hotel)
	return nil
}
