package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/sunvoyage/portal/internal/client/api"
	"github.com/sunvoyage/portal/internal/client/config"
	"github.com/sunvoyage/portal/internal/client/models"
	"github.com/sunvoyage/portal/internal/client/services"
	"github.com/sunvoyage/portal/internal/client/session"
	"github.com/sunvoyage/portal/internal/client/state"
	"github.com/sunvoyage/portal/internal/logging"

	_ "modernc.org/sqlite"
)

// App binds together the services, the heartbeat monitor, and the logout
// routine behind the REPL commands.
type App struct {
	config *config.Config
	logger logging.Logger

	authService     services.AuthService
	searchService   services.SearchService
	catalogService  services.CatalogService
	activityService services.ActivityService

	monitor *session.Monitor
	logout  *session.Logout

	reader *bufio.Reader

	mu      sync.Mutex
	session models.Session
}

// NewApp opens the state database, builds the API client and services, and
// wires the heartbeat monitor to the logout routine.
func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := state.InitDatabase(ctx, c.StateDBPath)
	if err != nil {
		logger.Error(ctx, "error initializing state database", "error", err.Error())
		return nil, err
	}

	persistor := state.NewPersistor(state.NewSQLiteStore(db))
	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout)

	app := &App{
		config:          c,
		logger:          logger,
		authService:     services.NewAuthService(apiClient, apiClient, persistor),
		searchService:   services.NewSearchService(apiClient, persistor, logger),
		catalogService:  services.NewCatalogService(apiClient),
		activityService: services.NewActivityService(apiClient),
		reader:          bufio.NewReader(os.Stdin),
	}

	app.monitor = session.NewMonitor(persistor, apiClient, c.HeartbeatInterval,
		func() { app.logout.Run(context.Background()) }, logger)
	app.logout = session.NewLogout(app.monitor, persistor, persistor, apiClient, c.LogoutGraceDelay,
		app.notice, app.toLoginScreen, logger)

	return app, nil
}

// Run restores a previously saved session, starts the heartbeat for it, and
// blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	s, err := a.authService.Restore(ctx)
	if err != nil {
		a.logger.Warn(ctx, "failed to restore session", "error", err.Error())
	}
	if s.Present() {
		a.setSession(s)
		if err := a.monitor.Start(ctx); err != nil {
			a.logger.Warn(ctx, "failed to start session monitor", "error", err.Error())
		}
		printlnFn("Welcome back!")
	}

	a.Root(ctx)
	a.monitor.Stop()
}

func (a *App) isLoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.Present()
}

func (a *App) setSession(s models.Session) {
	a.mu.Lock()
	a.session = s
	a.mu.Unlock()
}

func (a *App) notice(msg string) {
	printlnFn(msg)
}

// toLoginScreen is the logged-out entry point: the in-memory session is
// dropped so the REPL falls back to the logged-out command set.
func (a *App) toLoginScreen() {
	a.setSession(models.Session{})
	printlnFn("You are logged out. Type 'login' to sign in.")
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.session.Present() {
		return ""
	}
	return fmt.Sprintf("(%s)", a.session.UserID)
}
