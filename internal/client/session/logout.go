package session

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/sunvoyage/portal/internal/client/models"
	"github.com/sunvoyage/portal/internal/logging"
)

// StateClearer wipes every persisted client slot (session, search state,
// selected entities).
type StateClearer interface {
	ClearAll(ctx context.Context) error
}

// SessionBinder detaches the revoked credentials from the API client so
// requests after logout go out anonymous. *api.HTTPClient satisfies it.
type SessionBinder interface {
	SetSession(s models.Session)
}

// Logout brings the client to a fully logged-out state: it cancels the
// heartbeat monitor first, shows a brief notice, waits a grace delay so the
// notice can be seen, clears all persisted client state, and finally
// navigates to the logged-out entry point.
type Logout struct {
	monitor  *Monitor
	sessions SessionSource
	state    StateClearer
	binder   SessionBinder
	grace    time.Duration
	notify   func(msg string)
	navigate func()
	logger   logging.Logger

	inProgress atomic.Bool
}

func NewLogout(monitor *Monitor, sessions SessionSource, state StateClearer, binder SessionBinder, grace time.Duration, notify func(string), navigate func(), logger logging.Logger) *Logout {
	return &Logout{
		monitor:  monitor,
		sessions: sessions,
		state:    state,
		binder:   binder,
		grace:    grace,
		notify:   notify,
		navigate: navigate,
		logger:   logger.With("component", "logout"),
	}
}

// Run performs the logout. Near-simultaneous invocations collapse into one:
// while a logout is in progress, further calls return immediately. When no
// session is present (already logged out), the notice and grace delay are
// skipped and only the redirect happens.
func (l *Logout) Run(ctx context.Context) {
	if !l.inProgress.CompareAndSwap(false, true) {
		return
	}
	defer l.inProgress.Store(false)

	// Cancel the monitor before the user-visible delay: the grace period
	// must not keep stale probes alive.
	l.monitor.Stop()

	hadSession := false
	if s, err := l.sessions.LoadSession(ctx); err == nil && s.Present() {
		hadSession = true
	}

	if hadSession {
		l.notify("Session ending, logging out..")
		// Deliberately not cancellable: clearing state late beats not
		// clearing it at all.
		time.Sleep(l.grace)
	}

	if err := l.state.ClearAll(ctx); err != nil {
		l.logger.Error(ctx, "failed to clear client state", "error", err.Error())
	}

	// Drop the in-memory credentials too: the revoked token must not ride
	// along on any later request, including the next login.
	if l.binder != nil {
		l.binder.SetSession(models.Session{})
	}

	l.navigate()
}
