// Package session coordinates the client's login session: the heartbeat
// monitor that detects server-side invalidation, and the logout routine that
// brings the client back to a clean logged-out state.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sunvoyage/portal/internal/client/models"
	"github.com/sunvoyage/portal/internal/logging"
)

// ErrAlreadyRunning is returned by Start while a heartbeat loop is active.
// Two concurrent loops could race two logout invocations.
var ErrAlreadyRunning = errors.New("heartbeat monitor already running")

// State of the monitor's probe loop.
type State string

const (
	StateStopped       State = "stopped"
	StateRunning       State = "running"
	StateProbeInFlight State = "probe-in-flight"
)

// SessionSource yields the current session, if any. A session with
// Present() == false means "not logged in".
type SessionSource interface {
	LoadSession(ctx context.Context) (models.Session, error)
}

// Validator is the session-validation boundary: true means the session is
// still valid; false or any error means it is not.
type Validator interface {
	Heartbeat(ctx context.Context, loggerID, userID string) (bool, error)
}

// Monitor periodically proves to the portal that the current session is
// still valid. Probes are strictly sequential; on the first failed probe
// (explicit success=false or transport failure, treated identically) it
// stops itself and invokes the onInvalid callback exactly once.
type Monitor struct {
	sessions     SessionSource
	validator    Validator
	interval     time.Duration
	probeTimeout time.Duration
	onInvalid    func()
	logger       logging.Logger

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
}

func NewMonitor(sessions SessionSource, validator Validator, interval time.Duration, onInvalid func(), logger logging.Logger) *Monitor {
	probeTimeout := interval / 2
	if probeTimeout <= 0 {
		probeTimeout = time.Second
	}
	return &Monitor{
		sessions:     sessions,
		validator:    validator,
		interval:     interval,
		probeTimeout: probeTimeout,
		onInvalid:    onInvalid,
		logger:       logger.With("component", "heartbeat"),
		state:        StateStopped,
	}
}

// State returns the loop's current state.
func (m *Monitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Start launches the probe loop. The first probe fires immediately, so a
// page load with an already-invalid session is caught within one probe.
// Starting an already-running monitor is a defect and returns
// ErrAlreadyRunning.
func (m *Monitor) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.state != StateStopped {
		m.mu.Unlock()
		return ErrAlreadyRunning
	}
	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.state = StateRunning
	m.mu.Unlock()

	go m.run(runCtx)
	return nil
}

// Stop cancels the probe loop. It is safe to call repeatedly and before
// Start. An in-flight probe is not aborted; its result is discarded once it
// completes.
func (m *Monitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.state = StateStopped
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

func (m *Monitor) run(ctx context.Context) {
	if !m.probe(ctx) {
		return
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !m.probe(ctx) {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// probe runs one liveness check and reports whether the loop should keep
// going. Without a session the probe is a no-op and the loop continues.
func (m *Monitor) probe(ctx context.Context) bool {
	m.mu.Lock()
	// The ctx check keeps a cancelled loop from claiming state that a
	// restarted loop now owns.
	if ctx.Err() != nil || m.state != StateRunning {
		m.mu.Unlock()
		return false
	}
	m.state = StateProbeInFlight
	m.mu.Unlock()

	s, err := m.sessions.LoadSession(ctx)
	if err != nil {
		m.logger.Warn(ctx, "failed to load session, skipping probe", "error", err.Error())
		return m.settle(ctx)
	}
	if !s.Present() {
		return m.settle(ctx)
	}

	probeCtx, cancel := context.WithTimeout(ctx, m.probeTimeout)
	ok, err := m.validator.Heartbeat(probeCtx, s.LoggerID, s.UserID)
	cancel()

	if err == nil && ok {
		return m.settle(ctx)
	}

	// Stopped while the probe was in flight, or torn down with the hosting
	// context: discard the result instead of acting on it.
	m.mu.Lock()
	if m.state == StateStopped || ctx.Err() != nil {
		m.state = StateStopped
		m.mu.Unlock()
		return false
	}
	m.state = StateStopped
	cancelLoop := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancelLoop != nil {
		cancelLoop()
	}

	if err != nil {
		m.logger.Warn(ctx, "heartbeat failed, logging out", "error", err.Error())
	} else {
		m.logger.Warn(ctx, "session invalidated by server, logging out")
	}
	if m.onInvalid != nil {
		m.onInvalid()
	}
	return false
}

// settle returns the loop to Running unless it was stopped mid-probe or its
// context was cancelled. A probe whose loop has already been torn down must
// not touch state a restarted loop may own.
func (m *Monitor) settle(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ctx.Err() != nil || m.state == StateStopped {
		return false
	}
	m.state = StateRunning
	return true
}
