package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunvoyage/portal/internal/client/models"
	"github.com/sunvoyage/portal/internal/logging"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func liveSession() models.Session {
	return models.Session{UserID: "u1", LoggerID: "l1", Token: "tok", TokenType: "Bearer"}
}

type fakeSessions struct {
	mu  sync.Mutex
	s   models.Session
	err error
}

func (f *fakeSessions) LoadSession(ctx context.Context) (models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.s, f.err
}

func (f *fakeSessions) set(s models.Session) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.s = s
}

// fakeValidator scripts heartbeat outcomes; once the script runs out the
// last outcome repeats.
type fakeValidator struct {
	mu      sync.Mutex
	script  []heartbeatResult
	calls   atomic.Int32
	block   chan struct{}      // when set, probes wait here before answering
	started chan struct{}      // signaled when a blocked probe begins
	gate    chan chan struct{} // when set, each probe hands out its own release channel
}

type heartbeatResult struct {
	ok  bool
	err error
}

func (f *fakeValidator) Heartbeat(ctx context.Context, loggerID, userID string) (bool, error) {
	n := int(f.calls.Add(1))
	if f.block != nil {
		f.started <- struct{}{}
		<-f.block
	}
	if f.gate != nil {
		release := make(chan struct{})
		f.gate <- release
		<-release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	idx := n - 1
	if idx >= len(f.script) {
		idx = len(f.script) - 1
	}
	r := f.script[idx]
	return r.ok, r.err
}

func TestMonitor_FirstProbeIsImmediate(t *testing.T) {
	sessions := &fakeSessions{s: liveSession()}
	validator := &fakeValidator{script: []heartbeatResult{{ok: true}}}
	m := NewMonitor(sessions, validator, time.Minute, func() {}, discardLogger())

	require.NoError(t, m.Start(context.Background()))
	t.Cleanup(m.Stop)

	require.Eventually(t, func() bool { return validator.calls.Load() == 1 },
		time.Second, 5*time.Millisecond, "a probe must fire well before the first interval elapses")
}

func TestMonitor_NoSessionProbesAreNoOps(t *testing.T) {
	sessions := &fakeSessions{} // absent session
	validator := &fakeValidator{script: []heartbeatResult{{ok: true}}}
	var logouts atomic.Int32
	m := NewMonitor(sessions, validator, 10*time.Millisecond, func() { logouts.Add(1) }, discardLogger())

	require.NoError(t, m.Start(context.Background()))
	t.Cleanup(m.Stop)

	time.Sleep(100 * time.Millisecond) // several intervals
	assert.Zero(t, validator.calls.Load(), "no validation requests without a session")
	assert.Zero(t, logouts.Load())
	assert.Equal(t, StateRunning, m.State(), "the loop keeps ticking")
}

func TestMonitor_InvalidationTriggersExactlyOneLogout(t *testing.T) {
	sessions := &fakeSessions{s: liveSession()}
	validator := &fakeValidator{script: []heartbeatResult{{ok: true}, {ok: true}, {ok: false}}}
	var logouts atomic.Int32
	m := NewMonitor(sessions, validator, 10*time.Millisecond, func() { logouts.Add(1) }, discardLogger())

	require.NoError(t, m.Start(context.Background()))
	t.Cleanup(m.Stop)

	require.Eventually(t, func() bool { return logouts.Load() == 1 }, time.Second, 5*time.Millisecond)

	callsAtLogout := validator.calls.Load()
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, callsAtLogout, validator.calls.Load(), "no probes after the failed one")
	assert.Equal(t, int32(1), logouts.Load(), "logout fires once, not once per tick")
	assert.Equal(t, StateStopped, m.State())
}

func TestMonitor_TransportFailureEqualsInvalid(t *testing.T) {
	sessions := &fakeSessions{s: liveSession()}
	validator := &fakeValidator{script: []heartbeatResult{{err: errors.New("connection refused")}}}
	var logouts atomic.Int32
	m := NewMonitor(sessions, validator, 10*time.Millisecond, func() { logouts.Add(1) }, discardLogger())

	require.NoError(t, m.Start(context.Background()))
	t.Cleanup(m.Stop)

	require.Eventually(t, func() bool { return logouts.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(1), validator.calls.Load())
	assert.Equal(t, StateStopped, m.State())
}

func TestMonitor_StartTwiceIsAnError(t *testing.T) {
	sessions := &fakeSessions{s: liveSession()}
	validator := &fakeValidator{script: []heartbeatResult{{ok: true}}}
	m := NewMonitor(sessions, validator, time.Minute, func() {}, discardLogger())

	require.NoError(t, m.Start(context.Background()))
	t.Cleanup(m.Stop)

	require.ErrorIs(t, m.Start(context.Background()), ErrAlreadyRunning)
}

func TestMonitor_StopIsIdempotentAndSafeBeforeStart(t *testing.T) {
	sessions := &fakeSessions{s: liveSession()}
	validator := &fakeValidator{script: []heartbeatResult{{ok: true}}}
	m := NewMonitor(sessions, validator, time.Minute, func() {}, discardLogger())

	m.Stop() // never started
	m.Stop()

	require.NoError(t, m.Start(context.Background()))
	m.Stop()
	m.Stop()
	assert.Equal(t, StateStopped, m.State())
}

func TestMonitor_RestartAfterStop(t *testing.T) {
	sessions := &fakeSessions{s: liveSession()}
	validator := &fakeValidator{script: []heartbeatResult{{ok: true}}}
	m := NewMonitor(sessions, validator, time.Minute, func() {}, discardLogger())

	require.NoError(t, m.Start(context.Background()))
	m.Stop()

	require.NoError(t, m.Start(context.Background()), "a new login may start a fresh loop")
	t.Cleanup(m.Stop)
	require.Eventually(t, func() bool { return validator.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
}

func TestMonitor_StopDiscardsInFlightProbeResult(t *testing.T) {
	sessions := &fakeSessions{s: liveSession()}
	validator := &fakeValidator{
		script:  []heartbeatResult{{ok: false}}, // would trigger logout if acted on
		block:   make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	var logouts atomic.Int32
	m := NewMonitor(sessions, validator, time.Minute, func() { logouts.Add(1) }, discardLogger())

	require.NoError(t, m.Start(context.Background()))

	<-validator.started // probe is in flight
	assert.Equal(t, StateProbeInFlight, m.State())

	m.Stop()
	close(validator.block) // let the probe complete with its failure result

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, logouts.Load(), "a result arriving after Stop must be discarded")
	assert.Equal(t, StateStopped, m.State())
}

func TestMonitor_StaleProbeResultAfterRestartIsDiscarded(t *testing.T) {
	sessions := &fakeSessions{s: liveSession()}
	validator := &fakeValidator{
		script: []heartbeatResult{{ok: true}},
		gate:   make(chan chan struct{}),
	}
	m := NewMonitor(sessions, validator, time.Minute, func() {}, discardLogger())

	require.NoError(t, m.Start(context.Background()))
	staleRelease := <-validator.gate // first probe is in flight

	m.Stop()

	// A new login restarts the loop while the old probe is still hanging.
	require.NoError(t, m.Start(context.Background()))
	t.Cleanup(m.Stop)
	freshRelease := <-validator.gate
	require.Equal(t, StateProbeInFlight, m.State())

	// The stale probe now finishes successfully. Its result belongs to the
	// cancelled loop and must not disturb the fresh probe's state.
	close(staleRelease)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, StateProbeInFlight, m.State(), "a stale result must not settle a restarted loop")

	close(freshRelease)
	require.Eventually(t, func() bool { return m.State() == StateRunning }, time.Second, 5*time.Millisecond)
}

func TestMonitor_SessionAppearingLaterIsPickedUp(t *testing.T) {
	sessions := &fakeSessions{} // starts absent
	validator := &fakeValidator{script: []heartbeatResult{{ok: true}}}
	m := NewMonitor(sessions, validator, 10*time.Millisecond, func() {}, discardLogger())

	require.NoError(t, m.Start(context.Background()))
	t.Cleanup(m.Stop)

	time.Sleep(30 * time.Millisecond)
	require.Zero(t, validator.calls.Load())

	sessions.set(liveSession())
	require.Eventually(t, func() bool { return validator.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
}
