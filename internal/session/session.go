// Package session implements the synchronization controller: it owns the
// current motion state, the optional ground truth, and the derived metrics,
// and keeps them mutually consistent across edits, mode switches, imports
// and resets.
//
// A session is strictly single-threaded: every operation runs a full
// derive-and-metrics pass to completion before returning, so an external
// observer never sees a partially updated state. Callers that share a
// session across goroutines must serialize access themselves (the HTTP
// layer does this with one mutex at the API boundary).
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kanade-k-1228/traj/internal/monitoring"
	"github.com/kanade-k-1228/traj/internal/trajectory"
)

// ErrNotDriving is returned when an edit targets a signal the active mode
// derives rather than drives. Derived buffers are owned by the engine; only
// the two driving signals of the active mode accept user writes.
var ErrNotDriving = errors.New("signal is not driven by the active mode")

// Session is the single mutable document the user edits.
type Session struct {
	id   uuid.UUID
	n    int
	dt   float64
	mode trajectory.Mode

	state       trajectory.MotionState
	groundTruth *trajectory.MotionState
	metrics     trajectory.Metrics

	// syncing guards against re-entrant synchronization: a derived-signal
	// writeback must never be classified as a driving edit that triggers
	// another derivation.
	syncing bool
}

// New creates a session of n samples at dt seconds per sample, seeded with
// the default S-curve trajectory and starting in velocity mode.
func New(n int, dt float64) *Session {
	s := &Session{
		id:   uuid.New(),
		n:    n,
		dt:   dt,
		mode: trajectory.ModeVelocity,
	}
	s.state = trajectory.DefaultTrajectory(n, dt)
	s.metrics = trajectory.NewMetrics(n)
	s.sync()
	return s
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Dt returns the sample interval in seconds.
func (s *Session) Dt() float64 { return s.dt }

// TimeSteps returns the trajectory length.
func (s *Session) TimeSteps() int { return s.n }

// Mode returns the active calculation mode.
func (s *Session) Mode() trajectory.Mode { return s.mode }

// State returns a deep copy of the current complete motion state. Readers
// never alias the session's buffers.
func (s *Session) State() trajectory.MotionState { return s.state.Clone() }

// GroundTruth returns a deep copy of the ground truth, or nil if none has
// been snapshotted.
func (s *Session) GroundTruth() *trajectory.MotionState {
	if s.groundTruth == nil {
		return nil
	}
	gt := s.groundTruth.Clone()
	return &gt
}

// Metrics returns a deep copy of the current derived metrics.
func (s *Session) Metrics() trajectory.Metrics { return s.metrics.Clone() }

// sync re-derives the complete state for the active mode and recomputes
// metrics. Only non-driving signals are written back, so the driving buffers
// stay exactly as the user set them.
func (s *Session) sync() {
	if s.syncing {
		panic("session: re-entrant sync")
	}
	s.syncing = true
	defer func() { s.syncing = false }()

	derived := trajectory.Derive(s.mode, s.state, s.dt)
	for _, name := range trajectory.SignalNames() {
		if s.mode.Drives(name) {
			continue
		}
		s.state.Signal(name).Replace(derived.Signal(name))
	}
	s.metrics = trajectory.ComputeMetrics(s.state, s.groundTruth, s.dt)
}

// EditPoint writes one sample of a driving signal, clamping the index into
// range, then re-synchronizes.
func (s *Session) EditPoint(name trajectory.SignalName, i int, v float64) error {
	if !s.mode.Drives(name) {
		return fmt.Errorf("edit %s in %s mode: %w", name, s.mode, ErrNotDriving)
	}
	s.state.Signal(name).Set(i, v)
	s.sync()
	return nil
}

// EditSignal bulk-replaces a driving signal, then re-synchronizes. The
// buffer keeps its fixed length: extra input samples are dropped, missing
// ones leave the tail unchanged.
func (s *Session) EditSignal(name trajectory.SignalName, values []float64) error {
	if !s.mode.Drives(name) {
		return fmt.Errorf("edit %s in %s mode: %w", name, s.mode, ErrNotDriving)
	}
	s.state.Signal(name).Replace(values)
	s.sync()
	return nil
}

// SetMode switches the active calculation mode. The newly driving signals'
// existing contents become the driving input: switching modes reinterprets
// the numbers already in the buffers, it never resets them.
func (s *Session) SetMode(mode trajectory.Mode) {
	if mode == s.mode {
		return
	}
	monitoring.Logf("session %s: mode %s -> %s", s.id, s.mode, mode)
	s.mode = mode
	s.sync()
}

// SnapshotGroundTruth replaces the ground truth with a copy of the current
// complete state. The snapshot persists until overwritten by the next call;
// later edits to the current state never clear it.
func (s *Session) SnapshotGroundTruth() {
	gt := s.state.Clone()
	s.groundTruth = &gt
	s.metrics = trajectory.ComputeMetrics(s.state, s.groundTruth, s.dt)
}

// Reset replaces all six signals with a fresh default S-curve, zeroes the
// metrics, then re-synchronizes from the new state. The ground truth is left
// alone.
func (s *Session) Reset() {
	monitoring.Logf("session %s: reset", s.id)
	s.state = trajectory.DefaultTrajectory(s.n, s.dt)
	s.metrics = trajectory.NewMetrics(s.n)
	s.sync()
}
