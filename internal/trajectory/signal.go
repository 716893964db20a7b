// Package trajectory implements the pure numerical core of the trajectory
// sketcher: fixed-length motion signals, the four calculation modes, the
// derivation engine that reconstructs a complete motion state from the
// driving signals of the active mode, derived metrics, and the default
// S-curve generator.
//
// Everything in this package is a pure function over value types: nothing
// here owns mutable state, and no function mutates its inputs.
package trajectory

// DefaultTimeSteps is the trajectory length used when no configuration is
// supplied.
const DefaultTimeSteps = 33

// DefaultDt is the sample interval in seconds used when no configuration is
// supplied.
const DefaultDt = 0.1

// SignalName identifies one of the six motion signals. The values double as
// the JSON keys of the exchange document.
type SignalName string

const (
	SignalPx SignalName = "px" // position x (m)
	SignalPy SignalName = "py" // position y (m)
	SignalOz SignalName = "oz" // orientation / yaw (rad), kept in (-pi, pi]
	SignalVx SignalName = "vx" // velocity x (m/s)
	SignalVy SignalName = "vy" // velocity y (m/s)
	SignalWz SignalName = "wz" // yaw rate (rad/s)
)

// SignalNames lists all six signals in canonical order.
func SignalNames() []SignalName {
	return []SignalName{SignalPx, SignalPy, SignalOz, SignalVx, SignalVy, SignalWz}
}

// Signal is a fixed-length sequence of samples of one physical quantity.
// The length is set at creation and never changes; samples are replaced,
// never inserted or deleted.
type Signal []float64

// NewSignal returns a zero-filled signal of n samples.
func NewSignal(n int) Signal {
	return make(Signal, n)
}

// Set writes v at index i. The index is clamped into range, so a write from
// an out-of-bounds gesture coordinate lands on the nearest valid sample
// instead of panicking.
func (s Signal) Set(i int, v float64) {
	if len(s) == 0 {
		return
	}
	if i < 0 {
		i = 0
	} else if i >= len(s) {
		i = len(s) - 1
	}
	s[i] = v
}

// Replace overwrites the signal with values. Extra input samples are ignored
// and missing ones leave the existing tail untouched; the signal length never
// changes.
func (s Signal) Replace(values []float64) {
	copy(s, values)
}

// Clone returns an independent copy.
func (s Signal) Clone() Signal {
	out := make(Signal, len(s))
	copy(out, s)
	return out
}

// MotionState is the six-signal description of a trajectory. All signals
// have identical length; NewMotionState and Clone are the only intended
// constructors, which makes a length mismatch a programming error rather
// than a runtime condition.
type MotionState struct {
	Px, Py Signal // position (m)
	Oz     Signal // orientation (rad)
	Vx, Vy Signal // velocity (m/s)
	Wz     Signal // yaw rate (rad/s)
}

// NewMotionState returns a zero-filled state of n samples per signal.
func NewMotionState(n int) MotionState {
	return MotionState{
		Px: NewSignal(n), Py: NewSignal(n),
		Oz: NewSignal(n),
		Vx: NewSignal(n), Vy: NewSignal(n),
		Wz: NewSignal(n),
	}
}

// Len returns the common signal length.
func (m MotionState) Len() int { return len(m.Px) }

// Complete reports whether all six signals are present with equal, non-zero
// length.
func (m MotionState) Complete() bool {
	n := len(m.Px)
	if n == 0 {
		return false
	}
	return len(m.Py) == n && len(m.Oz) == n &&
		len(m.Vx) == n && len(m.Vy) == n && len(m.Wz) == n
}

// Clone returns a deep copy sharing no buffers with the receiver.
func (m MotionState) Clone() MotionState {
	return MotionState{
		Px: m.Px.Clone(), Py: m.Py.Clone(),
		Oz: m.Oz.Clone(),
		Vx: m.Vx.Clone(), Vy: m.Vy.Clone(),
		Wz: m.Wz.Clone(),
	}
}

// Signal returns the buffer for name, or nil for an unknown name. Callers
// hold a live reference into the state, not a copy.
func (m *MotionState) Signal(name SignalName) Signal {
	switch name {
	case SignalPx:
		return m.Px
	case SignalPy:
		return m.Py
	case SignalOz:
		return m.Oz
	case SignalVx:
		return m.Vx
	case SignalVy:
		return m.Vy
	case SignalWz:
		return m.Wz
	}
	return nil
}
