package trajectory

import "math"

// StationarySpeed is the velocity magnitude (m/s) below which a sample is
// treated as stationary: the heading is carried forward from the previous
// sample instead of being recomputed from a near-zero, numerically unstable
// direction vector.
const StationarySpeed = 0.01

// WrapAngle normalizes an angle into (-pi, pi] by repeated +-2pi adjustment.
// Applied to every angle difference before use so a heading crossing the
// +-pi boundary produces a small step, not a near-2pi jump.
func WrapAngle(rad float64) float64 {
	for rad > math.Pi {
		rad -= 2 * math.Pi
	}
	for rad <= -math.Pi {
		rad += 2 * math.Pi
	}
	return rad
}

// Derive reconstructs a complete motion state from the driving signals of
// mode. Only the driving signals of the input need to be meaningful; the
// first samples of the remaining signals seed the integration constants and
// everything non-driving is overwritten in the output. The input is never
// mutated and the driving signals are copied through untouched.
//
// There is no failure path: the output always has the input's length.
// Unequal-length input buffers are a contract violation by the caller.
func Derive(mode Mode, state MotionState, dt float64) MotionState {
	switch mode {
	case ModePosition:
		return derivePosition(state, dt)
	case ModeVelocity:
		return deriveVelocity(state, dt)
	case ModeIntegral:
		return deriveIntegral(state, dt)
	case ModeDifferential:
		return deriveDifferential(state, dt)
	}
	return state.Clone()
}

// finiteDiff estimates the derivative of s by forward difference, falling
// back to a backward difference at the final index where no next sample
// exists.
func finiteDiff(s Signal, dt float64) Signal {
	n := len(s)
	out := NewSignal(n)
	if n < 2 {
		return out
	}
	for i := 0; i < n-1; i++ {
		out[i] = (s[i+1] - s[i]) / dt
	}
	out[n-1] = (s[n-1] - s[n-2]) / dt
	return out
}

// headingFromVelocity computes the orientation track from a velocity track.
// Below StationarySpeed the previous heading is held; at index 0 the hold
// falls back to 0, matching the source behaviour.
func headingFromVelocity(vx, vy Signal) Signal {
	n := len(vx)
	out := NewSignal(n)
	prev := 0.0
	for i := 0; i < n; i++ {
		if math.Hypot(vx[i], vy[i]) > StationarySpeed {
			out[i] = math.Atan2(vy[i], vx[i])
		} else {
			out[i] = prev
		}
		prev = out[i]
	}
	return out
}

// yawRateFromHeading differentiates a heading track, wrapping each angular
// step into (-pi, pi] before dividing by dt. Index 0 has no predecessor and
// is zero.
func yawRateFromHeading(oz Signal, dt float64) Signal {
	n := len(oz)
	out := NewSignal(n)
	for i := 1; i < n; i++ {
		out[i] = WrapAngle(oz[i]-oz[i-1]) / dt
	}
	return out
}

func derivePosition(state MotionState, dt float64) MotionState {
	out := MotionState{
		Px: state.Px.Clone(),
		Py: state.Py.Clone(),
		Vx: finiteDiff(state.Px, dt),
		Vy: finiteDiff(state.Py, dt),
	}
	out.Oz = headingFromVelocity(out.Vx, out.Vy)
	out.Wz = yawRateFromHeading(out.Oz, dt)
	return out
}

func deriveVelocity(state MotionState, dt float64) MotionState {
	n := state.Len()
	out := MotionState{
		Px: NewSignal(n),
		Py: NewSignal(n),
		Vx: state.Vx.Clone(),
		Vy: state.Vy.Clone(),
	}
	var x, y float64
	if n > 0 {
		x, y = state.Px[0], state.Py[0]
	}
	for i := 0; i < n; i++ {
		out.Px[i], out.Py[i] = x, y
		x += out.Vx[i] * dt
		y += out.Vy[i] * dt
	}
	out.Oz = headingFromVelocity(out.Vx, out.Vy)
	out.Wz = yawRateFromHeading(out.Oz, dt)
	return out
}

func deriveIntegral(state MotionState, dt float64) MotionState {
	n := state.Len()
	out := MotionState{
		Px: NewSignal(n),
		Py: NewSignal(n),
		Oz: NewSignal(n),
		Vx: state.Vx.Clone(),
		Vy: NewSignal(n),
		Wz: state.Wz.Clone(),
	}
	var x, y, theta float64
	if n > 0 {
		x, y, theta = state.Px[0], state.Py[0], state.Oz[0]
	}
	for i := 0; i < n; i++ {
		out.Px[i], out.Py[i], out.Oz[i] = x, y, theta
		// No-slip: lateral velocity is fully determined by forward velocity
		// and heading. tan diverges as the heading approaches +-pi/2; the
		// unclamped value is passed through (see package tests).
		out.Vy[i] = out.Vx[i] * math.Tan(theta)
		x += out.Vx[i] * dt
		y += out.Vy[i] * dt
		theta = WrapAngle(theta + out.Wz[i]*dt)
	}
	return out
}

func deriveDifferential(state MotionState, dt float64) MotionState {
	n := state.Len()
	out := MotionState{
		Px: state.Px.Clone(),
		Py: NewSignal(n),
		Oz: state.Oz.Clone(),
		Vx: finiteDiff(state.Px, dt),
		Vy: NewSignal(n),
	}
	for i := 0; i < n; i++ {
		out.Vy[i] = out.Vx[i] * math.Tan(out.Oz[i])
	}
	out.Wz = yawRateFromHeading(out.Oz, dt)
	var y float64
	if n > 0 {
		y = state.Py[0]
	}
	for i := 0; i < n; i++ {
		out.Py[i] = y
		y += out.Vy[i] * dt
	}
	return out
}
