package trajectory

import "math"

// CurvatureMinSpeed is the speed (m/s) at or below which curvature is
// reported as zero instead of dividing the yaw rate by a vanishing speed.
const CurvatureMinSpeed = 0.1

// Metrics holds the signals derived from a complete motion state: linear
// acceleration, path curvature, and the pointwise Euclidean tracking error
// against the ground truth.
type Metrics struct {
	Ax, Ay Signal // acceleration (m/s^2)
	Cz     Signal // curvature (1/m)
	L1     Signal // tracking error (m), zero without a ground truth
}

// NewMetrics returns zero-filled metrics of n samples per signal.
func NewMetrics(n int) Metrics {
	return Metrics{Ax: NewSignal(n), Ay: NewSignal(n), Cz: NewSignal(n), L1: NewSignal(n)}
}

// Clone returns a deep copy.
func (m Metrics) Clone() Metrics {
	return Metrics{Ax: m.Ax.Clone(), Ay: m.Ay.Clone(), Cz: m.Cz.Clone(), L1: m.L1.Clone()}
}

// ComputeMetrics derives acceleration, curvature and tracking error from a
// complete motion state. An incomplete state yields all-zero metrics of the
// default length rather than an error. A nil or shorter ground truth leaves
// the corresponding L1 samples at zero.
func ComputeMetrics(state MotionState, groundTruth *MotionState, dt float64) Metrics {
	if !state.Complete() {
		n := state.Len()
		if n == 0 {
			n = DefaultTimeSteps
		}
		return NewMetrics(n)
	}

	n := state.Len()
	out := NewMetrics(n)

	for i := 1; i < n; i++ {
		out.Ax[i] = (state.Vx[i] - state.Vx[i-1]) / dt
		out.Ay[i] = (state.Vy[i] - state.Vy[i-1]) / dt
	}

	for i := 0; i < n; i++ {
		speed := math.Hypot(state.Vx[i], state.Vy[i])
		if speed > CurvatureMinSpeed {
			out.Cz[i] = state.Wz[i] / speed
		}
	}

	if groundTruth != nil {
		gn := groundTruth.Len()
		for i := 0; i < n && i < gn; i++ {
			out.L1[i] = math.Hypot(state.Px[i]-groundTruth.Px[i], state.Py[i]-groundTruth.Py[i])
		}
	}
	return out
}
