package report

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/kanade-k-1228/traj/internal/trajectory"
)

// Summary holds scalar statistics of a trajectory, shown alongside the
// charts and in API responses.
type Summary struct {
	MeanSpeed        float64 `json:"meanSpeed"`        // m/s
	MaxSpeed         float64 `json:"maxSpeed"`         // m/s
	MaxAbsCurvature  float64 `json:"maxAbsCurvature"`  // 1/m
	RMSTrackingError float64 `json:"rmsTrackingError"` // m, zero without ground truth
	PathLength       float64 `json:"pathLength"`       // m
}

// Summarize computes summary statistics for a complete state and its
// metrics. A zero-length state yields a zero summary.
func Summarize(state trajectory.MotionState, metrics trajectory.Metrics) Summary {
	n := state.Len()
	if n == 0 {
		return Summary{}
	}

	speeds := make([]float64, n)
	for i := 0; i < n; i++ {
		speeds[i] = math.Hypot(state.Vx[i], state.Vy[i])
	}

	absCz := make([]float64, len(metrics.Cz))
	for i, v := range metrics.Cz {
		absCz[i] = math.Abs(v)
	}

	var pathLen float64
	for i := 1; i < n; i++ {
		pathLen += math.Hypot(state.Px[i]-state.Px[i-1], state.Py[i]-state.Py[i-1])
	}

	s := Summary{
		MeanSpeed:  stat.Mean(speeds, nil),
		MaxSpeed:   floats.Max(speeds),
		PathLength: pathLen,
	}
	if len(absCz) > 0 {
		s.MaxAbsCurvature = floats.Max(absCz)
	}
	if len(metrics.L1) > 0 {
		s.RMSTrackingError = floats.Norm(metrics.L1, 2) / math.Sqrt(float64(len(metrics.L1)))
	}
	return s
}
