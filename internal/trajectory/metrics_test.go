package trajectory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completeState builds a populated state from velocity tracks so that
// metrics preconditions hold.
func completeState(t *testing.T, vx, vy []float64, dt float64) MotionState {
	t.Helper()
	in := NewMotionState(len(vx))
	in.Vx.Replace(vx)
	in.Vy.Replace(vy)
	out := Derive(ModeVelocity, in, dt)
	require.True(t, out.Complete())
	return out
}

func TestAccelerationFiniteDifference(t *testing.T) {
	t.Parallel()

	state := completeState(t, []float64{0, 1, 3}, []float64{0, 0, 0}, 1.0)
	m := ComputeMetrics(state, nil, 1.0)

	assert.Equal(t, Signal{0, 1, 2}, m.Ax)
	assert.Equal(t, Signal{0, 0, 0}, m.Ay)
}

func TestCurvatureZeroNearRest(t *testing.T) {
	t.Parallel()

	state := completeState(t, []float64{1, 0.05, 0}, []float64{0, 0, 0}, 1.0)
	state.Wz.Replace([]float64{2, 2, 2})

	m := ComputeMetrics(state, nil, 1.0)

	assert.InDelta(t, 2.0, m.Cz[0], 1e-12, "wz/speed above the threshold")
	assert.Equal(t, 0.0, m.Cz[1], "speed 0.05 is below the cutoff")
	assert.Equal(t, 0.0, m.Cz[2], "speed 0 never divides")
}

func TestTrackingError(t *testing.T) {
	t.Parallel()

	state := completeState(t, []float64{1, 1, 1, 1}, []float64{0, 0, 0, 0}, 1.0)

	t.Run("zero without ground truth", func(t *testing.T) {
		t.Parallel()
		m := ComputeMetrics(state, nil, 1.0)
		assert.Equal(t, Signal{0, 0, 0, 0}, m.L1)
	})

	t.Run("zero against own copy", func(t *testing.T) {
		t.Parallel()
		gt := state.Clone()
		m := ComputeMetrics(state, &gt, 1.0)
		assert.Equal(t, Signal{0, 0, 0, 0}, m.L1)
	})

	t.Run("perturbation shows up pointwise", func(t *testing.T) {
		t.Parallel()
		gt := state.Clone()
		perturbed := state.Clone()
		const delta = 0.25
		perturbed.Px[2] += delta

		m := ComputeMetrics(perturbed, &gt, 1.0)

		assert.InDelta(t, delta, m.L1[2], 1e-12)
		assert.Equal(t, 0.0, m.L1[0])
		assert.Equal(t, 0.0, m.L1[1])
		assert.Equal(t, 0.0, m.L1[3])
	})

	t.Run("shorter ground truth leaves trailing zeros", func(t *testing.T) {
		t.Parallel()
		gt := MotionState{
			Px: Signal{5, 5}, Py: Signal{0, 0},
			Oz: Signal{0, 0},
			Vx: Signal{0, 0}, Vy: Signal{0, 0},
			Wz: Signal{0, 0},
		}
		m := ComputeMetrics(state, &gt, 1.0)

		assert.InDelta(t, 5.0, m.L1[0], 1e-12)
		assert.InDelta(t, 4.0, m.L1[1], 1e-12)
		assert.Equal(t, 0.0, m.L1[2])
		assert.Equal(t, 0.0, m.L1[3])
	})
}

func TestMetricsIncompleteStateFallsBack(t *testing.T) {
	t.Parallel()

	m := ComputeMetrics(MotionState{}, nil, 0.1)

	require.Len(t, m.Ax, DefaultTimeSteps)
	require.Len(t, m.Cz, DefaultTimeSteps)
	for i := range m.Ax {
		assert.Equal(t, 0.0, m.Ax[i])
		assert.Equal(t, 0.0, m.Ay[i])
		assert.Equal(t, 0.0, m.Cz[i])
		assert.Equal(t, 0.0, m.L1[i])
	}
}

func TestCurvatureMatchesYawRateOverSpeed(t *testing.T) {
	t.Parallel()

	state := DefaultTrajectory(25, 0.1)
	m := ComputeMetrics(state, nil, 0.1)

	for i := 0; i < state.Len(); i++ {
		speed := math.Hypot(state.Vx[i], state.Vy[i])
		require.Greater(t, speed, CurvatureMinSpeed)
		assert.InDelta(t, state.Wz[i]/speed, m.Cz[i], 1e-12, "index %d", i)
	}
}
