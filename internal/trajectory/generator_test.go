package trajectory

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTrajectoryDeterministic(t *testing.T) {
	t.Parallel()

	a := DefaultTrajectory(33, 0.1)
	b := DefaultTrajectory(33, 0.1)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("generator is not deterministic (-a +b):\n%s", diff)
	}
}

func TestDefaultTrajectoryProfile(t *testing.T) {
	t.Parallel()

	const n = 10
	const dt = 0.1
	state := DefaultTrajectory(n, dt)
	require.Equal(t, n, state.Len())
	require.True(t, state.Complete())

	// t=0: straight heading, speed 10, at the origin.
	assert.Equal(t, 0.0, state.Px[0])
	assert.Equal(t, 0.0, state.Py[0])
	assert.Equal(t, 0.0, state.Oz[0])
	assert.Equal(t, 10.0, state.Vx[0])
	assert.Equal(t, 0.0, state.Vy[0])
	assert.Equal(t, 0.0, state.Wz[0])

	// Sample 1: the closed-form profile at t=0.1, with the heading still at
	// zero because wz[0] was zero.
	assert.InDelta(t, 0.3*math.Sin(0.1*math.Pi/0.3), state.Wz[1], 1e-12)
	assert.Equal(t, 0.0, state.Oz[1])
	assert.InDelta(t, 10+3*math.Sin(0.2*math.Pi), state.Vx[1], 1e-12)
	assert.InDelta(t, 1.0, state.Px[1], 1e-12, "first step integrates vx[0]*dt")

	// Yaw rate follows the piecewise profile: left arc, right arc, straight.
	for i := 0; i < n; i++ {
		tt := float64(i) / float64(n)
		switch {
		case tt < 0.3:
			assert.InDelta(t, 0.3*math.Sin(tt*math.Pi/0.3), state.Wz[i], 1e-12, "index %d", i)
		case tt < 0.7:
			assert.InDelta(t, -0.3*math.Sin((tt-0.3)*math.Pi/0.4), state.Wz[i], 1e-12, "index %d", i)
		default:
			assert.Equal(t, 0.0, state.Wz[i], "index %d", i)
		}
	}
}

func TestDefaultTrajectoryInvariants(t *testing.T) {
	t.Parallel()

	state := DefaultTrajectory(100, 0.1)

	for i := 0; i < state.Len(); i++ {
		// Orientation stays normalized.
		assert.Greater(t, state.Oz[i], -math.Pi, "index %d", i)
		assert.LessOrEqual(t, state.Oz[i], math.Pi, "index %d", i)
		// Speed profile is 10 +- 3, never anywhere near stationary.
		speed := math.Hypot(state.Vx[i], state.Vy[i])
		assert.InDelta(t, 10+3*math.Sin(2*math.Pi*float64(i)/100), speed, 1e-9, "index %d", i)
	}

	// The generated state is self-consistent under velocity-mode derivation:
	// integrating its own vx/vy reproduces its positions.
	derived := Derive(ModeVelocity, state, 0.1)
	if diff := cmp.Diff(state.Px, derived.Px); diff != "" {
		t.Errorf("px not self-consistent (-gen +derived):\n%s", diff)
	}
	if diff := cmp.Diff(state.Py, derived.Py); diff != "" {
		t.Errorf("py not self-consistent (-gen +derived):\n%s", diff)
	}
}
