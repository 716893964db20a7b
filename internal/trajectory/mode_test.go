package trajectory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeTable(t *testing.T) {
	t.Parallel()

	want := map[Mode][2]SignalName{
		ModePosition:     {SignalPx, SignalPy},
		ModeVelocity:     {SignalVx, SignalVy},
		ModeIntegral:     {SignalVx, SignalWz},
		ModeDifferential: {SignalPx, SignalOz},
	}
	require.Len(t, Modes(), 4)
	for mode, driving := range want {
		spec := mode.Spec()
		assert.Equal(t, driving, spec.Driving, "mode %s", mode)
		assert.NotEmpty(t, spec.Label, "mode %s", mode)
		assert.NotEmpty(t, spec.ColorHint, "mode %s", mode)
	}
}

func TestModeDrives(t *testing.T) {
	t.Parallel()

	assert.True(t, ModeIntegral.Drives(SignalVx))
	assert.True(t, ModeIntegral.Drives(SignalWz))
	assert.False(t, ModeIntegral.Drives(SignalVy))
	assert.False(t, ModeIntegral.Drives(SignalPx))
}

func TestParseModeRoundTrip(t *testing.T) {
	t.Parallel()

	for _, mode := range Modes() {
		parsed, err := ParseMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}

	_, err := ParseMode("teleport")
	assert.Error(t, err)
}
