package session

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanade-k-1228/traj/internal/trajectory"
)

func TestParseDocument(t *testing.T) {
	t.Parallel()

	t.Run("well-formed", func(t *testing.T) {
		t.Parallel()
		doc, err := ParseDocument([]byte(`{"timeSteps":4,"dt":0.5,"px":[1,2,3,4]}`))
		require.NoError(t, err)
		assert.Equal(t, 4, doc.TimeSteps)
		assert.Equal(t, 0.5, doc.Dt)
		assert.Equal(t, []float64{1, 2, 3, 4}, doc.Px)
		assert.Nil(t, doc.Vy)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		_, err := ParseDocument([]byte(`{"px": "not an array"`))
		assert.Error(t, err)
	})
}

func TestImportLengthNormalization(t *testing.T) {
	t.Parallel()

	t.Run("short arrays are zero-padded", func(t *testing.T) {
		t.Parallel()
		s := New(10, 0.1)
		s.SetMode(trajectory.ModePosition)

		require.NoError(t, s.Import(Document{Px: []float64{1, 2, 3, 4, 5}}))

		want := trajectory.Signal{1, 2, 3, 4, 5, 0, 0, 0, 0, 0}
		assert.Equal(t, want, s.State().Px)
	})

	t.Run("long arrays are truncated", func(t *testing.T) {
		t.Parallel()
		s := New(10, 0.1)
		s.SetMode(trajectory.ModePosition)

		long := make([]float64, 15)
		for i := range long {
			long[i] = float64(i + 1)
		}
		require.NoError(t, s.Import(Document{Px: long}))

		want := trajectory.Signal{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		assert.Equal(t, want, s.State().Px)
	})
}

func TestImportSubsetLeavesOtherSignals(t *testing.T) {
	t.Parallel()

	s := New(8, 0.1)
	before := s.State()

	// vy is driving in velocity mode and absent from the document, so it
	// must come through the import untouched.
	vx := []float64{1, 1, 1, 1, 1, 1, 1, 1}
	require.NoError(t, s.Import(Document{Vx: vx}))

	state := s.State()
	assert.Equal(t, trajectory.Signal(vx), state.Vx)
	assert.Equal(t, before.Vy, state.Vy)
}

func TestImportEmptyDocumentRejected(t *testing.T) {
	t.Parallel()

	s := New(8, 0.1)
	before := s.State()

	err := s.Import(Document{TimeSteps: 8, Dt: 0.1})
	require.ErrorIs(t, err, ErrEmptyDocument)

	if diff := cmp.Diff(before, s.State()); diff != "" {
		t.Errorf("rejected import mutated state (-before +after):\n%s", diff)
	}
}

func TestExportEmitsEverything(t *testing.T) {
	t.Parallel()

	s := New(12, 0.05)
	doc := s.Export()

	assert.Equal(t, 12, doc.TimeSteps)
	assert.Equal(t, 0.05, doc.Dt)
	for name, values := range map[string][]float64{
		"px": doc.Px, "py": doc.Py, "oz": doc.Oz,
		"vx": doc.Vx, "vy": doc.Vy, "wz": doc.Wz,
	} {
		assert.Len(t, values, 12, "signal %s", name)
	}

	// Exported buffers are copies, not views into the session.
	doc.Px[0] = -777
	assert.NotEqual(t, -777.0, s.State().Px[0])
}

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()

	s := New(16, 0.1)
	require.NoError(t, s.EditPoint(trajectory.SignalVx, 4, 17))
	doc := s.Export()

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	parsed, err := ParseDocument(data)
	require.NoError(t, err)

	other := New(16, 0.1)
	require.NoError(t, other.Import(parsed))

	if diff := cmp.Diff(s.State(), other.State()); diff != "" {
		t.Errorf("round trip changed the state (-orig +imported):\n%s", diff)
	}
}
