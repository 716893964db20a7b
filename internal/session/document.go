package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kanade-k-1228/traj/internal/trajectory"
)

// ErrEmptyDocument is returned when an imported document contains none of
// the six recognized signal arrays. The import is rejected and the session
// is left untouched.
var ErrEmptyDocument = errors.New("document contains no recognized signal arrays")

// Document is the persisted/exchanged form of a trajectory. Any subset of
// the six arrays may be present on import; export always emits all six.
type Document struct {
	TimeSteps int       `json:"timeSteps"`
	Dt        float64   `json:"dt"`
	Px        []float64 `json:"px,omitempty"`
	Py        []float64 `json:"py,omitempty"`
	Oz        []float64 `json:"oz,omitempty"`
	Vx        []float64 `json:"vx,omitempty"`
	Vy        []float64 `json:"vy,omitempty"`
	Wz        []float64 `json:"wz,omitempty"`
}

// ParseDocument decodes a JSON document. Malformed JSON is an import
// validation failure; no further checks happen here.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("malformed trajectory document: %w", err)
	}
	return doc, nil
}

// signals returns the document arrays keyed by signal name; absent arrays
// are nil.
func (d *Document) signals() map[trajectory.SignalName][]float64 {
	return map[trajectory.SignalName][]float64{
		trajectory.SignalPx: d.Px,
		trajectory.SignalPy: d.Py,
		trajectory.SignalOz: d.Oz,
		trajectory.SignalVx: d.Vx,
		trajectory.SignalVy: d.Vy,
		trajectory.SignalWz: d.Wz,
	}
}

// normalizeLength fits values to length n: longer inputs are truncated,
// shorter ones zero-padded at the tail.
func normalizeLength(values []float64, n int) []float64 {
	out := make([]float64, n)
	copy(out, values)
	return out
}

// Import replaces every signal present in doc with its length-normalized
// values; absent signals keep their current contents. A document with none
// of the six arrays is rejected with ErrEmptyDocument and no state changes.
// The document's own timeSteps/dt are informational only; the session's
// configured values stay in force.
func (s *Session) Import(doc Document) error {
	arrays := doc.signals()
	any := false
	for _, values := range arrays {
		if values != nil {
			any = true
			break
		}
	}
	if !any {
		return ErrEmptyDocument
	}

	for _, name := range trajectory.SignalNames() {
		if values := arrays[name]; values != nil {
			s.state.Signal(name).Replace(normalizeLength(values, s.n))
		}
	}
	s.sync()
	return nil
}

// Export captures the complete current state as a document with all six
// signals populated.
func (s *Session) Export() Document {
	return Document{
		TimeSteps: s.n,
		Dt:        s.dt,
		Px:        s.state.Px.Clone(),
		Py:        s.state.Py.Clone(),
		Oz:        s.state.Oz.Clone(),
		Vx:        s.state.Vx.Clone(),
		Vy:        s.state.Vy.Clone(),
		Wz:        s.state.Wz.Clone(),
	}
}
