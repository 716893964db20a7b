package trajectory

import "fmt"

// Mode selects which two signals the user drives directly; the derivation
// engine reconstructs the other four. The table is static and defined once
// at process start.
type Mode int

const (
	// ModePosition drives px/py; velocity, orientation and yaw rate are
	// differentiated from the path.
	ModePosition Mode = iota
	// ModeVelocity drives vx/vy; position is integrated, orientation and
	// yaw rate follow the velocity direction.
	ModeVelocity
	// ModeIntegral drives vx/wz under the no-slip assumption; position and
	// orientation are integrated forward.
	ModeIntegral
	// ModeDifferential drives px/oz under the no-slip assumption; the
	// lateral track is integrated from the heading.
	ModeDifferential
)

// ModeSpec describes one calculation mode for consumers deciding signal
// ownership and for presentation.
type ModeSpec struct {
	Name      string        `json:"name"`
	Driving   [2]SignalName `json:"drivingSignals"`
	Label     string        `json:"label"`
	ColorHint string        `json:"colorHint"`
}

var modeTable = [...]ModeSpec{
	ModePosition:     {Name: "position", Driving: [2]SignalName{SignalPx, SignalPy}, Label: "Position", ColorHint: "#1f77b4"},
	ModeVelocity:     {Name: "velocity", Driving: [2]SignalName{SignalVx, SignalVy}, Label: "Velocity", ColorHint: "#2ca02c"},
	ModeIntegral:     {Name: "integral", Driving: [2]SignalName{SignalVx, SignalWz}, Label: "Integral", ColorHint: "#ff7f0e"},
	ModeDifferential: {Name: "differential", Driving: [2]SignalName{SignalPx, SignalOz}, Label: "Differential", ColorHint: "#d62728"},
}

// Modes lists all calculation modes in declaration order.
func Modes() []Mode {
	return []Mode{ModePosition, ModeVelocity, ModeIntegral, ModeDifferential}
}

// Spec returns the static description of the mode.
func (m Mode) Spec() ModeSpec {
	if m < 0 || int(m) >= len(modeTable) {
		return ModeSpec{}
	}
	return modeTable[m]
}

// Drives reports whether name is one of the mode's two driving signals.
func (m Mode) Drives(name SignalName) bool {
	spec := m.Spec()
	return name == spec.Driving[0] || name == spec.Driving[1]
}

func (m Mode) String() string { return m.Spec().Name }

// ParseMode maps a mode name ("position", "velocity", "integral",
// "differential") back to its Mode.
func ParseMode(name string) (Mode, error) {
	for _, m := range Modes() {
		if m.Spec().Name == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown calculation mode %q", name)
}
