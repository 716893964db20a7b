// Package api exposes a trajectory session over HTTP. All mutation
// endpoints funnel through one mutex, preserving the session's
// single-threaded contract; the session itself stays lock-free.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/kanade-k-1228/traj/internal/httputil"
	"github.com/kanade-k-1228/traj/internal/report"
	"github.com/kanade-k-1228/traj/internal/session"
	"github.com/kanade-k-1228/traj/internal/trajectory"
	"github.com/kanade-k-1228/traj/internal/units"
)

type Server struct {
	mu      sync.Mutex
	session *session.Session
}

func NewServer(s *session.Session) *Server {
	return &Server{session: s}
}

func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/state", s.stateHandler)
	mux.HandleFunc("/metrics", s.metricsHandler)
	mux.HandleFunc("/modes", s.modesHandler)
	mux.HandleFunc("/export", s.exportHandler)
	mux.HandleFunc("/edit", s.editHandler)
	mux.HandleFunc("/mode", s.modeHandler)
	mux.HandleFunc("/snapshot", s.snapshotHandler)
	mux.HandleFunc("/reset", s.resetHandler)
	mux.HandleFunc("/import", s.importHandler)
	mux.HandleFunc("/charts", s.chartsHandler)
	return mux
}

// stateResponse is the read snapshot handed to renderers.
type stateResponse struct {
	SessionID   string                              `json:"sessionId"`
	Mode        string                              `json:"mode"`
	TimeSteps   int                                 `json:"timeSteps"`
	Dt          float64                             `json:"dt"`
	Signals     map[trajectory.SignalName][]float64 `json:"signals"`
	GroundTruth map[trajectory.SignalName][]float64 `json:"groundTruth,omitempty"`
}

func signalMap(state trajectory.MotionState) map[trajectory.SignalName][]float64 {
	out := make(map[trajectory.SignalName][]float64, 6)
	for _, name := range trajectory.SignalNames() {
		out[name] = state.Signal(name)
	}
	return out
}

func (s *Server) stateHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	s.mu.Lock()
	resp := stateResponse{
		SessionID: s.session.ID().String(),
		Mode:      s.session.Mode().String(),
		TimeSteps: s.session.TimeSteps(),
		Dt:        s.session.Dt(),
		Signals:   signalMap(s.session.State()),
	}
	if gt := s.session.GroundTruth(); gt != nil {
		resp.GroundTruth = signalMap(*gt)
	}
	s.mu.Unlock()
	httputil.WriteJSONOK(w, resp)
}

func (s *Server) metricsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	unit := r.URL.Query().Get("units")
	if unit == "" {
		unit = units.MPS
	}
	if !units.IsValid(unit) {
		httputil.BadRequest(w, fmt.Sprintf("invalid units %q, must be one of: %s", unit, units.ValidUnitsString()))
		return
	}

	s.mu.Lock()
	m := s.session.Metrics()
	summary := report.Summarize(s.session.State(), m)
	s.mu.Unlock()

	// The engine works in m/s; speeds convert at the presentation boundary.
	summary.MeanSpeed = units.ConvertSpeed(summary.MeanSpeed, unit)
	summary.MaxSpeed = units.ConvertSpeed(summary.MaxSpeed, unit)

	httputil.WriteJSONOK(w, struct {
		Ax      []float64      `json:"ax"`
		Ay      []float64      `json:"ay"`
		Cz      []float64      `json:"cz"`
		L1      []float64      `json:"l1"`
		Units   string         `json:"units"`
		Summary report.Summary `json:"summary"`
	}{m.Ax, m.Ay, m.Cz, m.L1, unit, summary})
}

func (s *Server) modesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	specs := make([]trajectory.ModeSpec, 0, len(trajectory.Modes()))
	for _, m := range trajectory.Modes() {
		specs = append(specs, m.Spec())
	}
	httputil.WriteJSONOK(w, specs)
}

func (s *Server) exportHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	s.mu.Lock()
	doc := s.session.Export()
	s.mu.Unlock()
	w.Header().Set("Content-Disposition", `attachment; filename="trajectory.json"`)
	httputil.WriteJSONOK(w, doc)
}

// editRequest updates one sample (index/value) or the whole signal (values)
// of a driving signal.
type editRequest struct {
	Signal trajectory.SignalName `json:"signal"`
	Index  *int                  `json:"index,omitempty"`
	Value  *float64              `json:"value,omitempty"`
	Values []float64             `json:"values,omitempty"`
}

func (s *Server) editHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}
	var req editRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.BadRequest(w, fmt.Sprintf("invalid edit request: %v", err))
		return
	}

	s.mu.Lock()
	var err error
	switch {
	case req.Values != nil:
		err = s.session.EditSignal(req.Signal, req.Values)
	case req.Index != nil && req.Value != nil:
		err = s.session.EditPoint(req.Signal, *req.Index, *req.Value)
	default:
		s.mu.Unlock()
		httputil.BadRequest(w, "edit requires either values or index+value")
		return
	}
	s.mu.Unlock()

	if err != nil {
		if errors.Is(err, session.ErrNotDriving) {
			httputil.Unprocessable(w, err.Error())
		} else {
			httputil.BadRequest(w, err.Error())
		}
		return
	}
	httputil.WriteJSONOK(w, map[string]string{"status": "ok"})
}

func (s *Server) modeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}
	var req struct {
		Mode string `json:"mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.BadRequest(w, fmt.Sprintf("invalid mode request: %v", err))
		return
	}
	mode, err := trajectory.ParseMode(req.Mode)
	if err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}
	s.mu.Lock()
	s.session.SetMode(mode)
	s.mu.Unlock()
	httputil.WriteJSONOK(w, map[string]string{"status": "ok", "mode": mode.String()})
}

func (s *Server) snapshotHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}
	s.mu.Lock()
	s.session.SnapshotGroundTruth()
	s.mu.Unlock()
	httputil.WriteJSONOK(w, map[string]string{"status": "ok"})
}

func (s *Server) resetHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}
	s.mu.Lock()
	s.session.Reset()
	s.mu.Unlock()
	httputil.WriteJSONOK(w, map[string]string{"status": "ok"})
}

func (s *Server) importHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}
	var doc session.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		httputil.BadRequest(w, fmt.Sprintf("malformed trajectory document: %v", err))
		return
	}
	s.mu.Lock()
	err := s.session.Import(doc)
	s.mu.Unlock()
	if err != nil {
		httputil.Unprocessable(w, err.Error())
		return
	}
	httputil.WriteJSONOK(w, map[string]string{"status": "ok"})
}

func (s *Server) chartsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	s.mu.Lock()
	state := s.session.State()
	gt := s.session.GroundTruth()
	metrics := s.session.Metrics()
	dt := s.session.Dt()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := report.RenderCharts(w, state, gt, metrics, dt); err != nil {
		httputil.WriteJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to render charts: %v", err))
	}
}
