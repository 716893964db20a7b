// traj-report renders a trajectory document to inspection artifacts: an
// interactive HTML chart page, a PNG plot of the 2D path, and a summary
// table on stdout.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kanade-k-1228/traj/internal/report"
	"github.com/kanade-k-1228/traj/internal/session"
	"github.com/kanade-k-1228/traj/internal/trajectory"
	"github.com/kanade-k-1228/traj/internal/units"
)

var (
	input    = flag.String("in", "", "Input trajectory document (JSON)")
	htmlOut  = flag.String("html", "", "Write chart page to this HTML file")
	pngOut   = flag.String("png", "", "Write path plot to this PNG file")
	modeName = flag.String("mode", "velocity", "Calculation mode used to re-derive the state")
	unit     = flag.String("units", units.MPS, "Speed units for the summary (mps, mph, kmph, kph)")
)

func main() {
	flag.Parse()

	if *input == "" {
		log.Fatal("-in is required")
	}
	mode, err := trajectory.ParseMode(*modeName)
	if err != nil {
		log.Fatal(err)
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("failed to read document: %v", err)
	}
	doc, err := session.ParseDocument(data)
	if err != nil {
		log.Fatal(err)
	}

	n := doc.TimeSteps
	if n < 2 {
		n = trajectory.DefaultTimeSteps
	}
	dt := doc.Dt
	if dt <= 0 {
		dt = trajectory.DefaultDt
	}

	sess := session.New(n, dt)
	sess.SetMode(mode)
	if err := sess.Import(doc); err != nil {
		log.Fatalf("failed to import document: %v", err)
	}

	state := sess.State()
	metrics := sess.Metrics()

	if *htmlOut != "" {
		f, err := os.Create(*htmlOut)
		if err != nil {
			log.Fatalf("failed to create HTML file: %v", err)
		}
		if err := report.RenderCharts(f, state, nil, metrics, dt); err != nil {
			log.Fatalf("failed to render charts: %v", err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("failed to close HTML file: %v", err)
		}
		log.Printf("wrote %s", *htmlOut)
	}

	if *pngOut != "" {
		if err := report.SavePathPNG(state, nil, *pngOut); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *pngOut)
	}

	summary := report.Summarize(state, metrics)
	if !units.IsValid(*unit) {
		log.Fatalf("invalid units %q, must be one of: %s", *unit, units.ValidUnitsString())
	}
	summary.MeanSpeed = units.ConvertSpeed(summary.MeanSpeed, *unit)
	summary.MaxSpeed = units.ConvertSpeed(summary.MaxSpeed, *unit)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		log.Fatalf("failed to encode summary: %v", err)
	}
	fmt.Fprintf(os.Stderr, "mode=%s steps=%d dt=%gs\n", mode, n, dt)
}
