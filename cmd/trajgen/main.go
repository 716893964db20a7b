// trajgen writes the deterministic default S-curve trajectory as a JSON
// document, for seeding sessions or as a known-good import fixture.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/kanade-k-1228/traj/internal/session"
	"github.com/kanade-k-1228/traj/internal/trajectory"
)

var (
	steps  = flag.Int("steps", trajectory.DefaultTimeSteps, "Number of samples")
	dt     = flag.Float64("dt", trajectory.DefaultDt, "Sample interval in seconds")
	output = flag.String("o", "", "Output file (default stdout)")
)

func main() {
	flag.Parse()

	if *steps < 2 {
		log.Fatalf("steps must be at least 2, got %d", *steps)
	}
	if *dt <= 0 {
		log.Fatalf("dt must be positive, got %g", *dt)
	}

	state := trajectory.DefaultTrajectory(*steps, *dt)
	doc := session.Document{
		TimeSteps: *steps,
		Dt:        *dt,
		Px:        state.Px, Py: state.Py,
		Oz: state.Oz,
		Vx: state.Vx, Vy: state.Vy,
		Wz: state.Wz,
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("failed to create output file: %v", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		log.Fatalf("failed to encode document: %v", err)
	}
}
