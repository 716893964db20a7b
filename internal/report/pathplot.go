package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/kanade-k-1228/traj/internal/trajectory"
)

// SavePathPNG renders the 2D path of state (and the ground truth, when
// present) to a PNG file.
func SavePathPNG(state trajectory.MotionState, groundTruth *trajectory.MotionState, path string) error {
	p := plot.New()
	p.Title.Text = "Trajectory Path"
	p.X.Label.Text = "X (m)"
	p.Y.Label.Text = "Y (m)"
	p.Add(plotter.NewGrid())

	if groundTruth != nil {
		gtLine, err := plotter.NewLine(pathXYs(groundTruth.Px, groundTruth.Py))
		if err != nil {
			return fmt.Errorf("failed to build ground-truth line: %w", err)
		}
		gtLine.Width = vg.Points(1)
		gtLine.Color = color.RGBA{R: 160, G: 160, B: 160, A: 255}
		gtLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(gtLine)
		p.Legend.Add("ground truth", gtLine)
	}

	line, err := plotter.NewLine(pathXYs(state.Px, state.Py))
	if err != nil {
		return fmt.Errorf("failed to build path line: %w", err)
	}
	line.Width = vg.Points(1.5)
	line.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	p.Add(line)
	p.Legend.Add("current", line)

	if err := p.Save(8*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save path plot: %w", err)
	}
	return nil
}

func pathXYs(xs, ys trajectory.Signal) plotter.XYs {
	pts := make(plotter.XYs, 0, len(xs))
	for i := range xs {
		pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
	}
	return pts
}
