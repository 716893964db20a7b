// Package report renders trajectory sessions for human inspection: an
// HTML chart page (go-echarts), a PNG plot of the 2D path (gonum/plot), and
// scalar summary statistics (gonum/stat). Nothing here feeds back into the
// engine; report consumes read-only snapshots.
package report

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/kanade-k-1228/traj/internal/trajectory"
)

// RenderCharts writes an HTML page of interactive charts for the given
// state: the 2D path (with the ground truth overlaid when present), the
// velocity and heading tracks, and the derived metrics.
func RenderCharts(w io.Writer, state trajectory.MotionState, groundTruth *trajectory.MotionState, metrics trajectory.Metrics, dt float64) error {
	page := components.NewPage()
	page.PageTitle = "Trajectory Sketch"
	page.AddCharts(
		pathChart(state, groundTruth),
		lineChart("Velocity", "m/s", dt, series{"vx", state.Vx}, series{"vy", state.Vy}),
		lineChart("Heading", "rad, rad/s", dt, series{"oz", state.Oz}, series{"wz", state.Wz}),
		lineChart("Acceleration", "m/s²", dt, series{"ax", metrics.Ax}, series{"ay", metrics.Ay}),
		lineChart("Curvature / Tracking Error", "1/m, m", dt, series{"cz", metrics.Cz}, series{"l1", metrics.L1}),
	)
	return page.Render(w)
}

type series struct {
	name   string
	values trajectory.Signal
}

// pathChart plots the 2D path on symmetric square axes so distances are not
// visually distorted.
func pathChart(state trajectory.MotionState, groundTruth *trajectory.MotionState) *charts.Scatter {
	maxAbs := 0.0
	grow := func(s trajectory.Signal) {
		for _, v := range s {
			if math.Abs(v) > maxAbs {
				maxAbs = math.Abs(v)
			}
		}
	}
	grow(state.Px)
	grow(state.Py)
	if groundTruth != nil {
		grow(groundTruth.Px)
		grow(groundTruth.Py)
	}
	// Small padding so edge points stay visible
	pad := maxAbs * 1.05
	if pad == 0 {
		pad = 1.0
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "700px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{Title: "Path", Subtitle: fmt.Sprintf("samples=%d", state.Len())}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -pad, Max: pad, Name: "X (m)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -pad, Max: pad, Name: "Y (m)", NameLocation: "middle", NameGap: 30}),
	)

	scatter.AddSeries("current", scatterData(state.Px, state.Py),
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))
	if groundTruth != nil {
		scatter.AddSeries("ground truth", scatterData(groundTruth.Px, groundTruth.Py),
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}))
	}
	return scatter
}

func scatterData(xs, ys trajectory.Signal) []opts.ScatterData {
	data := make([]opts.ScatterData, 0, len(xs))
	for i := range xs {
		data = append(data, opts.ScatterData{Value: []interface{}{xs[i], ys[i]}})
	}
	return data
}

func lineChart(title, unit string, dt float64, ss ...series) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: unit}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "t (s)"}),
	)

	var xs []string
	if len(ss) > 0 {
		xs = make([]string, len(ss[0].values))
		for i := range xs {
			xs[i] = fmt.Sprintf("%.2f", float64(i)*dt)
		}
	}
	line.SetXAxis(xs)
	for _, s := range ss {
		data := make([]opts.LineData, len(s.values))
		for i, v := range s.values {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(s.name, data)
	}
	return line
}
