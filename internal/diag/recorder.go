// Package diag records the per-tick pressure total of a run and exports the
// series as CSV or a PNG line chart.
package diag

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
)

// ErrTooFewSamples is returned when a chart is requested for fewer than two samples.
var ErrTooFewSamples = errors.New("chart needs at least two samples")

// Sample is one recorded total.
type Sample struct {
	Tick  int
	Total float64
}

// Recorder accumulates pressure totals.
type Recorder struct {
	samples []Sample
}

// NewRecorder returns an empty recorder with room for n samples.
func NewRecorder(n int) *Recorder {
	return &Recorder{samples: make([]Sample, 0, max(n, 0))}
}

// Record appends a sample.
func (r *Recorder) Record(tick int, total float64) {
	r.samples = append(r.samples, Sample{Tick: tick, Total: total})
}

// Samples returns the recorded samples in order.
func (r *Recorder) Samples() []Sample { return r.samples }

// Len returns the number of samples.
func (r *Recorder) Len() int { return len(r.samples) }

// Drift returns last minus first total, or zero with fewer than two samples.
func (r *Recorder) Drift() float64 {
	if len(r.samples) < 2 {
		return 0
	}
	return r.samples[len(r.samples)-1].Total - r.samples[0].Total
}

// Bounds returns the smallest and largest recorded totals.
func (r *Recorder) Bounds() (lo, hi float64) {
	if len(r.samples) == 0 {
		return 0, 0
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range r.samples {
		lo = math.Min(lo, s.Total)
		hi = math.Max(hi, s.Total)
	}
	return lo, hi
}

// WriteCSV writes a "tick,total" header followed by one row per sample.
func (r *Recorder) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"tick", "total"}); err != nil {
		return err
	}
	for _, s := range r.samples {
		row := []string{strconv.Itoa(s.Tick), strconv.FormatFloat(s.Total, 'g', -1, 64)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// RenderChart draws the total pressure series as a PNG line chart.
func (r *Recorder) RenderChart(w io.Writer, title string) error {
	if len(r.samples) < 2 {
		return ErrTooFewSamples
	}
	xs := make([]float64, len(r.samples))
	ys := make([]float64, len(r.samples))
	for i, s := range r.samples {
		xs[i] = float64(s.Tick)
		ys[i] = s.Total
	}
	lo, hi := r.Bounds()
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = math.Max(math.Abs(hi)*0.01, 1)
	}

	graph := chart.Chart{
		Title:  title,
		Width:  960,
		Height: 480,
		XAxis: chart.XAxis{
			Name:  "tick",
			Style: chart.Style{FontSize: 10.0},
		},
		YAxis: chart.YAxis{
			Name:  "total pressure",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: lo - pad, Max: hi + pad},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "total pressure",
				XValues: xs,
				YValues: ys,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2.0},
			},
		},
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render pressure chart: %w", err)
	}
	return nil
}
