// Package plots renders the four-panel summary image of a batch.
package plots

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/pthm-cable/obeh/sim"
	"github.com/pthm-cable/obeh/telemetry"
)

// Image layout.
const (
	Bins   = 50
	Width  = 12 * vg.Inch
	Height = 10 * vg.Inch
	DPI    = 150
)

// ErrNoResults is returned when there is nothing to plot.
var ErrNoResults = errors.New("no results to plot")

var (
	colorTicks     = color.NRGBA{R: 31, G: 119, B: 180, A: 179}
	colorKnowledge = color.NRGBA{R: 44, G: 160, B: 44, A: 179}
	colorOBEH      = color.NRGBA{R: 255, G: 127, B: 14, A: 179}
	colorMean      = color.NRGBA{R: 214, G: 39, B: 40, A: 255}
	colorZero      = color.NRGBA{A: 77}
	colorScatter   = color.NRGBA{R: 128, G: 0, B: 128, A: 26}
)

// Render writes a PNG with histograms of ticks, knowledge and OBEH, each
// with its mean marked, and a ticks-vs-knowledge scatter.
func Render(path string, results []sim.Result, stats telemetry.BatchStats) (err error) {
	if len(results) == 0 {
		return ErrNoResults
	}
	// The plotting library panics on some degenerate inputs; report those
	// like any other rendering failure.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rendering plots: %v", r)
		}
	}()

	ticks := make(plotter.Values, len(results))
	knowledge := make(plotter.Values, len(results))
	obeh := make(plotter.Values, len(results))
	scatter := make(plotter.XYs, len(results))
	for i, r := range results {
		ticks[i] = float64(r.Ticks)
		knowledge[i] = r.Knowledge
		obeh[i] = r.OBEH
		scatter[i] = plotter.XY{X: float64(r.Ticks), Y: r.Knowledge}
	}

	ticksPlot, err := histogram(
		fmt.Sprintf("Survival ticks (%d trials)", len(results)), "Ticks",
		ticks, colorTicks, stats.Ticks.Mean, "Mean: %.1f")
	if err != nil {
		return err
	}
	knowledgePlot, err := histogram("Knowledge", "Knowledge",
		knowledge, colorKnowledge, stats.Knowledge.Mean, "Mean: %.1f")
	if err != nil {
		return err
	}
	obehPlot, err := histogram("OBEH score", "OBEH",
		obeh, colorOBEH, stats.OBEH.Mean, "Mean: %.3f")
	if err != nil {
		return err
	}
	if err := addZeroLine(obehPlot, obehPlot.Y.Max); err != nil {
		return err
	}
	scatterPlot, err := correlation(scatter)
	if err != nil {
		return err
	}

	grid := [][]*plot.Plot{
		{ticksPlot, knowledgePlot},
		{obehPlot, scatterPlot},
	}

	img := vgimg.NewWith(vgimg.UseWH(Width, Height), vgimg.UseDPI(DPI))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      2,
		Cols:      2,
		PadX:      vg.Millimeter * 6,
		PadY:      vg.Millimeter * 6,
		PadTop:    vg.Millimeter * 4,
		PadBottom: vg.Millimeter * 4,
		PadLeft:   vg.Millimeter * 4,
		PadRight:  vg.Millimeter * 4,
	}
	canvases := plot.Align(grid, tiles, dc)
	for j := range grid {
		for i := range grid[j] {
			grid[j][i].Draw(canvases[j][i])
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func histogram(title, xLabel string, values plotter.Values, fill color.Color, mean float64, meanFormat string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Frequency"

	h, err := plotter.NewHist(values, Bins)
	if err != nil {
		return nil, fmt.Errorf("histogram %q: %w", title, err)
	}
	h.FillColor = fill
	h.LineStyle.Color = color.Black
	h.LineStyle.Width = vg.Points(0.5)
	p.Add(h)

	var top float64
	for _, b := range h.Bins {
		top = max(top, b.Weight)
	}
	line, err := verticalLine(mean, top)
	if err != nil {
		return nil, fmt.Errorf("histogram %q: %w", title, err)
	}
	line.Color = colorMean
	line.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	line.Width = vg.Points(1.5)
	p.Add(line)

	p.Legend.Add(fmt.Sprintf(meanFormat, mean), line)
	p.Legend.Top = true
	return p, nil
}

func addZeroLine(p *plot.Plot, top float64) error {
	line, err := verticalLine(0, top)
	if err != nil {
		return fmt.Errorf("zero line: %w", err)
	}
	line.Color = colorZero
	line.Width = vg.Points(1)
	p.Add(line)
	return nil
}

func correlation(xys plotter.XYs) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Survival ticks vs knowledge"
	p.X.Label.Text = "Survival ticks"
	p.Y.Label.Text = "Knowledge"

	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("scatter: %w", err)
	}
	s.GlyphStyle.Color = colorScatter
	s.GlyphStyle.Radius = vg.Points(1)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(s)
	return p, nil
}

func verticalLine(x, top float64) (*plotter.Line, error) {
	return plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: top}})
}
