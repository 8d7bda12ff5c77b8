// Package render draws view payloads as PNG charts and terminal tables.
package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/KaramelBytes/gdpcov-cli/internal/views"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Size is the canvas size of a rendered chart.
type Size struct {
	Width  vg.Length
	Height vg.Length
}

// DefaultSize matches a wide single-row dashboard figure.
func DefaultSize() Size { return Size{Width: 10 * vg.Inch, Height: 4 * vg.Inch} }

// SizeInches builds a Size from inches, falling back to DefaultSize for
// non-positive values.
func SizeInches(w, h float64) Size {
	s := DefaultSize()
	if w > 0 {
		s.Width = vg.Length(w) * vg.Inch
	}
	if h > 0 {
		s.Height = vg.Length(h) * vg.Inch
	}
	return s
}

var fitColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}

// BarChart draws the comparison chart with each bar annotated by its value.
func BarChart(w io.Writer, bc views.BarChart, size Size) error {
	p := newPlot(bc.Title, bc.XLabel, bc.YLabel)
	if bc.Empty {
		noData(p)
		return save(w, p, size)
	}
	if err := addBars(p, bc.Bars); err != nil {
		return err
	}
	return save(w, p, size)
}

// Histogram draws the binned distribution.
func Histogram(w io.Writer, h views.HistogramChart, size Size) error {
	p := newPlot(h.Title, h.XLabel, h.YLabel)
	if h.Empty {
		noData(p)
		return save(w, p, size)
	}
	bins := make([]plotter.HistogramBin, len(h.Bins))
	for i, b := range h.Bins {
		bins[i] = plotter.HistogramBin{Min: b.Lo, Max: b.Hi, Weight: float64(b.Count)}
	}
	hist := &plotter.Histogram{
		Bins:      bins,
		Width:     h.Bins[0].Hi - h.Bins[0].Lo,
		FillColor: plotutil.Color(0),
		LineStyle: plotter.DefaultLineStyle,
	}
	p.Add(hist)
	return save(w, p, size)
}

// Boxplot draws one box per region.
func Boxplot(w io.Writer, bp views.BoxplotChart, size Size) error {
	p := newPlot(bp.Title, bp.XLabel, bp.YLabel)
	if bp.Empty {
		noData(p)
		return save(w, p, size)
	}
	names := make([]string, len(bp.Boxes))
	for i, b := range bp.Boxes {
		box, err := plotter.NewBoxPlot(vg.Points(24), float64(i), plotter.Values(b.Values))
		if err != nil {
			return fmt.Errorf("boxplot %s: %w", b.Region, err)
		}
		box.FillColor = plotutil.Color(i)
		p.Add(box)
		names[i] = b.Region
	}
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 6
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	return save(w, p, size)
}

// Scatter draws the point cloud and, when present, the fitted line.
func Scatter(w io.Writer, sp views.ScatterPlot, size Size) error {
	p := newPlot(sp.Title, sp.XLabel, sp.YLabel)
	if sp.Empty {
		noData(p)
		return save(w, p, size)
	}
	xys := make(plotter.XYs, len(sp.Points))
	minX, maxX := math.Inf(1), math.Inf(-1)
	for i, pt := range sp.Points {
		xys[i].X, xys[i].Y = pt.X, pt.Y
		minX = math.Min(minX, pt.X)
		maxX = math.Max(maxX, pt.X)
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("scatter: %w", err)
	}
	s.GlyphStyle.Radius = vg.Points(2.5)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Color = plotutil.Color(0)
	p.Add(s)
	if sp.Fit != nil {
		line := plotter.NewFunction(sp.Fit.At)
		line.XMin, line.XMax = minX, maxX
		line.Color = fitColor
		line.Width = vg.Points(1.5)
		p.Add(line)
	}
	p.Add(plotter.NewGrid())
	return save(w, p, size)
}

// CurrencyPanels draws the three comparison panels side by side.
func CurrencyPanels(w io.Writer, cc views.CurrencyComparison, size Size) error {
	plots := make([]*plot.Plot, 0, len(cc.Panels))
	for _, panel := range cc.Panels {
		p := newPlot(panel.Title, "Currency", panel.YLabel)
		if err := addBars(p, panel.Bars); err != nil {
			return err
		}
		plots = append(plots, p)
	}
	if len(plots) == 0 {
		return fmt.Errorf("currency comparison has no panels")
	}
	img := vgimg.New(size.Width, size.Height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(plots),
		PadX:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align([][]*plot.Plot{plots}, tiles, dc)
	for j, p := range plots {
		p.Draw(canvases[0][j])
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	return p
}

// addBars adds one coloured bar per entry and annotates it with its value.
// Missing values draw as zero-height bars labelled "nan".
func addBars(p *plot.Plot, bars []views.Bar) error {
	names := make([]string, len(bars))
	xys := make(plotter.XYs, len(bars))
	labels := make([]string, len(bars))
	for i, b := range bars {
		v := float64(b.Value)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
		}
		bc, err := plotter.NewBarChart(plotter.Values{v}, vg.Points(28))
		if err != nil {
			return fmt.Errorf("bar %s: %w", b.Label, err)
		}
		bc.XMin = float64(i)
		bc.Color = plotutil.Color(i)
		bc.LineStyle.Width = vg.Length(0)
		p.Add(bc)
		names[i] = b.Label
		xys[i] = plotter.XY{X: float64(i), Y: v}
		labels[i] = b.Annotation
	}
	p.NominalX(names...)
	if len(bars) == 0 {
		return nil
	}
	lbl, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return fmt.Errorf("bar labels: %w", err)
	}
	for i := range lbl.TextStyle {
		lbl.TextStyle[i].XAlign = draw.XCenter
		lbl.TextStyle[i].YAlign = draw.YBottom
	}
	p.Add(lbl)
	return nil
}

func noData(p *plot.Plot) {
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: 0.5, Y: 0.5}},
		Labels: []string{"no data"},
	})
	if err == nil {
		lbl.TextStyle[0].XAlign = draw.XCenter
		lbl.TextStyle[0].YAlign = draw.YCenter
		lbl.TextStyle[0].Font.Size = vg.Points(16)
		p.Add(lbl)
	}
	p.HideAxes()
}

func save(w io.Writer, p *plot.Plot, size Size) error {
	wt, err := p.WriterTo(size.Width, size.Height, "png")
	if err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}
