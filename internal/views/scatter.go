package views

import (
	"math"

	"github.com/KaramelBytes/gdpcov-cli/internal/dataset"
	"github.com/KaramelBytes/gdpcov-cli/internal/statistic"
	"gonum.org/v1/gonum/stat"
)

// Scatter pairs two statistics over the full table, WORLD included. With fit
// set it attaches a least squares line; no confidence band is computed.
func Scatter(t *dataset.Table, xLabel, yLabel string, fit bool) (ScatterPlot, error) {
	xc, err := statistic.Resolve(xLabel)
	if err != nil {
		return ScatterPlot{}, err
	}
	yc, err := statistic.Resolve(yLabel)
	if err != nil {
		return ScatterPlot{}, err
	}
	sp := ScatterPlot{
		Title:     xLabel + " vs " + yLabel,
		XLabel:    xLabel,
		YLabel:    yLabel,
		FitLinear: fit,
	}
	var xs, ys []float64
	for _, r := range t.Records() {
		x, _ := r.Value(xc)
		y, _ := r.Value(yc)
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		sp.Points = append(sp.Points, Point{Entity: r.Entity, X: x, Y: y})
		xs = append(xs, x)
		ys = append(ys, y)
	}
	sp.Empty = len(sp.Points) == 0
	if fit && distinct(xs) >= 2 {
		alpha, beta := stat.LinearRegression(xs, ys, nil, false)
		sp.Fit = &Fit{Intercept: alpha, Slope: beta}
	}
	return sp, nil
}

func distinct(xs []float64) int {
	seen := map[float64]struct{}{}
	for _, x := range xs {
		seen[x] = struct{}{}
		if len(seen) >= 2 {
			break
		}
	}
	return len(seen)
}
