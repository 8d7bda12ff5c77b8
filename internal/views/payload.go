package views

import (
	"math"
	"strconv"
)

// Number is a float that encodes NaN and ±Inf as JSON null.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

// IsNaN reports whether the value is missing.
func (n Number) IsNaN() bool { return math.IsNaN(float64(n)) }

// Field is one labeled value of a profile.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CountryProfile is the per-entity attribute card.
type CountryProfile struct {
	Entity string  `json:"entity"`
	Fields []Field `json:"fields"`
}

// Bar is a single annotated bar.
type Bar struct {
	Label      string `json:"label"`
	Value      Number `json:"value"`
	Annotation string `json:"annotation"`
}

// BarChart is the comparison view payload.
type BarChart struct {
	Title     string `json:"title"`
	Statistic string `json:"statistic"`
	XLabel    string `json:"xLabel"`
	YLabel    string `json:"yLabel"`
	Bars      []Bar  `json:"bars"`
	Empty     bool   `json:"empty"`
}

// Bin is one histogram bucket; the last bucket is closed on the right.
type Bin struct {
	Lo    float64 `json:"lo"`
	Hi    float64 `json:"hi"`
	Count int     `json:"count"`
}

// HistogramChart is the distribution view payload.
type HistogramChart struct {
	Title     string    `json:"title"`
	Statistic string    `json:"statistic"`
	XLabel    string    `json:"xLabel"`
	YLabel    string    `json:"yLabel"`
	Bins      []Bin     `json:"bins"`
	Values    []float64 `json:"-"`
	Empty     bool      `json:"empty"`
}

// Box summarizes one region.
type Box struct {
	Region       string    `json:"region"`
	N            int       `json:"n"`
	Min          float64   `json:"min"`
	Q1           float64   `json:"q1"`
	Median       float64   `json:"median"`
	Q3           float64   `json:"q3"`
	Max          float64   `json:"max"`
	LowerWhisker float64   `json:"lowerWhisker"`
	UpperWhisker float64   `json:"upperWhisker"`
	Outliers     []float64 `json:"outliers"`
	Values       []float64 `json:"-"`
}

// BoxplotChart is the per-region spread payload.
type BoxplotChart struct {
	Title     string `json:"title"`
	Statistic string `json:"statistic"`
	XLabel    string `json:"xLabel"`
	YLabel    string `json:"yLabel"`
	Boxes     []Box  `json:"boxes"`
	Empty     bool   `json:"empty"`
}

// Point is one scatter observation.
type Point struct {
	Entity string  `json:"entity"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// Fit is an ordinary least squares line y = Intercept + Slope*x.
type Fit struct {
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
}

// At evaluates the line at x.
func (f Fit) At(x float64) float64 { return f.Intercept + f.Slope*x }

// ScatterPlot is the bivariate view payload.
type ScatterPlot struct {
	Title     string  `json:"title"`
	XLabel    string  `json:"xLabel"`
	YLabel    string  `json:"yLabel"`
	Points    []Point `json:"points"`
	FitLinear bool    `json:"fitLinear"`
	Fit       *Fit    `json:"fit,omitempty"`
	Empty     bool    `json:"empty"`
}

// RecordTable lists records with every source column.
type RecordTable struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Empty   bool       `json:"empty"`
}

// CurrencySide aggregates one selected currency.
type CurrencySide struct {
	Currency  string `json:"currency"`
	Count     int    `json:"count"`
	MeanGDP   Number `json:"meanGDP"`
	MeanRatio Number `json:"meanRatio"`
	NoData    bool   `json:"noData"`
}

// Panel is one small bar chart of the currency comparison.
type Panel struct {
	Title  string `json:"title"`
	YLabel string `json:"yLabel"`
	Bars   []Bar  `json:"bars"`
}

// CurrencyComparison holds both sides and the three render panels.
type CurrencyComparison struct {
	A      CurrencySide `json:"a"`
	B      CurrencySide `json:"b"`
	Panels []Panel      `json:"panels"`
}
