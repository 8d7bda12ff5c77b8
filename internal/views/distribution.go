package views

import (
	"math"
	"sort"

	"github.com/KaramelBytes/gdpcov-cli/internal/analysis"
	"github.com/KaramelBytes/gdpcov-cli/internal/dataset"
	"github.com/KaramelBytes/gdpcov-cli/internal/statistic"
)

// DistributionRecords returns the records feeding the histogram and boxplot.
// The WORLD aggregate is kept for GDP per capita only; for every other
// column it would dwarf the countries, so it is dropped.
func DistributionRecords(t *dataset.Table, col dataset.Column) []dataset.CountryRecord {
	recs := t.Records()
	if col == dataset.ColGDP {
		return recs
	}
	out := recs[:0]
	for _, r := range recs {
		if r.Entity == WorldEntity {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Histogram bins the distribution records of a statistic.
func Histogram(t *dataset.Table, label string) (HistogramChart, error) {
	col, err := statistic.Resolve(label)
	if err != nil {
		return HistogramChart{}, err
	}
	h := HistogramChart{
		Title:     "Worldwide " + label + " Spread",
		Statistic: label,
		XLabel:    label,
		YLabel:    "Number of Countries",
	}
	h.Values = presentValues(DistributionRecords(t, col), col)
	h.Bins = binValues(h.Values)
	h.Empty = len(h.Values) == 0
	return h, nil
}

// Boxplot groups the distribution records by region, one box per region in
// order of first appearance.
func Boxplot(t *dataset.Table, label string) (BoxplotChart, error) {
	col, err := statistic.Resolve(label)
	if err != nil {
		return BoxplotChart{}, err
	}
	bp := BoxplotChart{
		Title:     label + " Spread by Region",
		Statistic: label,
		XLabel:    "United Nations Region",
		YLabel:    label,
	}
	var order []string
	byRegion := map[string][]float64{}
	for _, r := range DistributionRecords(t, col) {
		v, _ := r.Value(col)
		if math.IsNaN(v) {
			continue
		}
		if _, ok := byRegion[r.Region]; !ok {
			order = append(order, r.Region)
		}
		byRegion[r.Region] = append(byRegion[r.Region], v)
	}
	for _, region := range order {
		bp.Boxes = append(bp.Boxes, summarizeBox(region, byRegion[region]))
	}
	bp.Empty = len(bp.Boxes) == 0
	return bp, nil
}

func presentValues(recs []dataset.CountryRecord, col dataset.Column) []float64 {
	out := make([]float64, 0, len(recs))
	for _, r := range recs {
		if v, _ := r.Value(col); !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// summarizeBox computes Tukey box statistics with 1.5·IQR whiskers.
func summarizeBox(region string, vals []float64) Box {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	b := Box{
		Region: region,
		N:      len(sorted),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Q1:     analysis.Quantile(sorted, 0.25),
		Median: analysis.Quantile(sorted, 0.5),
		Q3:     analysis.Quantile(sorted, 0.75),
		Values: vals,
	}
	iqr := b.Q3 - b.Q1
	loFence, hiFence := b.Q1-1.5*iqr, b.Q3+1.5*iqr
	b.LowerWhisker, b.UpperWhisker = b.Max, b.Min
	for _, v := range sorted {
		if v < loFence || v > hiFence {
			b.Outliers = append(b.Outliers, v)
			continue
		}
		if v < b.LowerWhisker {
			b.LowerWhisker = v
		}
		if v > b.UpperWhisker {
			b.UpperWhisker = v
		}
	}
	return b
}

// binValues splits values into equal-width bins. The width is the smaller of
// the Sturges and Freedman-Diaconis widths (Sturges alone when the IQR is 0),
// and there are never more bins than values.
func binValues(vals []float64) []Bin {
	if len(vals) == 0 {
		return nil
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		return []Bin{{Lo: lo - 0.5, Hi: hi + 0.5, Count: len(sorted)}}
	}
	n := float64(len(sorted))
	sturges := int(math.Ceil(math.Log2(n))) + 1
	count := sturges
	iqr := analysis.Quantile(sorted, 0.75) - analysis.Quantile(sorted, 0.25)
	if fd := 2 * iqr / math.Cbrt(n); fd > 0 {
		// A near-zero IQR next to a far outlier asks for more bins than
		// there are values; Sturges is used instead.
		if c := math.Ceil((hi - lo) / fd); c > float64(count) && c <= n {
			count = int(c)
		}
	}
	step := (hi - lo) / float64(count)
	bins := make([]Bin, count)
	for i := range bins {
		bins[i].Lo = lo + float64(i)*step
		bins[i].Hi = lo + float64(i+1)*step
	}
	bins[count-1].Hi = hi
	for _, v := range sorted {
		i := int((v - lo) / step)
		if i >= count {
			i = count - 1
		}
		bins[i].Count++
	}
	return bins
}
