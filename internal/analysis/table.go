package analysis

import (
	"fmt"
	"math"
	"path"
	"sort"
	"strings"

	"github.com/KaramelBytes/gdpcov-cli/internal/dataset"
	"github.com/KaramelBytes/gdpcov-cli/internal/statistic"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Options controls the dataset summary.
type Options struct {
	// SampleRows determines how many example rows to include in the report.
	SampleRows int
	// GroupBy computes per-group summaries for the given text columns (e.g. Region).
	GroupBy []string
	// Correlations computes Pearson correlations among the numeric columns.
	Correlations bool
	// Outlier detection via robust Z-score (MAD). If Outliers is true, counts |z|>threshold.
	Outliers         bool
	OutlierThreshold float64
}

// DefaultOptions returns reasonable defaults for the summary.
func DefaultOptions() Options {
	return Options{
		SampleRows:       5,
		Outliers:         true,
		OutlierThreshold: 3.5,
	}
}

// Report is a markdown-friendly summary of the loaded dataset.
type Report struct {
	Name     string
	Rows     int
	Header   []string
	Cols     []ColumnSummary
	Samples  [][]string
	Warnings []string
	Groups   []GroupResult
	Corr     *CorrMatrix
}

// ColumnSummary captures kind and statistics per column.
type ColumnSummary struct {
	Name    string
	Label   string
	Kind    string // numeric|categorical
	NonNull int
	Missing int
	Unique  int
	// Numeric stats
	Min  float64
	Max  float64
	Mean float64
	Std  float64
	// Outliers (robust Z via MAD)
	OutliersCount    int
	OutliersMaxAbsZ  float64
	OutlierThreshold float64
	// Categorical top values
	TopValues []CategoryCount
}

type CategoryCount struct {
	Value string
	Count int
}

// GroupResult captures aggregated metrics per group key.
type GroupResult struct {
	Key     string
	Size    int
	Metrics map[string]NumSummary // by column name
}

type NumSummary struct {
	Count          int
	Min, Max, Mean float64
}

// CorrMatrix holds a symmetric Pearson correlation matrix across numeric columns.
type CorrMatrix struct {
	Columns []string
	Values  [][]float64 // row-major, Values[i][j]
}

type textColumn struct {
	name string
	get  func(dataset.CountryRecord) string
}

var textColumns = []textColumn{
	{dataset.ColEntity, func(r dataset.CountryRecord) string { return r.Entity }},
	{dataset.ColParent, func(r dataset.CountryRecord) string { return r.Parent }},
	{dataset.ColRegion, func(r dataset.CountryRecord) string { return r.Region }},
	{dataset.ColCurrency, func(r dataset.CountryRecord) string { return r.Currency }},
}

// Summarize computes a Report over every record of t.
func Summarize(t *dataset.Table, opt Options) (*Report, error) {
	var groupCols []textColumn
	for _, name := range opt.GroupBy {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		found := false
		for _, tc := range textColumns {
			if strings.EqualFold(tc.name, name) {
				groupCols = append(groupCols, tc)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: cannot group by %q", statistic.ErrInvalidSelection, name)
		}
	}
	sampleRows := opt.SampleRows
	if sampleRows <= 0 {
		sampleRows = 5
	}

	records := t.Records()
	rep := &Report{Name: path.Base(t.Source()), Rows: len(records), Header: t.Columns()}
	for i := 0; i < len(records) && i < sampleRows; i++ {
		rep.Samples = append(rep.Samples, records[i].Raw())
	}

	// Categorical columns
	for _, tc := range textColumns {
		s := ColumnSummary{Name: tc.name, Label: tc.name, Kind: "categorical"}
		cats := map[string]int{}
		for _, r := range records {
			v := tc.get(r)
			if v == "" {
				s.Missing++
				continue
			}
			s.NonNull++
			cats[v]++
		}
		tops := make([]CategoryCount, 0, len(cats))
		for k, v := range cats {
			tops = append(tops, CategoryCount{Value: k, Count: v})
		}
		sort.Slice(tops, func(i, j int) bool {
			if tops[i].Count == tops[j].Count {
				return tops[i].Value < tops[j].Value
			}
			return tops[i].Count > tops[j].Count
		})
		if len(tops) > 8 {
			tops = tops[:8]
		}
		s.TopValues = tops
		s.Unique = len(cats)
		rep.Cols = append(rep.Cols, s)
	}

	// Numeric columns
	for _, c := range dataset.NumericColumns {
		label, _ := statistic.Label(c)
		s := ColumnSummary{Name: string(c), Label: label, Kind: "numeric"}
		vals := make([]float64, 0, len(records))
		for _, r := range records {
			x, _ := r.Value(c)
			if math.IsNaN(x) {
				s.Missing++
				continue
			}
			vals = append(vals, x)
		}
		s.NonNull = len(vals)
		if len(vals) > 0 {
			s.Min, s.Max = floats.Min(vals), floats.Max(vals)
			mean, std := stat.MeanStdDev(vals, nil)
			s.Mean = mean
			if len(vals) > 1 {
				s.Std = std
			}
		}
		if opt.Outliers && len(vals) >= 8 {
			thr := opt.OutlierThreshold
			if thr <= 0 {
				thr = 3.5
			}
			s.OutliersCount, s.OutliersMaxAbsZ = robustOutliers(vals, thr)
			s.OutlierThreshold = thr
		}
		rep.Cols = append(rep.Cols, s)
	}
	for _, c := range rep.Cols {
		if c.Kind == "numeric" && c.Missing > 0 {
			rep.Warnings = append(rep.Warnings, fmt.Sprintf("%s has %d missing value(s); left out of distributions, scatterplots and means", c.Name, c.Missing))
		}
	}

	if len(groupCols) > 0 {
		rep.Groups = summarizeGroups(records, groupCols)
	}
	if opt.Correlations {
		rep.Corr = correlations(records)
	}
	return rep, nil
}

func robustOutliers(vals []float64, thr float64) (count int, maxAbsZ float64) {
	median, mad := MedianMAD(vals)
	if mad <= 0 {
		return 0, 0
	}
	for _, v := range vals {
		az := math.Abs(0.6745 * (v - median) / mad)
		if az > thr {
			count++
		}
		if az > maxAbsZ {
			maxAbsZ = az
		}
	}
	return count, maxAbsZ
}

func summarizeGroups(records []dataset.CountryRecord, groupCols []textColumn) []GroupResult {
	type gAcc struct {
		size int
		vals map[dataset.Column][]float64
	}
	groups := map[string]*gAcc{}
	for _, r := range records {
		parts := make([]string, 0, len(groupCols))
		for _, gc := range groupCols {
			parts = append(parts, fmt.Sprintf("%s=%s", gc.name, safeVal(gc.get(r))))
		}
		key := strings.Join(parts, " | ")
		ga := groups[key]
		if ga == nil {
			ga = &gAcc{vals: map[dataset.Column][]float64{}}
			groups[key] = ga
		}
		ga.size++
		for _, c := range dataset.NumericColumns {
			if x, _ := r.Value(c); !math.IsNaN(x) {
				ga.vals[c] = append(ga.vals[c], x)
			}
		}
	}
	out := make([]GroupResult, 0, len(groups))
	for k, ga := range groups {
		gr := GroupResult{Key: k, Size: ga.size, Metrics: map[string]NumSummary{}}
		for _, c := range dataset.NumericColumns {
			vals := ga.vals[c]
			if len(vals) == 0 {
				continue
			}
			gr.Metrics[string(c)] = NumSummary{Count: len(vals), Min: floats.Min(vals), Max: floats.Max(vals), Mean: stat.Mean(vals, nil)}
		}
		out = append(out, gr)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Size == out[j].Size {
			return out[i].Key < out[j].Key
		}
		return out[i].Size > out[j].Size
	})
	if len(out) > 20 {
		out = out[:20]
	}
	return out
}

// correlations computes pairwise-complete Pearson r across the numeric columns.
func correlations(records []dataset.CountryRecord) *CorrMatrix {
	cols := dataset.NumericColumns
	n := len(cols)
	names := make([]string, n)
	for i, c := range cols {
		names[i] = string(c)
	}
	mat := make([][]float64, n)
	for i := range mat {
		mat[i] = make([]float64, n)
		mat[i][i] = 1
	}
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			// pairwise complete: rows missing either value are skipped
			var xs, ys []float64
			for _, r := range records {
				x, _ := r.Value(cols[a])
				y, _ := r.Value(cols[b])
				if math.IsNaN(x) || math.IsNaN(y) {
					continue
				}
				xs = append(xs, x)
				ys = append(ys, y)
			}
			var r float64
			if len(xs) >= 2 {
				r = stat.Correlation(xs, ys, nil)
			}
			if r > 1 {
				r = 1
			} else if r < -1 {
				r = -1
			}
			if math.IsNaN(r) || math.IsInf(r, 0) {
				r = 0
			}
			mat[a][b], mat[b][a] = r, r
		}
	}
	return &CorrMatrix{Columns: names, Values: mat}
}

// Markdown renders a compact report suitable for standalone docs.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if r.Name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", r.Name))
	}
	b.WriteString(fmt.Sprintf("Rows: %d\n", r.Rows))
	b.WriteString(fmt.Sprintf("Columns: %d\n\n", len(r.Header)))

	b.WriteString("[SCHEMA]\n")
	for _, c := range r.Cols {
		total := c.NonNull + c.Missing
		missPct := 0.0
		if total > 0 {
			missPct = float64(c.Missing) * 100.0 / float64(total)
		}
		name := c.Name
		if c.Label != "" && c.Label != c.Name {
			name = fmt.Sprintf("%s (%s)", c.Name, c.Label)
		}
		b.WriteString(fmt.Sprintf("- %s: %s (non-null %d, missing %.1f%%)", name, c.Kind, c.NonNull, missPct))
		switch c.Kind {
		case "numeric":
			b.WriteString(fmt.Sprintf(" — min %.4g, max %.4g, mean %.4g, std %.4g", c.Min, c.Max, c.Mean, c.Std))
			if c.OutlierThreshold > 0 {
				b.WriteString(fmt.Sprintf("; outliers: %d above |z|>%.1f", c.OutliersCount, c.OutlierThreshold))
				if c.OutliersMaxAbsZ > 0 {
					b.WriteString(fmt.Sprintf(" (max |z|≈%.2f)", c.OutliersMaxAbsZ))
				}
			}
		case "categorical":
			if len(c.TopValues) > 0 {
				b.WriteString(" — top: ")
				for i, kv := range c.TopValues {
					if i > 0 {
						b.WriteString(", ")
					}
					b.WriteString(fmt.Sprintf("%s(%d)", safeVal(kv.Value), kv.Count))
				}
				if c.Unique > len(c.TopValues) {
					b.WriteString(fmt.Sprintf("; unique=%d", c.Unique))
				}
			}
		}
		b.WriteString("\n")
	}
	if len(r.Groups) > 0 {
		b.WriteString("\n[GROUP-BY SUMMARY]\n")
		for _, g := range r.Groups {
			b.WriteString(fmt.Sprintf("- %s (n=%d)\n", g.Key, g.Size))
			for _, c := range dataset.NumericColumns {
				m, ok := g.Metrics[string(c)]
				if !ok {
					continue
				}
				b.WriteString(fmt.Sprintf("  • %s: mean %.4g (min %.4g, max %.4g)\n", c, m.Mean, m.Min, m.Max))
			}
		}
	}
	if r.Corr != nil && len(r.Corr.Columns) >= 2 {
		b.WriteString("\n[CORRELATIONS]\n")
		type pr struct {
			A, B string
			R    float64
		}
		var pairs []pr
		n := len(r.Corr.Columns)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				pairs = append(pairs, pr{A: r.Corr.Columns[i], B: r.Corr.Columns[j], R: r.Corr.Values[i][j]})
			}
		}
		sort.SliceStable(pairs, func(i, j int) bool {
			return math.Abs(pairs[i].R) > math.Abs(pairs[j].R)
		})
		for _, p := range pairs {
			b.WriteString(fmt.Sprintf("- %s ~ %s: r=%.3f\n", p.A, p.B, p.R))
		}
	}
	if len(r.Samples) > 0 {
		b.WriteString("\n[HEAD AND SAMPLE ROWS]\n")
		b.WriteString("| ")
		b.WriteString(strings.Join(r.Header, " | "))
		b.WriteString(" |\n|")
		b.WriteString(strings.Repeat(" --- |", len(r.Header)))
		b.WriteString("\n")
		for _, row := range r.Samples {
			b.WriteString("| ")
			for i := range r.Header {
				if i > 0 {
					b.WriteString(" | ")
				}
				val := ""
				if i < len(row) {
					val = row[i]
				}
				if len(val) > 80 {
					val = val[:77] + "..."
				}
				b.WriteString(safeVal(val))
			}
			b.WriteString(" |\n")
		}
	}
	if len(r.Warnings) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, w := range r.Warnings {
			b.WriteString("- ")
			b.WriteString(w)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }

// MedianMAD computes median and MAD (median absolute deviation) of values.
func MedianMAD(vals []float64) (median, mad float64) {
	if len(vals) == 0 {
		return 0, 0
	}
	cp := make([]float64, len(vals))
	copy(cp, vals)
	sort.Float64s(cp)
	median = Quantile(cp, 0.5)
	dev := make([]float64, len(cp))
	for i, v := range cp {
		dev[i] = math.Abs(v - median)
	}
	sort.Float64s(dev)
	mad = Quantile(dev, 0.5)
	return
}

// Quantile returns the q-th quantile of sorted values using linear
// interpolation between closest ranks.
func Quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
