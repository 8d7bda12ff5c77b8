package analysis

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/KaramelBytes/gdpcov-cli/internal/dataset"
	"github.com/KaramelBytes/gdpcov-cli/internal/statistic"
)

const summaryCSV = `Entity,Parent,Region,Currency,GDP,Population,Area,Density,Ratio
A,A,Europe,Euro,10,100,10,10,0.5
B,B,Europe,Euro,20,200,20,10,1.0
C,C,Asia,Yen,30,300,30,10,1.5
D,A,Asia,Euro,40,400,40,10,2.0
E,E,Asia,Yen,,500,50,10,2.5
`

func loadSummaryTable(t *testing.T) *dataset.Table {
	t.Helper()
	tbl, err := dataset.LoadReader(strings.NewReader(summaryCSV), "summary.csv")
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	return tbl
}

func TestSummarizeAndMarkdown(t *testing.T) {
	tbl := loadSummaryTable(t)
	opt := DefaultOptions()
	opt.SampleRows = 2
	opt.GroupBy = []string{"region"}
	opt.Correlations = true

	rep, err := Summarize(tbl, opt)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if rep.Name != "summary.csv" || rep.Rows != 5 || len(rep.Samples) != 2 {
		t.Fatalf("report header = %+v", rep)
	}

	gdp := columnByName(t, rep, "GDP")
	if gdp.Kind != "numeric" || gdp.NonNull != 4 || gdp.Missing != 1 {
		t.Fatalf("gdp = %+v", gdp)
	}
	if gdp.Min != 10 || gdp.Max != 40 || !almostEqual(gdp.Mean, 25, 1e-9) {
		t.Fatalf("gdp stats = %+v", gdp)
	}
	if !almostEqual(gdp.Std, math.Sqrt(500.0/3.0), 1e-9) {
		t.Fatalf("gdp std = %v", gdp.Std)
	}
	if gdp.Label != statistic.LabelGDP {
		t.Fatalf("gdp label = %q", gdp.Label)
	}

	cur := columnByName(t, rep, "Currency")
	if cur.Kind != "categorical" || cur.Unique != 2 || cur.TopValues[0].Value != "Euro" || cur.TopValues[0].Count != 3 {
		t.Fatalf("currency = %+v", cur)
	}

	if len(rep.Groups) != 2 || rep.Groups[0].Key != "Region=Asia" || rep.Groups[0].Size != 3 {
		t.Fatalf("groups = %+v", rep.Groups)
	}
	if m := rep.Groups[0].Metrics["GDP"]; m.Count != 2 || m.Mean != 35 {
		t.Fatalf("asia gdp = %+v", m)
	}

	if rep.Corr == nil || !almostEqual(rep.Corr.Values[0][1], 1, 1e-9) {
		t.Fatalf("gdp~population correlation = %+v", rep.Corr)
	}

	md := rep.Markdown()
	for _, want := range []string{
		"[DATASET SUMMARY]",
		"File: summary.csv",
		"GDP (Real GDP per Capita): numeric (non-null 4, missing 20.0%)",
		"[GROUP-BY SUMMARY]",
		"Region=Asia (n=3)",
		"[CORRELATIONS]",
		"[HEAD AND SAMPLE ROWS]",
		"GDP has 1 missing value(s)",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestCorrelationsSkipMissingAndConstantColumns(t *testing.T) {
	rep, err := Summarize(loadSummaryTable(t), Options{Correlations: true})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	idx := map[string]int{}
	for i, c := range rep.Corr.Columns {
		idx[c] = i
	}
	// E has no GDP, so GDP~Ratio is computed over A..D only.
	if r := rep.Corr.Values[idx["GDP"]][idx["Ratio"]]; !almostEqual(r, 1, 1e-9) {
		t.Fatalf("gdp~ratio = %v", r)
	}
	// Density is constant; its undefined correlation is reported as 0.
	if r := rep.Corr.Values[idx["GDP"]][idx["Density"]]; r != 0 {
		t.Fatalf("gdp~density = %v", r)
	}
}

func TestSummarizeRejectsUnknownGroup(t *testing.T) {
	tbl := loadSummaryTable(t)
	opt := DefaultOptions()
	opt.GroupBy = []string{"GDP"}
	if _, err := Summarize(tbl, opt); !errors.Is(err, statistic.ErrInvalidSelection) {
		t.Fatalf("err = %v, want ErrInvalidSelection", err)
	}
}

func TestQuantileLinear(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	cases := map[float64]float64{0: 1, 0.25: 1.75, 0.5: 2.5, 0.75: 3.25, 1: 4}
	for q, want := range cases {
		if got := Quantile(sorted, q); !almostEqual(got, want, 1e-12) {
			t.Fatalf("Quantile(%v) = %v, want %v", q, got, want)
		}
	}
	if !math.IsNaN(Quantile(nil, 0.5)) {
		t.Fatalf("empty quantile should be NaN")
	}
}

func TestMedianMAD(t *testing.T) {
	median, mad := MedianMAD([]float64{1, 1, 2, 2, 4, 6, 9})
	if median != 2 || mad != 1 {
		t.Fatalf("median=%v mad=%v", median, mad)
	}
}

func columnByName(t *testing.T, rep *Report, name string) ColumnSummary {
	t.Helper()
	for _, c := range rep.Cols {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("column %q not found", name)
	return ColumnSummary{}
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
