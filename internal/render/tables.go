package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/KaramelBytes/gdpcov-cli/internal/dataset"
	"github.com/KaramelBytes/gdpcov-cli/internal/views"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	value   = color.New(color.FgRed).SprintFunc()
	muted   = color.New(color.Faint).SprintFunc()
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	return t
}

func title(w io.Writer, s string) {
	heading.Fprintln(w, s)
}

func noDataLine(w io.Writer) {
	fmt.Fprintln(w, muted("(no data)"))
}

// NoData prints why a selection produced nothing, followed by the no-data marker.
func NoData(w io.Writer, reason error) {
	if reason != nil {
		fmt.Fprintln(w, reason.Error())
	}
	noDataLine(w)
}

func num(v float64) string { return dataset.FormatValue(v) }

// ProfileTable prints the field/value table for one country.
func ProfileTable(w io.Writer, p views.CountryProfile) {
	title(w, p.Entity)
	t := newTable(w, "Field", "Value")
	for _, f := range p.Fields {
		t.Append([]string{f.Label, value(f.Value)})
	}
	t.Render()
}

// BarTable prints the bars of a comparison in display order.
func BarTable(w io.Writer, bc views.BarChart) {
	title(w, bc.Title)
	if bc.Empty {
		noDataLine(w)
		return
	}
	t := newTable(w, bc.XLabel, bc.YLabel)
	for _, b := range bc.Bars {
		t.Append([]string{b.Label, b.Annotation})
	}
	t.Render()
}

// HistogramTable prints one row per bin.
func HistogramTable(w io.Writer, h views.HistogramChart) {
	title(w, h.Title)
	if h.Empty {
		noDataLine(w)
		return
	}
	t := newTable(w, "From", "To", h.YLabel)
	for _, b := range h.Bins {
		t.Append([]string{num(b.Lo), num(b.Hi), strconv.Itoa(b.Count)})
	}
	t.Render()
}

// BoxplotTable prints the five-number summary per region.
func BoxplotTable(w io.Writer, bp views.BoxplotChart) {
	title(w, bp.Title)
	if bp.Empty {
		noDataLine(w)
		return
	}
	t := newTable(w, bp.XLabel, "N", "Min", "Q1", "Median", "Q3", "Max", "Outliers")
	for _, b := range bp.Boxes {
		t.Append([]string{
			b.Region, strconv.Itoa(b.N),
			num(b.Min), num(b.Q1), num(b.Median), num(b.Q3), num(b.Max),
			strconv.Itoa(len(b.Outliers)),
		})
	}
	t.Render()
}

// ScatterSummary prints the plotted pairs followed by the fitted line, if any.
func ScatterSummary(w io.Writer, sp views.ScatterPlot) {
	title(w, sp.Title)
	if sp.Empty {
		noDataLine(w)
		return
	}
	t := newTable(w, "Country/Territory", sp.XLabel, sp.YLabel)
	for _, p := range sp.Points {
		t.Append([]string{p.Entity, num(p.X), num(p.Y)})
	}
	t.Render()
	switch {
	case sp.Fit != nil:
		fmt.Fprintf(w, "Linear fit: y = %s + %s·x\n", value(num(sp.Fit.Intercept)), value(num(sp.Fit.Slope)))
	case sp.FitLinear:
		fmt.Fprintln(w, muted("Linear fit: not enough distinct points"))
	}
}

// RecordsTable prints raw dataset rows.
func RecordsTable(w io.Writer, rt views.RecordTable) {
	title(w, rt.Title)
	if rt.Empty {
		noDataLine(w)
		return
	}
	t := newTable(w, rt.Columns...)
	t.AppendBulk(rt.Rows)
	t.Render()
}

// CurrencyTable prints the side-by-side aggregates of two currencies.
func CurrencyTable(w io.Writer, cc views.CurrencyComparison) {
	title(w, fmt.Sprintf("%s vs %s", cc.A.Currency, cc.B.Currency))
	t := newTable(w, "Currency", "Number of Countries", "Average GDP", "Average Trade Ratio")
	for _, s := range []views.CurrencySide{cc.A, cc.B} {
		if s.NoData {
			t.Append([]string{s.Currency, "0", muted("no data"), muted("no data")})
			continue
		}
		t.Append([]string{s.Currency, strconv.Itoa(s.Count), num(float64(s.MeanGDP)), num(float64(s.MeanRatio))})
	}
	t.Render()
}

// ListTable prints a single-column list, such as the available currencies.
func ListTable(w io.Writer, header string, items []string) {
	t := newTable(w, header)
	for _, it := range items {
		t.Append([]string{it})
	}
	t.Render()
}
