package views

import (
	"math"
	"sort"

	"github.com/KaramelBytes/gdpcov-cli/internal/dataset"
	"github.com/KaramelBytes/gdpcov-cli/internal/statistic"
)

// Compare builds the comparison bar chart: the selected entities sorted by
// the statistic, largest first. Ties keep dataset order and missing values
// sort last. Entities absent from the dataset are ignored.
func Compare(t *dataset.Table, label string, entities []string) (BarChart, error) {
	col, err := statistic.Resolve(label)
	if err != nil {
		return BarChart{}, err
	}
	chart := BarChart{
		Title:     label + " for Country Selection",
		Statistic: label,
		XLabel:    "Country/Territory",
		YLabel:    label,
	}
	want := make(map[string]struct{}, len(entities))
	for _, e := range entities {
		want[e] = struct{}{}
	}
	type row struct {
		entity string
		v      float64
	}
	var rows []row
	for _, r := range t.Records() {
		if _, ok := want[r.Entity]; !ok {
			continue
		}
		v, _ := r.Value(col)
		rows = append(rows, row{entity: r.Entity, v: v})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].v, rows[j].v
		if math.IsNaN(a) || math.IsNaN(b) {
			return !math.IsNaN(a) && math.IsNaN(b)
		}
		return a > b
	})
	for _, r := range rows {
		chart.Bars = append(chart.Bars, Bar{Label: r.entity, Value: Number(r.v), Annotation: dataset.FormatValue(r.v)})
	}
	chart.Empty = len(chart.Bars) == 0
	return chart, nil
}
