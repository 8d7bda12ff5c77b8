package views

import (
	"math"
	"sort"

	"github.com/KaramelBytes/gdpcov-cli/internal/dataset"
	"gonum.org/v1/gonum/stat"
)

// CurrencyQuery lists the records using a currency, sorted by entity.
func CurrencyQuery(t *dataset.Table, currency string) RecordTable {
	rt := RecordTable{
		Title:   "Countries with primary currency " + currency,
		Columns: t.Columns(),
	}
	var matched []dataset.CountryRecord
	for _, r := range t.Records() {
		if r.Currency == currency {
			matched = append(matched, r)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].Entity < matched[j].Entity })
	for _, r := range matched {
		rt.Rows = append(rt.Rows, r.Raw())
	}
	rt.Empty = len(rt.Rows) == 0
	return rt
}

// CurrencyCompare aggregates two currencies side by side. The currencies may
// be equal. A side with no records reports NoData and NaN means.
func CurrencyCompare(t *dataset.Table, a, b string) CurrencyComparison {
	cc := CurrencyComparison{
		A: currencySide(t, a),
		B: currencySide(t, b),
	}
	sides := []CurrencySide{cc.A, cc.B}
	count := Panel{Title: "Number of Countries", YLabel: "Count"}
	gdp := Panel{Title: "Average GDP", YLabel: "Average GDP"}
	ratio := Panel{Title: "Average Trade Ratio", YLabel: "Average Ratio"}
	for _, s := range sides {
		count.Bars = append(count.Bars, Bar{Label: s.Currency, Value: Number(s.Count), Annotation: dataset.FormatValue(float64(s.Count))})
		gdp.Bars = append(gdp.Bars, Bar{Label: s.Currency, Value: s.MeanGDP, Annotation: dataset.FormatValue(float64(s.MeanGDP))})
		ratio.Bars = append(ratio.Bars, Bar{Label: s.Currency, Value: s.MeanRatio, Annotation: dataset.FormatValue(float64(s.MeanRatio))})
	}
	cc.Panels = []Panel{count, gdp, ratio}
	return cc
}

func currencySide(t *dataset.Table, currency string) CurrencySide {
	s := CurrencySide{Currency: currency}
	var gdps, ratios []float64
	for _, r := range t.Records() {
		if r.Currency != currency {
			continue
		}
		s.Count++
		if !math.IsNaN(r.GDP) {
			gdps = append(gdps, r.GDP)
		}
		if !math.IsNaN(r.Ratio) {
			ratios = append(ratios, r.Ratio)
		}
	}
	s.MeanGDP = meanOrNaN(gdps)
	s.MeanRatio = meanOrNaN(ratios)
	s.NoData = s.Count == 0
	return s
}

func meanOrNaN(vals []float64) Number {
	if len(vals) == 0 {
		return Number(math.NaN())
	}
	return Number(stat.Mean(vals, nil))
}
