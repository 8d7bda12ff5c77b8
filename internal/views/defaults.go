package views

import (
	"github.com/KaramelBytes/gdpcov-cli/internal/dataset"
	"github.com/KaramelBytes/gdpcov-cli/internal/statistic"
)

// Selector defaults. Every run starts from these.
const (
	DefaultCompareStatistic      = statistic.LabelGDP
	DefaultDistributionStatistic = statistic.LabelGDP
	DefaultScatterX              = statistic.LabelRatio
	DefaultScatterY              = statistic.LabelGDP
	DefaultScatterFit            = false
)

// DefaultCompareEntities seeds the comparison multi-select.
var DefaultCompareEntities = []string{"AFGHANISTAN"}

// WorldEntity is the aggregate pseudo-record. It is kept in the GDP per
// capita distribution and dropped from every other distribution.
const WorldEntity = "WORLD"

// DefaultProfileEntity is the first entity in sorted order.
func DefaultProfileEntity(t *dataset.Table) string {
	ents := t.Entities()
	if len(ents) == 0 {
		return ""
	}
	return ents[0]
}

// DefaultCurrencyQuery is the first currency in sorted order.
func DefaultCurrencyQuery(t *dataset.Table) string {
	cs := t.Currencies()
	if len(cs) == 0 {
		return ""
	}
	return cs[0]
}

// DefaultCurrencyPair returns the currencies at sorted index 0 and 1. With a
// single currency both sides get it.
func DefaultCurrencyPair(t *dataset.Table) (string, string) {
	cs := t.Currencies()
	switch len(cs) {
	case 0:
		return "", ""
	case 1:
		return cs[0], cs[0]
	}
	return cs[0], cs[1]
}
