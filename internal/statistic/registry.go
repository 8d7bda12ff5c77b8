// Package statistic maps the human-readable statistic labels offered by every
// selector to the dataset columns they read.
package statistic

import (
	"errors"
	"fmt"

	"github.com/KaramelBytes/gdpcov-cli/internal/dataset"
)

// ErrInvalidSelection marks a selection that names a value absent from the
// registry or the dataset.
var ErrInvalidSelection = errors.New("invalid selection")

// Statistic pairs a display label with its column.
type Statistic struct {
	Label  string         `json:"label"`
	Column dataset.Column `json:"column"`
}

// Statistic labels, in selector order.
const (
	LabelGDP        = "Real GDP per Capita"
	LabelPopulation = "Population"
	LabelArea       = "Geographic Area (sq mi)"
	LabelDensity    = "Population Density"
	LabelRatio      = "Trade Ratio"
)

var statistics = []Statistic{
	{Label: LabelGDP, Column: dataset.ColGDP},
	{Label: LabelPopulation, Column: dataset.ColPopulation},
	{Label: LabelArea, Column: dataset.ColArea},
	{Label: LabelDensity, Column: dataset.ColDensity},
	{Label: LabelRatio, Column: dataset.ColRatio},
}

var (
	byLabel  = map[string]dataset.Column{}
	byColumn = map[dataset.Column]string{}
)

func init() {
	for _, s := range statistics {
		byLabel[s.Label] = s.Column
		byColumn[s.Column] = s.Label
	}
}

// Resolve returns the column behind a statistic label.
func Resolve(label string) (dataset.Column, error) {
	c, ok := byLabel[label]
	if !ok {
		return "", fmt.Errorf("%w: unknown statistic %q", ErrInvalidSelection, label)
	}
	return c, nil
}

// Label returns the display label of a column.
func Label(c dataset.Column) (string, error) {
	l, ok := byColumn[c]
	if !ok {
		return "", fmt.Errorf("%w: unknown column %q", ErrInvalidSelection, c)
	}
	return l, nil
}

// Labels returns the labels in selector order.
func Labels() []string {
	out := make([]string, len(statistics))
	for i, s := range statistics {
		out[i] = s.Label
	}
	return out
}

// All returns every statistic in selector order.
func All() []Statistic {
	out := make([]Statistic, len(statistics))
	copy(out, statistics)
	return out
}
