package views

import (
	"fmt"

	"github.com/KaramelBytes/gdpcov-cli/internal/dataset"
	"github.com/KaramelBytes/gdpcov-cli/internal/statistic"
)

// Profile reads the attribute card of one entity.
func Profile(t *dataset.Table, entity string) (CountryProfile, error) {
	r, ok := t.Lookup(entity)
	if !ok {
		return CountryProfile{}, fmt.Errorf("%w: entity %q not in dataset", statistic.ErrInvalidSelection, entity)
	}
	return CountryProfile{
		Entity: r.Entity,
		Fields: []Field{
			{Label: "Status", Value: r.Status()},
			{Label: "UN Region", Value: r.Region},
			{Label: "Primary Currency", Value: r.Currency},
			{Label: statistic.LabelGDP, Value: dataset.FormatValue(r.GDP)},
			{Label: statistic.LabelPopulation, Value: dataset.FormatValue(r.Population)},
			{Label: statistic.LabelArea, Value: dataset.FormatValue(r.Area)},
			{Label: statistic.LabelDensity, Value: dataset.FormatValue(r.Density)},
			{Label: statistic.LabelRatio, Value: dataset.FormatValue(r.Ratio)},
		},
	}, nil
}
