package dataset

import (
	"math"
	"strconv"
)

// Column identifies a numeric column by its source header.
type Column string

// Numeric columns of the covariates dataset.
const (
	ColGDP        Column = "GDP"
	ColPopulation Column = "Population"
	ColArea       Column = "Area"
	ColDensity    Column = "Density"
	ColRatio      Column = "Ratio"
)

// Text column headers.
const (
	ColEntity   = "Entity"
	ColParent   = "Parent"
	ColRegion   = "Region"
	ColCurrency = "Currency"
)

// NumericColumns lists the numeric columns in source order.
var NumericColumns = []Column{ColGDP, ColPopulation, ColArea, ColDensity, ColRatio}

// RequiredColumns must be present in the source header with this exact casing.
var RequiredColumns = []string{
	ColEntity, ColParent, ColRegion, ColCurrency,
	string(ColGDP), string(ColPopulation), string(ColArea), string(ColDensity), string(ColRatio),
}

// CountryRecord is one row of the dataset. Missing numeric cells are NaN.
type CountryRecord struct {
	Entity     string  `json:"entity"`
	Parent     string  `json:"parent"`
	Region     string  `json:"region"`
	Currency   string  `json:"currency"`
	GDP        float64 `json:"gdp"`
	Population float64 `json:"population"`
	Area       float64 `json:"area"`
	Density    float64 `json:"density"`
	Ratio      float64 `json:"ratio"`

	// raw source cells in source column order
	raw []string
}

// IsSovereign reports whether the record is its own parent.
func (r CountryRecord) IsSovereign() bool { return r.Entity == r.Parent }

// Status is "Country" for sovereign records and "Territory - {Parent}" otherwise.
func (r CountryRecord) Status() string {
	if r.IsSovereign() {
		return "Country"
	}
	return "Territory - " + r.Parent
}

// Value returns the numeric cell for c. ok is false for an unknown column.
func (r CountryRecord) Value(c Column) (v float64, ok bool) {
	switch c {
	case ColGDP:
		return r.GDP, true
	case ColPopulation:
		return r.Population, true
	case ColArea:
		return r.Area, true
	case ColDensity:
		return r.Density, true
	case ColRatio:
		return r.Ratio, true
	}
	return math.NaN(), false
}

// Raw returns a copy of the source cells in source column order.
func (r CountryRecord) Raw() []string {
	out := make([]string, len(r.raw))
	copy(out, r.raw)
	return out
}

// FormatValue renders a numeric cell for display; NaN renders as "nan".
func FormatValue(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
