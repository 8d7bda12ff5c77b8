package dataset

import "sort"

// Table is the loaded dataset. It is never mutated after Load returns;
// accessors hand out copies so views can share one Table safely.
type Table struct {
	source  string
	columns []string
	records []CountryRecord
	index   map[string]int
}

func newTable(source string, columns []string, records []CountryRecord) *Table {
	t := &Table{
		source:  source,
		columns: columns,
		records: records,
		index:   make(map[string]int, len(records)),
	}
	for i, r := range records {
		t.index[r.Entity] = i
	}
	return t
}

// Source returns the URL or path the table was loaded from.
func (t *Table) Source() string { return t.source }

// Columns returns the source header in source order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.records) }

// Records returns the records in source order.
func (t *Table) Records() []CountryRecord {
	out := make([]CountryRecord, len(t.records))
	copy(out, t.records)
	return out
}

// Lookup finds a record by Entity.
func (t *Table) Lookup(entity string) (CountryRecord, bool) {
	i, ok := t.index[entity]
	if !ok {
		return CountryRecord{}, false
	}
	return t.records[i], true
}

// Entities returns every Entity sorted ascending.
func (t *Table) Entities() []string {
	out := make([]string, 0, len(t.records))
	for _, r := range t.records {
		out = append(out, r.Entity)
	}
	sort.Strings(out)
	return out
}

// Currencies returns the distinct currencies sorted ascending. A blank
// currency, if any row has one, is listed last.
func (t *Table) Currencies() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, r := range t.records {
		if _, ok := seen[r.Currency]; ok {
			continue
		}
		seen[r.Currency] = struct{}{}
		out = append(out, r.Currency)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i] == "" || out[j] == "" {
			return out[j] == "" && out[i] != ""
		}
		return out[i] < out[j]
	})
	return out
}
