package dataset_test

import (
	"bytes"
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/KaramelBytes/gdpcov-cli/internal/dataset"
	"github.com/xuri/excelize/v2"
)

const fixtureCSV = `Entity,Parent,Region,Currency,GDP,Population,Area,Density,Ratio
FRANCE,FRANCE,Europe,Euro,44000,68000000,213000,319,0.6
ARUBA,NETHERLANDS,Americas,Aruban Florin,30000,106000,69,1536,1.4
NETHERLANDS,NETHERLANDS,Europe,Euro,57000,17800000,16000,1112,1.5
WORLD,WORLD,World,Dollar,12000,8000000000,57000000,140,
`

func loadFixture(t *testing.T) *dataset.Table {
	t.Helper()
	tbl, err := dataset.LoadReader(strings.NewReader(fixtureCSV), "gdp.csv")
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	return tbl
}

func TestLoadReaderCSV(t *testing.T) {
	tbl := loadFixture(t)
	if tbl.Len() != 4 {
		t.Fatalf("len = %d, want 4", tbl.Len())
	}
	wantCols := []string{"Entity", "Parent", "Region", "Currency", "GDP", "Population", "Area", "Density", "Ratio"}
	if !reflect.DeepEqual(tbl.Columns(), wantCols) {
		t.Fatalf("columns = %#v", tbl.Columns())
	}
	aruba, ok := tbl.Lookup("ARUBA")
	if !ok {
		t.Fatalf("ARUBA not found")
	}
	if aruba.IsSovereign() || aruba.Status() != "Territory - NETHERLANDS" {
		t.Fatalf("aruba status = %q", aruba.Status())
	}
	if aruba.GDP != 30000 || aruba.Area != 69 || aruba.Ratio != 1.4 {
		t.Fatalf("aruba numbers = %+v", aruba)
	}
	if raw := aruba.Raw(); raw[0] != "ARUBA" || raw[3] != "Aruban Florin" {
		t.Fatalf("aruba raw = %#v", raw)
	}
	fr, _ := tbl.Lookup("FRANCE")
	if fr.Status() != "Country" {
		t.Fatalf("france status = %q", fr.Status())
	}
	world, _ := tbl.Lookup("WORLD")
	if !math.IsNaN(world.Ratio) {
		t.Fatalf("missing ratio should be NaN, got %v", world.Ratio)
	}
	if got := tbl.Entities(); !reflect.DeepEqual(got, []string{"ARUBA", "FRANCE", "NETHERLANDS", "WORLD"}) {
		t.Fatalf("entities = %#v", got)
	}
	if got := tbl.Currencies(); !reflect.DeepEqual(got, []string{"Aruban Florin", "Dollar", "Euro"}) {
		t.Fatalf("currencies = %#v", got)
	}
}

func TestEntitiesAreUnique(t *testing.T) {
	tbl := loadFixture(t)
	seen := map[string]bool{}
	for _, r := range tbl.Records() {
		if seen[r.Entity] {
			t.Fatalf("duplicate entity %q", r.Entity)
		}
		seen[r.Entity] = true
	}
}

func TestRecordsAreCopies(t *testing.T) {
	tbl := loadFixture(t)
	recs := tbl.Records()
	recs[0].GDP = -1
	recs[0].Entity = "CHANGED"
	again := tbl.Records()
	if again[0].GDP == -1 || again[0].Entity == "CHANGED" {
		t.Fatalf("table mutated through Records()")
	}
}

func TestLoadRejectsSchemaMismatch(t *testing.T) {
	cases := map[string]string{
		"missing column": "Entity,Parent,Region,Currency,GDP,Population,Area,Density\nA,A,R,C,1,2,3,4\n",
		"wrong casing":   "Entity,Parent,Region,Currency,gdp,Population,Area,Density,Ratio\nA,A,R,C,1,2,3,4,5\n",
		"duplicate":      "Entity,Parent,Region,Currency,GDP,Population,Area,Density,Ratio\nA,A,R,C,1,2,3,4,5\nA,A,R,C,1,2,3,4,5\n",
		"header only":    "Entity,Parent,Region,Currency,GDP,Population,Area,Density,Ratio\n",
		"empty":          "",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := dataset.LoadReader(strings.NewReader(body), "gdp.csv")
			var le *dataset.LoadError
			if !errors.As(err, &le) {
				t.Fatalf("expected LoadError, got %v", err)
			}
		})
	}
}

// sameRecord compares records treating two missing values as equal.
func sameRecord(a, b dataset.CountryRecord) bool {
	if a.Entity != b.Entity || a.Parent != b.Parent || a.Region != b.Region || a.Currency != b.Currency {
		return false
	}
	for _, c := range dataset.NumericColumns {
		x, _ := a.Value(c)
		y, _ := b.Value(c)
		if x != y && !(math.IsNaN(x) && math.IsNaN(y)) {
			return false
		}
	}
	return reflect.DeepEqual(a.Raw(), b.Raw())
}

func TestLoadHTTPIsIdempotent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(fixtureCSV))
	}))
	defer srv.Close()

	ctx := context.Background()
	first, err := dataset.Load(ctx, srv.URL+"/gdp.csv", dataset.Options{Client: srv.Client()})
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	second, err := dataset.Load(ctx, srv.URL+"/gdp.csv", dataset.Options{Client: srv.Client()})
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	a, b := first.Records(), second.Records()
	if len(a) != len(b) {
		t.Fatalf("record counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !sameRecord(a[i], b[i]) {
			t.Fatalf("record %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
	if w, _ := first.Lookup("WORLD"); !math.IsNaN(w.Ratio) {
		t.Fatalf("WORLD ratio should be missing, got %v", w.Ratio)
	}
	if first.Source() != srv.URL+"/gdp.csv" {
		t.Fatalf("source = %q", first.Source())
	}
}

func TestLoadHTTPFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	_, err := dataset.Load(context.Background(), srv.URL+"/gdp.csv", dataset.Options{Client: srv.Client()})
	var le *dataset.LoadError
	if !errors.As(err, &le) || !strings.Contains(le.Reason, "404") {
		t.Fatalf("expected 404 LoadError, got %v", err)
	}
	url := srv.URL
	srv.Close()
	_, err = dataset.Load(context.Background(), url+"/gdp.csv", dataset.Options{})
	if !errors.As(err, &le) || le.Reason != "unreachable" {
		t.Fatalf("expected unreachable LoadError, got %v", err)
	}
}

func TestLoadLocalFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "gdp.csv")
	if err := os.WriteFile(p, []byte(fixtureCSV), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	tbl, err := dataset.Load(context.Background(), p, dataset.Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tbl.Len() != 4 {
		t.Fatalf("len = %d", tbl.Len())
	}
	if _, err := dataset.Load(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), dataset.Options{}); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadXLSX(t *testing.T) {
	f := excelize.NewFile()
	lines := strings.Split(strings.TrimSpace(fixtureCSV), "\n")
	for i, line := range lines {
		cells := strings.Split(line, ",")
		row := make([]interface{}, len(cells))
		for j, c := range cells {
			row[j] = c
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write xlsx: %v", err)
	}
	tbl, err := dataset.LoadReader(bytes.NewReader(buf.Bytes()), "gdp.xlsx")
	if err != nil {
		t.Fatalf("LoadReader xlsx: %v", err)
	}
	nl, ok := tbl.Lookup("NETHERLANDS")
	if !ok || nl.GDP != 57000 || nl.Currency != "Euro" {
		t.Fatalf("netherlands = %+v", nl)
	}
}

func TestBlankCurrencySortsLast(t *testing.T) {
	csv := "Entity,Parent,Region,Currency,GDP,Population,Area,Density,Ratio\n" +
		"A,A,Europe,,1,1,1,1,1\n" +
		"B,B,Europe,Euro,1,1,1,1,1\n" +
		"C,C,Asia,Baht,1,1,1,1,1\n"
	tbl, err := dataset.LoadReader(strings.NewReader(csv), "gdp.csv")
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if got := tbl.Currencies(); !reflect.DeepEqual(got, []string{"Baht", "Euro", ""}) {
		t.Fatalf("currencies = %q", got)
	}
}

func TestBlankHeaderCellsAreAccepted(t *testing.T) {
	csv := "Entity,Parent,Region,Currency,GDP,Population,Area,Density,Ratio,,\n" +
		"A,A,Europe,Euro,1,2,3,4,5,,\n"
	tbl, err := dataset.LoadReader(strings.NewReader(csv), "gdp.csv")
	if err != nil {
		t.Fatalf("trailing blank headers should load: %v", err)
	}
	cols := tbl.Columns()
	if len(cols) != 11 || cols[9] != "Unnamed: 9" || cols[10] != "Unnamed: 10" {
		t.Fatalf("columns = %q", cols)
	}
	if r, ok := tbl.Lookup("A"); !ok || r.Ratio != 5 {
		t.Fatalf("record = %+v", r)
	}
}
