package dataset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// DefaultURL is the published covariates dataset.
const DefaultURL = "https://raw.githubusercontent.com/davisdowdle/semesterproject/main/gdp.csv"

// Options controls how the dataset resource is fetched.
type Options struct {
	// HTTPTimeout bounds the single fetch of a remote source. Zero means 20s.
	HTTPTimeout time.Duration
	// Client overrides the HTTP client (tests).
	Client *http.Client
}

// Load fetches source (an http(s) URL or a local path) and parses it into a Table.
// There are no retries: a failed load is fatal for the caller.
func Load(ctx context.Context, source string, opt Options) (*Table, error) {
	if strings.TrimSpace(source) == "" {
		return nil, &LoadError{Source: source, Reason: "no dataset source configured"}
	}
	var (
		data []byte
		name string
		err  error
	)
	if isRemote(source) {
		data, err = fetch(ctx, source, opt)
		if u, perr := url.Parse(source); perr == nil {
			name = path.Base(u.Path)
		}
	} else {
		data, err = os.ReadFile(source)
		name = source
		if err != nil {
			err = &LoadError{Source: source, Reason: "read file", Err: err}
		}
	}
	if err != nil {
		return nil, err
	}
	return parse(bytes.NewReader(data), name, source)
}

// LoadReader parses an already-open dataset stream. name selects the decoder
// by extension (".csv", ".tsv", ".xlsx"); unknown extensions are read as CSV.
func LoadReader(r io.Reader, name string) (*Table, error) {
	return parse(r, name, name)
}

func isRemote(source string) bool {
	s := strings.ToLower(source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func fetch(ctx context.Context, source string, opt Options) ([]byte, error) {
	client := opt.Client
	if client == nil {
		timeout := opt.HTTPTimeout
		if timeout <= 0 {
			timeout = 20 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, &LoadError{Source: source, Reason: "build request", Err: err}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &LoadError{Source: source, Reason: "unreachable", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, &LoadError{Source: source, Reason: fmt.Sprintf("unexpected status %s: %s", resp.Status, strings.TrimSpace(string(b)))}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &LoadError{Source: source, Reason: "read body", Err: err}
	}
	return data, nil
}

func parse(r io.Reader, name, source string) (*Table, error) {
	rows, err := decoderFor(name).Decode(r)
	if err != nil {
		return nil, &LoadError{Source: source, Reason: "malformed", Err: err}
	}
	return buildTable(source, rows)
}

// buildTable validates the header and types the numeric columns through a
// gota dataframe. Text columns are taken verbatim from the source cells.
func buildTable(source string, rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, &LoadError{Source: source, Reason: "empty dataset"}
	}
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		// Blank headers (trailing delimiters) get positional names.
		if header[i] == "" {
			header[i] = fmt.Sprintf("Unnamed: %d", i)
		}
	}
	colIdx := make(map[string]int, len(header))
	for i, h := range header {
		if _, dup := colIdx[h]; dup {
			return nil, &LoadError{Source: source, Reason: fmt.Sprintf("duplicate column %q", h)}
		}
		colIdx[h] = i
	}
	var missing []string
	for _, want := range RequiredColumns {
		if _, ok := colIdx[want]; !ok {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		return nil, &LoadError{Source: source, Reason: "missing required columns: " + strings.Join(missing, ", ")}
	}
	if len(rows) < 2 {
		return nil, &LoadError{Source: source, Reason: "no data rows"}
	}

	// Normalize row length so every column has a cell per row.
	body := make([][]string, 0, len(rows))
	body = append(body, header)
	for _, rec := range rows[1:] {
		if len(rec) < len(header) {
			tmp := make([]string, len(header))
			copy(tmp, rec)
			rec = tmp
		} else if len(rec) > len(header) {
			rec = rec[:len(header)]
		}
		body = append(body, rec)
	}

	types := make(map[string]series.Type, len(NumericColumns))
	for _, c := range NumericColumns {
		types[string(c)] = series.Float
	}
	df := dataframe.LoadRecords(body,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(types),
	)
	if df.Err != nil {
		return nil, &LoadError{Source: source, Reason: "type columns", Err: df.Err}
	}
	nums := make(map[Column][]float64, len(NumericColumns))
	for _, c := range NumericColumns {
		col := df.Col(string(c))
		if col.Err != nil {
			return nil, &LoadError{Source: source, Reason: "type columns", Err: col.Err}
		}
		nums[c] = col.Float()
	}

	records := make([]CountryRecord, 0, len(body)-1)
	seen := make(map[string]int, len(body)-1)
	for i, rec := range body[1:] {
		entity := strings.TrimSpace(rec[colIdx[ColEntity]])
		if entity == "" {
			return nil, &LoadError{Source: source, Reason: fmt.Sprintf("row %d: empty %s", i+1, ColEntity)}
		}
		if prev, dup := seen[entity]; dup {
			return nil, &LoadError{Source: source, Reason: fmt.Sprintf("row %d: duplicate %s %q (first at row %d)", i+1, ColEntity, entity, prev+1)}
		}
		seen[entity] = i
		raw := make([]string, len(rec))
		copy(raw, rec)
		records = append(records, CountryRecord{
			Entity:     entity,
			Parent:     strings.TrimSpace(rec[colIdx[ColParent]]),
			Region:     strings.TrimSpace(rec[colIdx[ColRegion]]),
			Currency:   strings.TrimSpace(rec[colIdx[ColCurrency]]),
			GDP:        nums[ColGDP][i],
			Population: nums[ColPopulation][i],
			Area:       nums[ColArea][i],
			Density:    nums[ColDensity][i],
			Ratio:      nums[ColRatio][i],
			raw:        raw,
		})
	}
	return newTable(source, header, records), nil
}
