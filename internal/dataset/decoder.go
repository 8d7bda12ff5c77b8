package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Decoder turns a dataset resource into header + rows of raw cells.
type Decoder interface {
	CanDecode(name string) bool
	Decode(r io.Reader) ([][]string, error)
}

var registry []Decoder

// Register adds a decoder implementation to the registry.
func Register(d Decoder) {
	registry = append(registry, d)
}

// decoderFor selects a decoder by file name; CSV is the fallback.
func decoderFor(name string) Decoder {
	for _, d := range registry {
		if d.CanDecode(name) {
			return d
		}
	}
	return csvDecoder{comma: ','}
}

type csvDecoder struct {
	comma rune
}

func (d csvDecoder) CanDecode(name string) bool {
	name = strings.ToLower(name)
	if d.comma == '\t' {
		return strings.HasSuffix(name, ".tsv")
	}
	return strings.HasSuffix(name, ".csv")
}

func (d csvDecoder) Decode(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comma = d.comma
	var rows [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

// xlsxDecoder reads the first sheet of a workbook.
type xlsxDecoder struct{}

func (xlsxDecoder) CanDecode(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".xlsx")
}

func (xlsxDecoder) Decode(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func init() {
	Register(csvDecoder{comma: ','})
	Register(csvDecoder{comma: '\t'})
	Register(xlsxDecoder{})
}
