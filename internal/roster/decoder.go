package roster

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrMalformedWorkbook the raw bytes could not be decoded as a tabular
// spreadsheet. Fatal to the upload; the store is left untouched.
var ErrMalformedWorkbook = errors.New("malformed workbook")

// Row one sheet row as header→cell text. Headers are kept exactly as
// they appear in the sheet; aliasing happens in the resolver, not here.
type Row map[string]string

// Decode parses raw upload bytes into rows, dispatching on the file
// extension. Anything that is not .csv goes through the workbook path.
func Decode(filename string, data []byte) ([]Row, error) {
	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		return DecodeCSV(bytes.NewReader(data))
	}
	return DecodeWorkbook(bytes.NewReader(data))
}

// DecodeWorkbook reads the first sheet of an Excel workbook. The first
// row is the header row; each following row becomes a Row keyed by the
// literal header text. Other sheets are ignored.
func DecodeWorkbook(r io.Reader) ([]Row, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedWorkbook, err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrMalformedWorkbook)
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedWorkbook, err)
	}
	return tableToRows(rows), nil
}

// DecodeCSV reads comma-separated rows with the same header contract as
// DecodeWorkbook.
func DecodeCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedWorkbook, err)
	}
	return tableToRows(records), nil
}

// tableToRows zips the header row with each data row. Blank headers are
// skipped; a short data row simply leaves its trailing keys absent,
// which the resolver treats as "column not present".
func tableToRows(table [][]string) []Row {
	if len(table) < 2 {
		return nil
	}
	headers := table[0]

	out := make([]Row, 0, len(table)-1)
	for _, cells := range table[1:] {
		row := make(Row, len(headers))
		for i, header := range headers {
			if header == "" || i >= len(cells) {
				continue
			}
			row[header] = cells[i]
		}
		out = append(out, row)
	}
	return out
}
