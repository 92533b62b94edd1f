// Package decode turns uploaded spreadsheet bytes into ordered raw rows.
//
// Two table shapes are supported: delimited text (CSV) and simple XLSX grids
// where the first row carries headers. Legacy .xls workbooks are recognized
// but rejected with ErrUnsupportedFormat.
package decode

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dexterix/rosterd/internal/domain/model"
	"github.com/xuri/excelize/v2"
)

// Kind identifies the table format of an upload.
type Kind string

// Supported (and recognized-but-rejected) upload kinds.
const (
	KindCSV  Kind = "csv"
	KindXLSX Kind = "xlsx"
	KindXLS  Kind = "xls"
)

// KindFromFilename maps an upload filename to a Kind. Anything that is not
// a spreadsheet extension is treated as delimited text, matching how admin
// exports arrive in practice.
func KindFromFilename(name string) Kind {
	switch {
	case strings.HasSuffix(strings.ToLower(name), ".xlsx"):
		return KindXLSX
	case strings.HasSuffix(strings.ToLower(name), ".xls"):
		return KindXLS
	default:
		return KindCSV
	}
}

// Rows decodes data into raw rows, one per physical spreadsheet row, with the
// first table row taken as headers. Header-only and fully empty rows are
// dropped.
func Rows(data []byte, kind Kind) ([]model.RawRow, error) {
	switch kind {
	case KindCSV:
		return csvRows(data)
	case KindXLSX:
		return xlsxRows(data)
	case KindXLS:
		return nil, fmt.Errorf("%w: legacy .xls workbooks are not supported, re-export as .xlsx or .csv", ErrUnsupportedFormat)
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrUnsupportedFormat, kind)
	}
}

func csvRows(data []byte) ([]model.RawRow, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // ragged exports are the norm, not the exception
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading header row: %v", ErrDecode, err)
	}

	var rows []model.RawRow
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		row := pairRow(header, record)
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func xlsxRows(data []byte) ([]model.RawRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: opening workbook: %v", ErrDecode, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrDecode)
	}
	// First sheet only, same assumption the admin exports follow.
	grid, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: reading sheet %q: %v", ErrDecode, sheets[0], err)
	}
	if len(grid) == 0 {
		return nil, nil
	}

	header := grid[0]
	var rows []model.RawRow
	for _, record := range grid[1:] {
		row := pairRow(header, record)
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// pairRow zips headers and cell values in column order, dropping cells with
// no header and rows with no non-empty value.
func pairRow(header, record []string) model.RawRow {
	row := make(model.RawRow, 0, len(record))
	nonEmpty := false
	for i, v := range record {
		if i >= len(header) {
			break
		}
		h := strings.TrimSpace(header[i])
		if h == "" {
			continue
		}
		v = strings.TrimSpace(v)
		if v != "" {
			nonEmpty = true
		}
		row = append(row, model.RawCell{Header: h, Value: v})
	}
	if !nonEmpty {
		return nil
	}
	return row
}
