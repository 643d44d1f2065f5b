package exporters

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	// FileName is the download name offered for table exports.
	FileName = "books_export.xlsx"
	// ContentType is the media type of an xlsx workbook.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	// SheetName is the single sheet every export writes to.
	SheetName = "Sheet1"
)

// ToXLSX writes rows into a single-sheet workbook: the column names
// verbatim as the first row, then every row's values in order. The whole
// workbook is held in memory; the returned reader is positioned at its
// start.
func ToXLSX(rows Rows) (*bytes.Reader, ExportResult, error) {
	result := ExportResult{}

	columns, err := rows.Columns()
	if err != nil {
		return nil, result, fmt.Errorf("read columns: %w", err)
	}
	result.Columns = len(columns)

	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return nil, result, fmt.Errorf("open sheet: %w", err)
	}

	header := make([]any, len(columns))
	for i, name := range columns {
		header[i] = name
	}
	if err := setRow(sw, 1, header); err != nil {
		return nil, result, err
	}

	values := make([]any, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	rowNum := 2
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, result, fmt.Errorf("scan row %d: %w", rowNum-1, err)
		}
		cells := make([]any, len(values))
		for i, v := range values {
			cells[i] = cellValue(v)
		}
		if err := setRow(sw, rowNum, cells); err != nil {
			return nil, result, err
		}
		rowNum++
		result.Rows++
	}
	if err := rows.Err(); err != nil {
		return nil, result, fmt.Errorf("iterate rows: %w", err)
	}

	if err := sw.Flush(); err != nil {
		return nil, result, fmt.Errorf("flush sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, result, fmt.Errorf("write workbook: %w", err)
	}
	result.Bytes = int64(buf.Len())

	return bytes.NewReader(buf.Bytes()), result, nil
}

func setRow(sw *excelize.StreamWriter, rowNum int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("cell name for row %d: %w", rowNum, err)
	}
	if err := sw.SetRow(cell, cells); err != nil {
		return fmt.Errorf("write row %d: %w", rowNum, err)
	}
	return nil
}

// cellValue maps a scanned driver value to something excelize writes with
// its native cell type. Drivers may hand text back as []byte.
func cellValue(v any) any {
	switch val := v.(type) {
	case []byte:
		return string(val)
	default:
		return val
	}
}
