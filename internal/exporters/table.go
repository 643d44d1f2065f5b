package exporters

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// TableScanner hands a raw table scan to fn. books.Repository implements it.
type TableScanner interface {
	ScanTable(ctx context.Context, fn func(rows *sql.Rows) error) error
}

// ExportTable converts a full table scan into an xlsx workbook.
func ExportTable(ctx context.Context, scanner TableScanner) (*bytes.Reader, ExportResult, error) {
	var (
		reader *bytes.Reader
		result ExportResult
	)
	err := scanner.ScanTable(ctx, func(rows *sql.Rows) error {
		var err error
		reader, result, err = ToXLSX(rows)
		return err
	})
	if err != nil {
		return nil, result, err
	}
	return reader, result, nil
}

// WriteFile exports the table to path, creating missing parent directories.
func WriteFile(ctx context.Context, scanner TableScanner, path string) (ExportResult, error) {
	reader, result, err := ExportTable(ctx, scanner)
	if err != nil {
		return result, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return result, fmt.Errorf("create export directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return result, fmt.Errorf("create export file: %w", err)
	}
	if _, err := io.Copy(f, reader); err != nil {
		f.Close()
		return result, fmt.Errorf("write export file: %w", err)
	}
	return result, f.Close()
}
