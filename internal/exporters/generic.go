package exporters

// Rows is a tabular result: an ordered list of column names followed by a
// lazily read sequence of rows aligned to those columns. *sql.Rows
// satisfies it, so any query result can be exported without knowing the
// entity behind it.
type Rows interface {
	Columns() ([]string, error)
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// ExportResult summarizes a finished export.
type ExportResult struct {
	Columns int   `json:"columns"`
	Rows    int   `json:"rows"`
	Bytes   int64 `json:"bytes"`
}
