// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Record Store
//
//   - http.BookStore: create, get, update, delete and count (internal/http/stores.go)
//   - query.Lister: unfiltered listing newest first (internal/query/engine.go)
//   - exporters.TableScanner: raw table scans for exports (internal/exporters/table.go)
//
// All three are implemented by books.Repository.
//
// ## Query Engine
//
//   - http.BookSearcher: list and search (internal/http/stores.go), implemented
//     by query.Engine
//
// ## Tabular Export
//
//   - exporters.Rows: any column/row cursor; *sql.Rows satisfies it
//
// # Adding a Searchable Field
//
//  1. Add the column to entities.Book
//  2. Add a query.Field constant and extend Column, Value and String
//  3. Add the term to query.Criteria and its Predicates
//
// The in-memory matcher and the SQL predicate both go through textfold, so
// new fields get the same case and accent folding.
//
// # Adding a New Export Format
//
// Write a function taking exporters.Rows, the way ToXLSX does, so it works
// for any table scan:
//
//	func ToCSV(rows Rows) (*bytes.Reader, ExportResult, error)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go.
package interfaces
