package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"database/sql"

	"github.com/mrlokans/bookhub/internal/database/books"
	"github.com/mrlokans/bookhub/internal/exporters"
	"github.com/mrlokans/bookhub/internal/http"
	"github.com/mrlokans/bookhub/internal/query"
)

// =============================================================================
// Record Store
// =============================================================================

var _ http.BookStore = (*books.Repository)(nil)
var _ query.Lister = (*books.Repository)(nil)
var _ exporters.TableScanner = (*books.Repository)(nil)

// =============================================================================
// Query Engine
// =============================================================================

var _ http.BookSearcher = (*query.Engine)(nil)

// =============================================================================
// Tabular Export
// =============================================================================

var _ exporters.Rows = (*sql.Rows)(nil)
