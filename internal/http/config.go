package http

import (
	"github.com/mrlokans/bookhub/internal/database"
	"github.com/mrlokans/bookhub/internal/exporters"
	"github.com/mrlokans/bookhub/internal/ui"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Store    BookStore
	Searcher BookSearcher
	Scanner  exporters.TableScanner
	Database *database.Database

	// Optional; nil when export backups are disabled
	Backups BackupReporter

	// UI labels, e.g. the BOOK label of the record counter
	Labels ui.Labels

	// UI paths; empty means the embedded assets
	TemplatesPath string
	StaticPath    string

	// Origins allowed to call /api; empty disables CORS
	CORSAllowedOrigins []string

	// Application info
	Version string
}
