// Package database provides the data access layer for the application.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup, driver registration, migrations
//	├── errors.go        # ErrNotFound and StorageError
//	└── books/           # Book record CRUD and raw table scans
//
// # Driver
//
// Connections are opened through a dedicated go-sqlite3 driver whose
// ConnectHook registers the textfold SQL function on every connection.
// Query code can therefore use fold_text(column) in predicates and ORDER BY
// clauses without caring which pooled connection runs the statement.
//
// # Usage
//
//	db, err := database.NewDatabase("./books.db", logger.Warn)
//	repo := books.NewRepository(db.DB)
//	book, err := repo.Get(ctx, 123)
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Wrap failures with database.Wrap so callers can classify them
package database
