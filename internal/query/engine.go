package query

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/bookhub/internal/database"
	"github.com/mrlokans/bookhub/internal/entities"
	"github.com/mrlokans/bookhub/internal/textfold"
)

// Lister is the part of the record store the engine reads unfiltered
// listings from.
type Lister interface {
	ListOrderedByIDDesc(ctx context.Context) ([]entities.Book, error)
}

// Engine runs listings and searches against the books table.
type Engine struct {
	db    *gorm.DB
	store Lister
}

// NewEngine creates a query engine. db must come from database.NewDatabase
// so that the fold function is available on its connections.
func NewEngine(db *gorm.DB, store Lister) *Engine {
	return &Engine{db: db, store: store}
}

// ListAll returns every book ordered by id, newest first.
func (e *Engine) ListAll(ctx context.Context) ([]entities.Book, error) {
	return e.store.ListOrderedByIDDesc(ctx)
}

// Search returns the books matching c ordered by folded author name. No match
// is an empty slice, not an error.
func (e *Engine) Search(ctx context.Context, c Criteria) ([]entities.Book, error) {
	books := []entities.Book{}
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&entities.Book{})
		for _, p := range c.Predicates() {
			q = q.Where(p.Expression())
		}
		return q.Order(fmt.Sprintf("%s(author) ASC, id ASC", textfold.SQLFunction)).Find(&books).Error
	})
	if err != nil {
		return nil, database.Wrap("search books", err)
	}
	return books, nil
}
