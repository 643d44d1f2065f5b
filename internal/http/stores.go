package http

import (
	"context"

	"github.com/mrlokans/bookhub/internal/entities"
	"github.com/mrlokans/bookhub/internal/query"
)

// This file consolidates the store interfaces used by the HTTP controllers.
// books.Repository and query.Engine satisfy them. Exports take an
// exporters.TableScanner.

// BookStore provides the record writes and single-record reads.
type BookStore interface {
	Create(ctx context.Context, title string, author, renter *string) (*entities.Book, error)
	Get(ctx context.Context, id uint) (*entities.Book, error)
	Update(ctx context.Context, id uint, title, author string, renter *string) (*entities.Book, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// BookSearcher provides listings and filtered searches.
type BookSearcher interface {
	ListAll(ctx context.Context) ([]entities.Book, error)
	Search(ctx context.Context, c query.Criteria) ([]entities.Book, error)
}
