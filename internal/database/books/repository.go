// Package books provides the record store for book entries.
//
// Every method runs in its own transaction and reports failures as
// database.ErrNotFound or *database.StorageError.
//
// # Usage
//
//	repo := books.NewRepository(db.DB)
//	book, err := repo.Create(ctx, "Egri csillagok", nil, nil)
package books

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"github.com/mrlokans/bookhub/internal/database"
	"github.com/mrlokans/bookhub/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create stores a new book and returns it with its assigned ID. A nil author
// is replaced with entities.UnknownAuthor; a nil renter means not lent out.
func (r *Repository) Create(ctx context.Context, title string, author *string, renter *string) (*entities.Book, error) {
	book := &entities.Book{
		Title:  title,
		Author: entities.UnknownAuthor,
		Renter: renter,
	}
	if author != nil {
		book.Author = *author
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(book).Error
	})
	if err != nil {
		return nil, database.Wrap("create book", err)
	}
	return book, nil
}

// Get retrieves a book by its ID.
func (r *Repository) Get(ctx context.Context, id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.First(&book, id).Error
	})
	if err != nil {
		return nil, database.Wrap("get book", err)
	}
	return &book, nil
}

// Update replaces title, author and renter of an existing book. The ID never
// changes.
func (r *Repository) Update(ctx context.Context, id uint, title, author string, renter *string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&book, id).Error; err != nil {
			return err
		}
		book.Title = title
		book.Author = author
		book.Renter = renter
		return tx.Save(&book).Error
	})
	if err != nil {
		return nil, database.Wrap("update book", err)
	}
	return &book, nil
}

// Delete removes a book permanently.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&entities.Book{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return database.ErrNotFound
		}
		return nil
	})
	return database.Wrap("delete book", err)
}

// ListOrderedByIDDesc returns every book, newest first.
func (r *Repository) ListOrderedByIDDesc(ctx context.Context) ([]entities.Book, error) {
	books := []entities.Book{}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Order("id DESC").Find(&books).Error
	})
	if err != nil {
		return nil, database.Wrap("list books", err)
	}
	return books, nil
}

// Count returns the number of stored books.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&entities.Book{}).Count(&count).Error
	})
	if err != nil {
		return 0, database.Wrap("count books", err)
	}
	return count, nil
}

// ScanTable streams the raw books table, whatever its current columns are,
// to fn. The rows are only valid inside fn.
func (r *Repository) ScanTable(ctx context.Context, fn func(rows *sql.Rows) error) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := tx.Raw("SELECT * FROM books").Rows()
		if err != nil {
			return err
		}
		defer rows.Close()
		return fn(rows)
	})
	return database.Wrap("scan books table", err)
}
