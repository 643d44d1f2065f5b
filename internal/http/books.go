package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookhub/internal/query"
)

// BooksController serves the JSON API.
type BooksController struct {
	store    BookStore
	searcher BookSearcher
}

func NewBooksController(store BookStore, searcher BookSearcher) *BooksController {
	return &BooksController{
		store:    store,
		searcher: searcher,
	}
}

func (controller *BooksController) GetAllBooks(c *gin.Context) {
	books, err := controller.searcher.ListAll(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "list books")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

// SearchBooks filters by the title, author and renter query parameters.
// Missing parameters are empty terms.
func (controller *BooksController) SearchBooks(c *gin.Context) {
	var criteria query.Criteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		respondBadRequest(c, "invalid search parameters")
		return
	}

	books, err := controller.searcher.Search(c.Request.Context(), criteria)
	if err != nil {
		respondStoreError(c, err, "search books")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"books": books, "count": len(books), "criteria": criteria})
}

func (controller *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.store.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "get book")
		return
	}
	c.IndentedJSON(http.StatusOK, book)
}
