package http

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookhub/internal/entities"
	"github.com/mrlokans/bookhub/internal/query"
	"github.com/mrlokans/bookhub/internal/ui"
)

// rowView is the data of the row and update_row templates.
type rowView struct {
	Book *entities.Book
	Lang ui.Labels
}

func newRowView(b entities.Book, labels ui.Labels) rowView {
	return rowView{Book: &b, Lang: labels}
}

// UIController serves the HTMX page and its row fragments.
type UIController struct {
	store    BookStore
	searcher BookSearcher
	labels   ui.Labels
}

func NewUIController(store BookStore, searcher BookSearcher, labels ui.Labels) *UIController {
	return &UIController{
		store:    store,
		searcher: searcher,
		labels:   labels,
	}
}

func (controller *UIController) BooksPage(c *gin.Context) {
	books, err := controller.searcher.ListAll(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "list books")
		return
	}
	controller.renderPage(c, books, query.Criteria{})
}

// StartSearch turns the posted search form into a bookmarkable /search URL.
func (controller *UIController) StartSearch(c *gin.Context) {
	target := "/search?title=" + url.QueryEscape(c.PostForm("title")) +
		"&author=" + url.QueryEscape(c.PostForm("author")) +
		"&renter=" + url.QueryEscape(c.PostForm("renter"))
	c.Redirect(http.StatusFound, target)
}

func (controller *UIController) SearchPage(c *gin.Context) {
	criteria := query.Criteria{
		Title:  c.Query("title"),
		Author: c.Query("author"),
		Renter: c.Query("renter"),
	}

	books, err := controller.searcher.Search(c.Request.Context(), criteria)
	if err != nil {
		respondStoreError(c, err, "search books")
		return
	}
	controller.renderPage(c, books, criteria)
}

func (controller *UIController) renderPage(c *gin.Context, books []entities.Book, criteria query.Criteria) {
	c.HTML(http.StatusOK, "base", gin.H{
		"Books":    books,
		"Count":    len(books),
		"Criteria": criteria,
		"Lang":     controller.labels,
	})
}

func (controller *UIController) NewRow(c *gin.Context) {
	c.HTML(http.StatusOK, "new_row", gin.H{"Lang": controller.labels})
}

// AddBook creates a book from the new-row form. A blank author falls back to
// the unknown author, a blank renter means the book is not lent out.
func (controller *UIController) AddBook(c *gin.Context) {
	book, err := controller.store.Create(
		c.Request.Context(),
		c.PostForm("title"),
		optionalFormValue(c, "author"),
		optionalFormValue(c, "renter"),
	)
	if err != nil {
		respondStoreError(c, err, "create book")
		return
	}

	triggerEvent(c, "addedRecord")
	c.HTML(http.StatusOK, "row", newRowView(*book, controller.labels))
}

func (controller *UIController) Row(c *gin.Context) {
	controller.renderBook(c, "row")
}

func (controller *UIController) EditRow(c *gin.Context) {
	controller.renderBook(c, "update_row")
}

func (controller *UIController) renderBook(c *gin.Context, template string) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.store.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "get book")
		return
	}
	c.HTML(http.StatusOK, template, newRowView(*book, controller.labels))
}

// UpdateBook replaces every field of a book from the edit-row form. The title
// field must be present; author and renter follow the AddBook defaults.
func (controller *UIController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	title, ok := c.GetPostForm("title")
	if !ok {
		respondBadRequest(c, "title is required")
		return
	}

	author := entities.UnknownAuthor
	if v := optionalFormValue(c, "author"); v != nil {
		author = *v
	}

	book, err := controller.store.Update(c.Request.Context(), id, title, author, optionalFormValue(c, "renter"))
	if err != nil {
		respondStoreError(c, err, "update book")
		return
	}
	c.HTML(http.StatusOK, "row", newRowView(*book, controller.labels))
}

// DeleteBook answers with an empty body so HTMX removes the row.
func (controller *UIController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.store.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "delete book")
		return
	}

	triggerEvent(c, "deletedRecord")
	c.String(http.StatusOK, "")
}

func (controller *UIController) Count(c *gin.Context) {
	count, err := controller.store.Count(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "count books")
		return
	}
	c.String(http.StatusOK, "%d %s", count, controller.labels.Get("BOOK"))
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
