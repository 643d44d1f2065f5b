package http

import (
	"html/template"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookhub/internal/entities"
	"github.com/mrlokans/bookhub/internal/ui"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	_ = router.SetTrustedProxies(nil)

	// Apply security headers to all responses
	router.Use(SecurityHeadersMiddleware())

	labels := cfg.Labels
	if labels == nil {
		labels = ui.Labels{}
	}

	// Define custom template functions
	funcMap := template.FuncMap{
		"rowData": func(b entities.Book, l ui.Labels) rowView {
			return newRowView(b, l)
		},
	}

	tmpl := template.Must(ui.Templates(cfg.TemplatesPath, funcMap))
	router.SetHTMLTemplate(tmpl)

	static, err := ui.Static(cfg.StaticPath)
	if err != nil {
		log.Fatalf("Failed to load static assets: %v", err)
	}
	router.StaticFS("/static", http.FS(static))

	health := NewHealthController(cfg.Database, cfg.Backups, cfg.Version)
	booksController := NewBooksController(cfg.Store, cfg.Searcher)
	uiController := NewUIController(cfg.Store, cfg.Searcher, labels)
	exportController := NewExportController(cfg.Scanner)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", health.Ping)

	// Books API endpoints
	api := router.Group("/api")
	if len(cfg.CORSAllowedOrigins) > 0 {
		api.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.CORSAllowedOrigins,
			AllowMethods:  []string{"GET", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", RequestIDHeader},
			ExposeHeaders: []string{"Content-Length", RequestIDHeader},
		}))
		// Preflight requests only reach group middleware through a route
		api.OPTIONS("/*path", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	}
	api.GET("/books", booksController.GetAllBooks)
	api.GET("/books/search", booksController.SearchBooks)
	api.GET("/books/:id", booksController.GetBook)

	// UI routes
	router.GET("/", uiController.BooksPage)
	router.POST("/startsearch", uiController.StartSearch)
	router.GET("/search", uiController.SearchPage)
	router.GET("/get_count", uiController.Count)

	// Row fragments
	router.GET("/new", uiController.NewRow)
	router.PUT("/add", uiController.AddBook)
	router.GET("/row/:id", uiController.Row)
	router.GET("/change/:id", uiController.EditRow)
	router.PUT("/update/:id", uiController.UpdateBook)
	router.DELETE("/delete/:id", uiController.DeleteBook)

	router.GET("/export", exportController.DownloadXLSX)

	return router
}
