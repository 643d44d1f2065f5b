package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookhub/internal/config"
	"github.com/mrlokans/bookhub/internal/database"
	"github.com/mrlokans/bookhub/internal/database/books"
	http_controllers "github.com/mrlokans/bookhub/internal/http"
	"github.com/mrlokans/bookhub/internal/query"
	"github.com/mrlokans/bookhub/internal/scheduler"
	"github.com/mrlokans/bookhub/internal/ui"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	// kill (no param) default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	// Stop background work after in-flight requests are done
	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting BorrowedBooksHub v%s", version)

	if cfg.HTTP.GinMode != "" {
		gin.SetMode(cfg.HTTP.GinMode)
	}

	db, err := database.NewDatabase(cfg.Database.Path, database.ParseLogLevel(cfg.Database.LogLevel))
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	labels, err := ui.LoadLabels(cfg.UI.LangPath)
	if err != nil {
		log.Fatalf("Failed to load UI labels: %v", err)
	}

	repo := books.NewRepository(db.DB)
	engine := query.NewEngine(db.DB, repo)

	var backups *scheduler.ExportBackupScheduler
	if cfg.Backup.Enabled {
		backups = scheduler.NewExportBackupScheduler(repo, cfg.Backup.Dir, cfg.Backup.Schedule)
		if err := backups.Start(context.Background()); err != nil {
			log.Fatalf("Failed to start export backups: %v", err)
		}
		if backups.IsRunning() {
			backups.RunNow()
		}
		if next := backups.GetNextRunTime(); next != nil {
			log.Printf("Next export backup: %v", next)
		}
	} else {
		log.Printf("Export backups: disabled (set EXPORT_BACKUP_ENABLED=true to enable)")
	}

	routerCfg := http_controllers.RouterConfig{
		Store:         repo,
		Searcher:      engine,
		Scanner:       repo,
		Database:      db,
		Labels:        labels,
		TemplatesPath: cfg.UI.TemplatesPath,
		StaticPath:    cfg.UI.StaticPath,
		Version:       version,

		CORSAllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
	}
	if backups != nil {
		routerCfg.Backups = backups
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if backups != nil {
			backups.Stop()
		}
	}

	Serve(router, cfg, onShutdown)
}
