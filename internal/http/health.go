package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookhub/internal/database"
	"github.com/mrlokans/bookhub/internal/exporters"
)

// BackupReporter exposes the outcome of the latest export backup.
type BackupReporter interface {
	LastBackup() (string, exporters.ExportResult, error)
}

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	db      *database.Database
	backups BackupReporter
	version string
}

func NewHealthController(db *database.Database, backups BackupReporter, version string) *HealthController {
	return &HealthController{
		db:      db,
		backups: backups,
		version: version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	if h.db != nil {
		if err := h.db.Ping(c.Request.Context()); err != nil {
			checks["database"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["database"] = "ok"
		}
	} else {
		checks["database"] = "not configured"
	}

	// A failed backup is reported but does not make the service unhealthy.
	if h.backups != nil {
		checks["export_backup"] = backupCheck(h.backups)
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}

func (h *HealthController) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}

func backupCheck(backups BackupReporter) string {
	path, result, err := backups.LastBackup()
	switch {
	case err != nil:
		return "error: " + err.Error()
	case path == "":
		return "never run"
	default:
		return fmt.Sprintf("ok: %d rows in %s", result.Rows, path)
	}
}
