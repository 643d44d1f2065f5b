package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookhub/internal/database"
	"github.com/mrlokans/bookhub/internal/exporters"
)

type stubBackupReporter struct {
	path   string
	result exporters.ExportResult
	err    error
}

func (s stubBackupReporter) LastBackup() (string, exporters.ExportResult, error) {
	return s.path, s.result, s.err
}

func setupHealthTestDB(t *testing.T) *database.Database {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "health.db"), logger.Silent)
	require.NoError(t, err)
	return db
}

func getHealth(t *testing.T, controller *HealthController) (*httptest.ResponseRecorder, HealthResponse) {
	t.Helper()
	router := gin.New()
	router.GET("/health", controller.Status)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return w, response
}

func TestHealthController_Status(t *testing.T) {
	t.Run("returns healthy when database is connected", func(t *testing.T) {
		db := setupHealthTestDB(t)
		defer db.Close()

		w, response := getHealth(t, NewHealthController(db, nil, "1.0.0"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "1.0.0", response.Version)
		assert.Equal(t, "ok", response.Checks["database"])
		assert.Contains(t, response.Time, "T")
	})

	t.Run("returns healthy when database is nil", func(t *testing.T) {
		w, response := getHealth(t, NewHealthController(nil, nil, "1.0.0"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "not configured", response.Checks["database"])
	})

	t.Run("returns unhealthy when database connection is closed", func(t *testing.T) {
		db := setupHealthTestDB(t)
		require.NoError(t, db.Close())

		w, response := getHealth(t, NewHealthController(db, nil, "1.0.0"))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "unhealthy", response.Status)
		assert.Contains(t, response.Checks["database"], "error")
	})
}

func TestHealthController_ExportBackupCheck(t *testing.T) {
	t.Run("omitted when backups are disabled", func(t *testing.T) {
		_, response := getHealth(t, NewHealthController(nil, nil, "1.0.0"))

		_, ok := response.Checks["export_backup"]
		assert.False(t, ok)
	})

	t.Run("never run", func(t *testing.T) {
		w, response := getHealth(t, NewHealthController(nil, stubBackupReporter{}, "1.0.0"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "never run", response.Checks["export_backup"])
	})

	t.Run("reports last backup file", func(t *testing.T) {
		reporter := stubBackupReporter{
			path:   "/backups/books_export-20260101-030000.xlsx",
			result: exporters.ExportResult{Rows: 12},
		}
		w, response := getHealth(t, NewHealthController(nil, reporter, "1.0.0"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok: 12 rows in /backups/books_export-20260101-030000.xlsx", response.Checks["export_backup"])
	})

	t.Run("failed backup keeps service healthy", func(t *testing.T) {
		reporter := stubBackupReporter{err: errors.New("disk full")}
		w, response := getHealth(t, NewHealthController(nil, reporter, "1.0.0"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "error: disk full", response.Checks["export_backup"])
	})
}

func TestHealthController_Ping(t *testing.T) {
	router := gin.New()
	router.GET("/ping", NewHealthController(nil, nil, "").Ping)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}
