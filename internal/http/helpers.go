package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookhub/internal/database"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"` // machine-readable error code
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found", Code: "not_found"})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s) [%s]: %v", context, requestID(c), err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondStoreError maps a record store error to a response: unknown ids
// become 404, a busy or locked database 503, anything else 500.
func respondStoreError(c *gin.Context, err error, context string) {
	var storageErr *database.StorageError
	switch {
	case errors.Is(err, database.ErrNotFound):
		respondNotFound(c, "book")
	case errors.As(err, &storageErr) && storageErr.Temporary():
		log.Printf("Storage unavailable (%s) [%s]: %v", context, requestID(c), err)
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "storage temporarily unavailable", Code: "storage_busy"})
	default:
		respondInternalError(c, err, context)
	}
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL parameters.
// Returns the parsed ID or responds with a 400 error and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}

// optionalFormValue returns nil for an absent or blank form field.
func optionalFormValue(c *gin.Context, key string) *string {
	v := c.PostForm(key)
	if isBlank(v) {
		return nil
	}
	return &v
}

// --- HTMX Support ---

// triggerEvent asks HTMX to fire a client-side event after the swap.
func triggerEvent(c *gin.Context, event string) {
	c.Header("HX-Trigger", event)
}
