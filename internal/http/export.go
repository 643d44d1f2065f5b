package http

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookhub/internal/exporters"
)

type ExportController struct {
	scanner exporters.TableScanner
}

func NewExportController(scanner exporters.TableScanner) *ExportController {
	return &ExportController{scanner: scanner}
}

// DownloadXLSX sends the whole books table as a spreadsheet attachment.
func (controller *ExportController) DownloadXLSX(c *gin.Context) {
	reader, result, err := exporters.ExportTable(c.Request.Context(), controller.scanner)
	if err != nil {
		respondStoreError(c, err, "export books")
		return
	}

	log.Printf("Exported %d rows (%d columns, %d bytes)", result.Rows, result.Columns, result.Bytes)

	c.DataFromReader(http.StatusOK, reader.Size(), exporters.ContentType, reader, map[string]string{
		"Content-Disposition": fmt.Sprintf(`attachment; filename="%s"`, exporters.FileName),
	})
}
