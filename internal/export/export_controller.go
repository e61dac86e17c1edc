package export

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sahilparmar-7/ams/internal/common"
	"github.com/sahilparmar-7/ams/internal/store"
	"github.com/sahilparmar-7/ams/pkg/responses"
	"github.com/sahilparmar-7/ams/pkg/tabular"
)

// ExportController serves the database export surface. It reads through the
// store.Fetcher interface only, so tests drive it with a stub.
type ExportController struct {
	fetch store.Fetcher
	log   *zap.Logger
}

func NewExportController(fetch store.Fetcher, log *zap.Logger) *ExportController {
	return &ExportController{fetch: fetch, log: log}
}

// resolveAcademy returns the academy scope for an export request. The query
// parameter keeps the historical URL shape; when both it and the
// authenticated scope are present they must agree.
func resolveAcademy(c *gin.Context) (string, bool) {
	queried := c.Query("academyId")
	scoped := common.GetAcademyIDFromContext(c)

	if queried != "" && scoped != "" && queried != scoped {
		responses.Forbidden(c, "Cannot export another academy's data")
		return "", false
	}
	academyID := queried
	if academyID == "" {
		academyID = scoped
	}
	if academyID == "" {
		responses.BadRequest(c, "academyId is required")
		return "", false
	}
	return academyID, true
}

// Export godoc
// @Summary Export collections as JSON
// @Description Dumps the requested collection (or all of them) as JSON.
// Android WebView navigation requests get an HTML page with the payload
// base64-embedded in a textarea; WebView fetches get an apkExport envelope.
// @Tags Export
// @Param academyId query string false "Academy ID"
// @Param collection query string false "players|coaches|batches|finances|performance|all"
// @Success 200 {object} map[string]interface{}
// @Router /db/export [get]
func (ec *ExportController) Export(c *gin.Context) {
	academyID, ok := resolveAcademy(c)
	if !ok {
		return
	}
	collection := c.DefaultQuery("collection", CollectionAll)
	if !validCollection(collection) {
		responses.BadRequest(c, "Unknown collection: "+collection)
		return
	}

	datasets, _, err := collectAll(c.Request.Context(), ec.fetch, academyID, collection)
	if err != nil {
		ec.log.Error("export fetch failed",
			zap.String("collection", collection), zap.Error(err))
		responses.InternalServerError(c, "Failed to fetch export data")
		return
	}

	raw, err := json.Marshal(datasets)
	if err != nil {
		responses.InternalServerError(c, "Failed to encode export data")
		return
	}
	filename := fmt.Sprintf("ams-export-%s-%s.json", collection, time.Now().Format("2006-01-02"))

	switch {
	case isWebView(c.Request) && isNavigation(c.Request):
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(webViewHTML(filename, raw)))
	case isWebView(c.Request):
		c.JSON(http.StatusOK, newApkExport(filename, "application/json", raw))
	default:
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, "application/json", raw)
	}
}

// SessionsCSV godoc
// @Summary Export sessions as CSV
// @Description Fixed 19-column CSV with batch, player and coach references
// resolved and status derived from the wall clock.
// @Tags Export
// @Param academyId query string false "Academy ID"
// @Produce text/csv
// @Router /db/export/sessions-csv [get]
func (ec *ExportController) SessionsCSV(c *gin.Context) {
	academyID, ok := resolveAcademy(c)
	if !ok {
		return
	}

	doc, err := buildSessionsCSV(c.Request.Context(), ec.fetch, academyID, time.Now())
	if err != nil {
		ec.log.Error("sessions export failed", zap.Error(err))
		responses.InternalServerError(c, "Failed to build sessions export")
		return
	}
	sendCSV(c, fmt.Sprintf("sessions-export-%s.csv", time.Now().Format("2006-01-02")), doc)
}

// CollectionCSV godoc
// @Summary Export one collection as CSV
// @Description Flat CSV for players/coaches/finances/performance; batches
// produce the multi-section batch report.
// @Tags Export
// @Param academyId query string false "Academy ID"
// @Param collection query string true "players|coaches|batches|finances|performance"
// @Produce text/csv
// @Router /db/export/csv [get]
func (ec *ExportController) CollectionCSV(c *gin.Context) {
	academyID, ok := resolveAcademy(c)
	if !ok {
		return
	}
	collection := c.Query("collection")

	var doc string
	var err error
	switch {
	case collection == CollectionBatches:
		doc, err = buildBatchReport(c.Request.Context(), ec.fetch, academyID)
	case flatColumns[collection] != nil:
		var docs []store.Document
		docs, err = collect(c.Request.Context(), ec.fetch, academyID, collection)
		if err == nil {
			doc = tabular.Format(flatColumns[collection], docs)
		}
	default:
		responses.BadRequest(c, "Unknown collection: "+collection)
		return
	}
	if err != nil {
		ec.log.Error("collection export failed",
			zap.String("collection", collection), zap.Error(err))
		responses.InternalServerError(c, "Failed to build export")
		return
	}
	sendCSV(c, fmt.Sprintf("%s-export-%s.csv", collection, time.Now().Format("2006-01-02")), doc)
}

// Workbook godoc
// @Summary Export all collections as an XLSX workbook
// @Description One sheet per collection, reusing the CSV column schemas.
// @Tags Export
// @Param academyId query string false "Academy ID"
// @Router /db/export/xlsx [get]
func (ec *ExportController) Workbook(c *gin.Context) {
	academyID, ok := resolveAcademy(c)
	if !ok {
		return
	}

	buf, err := buildWorkbook(c.Request.Context(), ec.fetch, academyID)
	if err != nil {
		ec.log.Error("workbook export failed", zap.Error(err))
		responses.InternalServerError(c, "Failed to build workbook")
		return
	}
	filename := fmt.Sprintf("ams-export-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func sendCSV(c *gin.Context, filename, doc string) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(doc))
}
