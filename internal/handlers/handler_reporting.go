package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/polifund_ledger/internal/core/ports/services"
	"github.com/SscSPs/polifund_ledger/internal/dto"
	"github.com/SscSPs/polifund_ledger/internal/middleware"
	"github.com/SscSPs/polifund_ledger/internal/utils/csvexport"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// reportingHandler handles HTTP requests related to compliance exports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	validate         *validator.Validate
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		validate:         validator.New(),
	}
}

// registerReportingRoutes registers the export route
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, limit gin.HandlerFunc) {
	h := newReportingHandler(reportingService)
	rg.GET("/export", limit, h.exportReport)
}

// exportReport godoc
// @Summary Export a compliance report as CSV
// @Description UTF-8 CSV with a byte order mark. Private contact fields are shown as 非公開.
// @Tags reports
// @Produce text/csv
// @Param type query string true "expense, revenue, summary or assets"
// @Param organization_id query string false "Organization ID"
// @Param election_id query string false "Election ID"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Ledger not found"
// @Security BearerAuth
// @Router /export [get]
func (h *reportingHandler) exportReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.ExportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validate.Struct(q); err != nil {
		logger.Warn("Invalid export query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	actor, ok := requireActor(c)
	if !ok {
		return
	}

	ledgerType, ledgerID := q.Ledger()
	report, err := h.reportingService.GenerateReport(c.Request.Context(), actor, domain.ReportKind(q.Type), ledgerType, ledgerID)
	if err != nil {
		respondError(c, err, "generate report")
		return
	}

	fileName := csvexport.FileName(report.Kind, report.GeneratedAt)
	c.Header("Content-Type", csvexport.ContentType)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	c.Status(http.StatusOK)

	// Headers are already sent, so a write failure can only be logged.
	if err := csvexport.Write(c.Writer, report); err != nil {
		logger.Error("Failed to stream report", slog.String("file", fileName), slog.String("error", err.Error()))
		return
	}
	logger.Info("Report exported", slog.String("file", fileName), slog.Int("rows", len(report.Rows)))
}
