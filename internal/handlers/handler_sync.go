package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/polifund_ledger/internal/core/ports/services"
	"github.com/SscSPs/polifund_ledger/internal/dto"
	"github.com/SscSPs/polifund_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const defaultChangeLogLimit = 50

// syncHandler triggers Hub synchronization and exposes its change log.
type syncHandler struct {
	syncService portssvc.SyncSvcFacade
	validate    *validator.Validate
}

func newSyncHandler(syncService portssvc.SyncSvcFacade) *syncHandler {
	return &syncHandler{
		syncService: syncService,
		validate:    validator.New(),
	}
}

func registerSyncRoutes(rg *gin.RouterGroup, syncService portssvc.SyncSvcFacade, limit gin.HandlerFunc) {
	h := newSyncHandler(syncService)

	sync := rg.Group("/sync")
	{
		sync.POST("", limit, h.runSync)
		sync.GET("/change-logs", h.listChangeLogs)
	}
}

// runSync godoc
// @Summary Synchronize approved journals to the Hub
// @Description Runs one sync pass. Per-ledger failures are counted in errors.
// @Tags sync
// @Produce  json
// @Param   type query string false "organization or election"
// @Param   ledger_id query string false "Ledger ID, requires type"
// @Param   force query bool false "Resend journals whose payload is unchanged"
// @Success 200 {object} domain.SyncResult
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /sync [post]
func (h *syncHandler) runSync(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.SyncQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validate.Struct(q); err != nil {
		logger.Warn("Invalid sync query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	actor, ok := requireActor(c)
	if !ok {
		return
	}

	result, err := h.syncService.SyncLedgers(c.Request.Context(), actor, q.ToSyncFilter())
	if err != nil {
		respondError(c, err, "synchronize ledgers")
		return
	}

	logger.Info("Sync pass finished",
		slog.Int("created", result.Created),
		slog.Int("updated", result.Updated),
		slog.Int("skipped", result.Skipped),
		slog.Int("errors", result.Errors),
	)
	c.JSON(http.StatusOK, result)
}

func (h *syncHandler) listChangeLogs(c *gin.Context) {
	var q dto.ChangeLogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validate.Struct(q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if q.Limit == 0 {
		q.Limit = defaultChangeLogLimit
	}

	actor, ok := requireActor(c)
	if !ok {
		return
	}

	entries, err := h.syncService.ListChangeLogs(c.Request.Context(), actor, q.LedgerSourceID, q.Limit)
	if err != nil {
		respondError(c, err, "list change logs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"change_logs": dto.ToChangeLogResponses(entries)})
}
