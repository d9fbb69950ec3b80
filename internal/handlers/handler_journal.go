package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/polifund_ledger/internal/core/ports/services"
	"github.com/SscSPs/polifund_ledger/internal/dto"
	"github.com/SscSPs/polifund_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journals.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: journalService,
	}
}

// registerJournalRoutes registers journal specific routes
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journals := rg.Group("/journals")
	{
		journals.POST("", h.createJournal)
		journals.GET("", h.listJournals)
		journals.GET("/:journalID", h.getJournal)
		journals.PUT("/:journalID", h.updateJournal)
		journals.DELETE("/:journalID", h.deleteJournal)
		journals.POST("/:journalID/approve", h.approveJournal)
	}
}

// createJournal godoc
// @Summary Create a journal with its entries
// @Description Creates a draft or, with registerJournal permission, an approved journal
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   journal body dto.CreateJournalRequest true "Journal and entries"
// @Success 201 {object} map[string]string "Returns the ID of the created journal"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Ledger, account code or sub-account not found"
// @Security BearerAuth
// @Router /journals [post]
func (h *journalHandler) createJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := requireActor(c)
	if !ok {
		return
	}

	journal, err := h.journalService.CreateJournal(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "create journal")
		return
	}

	logger.Info("Journal created", slog.String("journal_id", journal.JournalID), slog.String("status", string(journal.Status)))
	c.JSON(http.StatusCreated, gin.H{"id": journal.JournalID})
}

// getJournal godoc
// @Summary Get a journal and its entries
// @Tags journals
// @Produce  json
// @Param   journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 404 {object} map[string]string "Journal not found"
// @Security BearerAuth
// @Router /journals/{journalID} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	journal, err := h.journalService.GetJournal(c.Request.Context(), actor, c.Param("journalID"))
	if err != nil {
		respondError(c, err, "retrieve journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// listJournals godoc
// @Summary List the journals of one ledger
// @Description Newest first, paginated with nextToken
// @Tags journals
// @Produce  json
// @Param   organization_id query string false "Organization ID"
// @Param   election_id query string false "Election ID"
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListJournalsResponse
// @Security BearerAuth
// @Router /journals [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListJournalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listJournals", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	actor, ok := requireActor(c)
	if !ok {
		return
	}

	resp, err := h.journalService.ListJournals(c.Request.Context(), actor, params)
	if err != nil {
		respondError(c, err, "list journals")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *journalHandler) updateJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := requireActor(c)
	if !ok {
		return
	}

	journal, err := h.journalService.UpdateJournal(c.Request.Context(), actor, c.Param("journalID"), req)
	if err != nil {
		respondError(c, err, "update journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

func (h *journalHandler) deleteJournal(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.journalService.DeleteJournal(c.Request.Context(), actor, c.Param("journalID")); err != nil {
		respondError(c, err, "delete journal")
		return
	}
	c.Status(http.StatusNoContent)
}

// approveJournal godoc
// @Summary Approve a draft journal
// @Description Approving an already approved journal returns it unchanged
// @Tags journals
// @Produce  json
// @Param   journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 403 {object} map[string]string "Missing permission or self-approval"
// @Failure 404 {object} map[string]string "Journal not found"
// @Security BearerAuth
// @Router /journals/{journalID}/approve [post]
func (h *journalHandler) approveJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := requireActor(c)
	if !ok {
		return
	}

	journalID := c.Param("journalID")
	journal, err := h.journalService.ApproveJournal(c.Request.Context(), actor, journalID)
	if err != nil {
		respondError(c, err, "approve journal")
		return
	}

	logger.Info("Journal approved", slog.String("journal_id", journalID))
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}
