package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/polifund_ledger/internal/core/ports/services"
	"github.com/SscSPs/polifund_ledger/internal/dto"
	"github.com/SscSPs/polifund_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler serves the account master and the actor's sub-accounts.
type accountHandler struct {
	accountMaster     portssvc.AccountMasterSvc
	subAccountService portssvc.SubAccountSvcFacade
}

func newAccountHandler(master portssvc.AccountMasterSvc, subAccounts portssvc.SubAccountSvcFacade) *accountHandler {
	return &accountHandler{accountMaster: master, subAccountService: subAccounts}
}

func registerAccountRoutes(rg *gin.RouterGroup, master portssvc.AccountMasterSvc, subAccounts portssvc.SubAccountSvcFacade) {
	h := newAccountHandler(master, subAccounts)

	rg.GET("/account-codes", h.listAccountCodes)

	subs := rg.Group("/sub-accounts")
	{
		subs.POST("", h.createSubAccount)
		subs.GET("", h.listSubAccounts)
		subs.PATCH("/:subAccountID", h.renameSubAccount)
	}
}

// listAccountCodes godoc
// @Summary List account codes
// @Description Lists the account master, optionally filtered to one ledger type
// @Tags accounts
// @Produce  json
// @Param   ledger_type query string false "organization or election"
// @Success 200 {array} dto.AccountCodeResponse
// @Failure 400 {object} map[string]string "Unknown ledger type"
// @Security BearerAuth
// @Router /account-codes [get]
func (h *accountHandler) listAccountCodes(c *gin.Context) {
	var ledgerType domain.LedgerType
	if raw := c.Query("ledger_type"); raw != "" {
		lt, ok := domain.ParseLedgerType(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ledger_type must be organization or election"})
			return
		}
		ledgerType = lt
	}

	codes := h.accountMaster.ListAccountCodes(c.Request.Context(), ledgerType)
	c.JSON(http.StatusOK, dto.ToAccountCodeResponses(codes))
}

func (h *accountHandler) createSubAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSubAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createSubAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	sub, err := h.subAccountService.CreateSubAccount(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "create sub-account")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSubAccountResponse(sub))
}

func (h *accountHandler) listSubAccounts(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var ledgerType domain.SubAccountLedgerType
	switch raw := domain.SubAccountLedgerType(c.Query("ledger_type")); raw {
	case "", domain.SubAccountPoliticalOrganization, domain.SubAccountElection:
		ledgerType = raw
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "ledger_type must be political_organization or election"})
		return
	}

	subs, err := h.subAccountService.ListSubAccounts(c.Request.Context(), actor, ledgerType)
	if err != nil {
		respondError(c, err, "list sub-accounts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sub_accounts": dto.ToSubAccountResponses(subs)})
}

func (h *accountHandler) renameSubAccount(c *gin.Context) {
	var req dto.RenameSubAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	sub, err := h.subAccountService.RenameSubAccount(c.Request.Context(), actor, c.Param("subAccountID"), req)
	if err != nil {
		respondError(c, err, "rename sub-account")
		return
	}
	c.JSON(http.StatusOK, dto.ToSubAccountResponse(sub))
}
