package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/polifund_ledger/internal/apperrors"
	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	"github.com/SscSPs/polifund_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error to its status code. Client errors carry
// the service message; server errors are logged and answered generically,
// except Hub failures whose message is useful to the caller.
func respondError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := apperrors.StatusCode(err)

	switch {
	case status == http.StatusBadGateway:
		logger.Error("Hub request failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": apperrors.Message(err)})
	case status >= http.StatusInternalServerError:
		logger.Error("Request failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	default:
		logger.Warn("Request rejected", slog.String("action", action), slog.Int("status", status), slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": apperrors.Message(err)})
	}
}

// requireActor returns the authenticated actor or aborts with 401.
func requireActor(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return domain.Actor{}, false
	}
	return actor, true
}
