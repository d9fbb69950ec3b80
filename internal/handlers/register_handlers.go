package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/polifund_ledger/internal/core/ports/services"
	"github.com/SscSPs/polifund_ledger/internal/middleware"
	"github.com/SscSPs/polifund_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	limiterInstance, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}

	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	RegisterAPIRoutes(v1, services, middleware.RateLimit(limiterInstance))

	slog.Debug("Routes registered", slog.String("rate_limit", cfg.RateLimit))
	return nil
}

// RegisterAPIRoutes delegates route registration to the specific handlers.
// limit guards the expensive sync and export endpoints.
func RegisterAPIRoutes(v1 *gin.RouterGroup, services *portssvc.ServiceContainer, limit gin.HandlerFunc) {
	registerJournalRoutes(v1, services.Journal)
	registerContactRoutes(v1, services.Contact)
	registerAccountRoutes(v1, services.AccountMaster, services.SubAccount)
	registerSyncRoutes(v1, services.Sync, limit)
	registerReportingRoutes(v1, services.Reporting, limit)
}
