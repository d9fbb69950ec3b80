package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/polifund_ledger/internal/apperrors"
	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	"github.com/SscSPs/polifund_ledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// Now returns the current time; tests replace it.
	Now func() time.Time
}

func newBaseService() BaseService {
	return BaseService{Now: func() time.Time { return time.Now().UTC() }}
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeActor checks that the actor's role grants perm.
func (s *BaseService) AuthorizeActor(ctx context.Context, actor domain.Actor, perm domain.Permission) error {
	if actor.Can(perm) {
		return nil
	}
	s.GetLogger(ctx).Warn("Permission denied",
		slog.String("actor_id", actor.UserID),
		slog.String("role", string(actor.Role)),
		slog.String("permission", string(perm)))
	return apperrors.NewForbiddenError("role " + string(actor.Role) + " lacks permission " + string(perm))
}

func (s *BaseService) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now()
}
