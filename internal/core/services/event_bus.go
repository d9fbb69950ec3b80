package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	"github.com/SscSPs/polifund_ledger/internal/middleware"
)

// JournalApprovedHandler reacts to a journal entering the approved state.
type JournalApprovedHandler func(ctx context.Context, evt domain.JournalApproved)

// JournalEventPublisher is what the approval flow needs from the bus.
type JournalEventPublisher interface {
	PublishJournalApproved(ctx context.Context, evt domain.JournalApproved)
}

// EventBus is an in-process, synchronous dispatcher. Handlers run in
// subscription order on the publisher's goroutine.
type EventBus struct {
	mu       sync.RWMutex
	handlers []JournalApprovedHandler
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{}
}

var _ JournalEventPublisher = (*EventBus)(nil)

// SubscribeJournalApproved registers h.
func (b *EventBus) SubscribeJournalApproved(h JournalApprovedHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// PublishJournalApproved delivers evt to every handler. A panicking handler is
// logged and does not stop delivery to the rest.
func (b *EventBus) PublishJournalApproved(ctx context.Context, evt domain.JournalApproved) {
	b.mu.RLock()
	handlers := make([]JournalApprovedHandler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, h := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					middleware.GetLoggerFromCtx(ctx).Error("JournalApproved handler panicked",
						slog.String("journal_id", evt.JournalID),
						slog.Any("panic", r))
				}
			}()
			h(ctx, evt)
		}()
	}
}
