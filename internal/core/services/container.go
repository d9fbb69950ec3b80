package services

import (
	"context"

	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/polifund_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/polifund_ledger/internal/core/ports/services"
	"github.com/SscSPs/polifund_ledger/internal/observability"
	"github.com/SscSPs/polifund_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, hub portsrepo.HubGateway, metrics *observability.Metrics) *portssvc.ServiceContainer {
	master := domain.DefaultAccountMaster()
	bus := NewEventBus()

	syncSvc := NewSyncService(repos, hub, master,
		WithSyncConcurrency(cfg.SyncConcurrency),
		WithSyncMetrics(metrics),
	)
	if cfg.SyncOnApprove {
		// The approving request must not wait for the Hub, and the pass
		// outlives the request context.
		bus.SubscribeJournalApproved(func(ctx context.Context, evt domain.JournalApproved) {
			go syncSvc.OnJournalApproved(context.WithoutCancel(ctx), evt)
		})
	}

	return &portssvc.ServiceContainer{
		Journal: NewJournalService(repos, master,
			WithJournalEvents(bus),
			WithJournalMetrics(metrics),
		),
		Contact:       NewContactService(repos.ContactRepo, repos.JournalRepo),
		SubAccount:    NewSubAccountService(repos.SubAccountRepo, master),
		AccountMaster: NewAccountMasterService(master),
		Sync:          syncSvc,
		Reporting:     NewReportingService(repos, master),
	}
}
