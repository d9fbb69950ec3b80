package services

import (
	"context"

	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	"github.com/SscSPs/polifund_ledger/internal/dto"
)

// AccountMasterSvc exposes the read-only account catalog.
type AccountMasterSvc interface {
	ListAccountCodes(ctx context.Context, ledgerType domain.LedgerType) []domain.AccountCode
}

// SubAccountSvcFacade manages the actor's sub-accounts.
type SubAccountSvcFacade interface {
	CreateSubAccount(ctx context.Context, actor domain.Actor, req dto.CreateSubAccountRequest) (*domain.SubAccount, error)
	RenameSubAccount(ctx context.Context, actor domain.Actor, subAccountID string, req dto.RenameSubAccountRequest) (*domain.SubAccount, error)
	ListSubAccounts(ctx context.Context, actor domain.Actor, ledgerType domain.SubAccountLedgerType) ([]domain.SubAccount, error)
}
