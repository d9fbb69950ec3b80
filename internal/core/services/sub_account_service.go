package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/polifund_ledger/internal/apperrors"
	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/polifund_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/polifund_ledger/internal/core/ports/services"
	"github.com/SscSPs/polifund_ledger/internal/dto"
)

type subAccountService struct {
	BaseService
	subAccountRepo portsrepo.SubAccountRepositoryFacade
	master         *domain.AccountMaster
}

// NewSubAccountService creates the sub-account service.
func NewSubAccountService(repo portsrepo.SubAccountRepositoryFacade, master *domain.AccountMaster) portssvc.SubAccountSvcFacade {
	if master == nil {
		master = domain.DefaultAccountMaster()
	}
	return &subAccountService{BaseService: newBaseService(), subAccountRepo: repo, master: master}
}

var _ portssvc.SubAccountSvcFacade = (*subAccountService)(nil)

func (s *subAccountService) CreateSubAccount(ctx context.Context, actor domain.Actor, req dto.CreateSubAccountRequest) (*domain.SubAccount, error) {
	if err := s.AuthorizeActor(ctx, actor, domain.PermSubmitJournal); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("sub-account name is required")
	}
	ledgerType := domain.SubAccountLedgerType(req.LedgerType)
	code, ok := s.master.Lookup(req.AccountCode)
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("account code %s does not exist", req.AccountCode))
	}
	if code.Type != domain.Expense {
		return nil, apperrors.NewValidationError(fmt.Sprintf("sub-accounts can only refine expense codes, %s is %s", code.Code, code.Type))
	}
	if !code.AvailableFor(ledgerType.LedgerType()) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("account code %s is not available for %s ledgers", code.Code, ledgerType))
	}

	now := s.now()
	sub := domain.SubAccount{
		SubAccountID: uuid.NewString(),
		OwnerUserID:  actor.UserID,
		LedgerType:   ledgerType,
		AccountCode:  code.Code,
		Name:         name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}
	if err := s.subAccountRepo.SaveSubAccount(ctx, sub); err != nil {
		s.LogError(ctx, err, "Failed to save sub-account")
		return nil, err
	}
	return &sub, nil
}

// RenameSubAccount changes only the display name; the parent code is fixed.
func (s *subAccountService) RenameSubAccount(ctx context.Context, actor domain.Actor, subAccountID string, req dto.RenameSubAccountRequest) (*domain.SubAccount, error) {
	if err := s.AuthorizeActor(ctx, actor, domain.PermSubmitJournal); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("sub-account name is required")
	}
	sub, err := s.subAccountRepo.FindSubAccountByID(ctx, subAccountID)
	if err != nil {
		return nil, err
	}
	if sub.OwnerUserID != actor.UserID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("sub-account %s not found", subAccountID))
	}
	now := s.now()
	if err := s.subAccountRepo.RenameSubAccount(ctx, subAccountID, name, actor.UserID, now); err != nil {
		return nil, err
	}
	sub.Name = name
	sub.LastUpdatedAt = now
	sub.LastUpdatedBy = actor.UserID
	return sub, nil
}

func (s *subAccountService) ListSubAccounts(ctx context.Context, actor domain.Actor, ledgerType domain.SubAccountLedgerType) ([]domain.SubAccount, error) {
	if err := s.AuthorizeActor(ctx, actor, domain.PermViewJournal); err != nil {
		return nil, err
	}
	return s.subAccountRepo.ListSubAccounts(ctx, actor.UserID, ledgerType)
}

type accountMasterService struct {
	master *domain.AccountMaster
}

// NewAccountMasterService exposes master read-only.
func NewAccountMasterService(master *domain.AccountMaster) portssvc.AccountMasterSvc {
	if master == nil {
		master = domain.DefaultAccountMaster()
	}
	return &accountMasterService{master: master}
}

func (s *accountMasterService) ListAccountCodes(_ context.Context, ledgerType domain.LedgerType) []domain.AccountCode {
	return s.master.List(ledgerType)
}
