package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/polifund_ledger/internal/apperrors"
	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	"github.com/SscSPs/polifund_ledger/internal/core/services"
	"github.com/SscSPs/polifund_ledger/internal/dto"
)

func TestCreateSubAccount(t *testing.T) {
	actor := domain.Actor{UserID: "user-1", Role: domain.RoleSubmitter}
	testCases := []struct {
		name    string
		req     dto.CreateSubAccountRequest
		wantErr error
	}{
		{name: "expense code for organization", req: dto.CreateSubAccountRequest{LedgerType: "political_organization", AccountCode: "EXP_OFFICE", Name: "Rent"}},
		{name: "unknown code", req: dto.CreateSubAccountRequest{LedgerType: "political_organization", AccountCode: "EXP_NOPE", Name: "x"}, wantErr: apperrors.ErrNotFound},
		{name: "revenue code", req: dto.CreateSubAccountRequest{LedgerType: "political_organization", AccountCode: "REV_INDIVIDUAL", Name: "x"}, wantErr: apperrors.ErrValidation},
		{name: "code not available for elections", req: dto.CreateSubAccountRequest{LedgerType: "election", AccountCode: "EXP_OFFICE", Name: "x"}, wantErr: apperrors.ErrValidation},
		{name: "blank name", req: dto.CreateSubAccountRequest{LedgerType: "election", AccountCode: "EXP_PRINTING", Name: "  "}, wantErr: apperrors.ErrValidation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockSubAccountRepository)
			if tc.wantErr == nil {
				repo.On("SaveSubAccount", mock.Anything, mock.AnythingOfType("domain.SubAccount")).Return(nil).Once()
			}
			svc := services.NewSubAccountService(repo, nil)

			sub, err := svc.CreateSubAccount(context.Background(), actor, tc.req)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				repo.AssertNotCalled(t, "SaveSubAccount", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.req.AccountCode, sub.AccountCode)
			assert.Equal(t, actor.UserID, sub.OwnerUserID)
			repo.AssertExpectations(t)
		})
	}
}

func TestRenameSubAccount_KeepsAccountCode(t *testing.T) {
	ctx := context.Background()
	actor := domain.Actor{UserID: "user-1", Role: domain.RoleAccountant}
	repo := new(MockSubAccountRepository)
	repo.On("FindSubAccountByID", ctx, "sub-1").Return(&domain.SubAccount{
		SubAccountID: "sub-1", OwnerUserID: actor.UserID, AccountCode: "EXP_OFFICE", Name: "Rent",
	}, nil).Once()
	repo.On("RenameSubAccount", ctx, "sub-1", "Office rent", actor.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	svc := services.NewSubAccountService(repo, nil)

	sub, err := svc.RenameSubAccount(ctx, actor, "sub-1", dto.RenameSubAccountRequest{Name: "Office rent"})

	require.NoError(t, err)
	assert.Equal(t, "Office rent", sub.Name)
	assert.Equal(t, "EXP_OFFICE", sub.AccountCode)
	assert.WithinDuration(t, time.Now(), sub.LastUpdatedAt, time.Minute)
	repo.AssertExpectations(t)
}

func TestRenameSubAccount_OtherOwnerIsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSubAccountRepository)
	repo.On("FindSubAccountByID", ctx, "sub-1").Return(&domain.SubAccount{SubAccountID: "sub-1", OwnerUserID: "someone"}, nil).Once()
	svc := services.NewSubAccountService(repo, nil)

	_, err := svc.RenameSubAccount(ctx, domain.Actor{UserID: "user-1", Role: domain.RoleAccountant}, "sub-1", dto.RenameSubAccountRequest{Name: "x"})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	repo.AssertNotCalled(t, "RenameSubAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListAccountCodes_FiltersByLedger(t *testing.T) {
	svc := services.NewAccountMasterService(nil)

	for _, c := range svc.ListAccountCodes(context.Background(), domain.LedgerElection) {
		assert.True(t, c.AvailableFor(domain.LedgerElection), c.Code)
		assert.NotEqual(t, "EXP_OFFICE", c.Code)
	}
	assert.Greater(t, len(svc.ListAccountCodes(context.Background(), "")), len(svc.ListAccountCodes(context.Background(), domain.LedgerElection)))
}
