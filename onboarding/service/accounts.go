package service

import (
	"context"

	"github.com/doitintl/hello/account-onboarding/auditlog"
	"github.com/doitintl/hello/account-onboarding/iam"
	"github.com/doitintl/hello/account-onboarding/onboarding/domain"
)

// ListAccounts returns every managed account record.
func (s *Service) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	if err := s.authorizer.AssertAuthorized(ctx, iam.ActionAccountsRead); err != nil {
		return nil, err
	}

	return s.accounts.List(ctx)
}

// GetAccount returns one account record.
func (s *Service) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	if err := s.authorizer.AssertAuthorized(ctx, iam.ActionAccountsRead, accountID); err != nil {
		return nil, err
	}

	return s.accounts.MustFind(ctx, accountID)
}

// CreateAccount seeds a new account record at NEEDSONBOARD.
func (s *Service) CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	if err := s.authorizer.AssertAuthorized(ctx, iam.ActionAccountsWrite); err != nil {
		return nil, err
	}

	if account.Name == "" {
		return nil, domain.NewBadRequestError("account name is required", nil)
	}

	if !domain.ValidAccountID(account.AccountID) {
		return nil, domain.NewBadRequestError("accountId must be a 12-digit account number", nil)
	}

	account.PermissionStatus = domain.PermissionStatusNeedsOnboard

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.audit.WriteAndForget(ctx, auditlog.Event{
		Action: "accounts.create",
		Details: map[string]interface{}{
			"accountId": created.ID,
		},
	})

	return created, nil
}

// UpdateAccount applies an admin metadata edit carrying the last-known
// revision.
func (s *Service) UpdateAccount(ctx context.Context, update *domain.AccountUpdate) (*domain.Account, error) {
	if err := s.authorizer.AssertAuthorized(ctx, iam.ActionAccountsWrite, update.ID); err != nil {
		return nil, err
	}

	if update.Rev <= 0 {
		return nil, domain.NewBadRequestError("account update must carry the last-known rev", nil)
	}

	if update.AccountID != nil && !domain.ValidAccountID(*update.AccountID) {
		return nil, domain.NewBadRequestError("accountId must be a 12-digit account number", nil)
	}

	updated, err := s.accounts.Update(ctx, update)
	if err != nil {
		return nil, err
	}

	s.audit.WriteAndForget(ctx, auditlog.Event{
		Action: "accounts.update",
		Details: map[string]interface{}{
			"accountId": updated.ID,
			"rev":       updated.Rev,
		},
	})

	return updated, nil
}
