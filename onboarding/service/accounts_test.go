package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/doitintl/hello/account-onboarding/auditlog"
	"github.com/doitintl/hello/account-onboarding/iam"
	iamMocks "github.com/doitintl/hello/account-onboarding/iam/mocks"
	"github.com/doitintl/hello/account-onboarding/onboarding/domain"
)

func TestListAccounts(t *testing.T) {
	s, m := newTestService()
	ctx := context.Background()

	accounts := []*domain.Account{
		{ID: "acc-1", Rev: 1},
		{ID: "acc-2", Rev: 4},
	}
	m.accounts.On("List", mock.Anything).Return(accounts, nil)

	got, err := s.ListAccounts(ctx)

	require.NoError(t, err)
	assert.Equal(t, accounts, got)
}

func TestListAccounts_Forbidden(t *testing.T) {
	s, m := newTestService()
	ctx := context.Background()

	authorizer := &iamMocks.Authorizer{}
	authorizer.On("AssertAuthorized", mock.Anything, iam.ActionAccountsRead).
		Return(domain.NewForbiddenError("caller is not authenticated", nil))
	s.authorizer = authorizer

	_, err := s.ListAccounts(ctx)

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.ErrorKindForbidden))
	m.accounts.AssertNumberOfCalls(t, "List", 0)
}

func TestCreateAccount(t *testing.T) {
	s, m := newTestService()
	ctx := context.Background()

	created := &domain.Account{
		ID:               "acc-1",
		Rev:              1,
		Name:             "production",
		AccountID:        "222222222222",
		PermissionStatus: domain.PermissionStatusNeedsOnboard,
	}
	m.accounts.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Account) bool {
		return a.Name == "production" &&
			a.AccountID == "222222222222" &&
			a.PermissionStatus == domain.PermissionStatusNeedsOnboard
	})).Return(created, nil)

	got, err := s.CreateAccount(ctx, &domain.Account{
		Name:      "production",
		AccountID: "222222222222",

		// Callers cannot seed an arbitrary status.
		PermissionStatus: domain.PermissionStatusCurrent,
	})

	require.NoError(t, err)
	assert.Equal(t, created, got)
	m.audit.AssertCalled(t, "WriteAndForget", mock.Anything, mock.MatchedBy(func(e auditlog.Event) bool {
		return e.Action == "accounts.create"
	}))
}

func TestCreateAccount_Validation(t *testing.T) {
	tests := []struct {
		name    string
		account *domain.Account
	}{
		{
			name:    "missing name",
			account: &domain.Account{AccountID: "222222222222"},
		},
		{
			name:    "short account number",
			account: &domain.Account{Name: "production", AccountID: "1234"},
		},
		{
			name:    "non numeric account number",
			account: &domain.Account{Name: "production", AccountID: "22222222222x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService()

			_, err := s.CreateAccount(context.Background(), tt.account)

			require.Error(t, err)
			assert.True(t, domain.IsKind(err, domain.ErrorKindBadRequest))
			m.accounts.AssertNumberOfCalls(t, "Create", 0)
		})
	}
}

func TestUpdateAccount(t *testing.T) {
	s, m := newTestService()
	ctx := context.Background()

	name := "staging"
	update := &domain.AccountUpdate{ID: "acc-1", Rev: 3, Name: &name}

	updated := &domain.Account{ID: "acc-1", Rev: 4, Name: name}
	m.accounts.On("Update", mock.Anything, update).Return(updated, nil)

	got, err := s.UpdateAccount(ctx, update)

	require.NoError(t, err)
	assert.Equal(t, updated, got)
	m.audit.AssertCalled(t, "WriteAndForget", mock.Anything, mock.MatchedBy(func(e auditlog.Event) bool {
		return e.Action == "accounts.update"
	}))
}

func TestUpdateAccount_MissingRev(t *testing.T) {
	s, m := newTestService()

	_, err := s.UpdateAccount(context.Background(), &domain.AccountUpdate{ID: "acc-1"})

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.ErrorKindBadRequest))
	m.accounts.AssertNumberOfCalls(t, "Update", 0)
}

func TestUpdateAccount_InvalidAccountID(t *testing.T) {
	s, m := newTestService()

	bad := "not-a-number"

	_, err := s.UpdateAccount(context.Background(), &domain.AccountUpdate{
		ID:        "acc-1",
		Rev:       3,
		AccountID: &bad,
	})

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.ErrorKindBadRequest))
	m.accounts.AssertNumberOfCalls(t, "Update", 0)
}
