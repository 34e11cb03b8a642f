package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/doitintl/hello/account-onboarding/auditlog"
	"github.com/doitintl/hello/account-onboarding/iam"
	"github.com/doitintl/hello/account-onboarding/onboarding/domain"
	"github.com/doitintl/hello/account-onboarding/onboarding/templates"
)

const msgNeedsOnboard = "account has no permission stack yet, onboarding required"

// CheckAccountPermissions reconciles a single account's permission status
// against its deployed stack. Check failures become a status, not an error:
// only a missing account or a denied caller fails the call itself.
func (s *Service) CheckAccountPermissions(ctx context.Context, accountID string) (domain.PermissionStatus, string, error) {
	if err := s.authorizer.AssertAuthorized(ctx, iam.ActionAccountsRead, accountID); err != nil {
		return "", "", err
	}

	account, err := s.accounts.MustFind(ctx, accountID)
	if err != nil {
		return "", "", err
	}

	status, info := s.checkAccount(ctx, account)

	return status, info, nil
}

// FinishOnboarding harvests the deployed stack's outputs into the account
// record. It is invoked automatically by the permission check once a stack
// reports a verdict, and can be called directly to retry a failed harvest.
func (s *Service) FinishOnboarding(ctx context.Context, accountID string) error {
	if err := s.authorizer.AssertAuthorized(ctx, iam.ActionAccountsOnboard, accountID); err != nil {
		return err
	}

	account, err := s.accounts.MustFind(ctx, accountID)
	if err != nil {
		return err
	}

	return s.finishOnboarding(ctx, account)
}

// BatchCheckAccountPermissions reconciles every account, at most batchSize at
// a time. A batch must settle before the next one starts, capping in-flight
// cross-account calls. One account's failure never aborts the scan; failures
// are returned as per-account messages alongside the status map.
func (s *Service) BatchCheckAccountPermissions(ctx context.Context, batchSize int) (map[string]domain.PermissionStatus, map[string]string, error) {
	if err := s.authorizer.AssertAuthorized(ctx, iam.ActionAccountsReconcile); err != nil {
		return nil, nil, err
	}

	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	var (
		mu                sync.Mutex
		statusByAccountID = make(map[string]domain.PermissionStatus, len(accounts))
		errorsByAccountID = make(map[string]string)
		updateErrs        *multierror.Error
	)

	for start := 0; start < len(accounts); start += batchSize {
		end := start + batchSize
		if end > len(accounts) {
			end = len(accounts)
		}

		g, gctx := errgroup.WithContext(ctx)

		for _, account := range accounts[start:end] {
			account := account

			g.Go(func() error {
				checkCtx, cancel := context.WithTimeout(gctx, checkTimeout)
				defer cancel()

				status, info := s.checkAccount(checkCtx, account)

				mu.Lock()
				statusByAccountID[account.ID] = status
				if info != "" {
					errorsByAccountID[account.ID] = info
				}
				mu.Unlock()

				if status == account.Status() {
					return nil
				}

				if err := s.persistStatus(ctx, account, status); err != nil {
					mu.Lock()
					errorsByAccountID[account.ID] = domain.UserMessage(err)
					updateErrs = multierror.Append(updateErrs, fmt.Errorf("account %s: %w", account.ID, err))
					mu.Unlock()
				}

				return nil
			})
		}

		// Workers never return an error; Wait only fences the batch.
		_ = g.Wait()
	}

	if err := updateErrs.ErrorOrNil(); err != nil {
		s.loggerProvider(ctx).Errorf("batch permission check: %d status updates failed: %v",
			updateErrs.Len(), err)
	}

	s.audit.WriteAndForget(ctx, auditlog.Event{
		Action: "onboarding.batch-check",
		Details: map[string]interface{}{
			"accountsProcessed": len(accounts),
			"errors":            errorsByAccountID,
		},
	})

	return statusByAccountID, errorsByAccountID, nil
}

// checkAccount runs the permission state machine for one account. The second
// return value carries a user-safe explanation when the status is degraded.
func (s *Service) checkAccount(ctx context.Context, account *domain.Account) (domain.PermissionStatus, string) {
	// Never auto-escalate an account that has no stack to check.
	if account.CfnStackName == "" || account.Status() == domain.PermissionStatusNeedsOnboard {
		return domain.PermissionStatusNeedsOnboard, msgNeedsOnboard
	}

	status, err := s.compareDeployedTemplate(ctx, account)
	if err != nil {
		// A stack that is still being created is expected to 404; keep
		// reporting PENDING instead of flipping to ERRORED.
		if account.Status() == domain.PermissionStatusPending {
			return domain.PermissionStatusPending, domain.UserMessage(err)
		}

		return domain.PermissionStatusErrored, domain.UserMessage(err)
	}

	// A fresh verdict with unharvested outputs means the stack completed
	// after the last check; pull the outputs before finalizing.
	if !account.Onboarded() {
		if err := s.finishOnboarding(ctx, account); err != nil {
			if account.Status() == domain.PermissionStatusPending {
				return domain.PermissionStatusPending, domain.UserMessage(err)
			}

			return domain.PermissionStatusErrored, domain.UserMessage(err)
		}
	}

	return status, ""
}

func (s *Service) compareDeployedTemplate(ctx context.Context, account *domain.Account) (domain.PermissionStatus, error) {
	client, err := s.clientFactory.ClientFor(ctx, account.RoleArn, s.externalIDOf(account), s.settings.Region)
	if err != nil {
		return "", err
	}

	if _, err := client.DescribeStack(ctx, account.CfnStackName); err != nil {
		return "", err
	}

	deployed, err := client.GetTemplate(ctx, account.CfnStackName)
	if err != nil {
		return "", err
	}

	expected, err := s.templates.Get(templates.OnboardAccount)
	if err != nil {
		return "", err
	}

	return CompareTemplates(expected, deployed), nil
}

func (s *Service) finishOnboarding(ctx context.Context, account *domain.Account) error {
	client, err := s.clientFactory.ClientFor(ctx, account.RoleArn, s.externalIDOf(account), s.settings.Region)
	if err != nil {
		return err
	}

	stack, err := client.DescribeStack(ctx, account.CfnStackName)
	if err != nil {
		return err
	}

	outputs := make(map[string]string, 4)

	for _, key := range []string{
		domain.OutputVPC,
		domain.OutputVpcPublicSubnet1,
		domain.OutputEncryptionKeyArn,
		domain.OutputEnvMgmtRoleArn,
	} {
		value, ok := stack.Output(key)
		if !ok || value == "" {
			return domain.NewInternalError(
				fmt.Sprintf("stack %s is missing output %s", account.CfnStackName, key), nil)
		}

		outputs[key] = value
	}

	externalID := s.externalIDOf(account)

	update := &domain.AccountUpdate{
		ID:               account.ID,
		Rev:              account.Rev,
		CfnStackID:       &stack.ID,
		RoleArn:          stringPtr(outputs[domain.OutputEnvMgmtRoleArn]),
		VpcID:            stringPtr(outputs[domain.OutputVPC]),
		SubnetID:         stringPtr(outputs[domain.OutputVpcPublicSubnet1]),
		EncryptionKeyArn: stringPtr(outputs[domain.OutputEncryptionKeyArn]),
		ExternalID:       &externalID,
	}

	updated, err := s.accounts.Update(ctx, update)
	if err != nil {
		return domain.NewInternalError(
			fmt.Sprintf("failed to pull outputs from stack %s", account.CfnStackName), err)
	}

	// Later steps in the same check work off the harvested record.
	*account = *updated

	s.audit.WriteAndForget(ctx, auditlog.Event{
		Action: "onboarding.finish",
		Details: map[string]interface{}{
			"accountId": account.ID,
			"stackId":   stack.ID,
		},
	})

	return nil
}

// persistStatus writes the minimal field set a status transition needs.
func (s *Service) persistStatus(ctx context.Context, account *domain.Account, status domain.PermissionStatus) error {
	externalID := s.externalIDOf(account)

	_, err := s.accounts.Update(ctx, &domain.AccountUpdate{
		ID:               account.ID,
		Rev:              account.Rev,
		RoleArn:          &account.RoleArn,
		ExternalID:       &externalID,
		PermissionStatus: &status,
	})

	return err
}

func (s *Service) externalIDOf(account *domain.Account) string {
	if account.ExternalID != "" {
		return account.ExternalID
	}

	return s.settings.ExternalID
}

func stringPtr(v string) *string {
	return &v
}
