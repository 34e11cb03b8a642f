package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/doitintl/hello/account-onboarding/auditlog"
	"github.com/doitintl/hello/account-onboarding/iam"
	"github.com/doitintl/hello/account-onboarding/onboarding/domain"
	"github.com/doitintl/hello/account-onboarding/onboarding/templates"
)

// PrepareOnboarding renders and uploads the permission template for the
// account and returns everything the console needs to create or update its
// stack. The first call for an account also records the stack identity and
// moves the account from NEEDSONBOARD to PENDING.
func (s *Service) PrepareOnboarding(ctx context.Context, accountID string) (*domain.TemplateInfo, error) {
	if err := s.authorizer.AssertAuthorized(ctx, iam.ActionAccountsOnboard, accountID); err != nil {
		return nil, err
	}

	account, err := s.accounts.MustFind(ctx, accountID)
	if err != nil {
		return nil, err
	}

	body, err := s.templates.Get(templates.OnboardAccount)
	if err != nil {
		return nil, err
	}

	stackName := account.CfnStackName
	if stackName == "" {
		stackName = s.newStackName()
	}

	hash := contentHash(body)
	key := fmt.Sprintf("accounts/%s/%s/%s.yaml", account.ID, s.settings.Region, hash)

	if err := s.templateStore.Put(ctx, key, body); err != nil {
		return nil, fmt.Errorf("uploading template for account %s: %w", account.ID, err)
	}

	signedURL, expiry, err := s.templateStore.SignedURL(key, signedURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("signing template url for account %s: %w", account.ID, err)
	}

	info := &domain.TemplateInfo{
		Region:         s.settings.Region,
		StackName:      stackName,
		Body:           body,
		Hash:           hash,
		SignedURL:      signedURL,
		URLExpiry:      expiry,
		CreateStackURL: s.createStackURL(account, stackName, signedURL),
		ConsoleURL:     s.consoleURL(),
	}

	if account.CfnStackID != "" {
		info.UpdateStackURL = s.updateStackURL(account, signedURL)
	}

	// First-time onboarding: record the stack identity on the account so the
	// next permission check knows what to look for.
	if account.CfnStackName != stackName || account.RoleArn == "" {
		if err := s.recordStackIdentity(ctx, account, stackName); err != nil {
			return nil, err
		}
	}

	s.audit.WriteAndForget(ctx, auditlog.Event{
		Action: "onboarding.prepare",
		Details: map[string]interface{}{
			"accountId": account.ID,
			"stackName": stackName,
			"hash":      hash,
		},
	})

	return info, nil
}

func (s *Service) recordStackIdentity(ctx context.Context, account *domain.Account, stackName string) error {
	externalID := s.settings.ExternalID
	roleArn := fmt.Sprintf("arn:aws:iam::%s:role/%s-cross-account-role",
		account.AccountID, s.settings.Namespace)

	update := &domain.AccountUpdate{
		ID:           account.ID,
		Rev:          account.Rev,
		CfnStackName: &stackName,
		ExternalID:   &externalID,
		RoleArn:      &roleArn,
	}

	if account.Status() == domain.PermissionStatusNeedsOnboard {
		pending := domain.PermissionStatusPending
		update.PermissionStatus = &pending
	}

	if _, err := s.accounts.Update(ctx, update); err != nil {
		return err
	}

	return nil
}

func (s *Service) newStackName() string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%s-onboard-%s", s.settings.Namespace, suffix)
}

func (s *Service) consoleURL() string {
	return fmt.Sprintf("https://console.aws.amazon.com/cloudformation/home?region=%s",
		s.settings.Region)
}

// createStackURL builds the console create-stack deep link. The query shape
// is fixed; the console rejects reordered or renamed parameters.
func (s *Service) createStackURL(account *domain.Account, stackName, signedURL string) string {
	externalID := account.ExternalID
	if externalID == "" {
		externalID = s.settings.ExternalID
	}

	return fmt.Sprintf(
		"%s#/stacks/create/review/?templateURL=%s&stackName=%s&param_Namespace=%s&param_CentralAccountId=%s&param_ExternalId=%s&param_ApiHandlerArn=%s&param_WorkflowRoleArn=%s",
		s.consoleURL(),
		url.QueryEscape(signedURL),
		stackName,
		s.settings.Namespace,
		s.settings.CentralAccountID,
		externalID,
		s.settings.APIHandlerArn,
		s.settings.WorkflowRoleArn,
	)
}

func (s *Service) updateStackURL(account *domain.Account, signedURL string) string {
	return fmt.Sprintf(
		"%s#/stacks/update/template?stackId=%s&templateURL=%s",
		s.consoleURL(),
		url.QueryEscape(account.CfnStackID),
		url.QueryEscape(signedURL),
	)
}

func contentHash(body string) string {
	sum := sha256.Sum256([]byte(body))
	return hex.EncodeToString(sum[:])
}
