package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/doitintl/hello/account-onboarding/onboarding/domain"
	"github.com/doitintl/hello/account-onboarding/onboarding/templates"
)

func TestPrepareOnboarding_FirstTime(t *testing.T) {
	s, m := newTestService()
	ctx := context.Background()

	account := &domain.Account{
		ID:               "acc-1",
		Rev:              1,
		Name:             "production",
		AccountID:        "222222222222",
		PermissionStatus: domain.PermissionStatusNeedsOnboard,
	}
	m.accounts.On("MustFind", mock.Anything, "acc-1").Return(account, nil)
	m.templates.On("Get", templates.OnboardAccount).Return(testTemplate, nil)

	hash := contentHash(testTemplate)
	key := fmt.Sprintf("accounts/acc-1/us-east-1/%s.yaml", hash)
	signedURL := "https://onboarding-templates.s3.amazonaws.com/" + key + "?X-Amz-Signature=abc"
	expiry := time.Now().Add(signedURLExpiry)

	m.templateStore.On("Put", mock.Anything, key, testTemplate).Return(nil)
	m.templateStore.On("SignedURL", key, signedURLExpiry).Return(signedURL, expiry, nil)

	var recorded *domain.AccountUpdate

	m.accounts.On("Update", mock.Anything, mock.AnythingOfType("*domain.AccountUpdate")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(*domain.AccountUpdate)
		}).
		Return(account, nil)

	info, err := s.PrepareOnboarding(ctx, "acc-1")

	require.NoError(t, err)
	assert.Equal(t, "us-east-1", info.Region)
	assert.True(t, strings.HasPrefix(info.StackName, "doit-onboard-"), info.StackName)
	assert.Equal(t, testTemplate, info.Body)
	assert.Equal(t, hash, info.Hash)
	assert.Equal(t, signedURL, info.SignedURL)
	assert.Equal(t, expiry, info.URLExpiry)

	wantCreateURL := fmt.Sprintf(
		"https://console.aws.amazon.com/cloudformation/home?region=us-east-1#/stacks/create/review/?templateURL=%s&stackName=%s&param_Namespace=doit&param_CentralAccountId=111111111111&param_ExternalId=doitintl&param_ApiHandlerArn=%s&param_WorkflowRoleArn=%s",
		url.QueryEscape(signedURL),
		info.StackName,
		testSettings.APIHandlerArn,
		testSettings.WorkflowRoleArn,
	)
	assert.Equal(t, wantCreateURL, info.CreateStackURL)
	assert.Empty(t, info.UpdateStackURL)
	assert.Equal(t, "https://console.aws.amazon.com/cloudformation/home?region=us-east-1", info.ConsoleURL)

	// The first call pins the stack identity and moves the account to PENDING.
	require.NotNil(t, recorded)
	assert.Equal(t, "acc-1", recorded.ID)
	assert.Equal(t, int64(1), recorded.Rev)
	require.NotNil(t, recorded.CfnStackName)
	assert.Equal(t, info.StackName, *recorded.CfnStackName)
	require.NotNil(t, recorded.RoleArn)
	assert.Equal(t, "arn:aws:iam::222222222222:role/doit-cross-account-role", *recorded.RoleArn)
	require.NotNil(t, recorded.ExternalID)
	assert.Equal(t, "doitintl", *recorded.ExternalID)
	require.NotNil(t, recorded.PermissionStatus)
	assert.Equal(t, domain.PermissionStatusPending, *recorded.PermissionStatus)
}

func TestPrepareOnboarding_ExistingStack(t *testing.T) {
	s, m := newTestService()
	ctx := context.Background()

	account := onboardedAccount("acc-1", domain.PermissionStatusNeedsUpdate)
	m.accounts.On("MustFind", mock.Anything, "acc-1").Return(account, nil)
	m.templates.On("Get", templates.OnboardAccount).Return(testTemplate, nil)

	signedURL := "https://onboarding-templates.s3.amazonaws.com/signed"
	m.templateStore.On("Put", mock.Anything, mock.AnythingOfType("string"), testTemplate).Return(nil)
	m.templateStore.On("SignedURL", mock.AnythingOfType("string"), signedURLExpiry).
		Return(signedURL, time.Now().Add(signedURLExpiry), nil)

	info, err := s.PrepareOnboarding(ctx, "acc-1")

	require.NoError(t, err)
	assert.Equal(t, account.CfnStackName, info.StackName)

	wantUpdateURL := fmt.Sprintf(
		"https://console.aws.amazon.com/cloudformation/home?region=us-east-1#/stacks/update/template?stackId=%s&templateURL=%s",
		url.QueryEscape(account.CfnStackID),
		url.QueryEscape(signedURL),
	)
	assert.Equal(t, wantUpdateURL, info.UpdateStackURL)

	// Stack identity is already recorded; repeat preparations must not touch
	// the account.
	m.accounts.AssertNumberOfCalls(t, "Update", 0)
}

func TestPrepareOnboarding_ReusesStackNameAcrossRetries(t *testing.T) {
	s, m := newTestService()
	ctx := context.Background()

	// The stack name was pinned by an earlier preparation that the user never
	// completed in the console. RoleArn is recorded, no stack exists yet.
	account := &domain.Account{
		ID:               "acc-1",
		Rev:              2,
		AccountID:        "222222222222",
		ExternalID:       "doitintl",
		CfnStackName:     "doit-onboard-ab12cd34",
		RoleArn:          testRoleArn,
		PermissionStatus: domain.PermissionStatusPending,
	}
	m.accounts.On("MustFind", mock.Anything, "acc-1").Return(account, nil)
	m.templates.On("Get", templates.OnboardAccount).Return(testTemplate, nil)

	m.templateStore.On("Put", mock.Anything, mock.AnythingOfType("string"), testTemplate).Return(nil)
	m.templateStore.On("SignedURL", mock.AnythingOfType("string"), signedURLExpiry).
		Return("https://onboarding-templates.s3.amazonaws.com/signed", time.Now().Add(signedURLExpiry), nil)

	info, err := s.PrepareOnboarding(ctx, "acc-1")

	require.NoError(t, err)
	assert.Equal(t, "doit-onboard-ab12cd34", info.StackName)
	m.accounts.AssertNumberOfCalls(t, "Update", 0)
}

func TestPrepareOnboarding_UploadFailure(t *testing.T) {
	s, m := newTestService()
	ctx := context.Background()

	account := &domain.Account{
		ID:               "acc-1",
		Rev:              1,
		AccountID:        "222222222222",
		PermissionStatus: domain.PermissionStatusNeedsOnboard,
	}
	m.accounts.On("MustFind", mock.Anything, "acc-1").Return(account, nil)
	m.templates.On("Get", templates.OnboardAccount).Return(testTemplate, nil)

	m.templateStore.On("Put", mock.Anything, mock.AnythingOfType("string"), testTemplate).
		Return(assert.AnError)

	_, err := s.PrepareOnboarding(ctx, "acc-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "uploading template for account acc-1")
	m.templateStore.AssertNumberOfCalls(t, "SignedURL", 0)
	m.accounts.AssertNumberOfCalls(t, "Update", 0)
}
