package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doitintl/hello/account-onboarding/onboarding/domain"
)

func TestProviderGet(t *testing.T) {
	body, err := NewProvider().Get(OnboardAccount)

	require.NoError(t, err)
	require.NotEmpty(t, body)

	// The stack must publish the whole permission surface harvested at
	// finish-onboarding time.
	for _, output := range []string{
		domain.OutputVPC,
		domain.OutputVpcPublicSubnet1,
		domain.OutputEncryptionKeyArn,
		domain.OutputEnvMgmtRoleArn,
	} {
		assert.Contains(t, body, output+":")
	}

	for _, parameter := range []string{
		"Namespace",
		"CentralAccountId",
		"ExternalId",
		"ApiHandlerArn",
		"WorkflowRoleArn",
	} {
		assert.Contains(t, body, parameter+":")
	}
}

func TestProviderGet_Unknown(t *testing.T) {
	_, err := NewProvider().Get("no-such-template")

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.ErrorKindNotFound))
}
