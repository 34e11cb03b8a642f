package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullyOnboarded() *Account {
	return &Account{
		ID:               "acc-1",
		AccountID:        "222222222222",
		ExternalID:       "doitintl",
		CfnStackName:     "doit-onboard-ab12cd34",
		CfnStackID:       "arn:aws:cloudformation:us-east-1:222222222222:stack/doit-onboard-ab12cd34/1111",
		RoleArn:          "arn:aws:iam::222222222222:role/doit-cross-account-role",
		VpcID:            "vpc-0a1b2c3d",
		SubnetID:         "subnet-0a1b2c3d",
		EncryptionKeyArn: "arn:aws:kms:us-east-1:222222222222:key/abc",
	}
}

func TestAccountOnboarded(t *testing.T) {
	assert.True(t, fullyOnboarded().Onboarded())

	clear := []struct {
		name  string
		unset func(a *Account)
	}{
		{"roleArn", func(a *Account) { a.RoleArn = "" }},
		{"externalId", func(a *Account) { a.ExternalID = "" }},
		{"vpcId", func(a *Account) { a.VpcID = "" }},
		{"subnetId", func(a *Account) { a.SubnetID = "" }},
		{"encryptionKeyArn", func(a *Account) { a.EncryptionKeyArn = "" }},
		{"cfnStackId", func(a *Account) { a.CfnStackID = "" }},
	}

	for _, tt := range clear {
		t.Run("missing "+tt.name, func(t *testing.T) {
			account := fullyOnboarded()
			tt.unset(account)
			assert.False(t, account.Onboarded())
		})
	}
}

func TestAccountStatusNormalizes(t *testing.T) {
	account := fullyOnboarded()
	account.PermissionStatus = PermissionStatusNoStackName

	assert.Equal(t, PermissionStatusNeedsOnboard, account.Status())
}

func TestValidAccountID(t *testing.T) {
	assert.True(t, ValidAccountID("222222222222"))

	for _, v := range []string{"", "1234", "2222222222223", "22222222222x", " 22222222222"} {
		assert.False(t, ValidAccountID(v), v)
	}
}
