//go:generate mockery --output=./mocks --all
package awsproxy

import (
	"context"
	"time"

	"github.com/doitintl/hello/account-onboarding/onboarding/domain"
)

// StackClient queries CloudFormation state in a customer account.
type StackClient interface {
	// DescribeStack returns the stack with the exact given name.
	DescribeStack(ctx context.Context, stackName string) (*domain.Stack, error)

	// GetTemplate returns the template body of the deployed stack.
	GetTemplate(ctx context.Context, stackName string) (string, error)
}

// ClientFactory builds authenticated StackClients for customer accounts.
type ClientFactory interface {
	// ClientFor assumes the given role with the external id and returns a
	// client scoped to the target account and region.
	ClientFor(ctx context.Context, roleArn, externalID, region string) (StackClient, error)
}

// TemplateStore uploads rendered templates and signs download URLs for them.
type TemplateStore interface {
	Put(ctx context.Context, key, body string) error

	// SignedURL returns a time-limited URL for the uploaded object together
	// with the absolute expiry instant.
	SignedURL(key string, expire time.Duration) (string, time.Time, error)
}
