package connection

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/endpoints"
	"github.com/aws/aws-sdk-go/aws/session"

	"github.com/doitintl/hello/account-onboarding/logger"
)

// AWSClient holds the base session for our own management account. Per
// customer account sessions are derived from it with sts:AssumeRole.
type AWSClient struct {
	awsSession *session.Session
}

// NewAWS initializes the base AWS session using the ambient credentials chain.
func NewAWS(log *logger.Logging) (*AWSClient, error) {
	s, err := session.NewSession(&aws.Config{
		Region: aws.String(endpoints.UsEast1RegionID),
	})
	if err != nil {
		return nil, err
	}

	return &AWSClient{s}, nil
}

// AWS returns the base session for the management account.
func (c *AWSClient) AWS() *session.Session {
	return c.awsSession
}
