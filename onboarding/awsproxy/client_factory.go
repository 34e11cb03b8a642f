package awsproxy

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/aws-sdk-go/service/sts"

	"github.com/doitintl/hello/account-onboarding/onboarding/domain"
)

const roleSessionName = "AccountOnboarding"

type clientFactory struct {
	baseSession *session.Session
}

// NewClientFactory returns a factory deriving per-account CloudFormation
// clients from the management account's base session.
func NewClientFactory(baseSession *session.Session) ClientFactory {
	return &clientFactory{baseSession}
}

func (f *clientFactory) ClientFor(ctx context.Context, roleArn, externalID, region string) (StackClient, error) {
	stsService := sts.New(f.baseSession)

	assumedRole, err := stsService.AssumeRoleWithContext(ctx, &sts.AssumeRoleInput{
		RoleArn:         aws.String(roleArn),
		RoleSessionName: aws.String(roleSessionName),
		ExternalId:      aws.String(externalID),
	})
	if err != nil {
		return nil, domain.NewForbiddenError(
			fmt.Sprintf("could not assume role %s", roleArn), err)
	}

	assumedSession, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
		Credentials: credentials.NewStaticCredentials(
			*assumedRole.Credentials.AccessKeyId,
			*assumedRole.Credentials.SecretAccessKey,
			*assumedRole.Credentials.SessionToken,
		),
	})
	if err != nil {
		return nil, err
	}

	return &stackClient{cloudformation.New(assumedSession)}, nil
}

type stackClient struct {
	cfn *cloudformation.CloudFormation
}

func (c *stackClient) DescribeStack(ctx context.Context, stackName string) (*domain.Stack, error) {
	out, err := c.cfn.DescribeStacksWithContext(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(stackName),
	})
	if err != nil {
		if isStackNotFound(err) {
			return nil, domain.NewNotFoundError(
				fmt.Sprintf("stack %s not found", stackName), err)
		}

		return nil, err
	}

	for _, stack := range out.Stacks {
		if aws.StringValue(stack.StackName) != stackName {
			continue
		}

		outputs := make(map[string]string, len(stack.Outputs))
		for _, o := range stack.Outputs {
			outputs[aws.StringValue(o.OutputKey)] = aws.StringValue(o.OutputValue)
		}

		return &domain.Stack{
			ID:      aws.StringValue(stack.StackId),
			Name:    stackName,
			Status:  aws.StringValue(stack.StackStatus),
			Outputs: outputs,
		}, nil
	}

	return nil, domain.NewNotFoundError(
		fmt.Sprintf("stack %s not found", stackName), nil)
}

func (c *stackClient) GetTemplate(ctx context.Context, stackName string) (string, error) {
	out, err := c.cfn.GetTemplateWithContext(ctx, &cloudformation.GetTemplateInput{
		StackName: aws.String(stackName),
	})
	if err != nil {
		if isStackNotFound(err) {
			return "", domain.NewNotFoundError(
				fmt.Sprintf("stack %s not found", stackName), err)
		}

		return "", err
	}

	return aws.StringValue(out.TemplateBody), nil
}

// isStackNotFound detects the ValidationError CloudFormation returns for
// DescribeStacks/GetTemplate on a missing stack name.
func isStackNotFound(err error) bool {
	if awsErr, ok := err.(awserr.Error); ok {
		return awsErr.Code() == "ValidationError" &&
			strings.Contains(awsErr.Message(), "does not exist")
	}

	return false
}
