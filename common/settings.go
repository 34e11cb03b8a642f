package common

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws/endpoints"
)

// DefaultExternalID is the sentinel external id used for cross-account role
// assumption when an account was onboarded without a custom one.
const DefaultExternalID = "doitintl"

// Settings holds every configuration value the onboarding flows need.
// It is built once at startup and passed by value; nothing reads the
// environment at call time.
type Settings struct {
	// Region is the region CloudFormation stacks are deployed to.
	Region string

	// TemplateBucket is the bucket rendered templates are uploaded to.
	TemplateBucket string

	// Namespace prefixes stack names and cross-account role names.
	Namespace string

	// CentralAccountID is the account id of our own management account.
	CentralAccountID string

	// APIHandlerArn and WorkflowRoleArn are passed as stack parameters so the
	// deployed stack can grant them cross-account access.
	APIHandlerArn   string
	WorkflowRoleArn string

	// ExternalID is the sentinel external id for role assumption.
	ExternalID string
}

// NewSettingsFromEnv builds the onboarding settings from the environment.
// Missing required keys are an error, not a runtime surprise later on.
func NewSettingsFromEnv() (Settings, error) {
	s := Settings{
		Region:           GetEnv("AWS_ONBOARD_REGION", endpoints.UsEast1RegionID),
		TemplateBucket:   GetEnv("AWS_ONBOARD_TEMPLATE_BUCKET", ""),
		Namespace:        GetEnv("AWS_ONBOARD_NAMESPACE", "doit"),
		CentralAccountID: GetEnv("AWS_ONBOARD_CENTRAL_ACCOUNT_ID", ""),
		APIHandlerArn:    GetEnv("AWS_ONBOARD_API_HANDLER_ARN", ""),
		WorkflowRoleArn:  GetEnv("AWS_ONBOARD_WORKFLOW_ROLE_ARN", ""),
		ExternalID:       GetEnv("AWS_ONBOARD_EXTERNAL_ID", DefaultExternalID),
	}

	for key, value := range map[string]string{
		"AWS_ONBOARD_TEMPLATE_BUCKET":    s.TemplateBucket,
		"AWS_ONBOARD_CENTRAL_ACCOUNT_ID": s.CentralAccountID,
		"AWS_ONBOARD_API_HANDLER_ARN":    s.APIHandlerArn,
		"AWS_ONBOARD_WORKFLOW_ROLE_ARN":  s.WorkflowRoleArn,
	} {
		if value == "" {
			return Settings{}, fmt.Errorf("environment variable %s is not set", key)
		}
	}

	return s, nil
}
