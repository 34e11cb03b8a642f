package service

import (
	"github.com/stretchr/testify/mock"

	auditMocks "github.com/doitintl/hello/account-onboarding/auditlog/mocks"
	"github.com/doitintl/hello/account-onboarding/common"
	iamMocks "github.com/doitintl/hello/account-onboarding/iam/mocks"
	"github.com/doitintl/hello/account-onboarding/logger"
	awsMocks "github.com/doitintl/hello/account-onboarding/onboarding/awsproxy/mocks"
	dalMocks "github.com/doitintl/hello/account-onboarding/onboarding/dal/mocks"
	templateMocks "github.com/doitintl/hello/account-onboarding/onboarding/templates/mocks"
)

var testSettings = common.Settings{
	Region:           "us-east-1",
	TemplateBucket:   "onboarding-templates",
	Namespace:        "doit",
	CentralAccountID: "111111111111",
	APIHandlerArn:    "arn:aws:lambda:us-east-1:111111111111:function:api-handler",
	WorkflowRoleArn:  "arn:aws:iam::111111111111:role/workflow",
	ExternalID:       common.DefaultExternalID,
}

type serviceMocks struct {
	accounts      *dalMocks.Accounts
	templates     *templateMocks.Provider
	templateStore *awsMocks.TemplateStore
	clientFactory *awsMocks.ClientFactory
	authorizer    *iamMocks.Authorizer
	audit         *auditMocks.Writer
}

// newTestService builds a service over fresh mocks with a permissive
// authorizer and a no-op audit writer. Tests exercising authorization set up
// their own authorizer instead.
func newTestService() (*Service, *serviceMocks) {
	m := &serviceMocks{
		accounts:      &dalMocks.Accounts{},
		templates:     &templateMocks.Provider{},
		templateStore: &awsMocks.TemplateStore{},
		clientFactory: &awsMocks.ClientFactory{},
		authorizer:    &iamMocks.Authorizer{},
		audit:         &auditMocks.Writer{},
	}

	m.authorizer.On("AssertAuthorized", mock.Anything, mock.Anything).Return(nil)
	m.authorizer.On("AssertAuthorized", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.audit.On("WriteAndForget", mock.Anything, mock.Anything).Return()

	s := &Service{
		loggerProvider: logger.FromContext,
		settings:       testSettings,
		accounts:       m.accounts,
		templates:      m.templates,
		templateStore:  m.templateStore,
		clientFactory:  m.clientFactory,
		authorizer:     m.authorizer,
		audit:          m.audit,
	}

	return s, m
}
