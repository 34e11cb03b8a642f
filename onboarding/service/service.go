package service

import (
	"time"

	"github.com/doitintl/hello/account-onboarding/auditlog"
	"github.com/doitintl/hello/account-onboarding/common"
	"github.com/doitintl/hello/account-onboarding/framework/connection"
	"github.com/doitintl/hello/account-onboarding/iam"
	"github.com/doitintl/hello/account-onboarding/logger"
	"github.com/doitintl/hello/account-onboarding/onboarding/awsproxy"
	"github.com/doitintl/hello/account-onboarding/onboarding/dal"
	"github.com/doitintl/hello/account-onboarding/onboarding/templates"
)

const (
	// DefaultBatchSize caps concurrent cross-account calls per batch round.
	DefaultBatchSize = 5

	// signedURLExpiry bounds the lifetime of uploaded template links.
	signedURLExpiry = 12 * time.Hour

	// checkTimeout bounds a single account's permission check so a hung
	// cross-account call never stalls the remaining batches.
	checkTimeout = 30 * time.Second
)

// Service implements the account onboarding and permission reconciliation
// workflows.
type Service struct {
	loggerProvider logger.Provider
	settings       common.Settings

	accounts      dal.Accounts
	templates     templates.Provider
	templateStore awsproxy.TemplateStore
	clientFactory awsproxy.ClientFactory
	authorizer    iam.Authorizer
	audit         auditlog.Writer
}

// NewService wires the onboarding service with its production collaborators.
func NewService(log logger.Provider, conn *connection.Connection, settings common.Settings) *Service {
	return &Service{
		loggerProvider: log,
		settings:       settings,
		accounts:       dal.NewAccountsFirestoreWithClient(conn.Firestore),
		templates:      templates.NewProvider(),
		templateStore:  awsproxy.NewTemplateStore(conn.AWS(), settings.Region, settings.TemplateBucket),
		clientFactory:  awsproxy.NewClientFactory(conn.AWS()),
		authorizer:     iam.NewAuthorizer(conn),
		audit:          auditlog.NewWriter(log, conn),
	}
}
