package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/doitintl/hello/account-onboarding/common"
	"github.com/doitintl/hello/account-onboarding/framework/connection"
	"github.com/doitintl/hello/account-onboarding/framework/mid"
	"github.com/doitintl/hello/account-onboarding/framework/web"
	"github.com/doitintl/hello/account-onboarding/logger"
	onboardingHandlers "github.com/doitintl/hello/account-onboarding/onboarding/handlers"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
	settings common.Settings
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection, settings common.Settings) *API {
	return &API{
		shutdown,
		logging,
		conn,
		settings,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	app := web.NewApp(
		a.shutdown,
		mid.Logger(),
		mid.Errors(),
		mid.Panics(),
	)

	app.Get("/health", func(ctx *gin.Context) error {
		return web.Respond(ctx, nil, http.StatusOK)
	})

	onboarding := onboardingHandlers.NewOnboarding(loggerProvider, a.conn, a.settings)

	accountsGroup := web.NewGroup(app, "/api/v1/accounts")
	{
		accountsGroup.Get("", onboarding.ListAccountsHandler)
		accountsGroup.Post("", onboarding.CreateAccountHandler)
		accountsGroup.Get("/:accountID", onboarding.GetAccountHandler)
		accountsGroup.Patch("/:accountID", onboarding.UpdateAccountHandler)

		accountsGroup.Post("/:accountID/onboard", onboarding.PrepareOnboardingHandler)
		accountsGroup.Post("/:accountID/onboard/finish", onboarding.FinishOnboardingHandler)
		accountsGroup.Get("/:accountID/permissions", onboarding.CheckPermissionsHandler)
	}

	tasksGroup := web.NewGroup(app, "/tasks")
	{
		tasksGroup.Post("/accounts/permissions", onboarding.BatchCheckPermissionsHandler)
	}

	return app
}
