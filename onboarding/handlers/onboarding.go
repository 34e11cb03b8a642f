package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/doitintl/hello/account-onboarding/common"
	"github.com/doitintl/hello/account-onboarding/framework/connection"
	"github.com/doitintl/hello/account-onboarding/framework/web"
	"github.com/doitintl/hello/account-onboarding/logger"
	"github.com/doitintl/hello/account-onboarding/onboarding/domain"
	"github.com/doitintl/hello/account-onboarding/onboarding/service"
)

type Onboarding struct {
	loggerProvider logger.Provider
	service        *service.Service
}

func NewOnboarding(log logger.Provider, conn *connection.Connection, settings common.Settings) *Onboarding {
	return &Onboarding{
		log,
		service.NewService(log, conn, settings),
	}
}

// checkResponse is the per-account {status, info} pair consumed by the UI.
type checkResponse struct {
	Status domain.PermissionStatus `json:"status"`
	Info   string                  `json:"info,omitempty"`
}

// batchResponse aggregates a full reconciliation run.
type batchResponse struct {
	Statuses map[string]domain.PermissionStatus `json:"statuses"`
	Errors   map[string]string                  `json:"errors"`
}

func (h *Onboarding) ListAccountsHandler(ctx *gin.Context) error {
	accounts, err := h.service.ListAccounts(ctx)
	if err != nil {
		return handleServiceError(err)
	}

	return web.Respond(ctx, accounts, http.StatusOK)
}

func (h *Onboarding) GetAccountHandler(ctx *gin.Context) error {
	accountID := ctx.Param("accountID")
	if accountID == "" {
		return web.NewRequestError(errors.New("missing accountID parameter"), http.StatusBadRequest)
	}

	account, err := h.service.GetAccount(ctx, accountID)
	if err != nil {
		return handleServiceError(err)
	}

	return web.Respond(ctx, account, http.StatusOK)
}

func (h *Onboarding) CreateAccountHandler(ctx *gin.Context) error {
	type payload struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
		AccountID   string `json:"accountId" validate:"required,len=12,numeric"`
		ExternalID  string `json:"externalId"`
	}

	var body payload

	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := validator.New().Struct(body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	account, err := h.service.CreateAccount(ctx, &domain.Account{
		Name:        body.Name,
		Description: body.Description,
		AccountID:   body.AccountID,
		ExternalID:  body.ExternalID,
	})
	if err != nil {
		return handleServiceError(err)
	}

	return web.Respond(ctx, account, http.StatusCreated)
}

func (h *Onboarding) UpdateAccountHandler(ctx *gin.Context) error {
	accountID := ctx.Param("accountID")
	if accountID == "" {
		return web.NewRequestError(errors.New("missing accountID parameter"), http.StatusBadRequest)
	}

	type payload struct {
		Rev         int64   `json:"rev" validate:"required,gt=0"`
		Name        *string `json:"name"`
		Description *string `json:"description"`
		AccountID   *string `json:"accountId" validate:"omitempty,len=12,numeric"`
		ExternalID  *string `json:"externalId"`
	}

	var body payload

	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := validator.New().Struct(body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	account, err := h.service.UpdateAccount(ctx, &domain.AccountUpdate{
		ID:          accountID,
		Rev:         body.Rev,
		Name:        body.Name,
		Description: body.Description,
		AccountID:   body.AccountID,
		ExternalID:  body.ExternalID,
	})
	if err != nil {
		return handleServiceError(err)
	}

	return web.Respond(ctx, account, http.StatusOK)
}

func (h *Onboarding) PrepareOnboardingHandler(ctx *gin.Context) error {
	accountID := ctx.Param("accountID")
	if accountID == "" {
		return web.NewRequestError(errors.New("missing accountID parameter"), http.StatusBadRequest)
	}

	h.loggerProvider(ctx).SetLabel(logger.LabelAccountID, accountID)

	info, err := h.service.PrepareOnboarding(ctx, accountID)
	if err != nil {
		return handleServiceError(err)
	}

	return web.Respond(ctx, info, http.StatusOK)
}

func (h *Onboarding) FinishOnboardingHandler(ctx *gin.Context) error {
	accountID := ctx.Param("accountID")
	if accountID == "" {
		return web.NewRequestError(errors.New("missing accountID parameter"), http.StatusBadRequest)
	}

	h.loggerProvider(ctx).SetLabel(logger.LabelAccountID, accountID)

	if err := h.service.FinishOnboarding(ctx, accountID); err != nil {
		return handleServiceError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

func (h *Onboarding) CheckPermissionsHandler(ctx *gin.Context) error {
	accountID := ctx.Param("accountID")
	if accountID == "" {
		return web.NewRequestError(errors.New("missing accountID parameter"), http.StatusBadRequest)
	}

	h.loggerProvider(ctx).SetLabel(logger.LabelAccountID, accountID)

	status, info, err := h.service.CheckAccountPermissions(ctx, accountID)
	if err != nil {
		return handleServiceError(err)
	}

	return web.Respond(ctx, checkResponse{Status: status, Info: info}, http.StatusOK)
}

func (h *Onboarding) BatchCheckPermissionsHandler(ctx *gin.Context) error {
	batchSize := 0

	if v := ctx.Query("batchSize"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return web.NewRequestError(errors.New("invalid batchSize parameter"), http.StatusBadRequest)
		}

		batchSize = parsed
	}

	statuses, errs, err := h.service.BatchCheckAccountPermissions(ctx, batchSize)
	if err != nil {
		return handleServiceError(err)
	}

	return web.Respond(ctx, batchResponse{Statuses: statuses, Errors: errs}, http.StatusOK)
}

// handleServiceError maps service error kinds to request errors. The response
// carries the error's safe message only.
func handleServiceError(err error) error {
	status := http.StatusInternalServerError

	switch domain.KindOf(err) {
	case domain.ErrorKindNotFound:
		status = http.StatusNotFound
	case domain.ErrorKindForbidden:
		status = http.StatusForbidden
	case domain.ErrorKindConflict:
		status = http.StatusConflict
	case domain.ErrorKindBadRequest:
		status = http.StatusBadRequest
	}

	return web.NewRequestError(errors.New(domain.UserMessage(err)), status)
}
