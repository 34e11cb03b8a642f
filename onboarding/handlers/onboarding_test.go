package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doitintl/hello/account-onboarding/framework/web"
	"github.com/doitintl/hello/account-onboarding/onboarding/domain"
)

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "not found",
			err:        domain.NewNotFoundError("account acc-1 not found", nil),
			wantStatus: http.StatusNotFound,
			wantMsg:    "account acc-1 not found",
		},
		{
			name:       "forbidden",
			err:        domain.NewForbiddenError("caller is not authenticated", nil),
			wantStatus: http.StatusForbidden,
			wantMsg:    "caller is not authenticated",
		},
		{
			name:       "conflict",
			err:        domain.NewConflictError("account acc-1 was modified by someone else", nil),
			wantStatus: http.StatusConflict,
			wantMsg:    "account acc-1 was modified by someone else",
		},
		{
			name:       "bad request",
			err:        domain.NewBadRequestError("accountId must be a 12-digit account number", nil),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "accountId must be a 12-digit account number",
		},
		{
			name:       "internal",
			err:        domain.NewInternalError("failed to pull outputs from stack doit-onboard-ab12cd34", nil),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "failed to pull outputs from stack doit-onboard-ab12cd34",
		},
		{
			name:       "untagged errors stay generic",
			err:        errors.New("firestore: transport closed"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "operation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := handleServiceError(tt.err)

			var webErr *web.Error
			require.True(t, errors.As(got, &webErr))
			assert.Equal(t, tt.wantStatus, webErr.Status)
			assert.Equal(t, tt.wantMsg, webErr.Error())
		})
	}
}
