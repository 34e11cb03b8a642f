//go:generate mockery --name Authorizer --output ./mocks
package iam

import (
	"context"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/doitintl/hello/account-onboarding/common"
	"github.com/doitintl/hello/account-onboarding/framework/connection"
	"github.com/doitintl/hello/account-onboarding/onboarding/domain"
)

// Actions gated by the authorizer.
const (
	ActionAccountsRead      = "accounts.read"
	ActionAccountsWrite     = "accounts.write"
	ActionAccountsOnboard   = "accounts.onboard"
	ActionAccountsReconcile = "accounts.reconcile"
)

const usersCollection = "users"

// Authorizer decides whether the caller may perform an action on the given
// subjects. Every service operation asserts before touching state.
type Authorizer interface {
	AssertAuthorized(ctx context.Context, action string, subjects ...string) error
}

type authorizer struct {
	conn *connection.Connection
}

type userPermissions struct {
	Permissions []string `firestore:"permissions"`
}

// NewAuthorizer builds the firestore backed authorizer.
func NewAuthorizer(conn *connection.Connection) Authorizer {
	return &authorizer{conn}
}

func (a *authorizer) AssertAuthorized(ctx context.Context, action string, subjects ...string) error {
	// Internal task invocations and doit employees bypass per-user permissions.
	if employee, ok := ctx.Value(common.DoitEmployee).(bool); ok && employee {
		return nil
	}

	email, _ := ctx.Value("email").(string)
	if email == "" {
		return domain.NewForbiddenError("caller is not authenticated", nil)
	}

	docSnap, err := a.conn.Firestore(ctx).Collection(usersCollection).Doc(email).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.NewForbiddenError(
				fmt.Sprintf("no permissions found for %s", email), err)
		}

		return err
	}

	var user userPermissions
	if err := docSnap.DataTo(&user); err != nil {
		return err
	}

	for _, permission := range user.Permissions {
		if permission == action {
			return nil
		}
	}

	return domain.NewForbiddenError(
		fmt.Sprintf("%s is not allowed to %s", email, action), nil)
}
