//go:generate mockery --output=./mocks --all
package dal

import (
	"context"

	"github.com/doitintl/hello/account-onboarding/onboarding/domain"
)

// Accounts is the repository of managed account records.
type Accounts interface {
	// MustFind returns the account with the given id, or a NotFound error.
	MustFind(ctx context.Context, id string) (*domain.Account, error)

	// List returns all account records.
	List(ctx context.Context) ([]*domain.Account, error)

	// Create stores a new account record and returns it with its id and
	// initial revision set.
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)

	// Update applies a partial update. The update must carry the last-known
	// revision; a stale revision yields a Conflict error and no write.
	Update(ctx context.Context, update *domain.AccountUpdate) (*domain.Account, error)
}
