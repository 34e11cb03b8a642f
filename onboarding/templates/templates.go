package templates

import (
	_ "embed"
	"fmt"

	"github.com/doitintl/hello/account-onboarding/onboarding/domain"
)

// OnboardAccount is the name of the canonical permission template.
const OnboardAccount = "onboard-account"

//go:embed onboard-account.yaml
var onboardAccountTemplate string

//go:generate mockery --name Provider --output ./mocks
type Provider interface {
	Get(name string) (string, error)
}

type provider struct{}

// NewProvider returns the provider for the embedded, versioned permission
// templates.
func NewProvider() Provider {
	return provider{}
}

func (provider) Get(name string) (string, error) {
	switch name {
	case OnboardAccount:
		return onboardAccountTemplate, nil
	default:
		return "", domain.NewNotFoundError(
			fmt.Sprintf("unknown template %q", name), nil)
	}
}
