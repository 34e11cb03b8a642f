package domain

import "time"

// TemplateInfo bundles everything the console needs to create or update a
// permission stack. It is built fresh per onboarding request and never stored.
type TemplateInfo struct {
	Region    string `json:"region"`
	StackName string `json:"stackName"`

	// Body is the rendered template text; Hash is its content hash, used as
	// the uploaded object identity.
	Body string `json:"body"`
	Hash string `json:"hash"`

	// SignedURL points at the uploaded template and expires at URLExpiry.
	SignedURL string    `json:"signedUrl"`
	URLExpiry time.Time `json:"urlExpiry"`

	// Console deep links. UpdateStackURL is empty when the account has no
	// stack id yet.
	CreateStackURL string `json:"createStackUrl"`
	UpdateStackURL string `json:"updateStackUrl,omitempty"`
	ConsoleURL     string `json:"consoleUrl"`
}
