package domain

import (
	"regexp"
	"time"
)

var accountIDRegexp = regexp.MustCompile(`^\d{12}$`)

// Account represents one managed cloud account under onboarding.
type Account struct {
	ID  string `firestore:"-" json:"id"`
	Rev int64  `firestore:"rev" json:"rev"`

	Name        string `firestore:"name" json:"name"`
	Description string `firestore:"description" json:"description"`

	// AccountID is the 12-digit external account number.
	AccountID string `firestore:"accountId" json:"accountId"`

	// ExternalID is the handshake value used in cross-account role assumption.
	ExternalID string `firestore:"externalId" json:"externalId"`

	CfnStackName string `firestore:"cfnStackName" json:"cfnStackName"`
	CfnStackID   string `firestore:"cfnStackId" json:"cfnStackId"`

	// Permission surface harvested from the deployed stack outputs. Absence
	// means the account did not finish onboarding yet.
	RoleArn          string `firestore:"roleArn" json:"roleArn"`
	VpcID            string `firestore:"vpcId" json:"vpcId"`
	SubnetID         string `firestore:"subnetId" json:"subnetId"`
	EncryptionKeyArn string `firestore:"encryptionKeyArn" json:"encryptionKeyArn"`

	PermissionStatus PermissionStatus `firestore:"permissionStatus" json:"permissionStatus"`

	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	CreatedBy string    `firestore:"createdBy" json:"createdBy"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
	UpdatedBy string    `firestore:"updatedBy" json:"updatedBy"`
}

// AccountUpdate carries the fields of a partial account update. ID and Rev are
// mandatory; nil pointers leave the stored field untouched.
type AccountUpdate struct {
	ID  string
	Rev int64

	Name             *string
	Description      *string
	AccountID        *string
	ExternalID       *string
	CfnStackName     *string
	CfnStackID       *string
	RoleArn          *string
	VpcID            *string
	SubnetID         *string
	EncryptionKeyArn *string
	PermissionStatus *PermissionStatus
}

// Onboarded reports whether the account is structurally onboarded, i.e. the
// whole permission surface was harvested from the stack outputs. This is
// independent of the current permission freshness.
func (a *Account) Onboarded() bool {
	return a.RoleArn != "" &&
		a.ExternalID != "" &&
		a.VpcID != "" &&
		a.SubnetID != "" &&
		a.EncryptionKeyArn != "" &&
		a.CfnStackID != ""
}

// Status returns the stored permission status normalized onto the canonical
// enumeration.
func (a *Account) Status() PermissionStatus {
	return NormalizePermissionStatus(a.PermissionStatus)
}

// ValidAccountID reports whether v looks like a 12-digit AWS account number.
func ValidAccountID(v string) bool {
	return accountIDRegexp.MatchString(v)
}
