package dal

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/doitintl/hello/account-onboarding/common"
	"github.com/doitintl/hello/account-onboarding/framework/connection"
	"github.com/doitintl/hello/account-onboarding/onboarding/domain"
)

const (
	integrationsCollection = "integrations"
	awsDoc                 = "amazon-web-services"
	accountsCollection     = "accounts"
)

// ctxEmailKey is where the auth middleware stores the caller's email.
const ctxEmailKey = "email"

type AccountsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewAccountsFirestore builds the accounts DAL with its own firestore client.
func NewAccountsFirestore(ctx context.Context) (Accounts, error) {
	fs, err := firestore.NewClient(ctx, common.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("could not initialize firestore client. error %s", err)
	}

	return NewAccountsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewAccountsFirestoreWithClient builds the accounts DAL on a shared client.
func NewAccountsFirestoreWithClient(fun connection.FirestoreFromContextFun) Accounts {
	return &AccountsFirestore{
		firestoreClientFun: fun,
	}
}

func (d *AccountsFirestore) accountsRef(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).
		Collection(integrationsCollection).
		Doc(awsDoc).
		Collection(accountsCollection)
}

func (d *AccountsFirestore) MustFind(ctx context.Context, id string) (*domain.Account, error) {
	docSnap, err := d.accountsRef(ctx).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.NewNotFoundError(fmt.Sprintf("account %s not found", id), err)
		}

		return nil, err
	}

	return accountFromSnapshot(docSnap)
}

func (d *AccountsFirestore) List(ctx context.Context) ([]*domain.Account, error) {
	docSnaps, err := d.accountsRef(ctx).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	accounts := make([]*domain.Account, 0, len(docSnaps))

	for _, docSnap := range docSnaps {
		account, err := accountFromSnapshot(docSnap)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, account)
	}

	return accounts, nil
}

func (d *AccountsFirestore) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	docRef := d.accountsRef(ctx).NewDoc()

	now := time.Now().UTC()
	email := emailFromContext(ctx)

	created := *account
	created.ID = docRef.ID
	created.Rev = 1
	created.CreatedAt = now
	created.CreatedBy = email
	created.UpdatedAt = now
	created.UpdatedBy = email

	if created.ExternalID == "" {
		created.ExternalID = common.DefaultExternalID
	}

	if created.PermissionStatus == "" {
		created.PermissionStatus = domain.PermissionStatusNeedsOnboard
	}

	if _, err := docRef.Set(ctx, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (d *AccountsFirestore) Update(ctx context.Context, update *domain.AccountUpdate) (*domain.Account, error) {
	if update.ID == "" {
		return nil, domain.NewBadRequestError("account update is missing an id", nil)
	}

	fs := d.firestoreClientFun(ctx)
	docRef := d.accountsRef(ctx).Doc(update.ID)

	err := fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docSnap, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return domain.NewNotFoundError(fmt.Sprintf("account %s not found", update.ID), err)
			}

			return err
		}

		stored, err := accountFromSnapshot(docSnap)
		if err != nil {
			return err
		}

		if stored.Rev != update.Rev {
			return domain.NewConflictError(
				fmt.Sprintf("account %s was modified by someone else", update.ID), nil)
		}

		return tx.Update(docRef, firestoreUpdates(update, emailFromContext(ctx)))
	})
	if err != nil {
		return nil, err
	}

	return d.MustFind(ctx, update.ID)
}

// firestoreUpdates translates a partial account update into firestore field
// updates, bumping the revision and stamping the audit trail.
func firestoreUpdates(update *domain.AccountUpdate, email string) []firestore.Update {
	updates := []firestore.Update{
		{Path: "rev", Value: update.Rev + 1},
		{Path: "updatedAt", Value: time.Now().UTC()},
		{Path: "updatedBy", Value: email},
	}

	for path, value := range map[string]*string{
		"name":             update.Name,
		"description":      update.Description,
		"accountId":        update.AccountID,
		"externalId":       update.ExternalID,
		"cfnStackName":     update.CfnStackName,
		"cfnStackId":       update.CfnStackID,
		"roleArn":          update.RoleArn,
		"vpcId":            update.VpcID,
		"subnetId":         update.SubnetID,
		"encryptionKeyArn": update.EncryptionKeyArn,
	} {
		if value != nil {
			updates = append(updates, firestore.Update{Path: path, Value: *value})
		}
	}

	if update.PermissionStatus != nil {
		updates = append(updates, firestore.Update{
			Path:  "permissionStatus",
			Value: *update.PermissionStatus,
		})
	}

	return updates
}

func accountFromSnapshot(docSnap *firestore.DocumentSnapshot) (*domain.Account, error) {
	var account domain.Account
	if err := docSnap.DataTo(&account); err != nil {
		return nil, err
	}

	account.ID = docSnap.Ref.ID

	return &account, nil
}

func emailFromContext(ctx context.Context) string {
	if email, ok := ctx.Value(ctxEmailKey).(string); ok {
		return email
	}

	return ""
}
