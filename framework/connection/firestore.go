package connection

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/doitintl/hello/account-onboarding/common"
	"github.com/doitintl/hello/account-onboarding/logger"
)

// FirestoreClient holds the shared firestore client.
type FirestoreClient struct {
	fs *firestore.Client
}

// NewFirestore initializes a firestore client for the project.
func NewFirestore(ctx context.Context, log *logger.Logging) (*FirestoreClient, error) {
	fs, err := firestore.NewClient(ctx, common.ProjectID)
	if err != nil {
		log.Logger(ctx).Errorf("could not initialize firestore client: %v", err)
		return nil, err
	}

	return &FirestoreClient{fs}, nil
}
