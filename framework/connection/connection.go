package connection

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/doitintl/hello/account-onboarding/logger"
)

const (
	// CtxFirestoreKey is how firestore connections are stored/retrieved.
	CtxFirestoreKey = "app-firestore"
)

// FirestoreFromContextFun returns a firestore client for the given context.
type FirestoreFromContextFun func(ctx context.Context) *firestore.Client

// Connection bundles the process-wide clients the services need.
type Connection struct {
	*FirestoreClient
	*AWSClient
}

// NewConnection initializes db and cloud provider connections necessary for api support.
func NewConnection(ctx context.Context, log *logger.Logging) (*Connection, error) {
	fs, err := NewFirestore(ctx, log)
	if err != nil {
		return nil, err
	}

	aws, err := NewAWS(log)
	if err != nil {
		return nil, err
	}

	return &Connection{
		fs,
		aws,
	}, nil
}

// Firestore returns a firestore connection that was stored in context.
// it returns by default a firestore connection, if there was not on context.
func (c *Connection) Firestore(ctx context.Context) *firestore.Client {
	if fs, ok := ctx.Value(CtxFirestoreKey).(*firestore.Client); ok {
		return fs
	}

	return c.fs
}
