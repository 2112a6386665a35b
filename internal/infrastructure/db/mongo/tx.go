package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// TxnRunner implements ports.TxRunner on top of MongoDB multi-document
// transactions. Writes issued through the session-bound context commit
// together or are rolled back together; concurrent readers observe either
// the fully-prior or fully-post state, never a half-applied dual-write.
//
// Transactions require a replica set or mongos; a standalone mongod will
// reject StartTransaction.
type TxnRunner struct {
	client *mongo.Client
}

func NewTxnRunner(client *mongo.Client) *TxnRunner {
	return &TxnRunner{client: client}
}

// WithinTransaction runs fn inside one transaction. The driver retries
// transient transaction errors internally; fn must therefore be safe to run
// more than once.
func (t *TxnRunner) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := t.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
