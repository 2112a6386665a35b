package ports

import "context"

// TxRunner executes fn inside a single storage transaction. Writes issued
// through the ctx passed to fn commit together when fn returns nil and are
// rolled back together when it returns an error. The transaction scope is
// exactly the documents fn touches; unrelated users and places are not
// serialized against each other.
type TxRunner interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
