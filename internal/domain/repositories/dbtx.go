package repositories

import "context"

// txKey is keyed by the driver's transaction type, so a pgx.Tx and a
// *sql.Tx never collide in the same context.
type txKey[T any] struct{}

// SetTx stores a driver transaction in the context
func SetTx[T any](ctx context.Context, tx T) context.Context {
	return context.WithValue(ctx, txKey[T]{}, tx)
}

// GetTx retrieves a driver transaction from the context.
// ok is false if no transaction of that type is present.
func GetTx[T any](ctx context.Context) (tx T, ok bool) {
	tx, ok = ctx.Value(txKey[T]{}).(T)
	return tx, ok
}
