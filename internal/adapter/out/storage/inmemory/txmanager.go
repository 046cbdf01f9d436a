package inmemory

import "context"

// TxManager is a pass-through for the in-memory storages, which have no
// transactions; each storage method is atomic under its own lock.
type TxManager struct{}

func NewTxManager() *TxManager {
	return &TxManager{}
}

func (TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
