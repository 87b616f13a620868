package ledger

import (
	"context"

	"github.com/punchamoorthee/fintransact/internal/domain"
)

// TransactionStore is the persistence contract the engine operates against.
// Lookups that miss return (nil, nil); the engine turns that into a NotFound
// error at its own boundary. Implementations only return errors for I/O
// failures, plus ErrConflict from SaveTransaction when an optimistic store
// detects a concurrent write.
type TransactionStore interface {
	FindTransaction(ctx context.Context, id int64) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, f domain.TransactionFilter) ([]domain.Transaction, error)
	InsertTransaction(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
	SaveTransaction(ctx context.Context, t *domain.Transaction) error
	DeleteTransaction(ctx context.Context, id int64) (bool, error)
	FindCustomer(ctx context.Context, id int64) (*domain.Customer, error)
}
