package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/punchamoorthee/fintransact/internal/domain"
)

// BalanceCalculator derives a customer's current balance by folding their
// Successful transactions: credits add, debits subtract. Failed and Voided
// transactions never contribute.
type BalanceCalculator struct {
	store TransactionStore
}

func NewBalanceCalculator(store TransactionStore) *BalanceCalculator {
	return &BalanceCalculator{store: store}
}

// Balance computes the customer's net balance. When excludingTransactionID is
// non-zero that transaction is left out of the fold, which is how an update
// re-validates a transaction against the balance it does not itself hold.
func (c *BalanceCalculator) Balance(ctx context.Context, customerID, excludingTransactionID int64) (decimal.Decimal, error) {
	txs, err := c.store.ListTransactions(ctx, domain.TransactionFilter{
		CustomerID: customerID,
		Status:     domain.StatusSuccessful,
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("list transactions for balance: %w", err)
	}

	balance := decimal.Zero
	for _, t := range txs {
		if excludingTransactionID != 0 && t.ID == excludingTransactionID {
			continue
		}
		switch t.Type {
		case domain.TypeCredit:
			balance = balance.Add(t.Amount)
		case domain.TypeDebit:
			balance = balance.Sub(t.Amount)
		}
	}
	return balance, nil
}
