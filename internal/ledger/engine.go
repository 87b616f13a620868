package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"

	"github.com/punchamoorthee/fintransact/internal/domain"
)

var admissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ledger_admissions_total",
	Help: "Admission outcomes, labeled by transaction type and resolved status",
}, []string{"type", "status"})

// Engine orchestrates transaction mutations against the store. Every
// balance-affecting operation for a customer runs under that customer's
// mutex, so the read-balance / decide-status / persist sequence of two
// concurrent requests can never interleave. Without that scope two
// simultaneous debits could both observe the same balance and both admit.
type Engine struct {
	store    TransactionStore
	balances *BalanceCalculator
	locks    customerLocks

	// now is swappable in tests.
	now func() time.Time
}

func NewEngine(store TransactionStore) *Engine {
	return &Engine{
		store:    store,
		balances: NewBalanceCalculator(store),
		now:      time.Now,
	}
}

// Create admits a proposed transaction and persists it regardless of the
// outcome: a rejected admission is stored with status Failed and the
// rejection reason is returned alongside the record, not as an error.
// The returned reason is empty when the transaction was admitted.
func (e *Engine) Create(ctx context.Context, customerID int64, amount decimal.Decimal, typ domain.TransactionType, description string) (*domain.Transaction, string, error) {
	customer, err := e.store.FindCustomer(ctx, customerID)
	if err != nil {
		return nil, "", fmt.Errorf("find customer %d: %w", customerID, err)
	}
	if customer == nil {
		return nil, "", ErrCustomerNotFound
	}

	defer e.locks.acquire(customerID).Unlock()

	balance, err := e.balances.Balance(ctx, customerID, 0)
	if err != nil {
		return nil, "", err
	}
	adm := Evaluate(amount, typ, balance)

	t := &domain.Transaction{
		CustomerID:  customerID,
		Amount:      amount,
		Type:        typ,
		Date:        e.now(),
		Description: description,
		Status:      adm.Status,
	}
	created, err := e.store.InsertTransaction(ctx, t)
	if err != nil {
		return nil, "", fmt.Errorf("insert transaction: %w", err)
	}

	admissionsTotal.WithLabelValues(string(typ), string(adm.Status)).Inc()
	return created, adm.Reason, nil
}

// Update rewrites a transaction's amount, type and description, re-dates it
// to the current instant and re-resolves its status against the customer's
// balance computed without the transaction itself. Transactions previously
// evaluated against the old value are not retroactively re-checked; status
// is resolved at mutation time only. A Voided transaction is revived by an
// update, since the status is re-derived like any other.
func (e *Engine) Update(ctx context.Context, id int64, amount decimal.Decimal, typ domain.TransactionType, description string) (*domain.Transaction, string, error) {
	existing, err := e.store.FindTransaction(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("find transaction %d: %w", id, err)
	}
	if existing == nil {
		return nil, "", ErrTransactionNotFound
	}

	defer e.locks.acquire(existing.CustomerID).Unlock()

	// Re-read under the lock; the record may have been deleted since.
	t, err := e.store.FindTransaction(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("find transaction %d: %w", id, err)
	}
	if t == nil {
		return nil, "", ErrTransactionNotFound
	}

	balance, err := e.balances.Balance(ctx, t.CustomerID, t.ID)
	if err != nil {
		return nil, "", err
	}
	adm := Evaluate(amount, typ, balance)

	t.Amount = amount
	t.Type = typ
	t.Description = description
	t.Date = e.now()
	t.Status = adm.Status

	if err := e.store.SaveTransaction(ctx, t); err != nil {
		return nil, "", fmt.Errorf("save transaction %d: %w", id, err)
	}

	admissionsTotal.WithLabelValues(string(typ), string(adm.Status)).Inc()
	return t, adm.Reason, nil
}

// Void transitions a transaction to the terminal Voided status, removing its
// contribution to the balance without deleting the record. No amount or type
// checks apply. Voiding an already-Voided transaction is a no-op success.
func (e *Engine) Void(ctx context.Context, id int64) (*domain.Transaction, error) {
	existing, err := e.store.FindTransaction(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find transaction %d: %w", id, err)
	}
	if existing == nil {
		return nil, ErrTransactionNotFound
	}

	defer e.locks.acquire(existing.CustomerID).Unlock()

	t, err := e.store.FindTransaction(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find transaction %d: %w", id, err)
	}
	if t == nil {
		return nil, ErrTransactionNotFound
	}
	if t.Status == domain.StatusVoided {
		return t, nil
	}

	t.Status = domain.StatusVoided
	if err := e.store.SaveTransaction(ctx, t); err != nil {
		return nil, fmt.Errorf("save transaction %d: %w", id, err)
	}
	return t, nil
}

// Delete removes a transaction permanently. Other transactions are not
// re-evaluated. It still serializes with balance-affecting operations on the
// same customer so a concurrent create cannot act on a half-gone history.
func (e *Engine) Delete(ctx context.Context, id int64) (bool, error) {
	existing, err := e.store.FindTransaction(ctx, id)
	if err != nil {
		return false, fmt.Errorf("find transaction %d: %w", id, err)
	}
	if existing == nil {
		return false, ErrTransactionNotFound
	}

	defer e.locks.acquire(existing.CustomerID).Unlock()

	deleted, err := e.store.DeleteTransaction(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete transaction %d: %w", id, err)
	}
	if !deleted {
		return false, ErrTransactionNotFound
	}
	return true, nil
}

// CustomerBalance returns the customer's current derived balance.
func (e *Engine) CustomerBalance(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	customer, err := e.store.FindCustomer(ctx, customerID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("find customer %d: %w", customerID, err)
	}
	if customer == nil {
		return decimal.Zero, ErrCustomerNotFound
	}
	return e.balances.Balance(ctx, customerID, 0)
}
