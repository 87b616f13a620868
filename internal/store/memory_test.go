package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchamoorthee/fintransact/internal/domain"
	"github.com/punchamoorthee/fintransact/internal/store"
)

func seedStore(t *testing.T) (*store.MemoryStore, *domain.Customer) {
	t.Helper()
	s := store.NewMemoryStore()
	c, err := s.InsertCustomer(context.Background(), &domain.Customer{
		FullName: "Grace Hopper",
		Email:    "grace@example.com",
	})
	require.NoError(t, err)
	return s, c
}

func insertTx(t *testing.T, s *store.MemoryStore, customerID int64, amount string, typ domain.TransactionType, status domain.TransactionStatus, date time.Time) *domain.Transaction {
	t.Helper()
	tx, err := s.InsertTransaction(context.Background(), &domain.Transaction{
		CustomerID: customerID,
		Amount:     decimal.RequireFromString(amount),
		Type:       typ,
		Status:     status,
		Date:       date,
	})
	require.NoError(t, err)
	return tx
}

func TestListTransactionsFilterByDateRange(t *testing.T) {
	s, c := seedStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	insertTx(t, s, c.ID, "10", domain.TypeCredit, domain.StatusSuccessful, base)
	mid := insertTx(t, s, c.ID, "20", domain.TypeCredit, domain.StatusSuccessful, base.AddDate(0, 0, 5))
	insertTx(t, s, c.ID, "30", domain.TypeCredit, domain.StatusSuccessful, base.AddDate(0, 0, 10))

	from := base.AddDate(0, 0, 2)
	to := base.AddDate(0, 0, 8)
	txs, err := s.ListTransactions(context.Background(), domain.TransactionFilter{
		StartDate: &from,
		EndDate:   &to,
	})
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, mid.ID, txs[0].ID)
}

func TestListTransactionsFilterByNameIsCaseInsensitive(t *testing.T) {
	s, c := seedStore(t)
	insertTx(t, s, c.ID, "10", domain.TypeCredit, domain.StatusSuccessful, time.Now())

	txs, err := s.ListTransactions(context.Background(), domain.TransactionFilter{CustomerName: "grace"})
	require.NoError(t, err)
	assert.Len(t, txs, 1)

	txs, err = s.ListTransactions(context.Background(), domain.TransactionFilter{CustomerName: "nobody"})
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestListTransactionsOrderedByDateThenID(t *testing.T) {
	s, c := seedStore(t)
	when := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	late := insertTx(t, s, c.ID, "10", domain.TypeCredit, domain.StatusSuccessful, when.Add(time.Hour))
	early := insertTx(t, s, c.ID, "20", domain.TypeCredit, domain.StatusSuccessful, when)

	txs, err := s.ListTransactions(context.Background(), domain.TransactionFilter{CustomerID: c.ID})
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, early.ID, txs[0].ID)
	assert.Equal(t, late.ID, txs[1].ID)
}

func TestSaveTransactionMissingRow(t *testing.T) {
	s, _ := seedStore(t)

	err := s.SaveTransaction(context.Background(), &domain.Transaction{ID: 99})
	assert.ErrorIs(t, err, store.ErrNoRowsAffected)
}

func TestFindReturnsCopies(t *testing.T) {
	s, c := seedStore(t)
	tx := insertTx(t, s, c.ID, "10", domain.TypeCredit, domain.StatusSuccessful, time.Now())

	got, err := s.FindTransaction(context.Background(), tx.ID)
	require.NoError(t, err)
	got.Status = domain.StatusVoided

	again, err := s.FindTransaction(context.Background(), tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccessful, again.Status, "mutating a returned record must not touch the store")
}
