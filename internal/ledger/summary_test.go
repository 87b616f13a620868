package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/punchamoorthee/fintransact/internal/domain"
	"github.com/punchamoorthee/fintransact/internal/ledger"
)

func TestSummarizeEmpty(t *testing.T) {
	s := ledger.Summarize(nil)
	assert.Equal(t, 0, s.TotalTransactions)
	assert.True(t, s.TotalCredits.IsZero())
	assert.True(t, s.TotalDebits.IsZero())
	assert.True(t, s.NetBalance.IsZero())
}

func TestSummarizeCountsAllStatusesButFoldsSuccessfulOnly(t *testing.T) {
	txs := []domain.Transaction{
		{Type: domain.TypeCredit, Status: domain.StatusSuccessful, Amount: dec("100")},
		{Type: domain.TypeCredit, Status: domain.StatusVoided, Amount: dec("999")},
		{Type: domain.TypeDebit, Status: domain.StatusSuccessful, Amount: dec("30")},
		{Type: domain.TypeDebit, Status: domain.StatusFailed, Amount: dec("500")},
		{Type: domain.TypeCredit, Status: domain.StatusSuccessful, Amount: dec("10.50")},
	}

	s := ledger.Summarize(txs)
	assert.Equal(t, 5, s.TotalTransactions)
	assert.True(t, s.TotalCredits.Equal(dec("110.50")), "credits = %s", s.TotalCredits)
	assert.True(t, s.TotalDebits.Equal(dec("30")), "debits = %s", s.TotalDebits)
	assert.True(t, s.NetBalance.Equal(dec("80.50")), "net = %s", s.NetBalance)
}
