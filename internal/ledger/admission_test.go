package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/punchamoorthee/fintransact/internal/domain"
	"github.com/punchamoorthee/fintransact/internal/ledger"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		amount     string
		typ        domain.TransactionType
		balance    string
		wantStatus domain.TransactionStatus
		wantReason string
	}{
		{
			name:       "credit admits",
			amount:     "50", typ: domain.TypeCredit, balance: "0",
			wantStatus: domain.StatusSuccessful,
		},
		{
			name:       "zero amount fails before anything else",
			amount:     "0", typ: domain.TypeCredit, balance: "1000",
			wantStatus: domain.StatusFailed, wantReason: ledger.ReasonNonPositiveAmount,
		},
		{
			name:       "negative amount fails",
			amount:     "-10", typ: domain.TypeDebit, balance: "1000",
			wantStatus: domain.StatusFailed, wantReason: ledger.ReasonNonPositiveAmount,
		},
		{
			name:       "debit within balance admits",
			amount:     "80", typ: domain.TypeDebit, balance: "100",
			wantStatus: domain.StatusSuccessful,
		},
		{
			name:       "debit equal to balance admits",
			amount:     "100", typ: domain.TypeDebit, balance: "100",
			wantStatus: domain.StatusSuccessful,
		},
		{
			name:       "debit beyond balance fails",
			amount:     "100.01", typ: domain.TypeDebit, balance: "100",
			wantStatus: domain.StatusFailed, wantReason: ledger.ReasonInsufficientFunds,
		},
		{
			name:       "debit against negative balance fails",
			amount:     "1", typ: domain.TypeDebit, balance: "-5",
			wantStatus: domain.StatusFailed, wantReason: ledger.ReasonInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adm := ledger.Evaluate(dec(tt.amount), tt.typ, dec(tt.balance))
			assert.Equal(t, tt.wantStatus, adm.Status)
			assert.Equal(t, tt.wantReason, adm.Reason)
		})
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	first := ledger.Evaluate(dec("80"), domain.TypeDebit, dec("100"))
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, ledger.Evaluate(dec("80"), domain.TypeDebit, dec("100")))
	}
}
