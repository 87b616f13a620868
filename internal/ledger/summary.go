package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/punchamoorthee/fintransact/internal/domain"
)

// Summarize aggregates an already-filtered transaction set. The count covers
// every status; the credit and debit totals fold Successful transactions
// only, mirroring the balance fold. Over a customer's full history the net
// balance here equals Engine.CustomerBalance for that customer.
func Summarize(txs []domain.Transaction) domain.Summary {
	credits := decimal.Zero
	debits := decimal.Zero
	for _, t := range txs {
		if t.Status != domain.StatusSuccessful {
			continue
		}
		switch t.Type {
		case domain.TypeCredit:
			credits = credits.Add(t.Amount)
		case domain.TypeDebit:
			debits = debits.Add(t.Amount)
		}
	}
	return domain.Summary{
		TotalTransactions: len(txs),
		TotalCredits:      credits,
		TotalDebits:       debits,
		NetBalance:        credits.Sub(debits),
	}
}
