package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/punchamoorthee/fintransact/internal/domain"
)

// Rejection reasons returned alongside a Failed admission.
const (
	ReasonNonPositiveAmount = "amount must be greater than zero"
	ReasonInsufficientFunds = "insufficient funds"
)

// Admission is the outcome of evaluating a candidate transaction.
// Reason is empty when the status is Successful.
type Admission struct {
	Status domain.TransactionStatus
	Reason string
}

// Evaluate decides the status of a candidate transaction against the
// customer's balance computed without the candidate itself. It is a pure
// function: no I/O, deterministic, shared verbatim by create and update.
//
// Policy, in order: a non-positive amount always fails; a credit is always
// admitted; a debit is admitted only when the balance covers it.
func Evaluate(amount decimal.Decimal, typ domain.TransactionType, balanceExcludingSelf decimal.Decimal) Admission {
	if amount.Sign() <= 0 {
		return Admission{Status: domain.StatusFailed, Reason: ReasonNonPositiveAmount}
	}
	if typ == domain.TypeCredit {
		return Admission{Status: domain.StatusSuccessful}
	}
	if balanceExcludingSelf.GreaterThanOrEqual(amount) {
		return Admission{Status: domain.StatusSuccessful}
	}
	return Admission{Status: domain.StatusFailed, Reason: ReasonInsufficientFunds}
}
