package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transaction's effect on a balance.
type TransactionType string

const (
	TypeCredit TransactionType = "Credit"
	TypeDebit  TransactionType = "Debit"
)

// ParseTransactionType parses a case-insensitive type name.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(s) {
	case "credit":
		return TypeCredit, nil
	case "debit":
		return TypeDebit, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// TransactionStatus is the durable outcome of a transaction.
type TransactionStatus string

const (
	StatusSuccessful TransactionStatus = "Successful"
	StatusFailed     TransactionStatus = "Failed"
	StatusVoided     TransactionStatus = "Voided"
)

// Customer owns zero or more transactions. Customers are never deleted.
type Customer struct {
	ID          int64  `json:"customer_id"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	Email       string `json:"email"`
}

// Transaction is the durable record of a monetary movement.
// Amount is always stored positive; Type carries the sign of effect.
// Status is derived by the ledger engine, never set by callers.
type Transaction struct {
	ID          int64             `json:"transaction_id"`
	CustomerID  int64             `json:"customer_id"`
	Amount      decimal.Decimal   `json:"amount"`
	Type        TransactionType   `json:"transaction_type"`
	Date        time.Time         `json:"transaction_date"`
	Description string            `json:"description"`
	Status      TransactionStatus `json:"status"`

	// Customer is populated by reads that join the owning customer.
	Customer *Customer `json:"customer,omitempty"`
}

// TransactionFilter narrows a transaction listing. Zero values mean
// "no constraint"; CustomerName matches as a case-insensitive substring.
type TransactionFilter struct {
	CustomerID   int64
	CustomerName string
	StartDate    *time.Time
	EndDate      *time.Time
	Type         TransactionType
	Status       TransactionStatus
}

// Summary aggregates a transaction set. Only Successful transactions
// contribute to the credit/debit totals; the count includes every status.
type Summary struct {
	TotalTransactions int             `json:"total_transactions"`
	TotalCredits      decimal.Decimal `json:"total_credits"`
	TotalDebits       decimal.Decimal `json:"total_debits"`
	NetBalance        decimal.Decimal `json:"net_balance"`
}
