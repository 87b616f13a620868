package ledger

import "errors"

var (
	// ErrTransactionNotFound is returned when a referenced transaction is absent.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrCustomerNotFound is returned when a referenced customer is absent.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrConflict is reported by stores that detect a concurrent write on save.
	ErrConflict = errors.New("transaction version conflict")
)
