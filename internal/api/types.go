package api

import (
	"github.com/shopspring/decimal"
)

// CustomerPayload identifies the transaction's owner. Email is the natural
// de-duplication key for lookup-or-create.
type CustomerPayload struct {
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	Email       string `json:"email"`
}

// CreateTransactionRequest is the payload for POST /transactions. Status and
// date are never accepted from the client; the engine derives both.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"transaction_type"`
	Description string          `json:"description"`
	Customer    CustomerPayload `json:"customer"`
}

// UpdateTransactionRequest is the payload for PUT /transactions/{id}.
type UpdateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"transaction_type"`
	Description string          `json:"description"`
}
