package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/punchamoorthee/fintransact/internal/domain"
	"github.com/punchamoorthee/fintransact/internal/ledger"
)

// CustomerDirectory is the lookup-or-create collaborator for transaction
// owners. It is persistence plumbing, deliberately kept out of the ledger
// core.
type CustomerDirectory interface {
	FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error)
	InsertCustomer(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
}

type Handler struct {
	engine    *ledger.Engine
	store     ledger.TransactionStore
	customers CustomerDirectory
}

func NewHandler(engine *ledger.Engine, store ledger.TransactionStore, customers CustomerDirectory) *Handler {
	return &Handler{engine: engine, store: store, customers: customers}
}

func (h *Handler) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListTransactionsHandler serves GET /transactions with optional
// customerName, startDate, endDate and transactionType filters. A type
// filter without a customer name is rejected, matching the service's
// long-standing contract.
func (h *Handler) ListTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.CustomerName == "" && filter.Type != "" {
		respondWithError(w, http.StatusBadRequest,
			"Please enter a customer name to view transactions of type 'Credit' or 'Debit'.")
		return
	}

	txs, err := h.store.ListTransactions(r.Context(), filter)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list transactions")
		return
	}
	if txs == nil {
		txs = []domain.Transaction{}
	}
	respondWithJSON(w, http.StatusOK, txs)
}

func (h *Handler) GetTransactionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	t, err := h.store.FindTransaction(r.Context(), id)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load transaction")
		return
	}
	if t == nil {
		respondWithError(w, http.StatusNotFound, "Transaction not found")
		return
	}
	respondWithJSON(w, http.StatusOK, t)
}

// CreateTransactionHandler serves POST /transactions. The owning customer is
// looked up by email or created on the spot. A rejected admission is not an
// API failure in the usual sense: the transaction is persisted with status
// Failed and returned together with the rejection reason.
func (h *Handler) CreateTransactionHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}

	if strings.TrimSpace(req.Customer.FullName) == "" || strings.TrimSpace(req.Customer.Email) == "" {
		respondWithError(w, http.StatusBadRequest, "Customer full_name and email are required")
		return
	}
	typ, err := domain.ParseTransactionType(req.Type)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	customer, err := h.customers.FindCustomerByEmail(r.Context(), req.Customer.Email)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to look up customer")
		return
	}
	if customer == nil {
		customer, err = h.customers.InsertCustomer(r.Context(), &domain.Customer{
			FullName:    req.Customer.FullName,
			PhoneNumber: req.Customer.PhoneNumber,
			Address:     req.Customer.Address,
			Email:       req.Customer.Email,
		})
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to create customer")
			return
		}
	}

	t, reason, err := h.engine.Create(r.Context(), customer.ID, req.Amount, typ, req.Description)
	if err != nil {
		if errors.Is(err, ledger.ErrCustomerNotFound) {
			respondWithError(w, http.StatusNotFound, "Customer not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to create transaction")
		return
	}

	if reason != "" {
		respondWithJSON(w, http.StatusBadRequest, map[string]interface{}{
			"message":     "Transaction failed",
			"reason":      reason,
			"transaction": t,
		})
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/transactions/%d", t.ID))
	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message":     "Transaction created successfully",
		"transaction": t,
	})
}

// UpdateTransactionHandler serves PUT /transactions/{id}. The engine re-dates
// the transaction and re-resolves its status; like create, a Failed
// resolution is persisted rather than rejected.
func (h *Handler) UpdateTransactionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	var req UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}
	typ, err := domain.ParseTransactionType(req.Type)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	_, _, err = h.engine.Update(r.Context(), id, req.Amount, typ, req.Description)
	if err != nil {
		if errors.Is(err, ledger.ErrTransactionNotFound) {
			respondWithError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to update transaction")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) VoidTransactionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	t, err := h.engine.Void(r.Context(), id)
	if err != nil {
		if errors.Is(err, ledger.ErrTransactionNotFound) {
			respondWithError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to void transaction")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Status updated successfully to 'Voided'.",
		"transaction": t,
	})
}

func (h *Handler) DeleteTransactionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	if _, err := h.engine.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ledger.ErrTransactionNotFound) {
			respondWithError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Transaction deleted successfully."})
}

// GetSummaryHandler serves GET /transactions/summary over the same filters
// as the listing endpoint.
func (h *Handler) GetSummaryHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	txs, err := h.store.ListTransactions(r.Context(), filter)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load transactions")
		return
	}
	respondWithJSON(w, http.StatusOK, ledger.Summarize(txs))
}

func (h *Handler) GetCustomerBalanceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid customer id")
		return
	}

	balance, err := h.engine.CustomerBalance(r.Context(), id)
	if err != nil {
		if errors.Is(err, ledger.ErrCustomerNotFound) {
			respondWithError(w, http.StatusNotFound, "Customer not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to compute balance")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"customer_id": id,
		"balance":     balance,
	})
}

// Helpers

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// parseFilter builds a TransactionFilter from query parameters. Dates accept
// RFC 3339 or a bare yyyy-mm-dd.
func parseFilter(r *http.Request) (domain.TransactionFilter, error) {
	q := r.URL.Query()
	filter := domain.TransactionFilter{CustomerName: q.Get("customerName")}

	if raw := q.Get("transactionType"); raw != "" {
		typ, err := domain.ParseTransactionType(raw)
		if err != nil {
			return filter, err
		}
		filter.Type = typ
	}
	if raw := q.Get("startDate"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid startDate %q", raw)
		}
		filter.StartDate = &t
	}
	if raw := q.Get("endDate"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid endDate %q", raw)
		}
		filter.EndDate = &t
	}
	return filter, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}
