package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/punchamoorthee/fintransact/internal/domain"
)

// MemoryStore is an in-memory TransactionStore and customer directory with
// the same observable semantics as PostgresStore. It backs the test suites
// and local development without a database.
type MemoryStore struct {
	mu             sync.Mutex
	nextTxID       int64
	nextCustomerID int64
	transactions   map[int64]domain.Transaction
	customers      map[int64]domain.Customer
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		transactions: make(map[int64]domain.Transaction),
		customers:    make(map[int64]domain.Customer),
	}
}

// FindTransaction returns a copy of the stored record, or (nil, nil) on miss.
func (s *MemoryStore) FindTransaction(ctx context.Context, id int64) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.transactions[id]
	if !ok {
		return nil, nil
	}
	return s.withCustomer(t), nil
}

func (s *MemoryStore) ListTransactions(ctx context.Context, f domain.TransactionFilter) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Transaction
	for _, t := range s.transactions {
		if f.CustomerID != 0 && t.CustomerID != f.CustomerID {
			continue
		}
		if f.CustomerName != "" {
			c, ok := s.customers[t.CustomerID]
			if !ok || !strings.Contains(strings.ToLower(c.FullName), strings.ToLower(f.CustomerName)) {
				continue
			}
		}
		if f.StartDate != nil && t.Date.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && t.Date.After(*f.EndDate) {
			continue
		}
		if f.Type != "" && t.Type != f.Type {
			continue
		}
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		out = append(out, *s.withCustomer(t))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID < out[j].ID
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

func (s *MemoryStore) InsertTransaction(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextTxID++
	stored := *t
	stored.ID = s.nextTxID
	stored.Customer = nil
	s.transactions[stored.ID] = stored
	return s.withCustomer(stored), nil
}

func (s *MemoryStore) SaveTransaction(ctx context.Context, t *domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[t.ID]; !ok {
		return ErrNoRowsAffected
	}
	stored := *t
	stored.Customer = nil
	s.transactions[stored.ID] = stored
	return nil
}

func (s *MemoryStore) DeleteTransaction(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[id]; !ok {
		return false, nil
	}
	delete(s.transactions, id)
	return true, nil
}

func (s *MemoryStore) FindCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customers[id]
	if !ok {
		return nil, nil
	}
	cp := c
	return &cp, nil
}

func (s *MemoryStore) FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.customers {
		if strings.EqualFold(c.Email, email) {
			cp := c
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) InsertCustomer(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextCustomerID++
	stored := *c
	stored.ID = s.nextCustomerID
	s.customers[stored.ID] = stored
	cp := stored
	return &cp, nil
}

// withCustomer attaches a copy of the owning customer, matching the join the
// Postgres store performs. Caller must hold s.mu.
func (s *MemoryStore) withCustomer(t domain.Transaction) *domain.Transaction {
	if c, ok := s.customers[t.CustomerID]; ok {
		cp := c
		t.Customer = &cp
	}
	return &t
}
