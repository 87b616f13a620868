package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/punchamoorthee/fintransact/internal/domain"
)

// PostgresStore is the pgx-backed TransactionStore and customer directory.
type PostgresStore struct {
	Db *pgxpool.Pool
}

func NewPostgresStore(connString string) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return &PostgresStore{Db: pool}, nil
}

func (s *PostgresStore) Close() {
	s.Db.Close()
}

const transactionColumns = `t.id, t.customer_id, t.amount, t.type, t.date, t.description, t.status,
	c.id, c.full_name, c.phone_number, c.address, c.email`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	var c domain.Customer
	err := row.Scan(
		&t.ID, &t.CustomerID, &t.Amount, &t.Type, &t.Date, &t.Description, &t.Status,
		&c.ID, &c.FullName, &c.PhoneNumber, &c.Address, &c.Email,
	)
	if err != nil {
		return nil, err
	}
	t.Customer = &c
	return &t, nil
}

// FindTransaction retrieves a transaction with its owning customer.
// A miss returns (nil, nil).
func (s *PostgresStore) FindTransaction(ctx context.Context, id int64) (*domain.Transaction, error) {
	row := s.Db.QueryRow(ctx,
		`SELECT `+transactionColumns+`
		 FROM transactions t JOIN customers c ON c.id = t.customer_id
		 WHERE t.id = $1`, id)
	t, err := scanTransaction(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find transaction: %w", err)
	}
	return t, nil
}

// ListTransactions retrieves transactions matching the filter, oldest first.
func (s *PostgresStore) ListTransactions(ctx context.Context, f domain.TransactionFilter) ([]domain.Transaction, error) {
	var conds []string
	var args []interface{}

	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.CustomerID != 0 {
		add("t.customer_id = $%d", f.CustomerID)
	}
	if f.CustomerName != "" {
		add("c.full_name ILIKE $%d", "%"+f.CustomerName+"%")
	}
	if f.StartDate != nil {
		add("t.date >= $%d", *f.StartDate)
	}
	if f.EndDate != nil {
		add("t.date <= $%d", *f.EndDate)
	}
	if f.Type != "" {
		add("t.type = $%d", string(f.Type))
	}
	if f.Status != "" {
		add("t.status = $%d", string(f.Status))
	}

	query := `SELECT ` + transactionColumns + `
		FROM transactions t JOIN customers c ON c.id = t.customer_id`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY t.date, t.id"

	rows, err := s.Db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return out, nil
}

// InsertTransaction persists a new transaction and returns it with its
// assigned id.
func (s *PostgresStore) InsertTransaction(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	created := *t
	err := s.Db.QueryRow(ctx,
		`INSERT INTO transactions (customer_id, amount, type, date, description, status)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		t.CustomerID, t.Amount, string(t.Type), t.Date, t.Description, string(t.Status),
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}
	return &created, nil
}

// SaveTransaction overwrites an existing transaction's mutable fields.
func (s *PostgresStore) SaveTransaction(ctx context.Context, t *domain.Transaction) error {
	tag, err := s.Db.Exec(ctx,
		`UPDATE transactions SET amount = $1, type = $2, date = $3, description = $4, status = $5
		 WHERE id = $6`,
		t.Amount, string(t.Type), t.Date, t.Description, string(t.Status), t.ID,
	)
	if err != nil {
		return fmt.Errorf("save transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("save transaction %d: %w", t.ID, ErrNoRowsAffected)
	}
	return nil
}

// DeleteTransaction removes a transaction permanently. It reports whether a
// row was actually deleted.
func (s *PostgresStore) DeleteTransaction(ctx context.Context, id int64) (bool, error) {
	tag, err := s.Db.Exec(ctx, "DELETE FROM transactions WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete transaction: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// FindCustomer retrieves a customer by id. A miss returns (nil, nil).
func (s *PostgresStore) FindCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	var c domain.Customer
	err := s.Db.QueryRow(ctx,
		"SELECT id, full_name, phone_number, address, email FROM customers WHERE id = $1", id,
	).Scan(&c.ID, &c.FullName, &c.PhoneNumber, &c.Address, &c.Email)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return &c, nil
}

// FindCustomerByEmail retrieves a customer by their natural key.
// A miss returns (nil, nil).
func (s *PostgresStore) FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	var c domain.Customer
	err := s.Db.QueryRow(ctx,
		"SELECT id, full_name, phone_number, address, email FROM customers WHERE email = $1", email,
	).Scan(&c.ID, &c.FullName, &c.PhoneNumber, &c.Address, &c.Email)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find customer by email: %w", err)
	}
	return &c, nil
}

// InsertCustomer persists a new customer and returns it with its assigned id.
func (s *PostgresStore) InsertCustomer(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	created := *c
	err := s.Db.QueryRow(ctx,
		`INSERT INTO customers (full_name, phone_number, address, email)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		c.FullName, c.PhoneNumber, c.Address, c.Email,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("insert customer: %w", err)
	}
	return &created, nil
}
