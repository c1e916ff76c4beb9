package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopstack/inventory-api/internal/models"
)

// CustomerRepository persists storefront accounts.
type CustomerRepository struct {
	DB *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) GetByUsername(ctx context.Context, username string) (models.Customer, error) {
	const op = "CustomerRepository.GetByUsername"

	var c models.Customer
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, username, password_hash, email FROM customers WHERE username = ?", username).
		Scan(&c.ID, &c.Username, &c.PasswordHash, &c.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Customer{}, ErrNotFound
		}
		return models.Customer{}, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// Add inserts the customer and sets its generated id. Username collisions
// surface as ErrDuplicate.
func (r *CustomerRepository) Add(ctx context.Context, c *models.Customer) error {
	const op = "CustomerRepository.Add"

	result, err := r.DB.ExecContext(ctx,
		"INSERT INTO customers (username, password_hash, email) VALUES (?, ?, ?)",
		c.Username, c.PasswordHash, c.Email)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	c.ID = id
	return nil
}
