package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopstack/inventory-api/internal/models"
)

// PurchaseRepository owns the purchase transaction and the history join.
type PurchaseRepository struct {
	DB *sql.DB
}

func NewPurchaseRepository(db *sql.DB) *PurchaseRepository {
	return &PurchaseRepository{DB: db}
}

// CreatePurchase decrements stock and records the purchase as one unit of
// work. The decrement only applies when enough stock exists, so the check
// and the write are a single atomic statement: zero rows affected means the
// item is missing or the stock is short, and nothing is mutated. Concurrent
// purchases of the same item serialize on the row lock instead of racing.
func (r *PurchaseRepository) CreatePurchase(ctx context.Context, customerID, itemID int64, quantity int) (purchase models.Purchase, err error) {
	const op = "PurchaseRepository.CreatePurchase"

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Purchase{}, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback() // Safety net

	result, err := tx.ExecContext(ctx,
		"UPDATE inventory_items SET quantity = quantity - ? WHERE item_id = ? AND quantity >= ?",
		quantity, itemID, quantity)
	if err != nil {
		return models.Purchase{}, fmt.Errorf("%s: %w", op, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return models.Purchase{}, fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return models.Purchase{}, ErrInsufficientStock
	}

	now := time.Now().UTC()
	result, err = tx.ExecContext(ctx,
		"INSERT INTO purchases (customer_id, item_id, quantity, purchase_date) VALUES (?, ?, ?, ?)",
		customerID, itemID, quantity, now)
	if err != nil {
		return models.Purchase{}, fmt.Errorf("%s: %w", op, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Purchase{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return models.Purchase{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.Purchase{
		ID:           id,
		CustomerID:   customerID,
		ItemID:       itemID,
		Quantity:     quantity,
		PurchaseDate: now,
	}, nil
}

// HistoryByCustomer joins purchases with item names for display. A customer
// with no purchases yields an empty slice, not an error.
func (r *PurchaseRepository) HistoryByCustomer(ctx context.Context, customerID int64) ([]models.PurchaseHistoryEntry, error) {
	const op = "PurchaseRepository.HistoryByCustomer"

	query := `
		SELECT p.id, p.customer_id, p.item_id, p.quantity, p.purchase_date, i.name
		FROM purchases p
		JOIN inventory_items i ON p.item_id = i.item_id
		WHERE p.customer_id = ?
		ORDER BY p.purchase_date DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	entries := []models.PurchaseHistoryEntry{}
	for rows.Next() {
		var e models.PurchaseHistoryEntry
		if err := rows.Scan(&e.ID, &e.CustomerID, &e.ItemID, &e.Quantity, &e.PurchaseDate, &e.ItemName); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return entries, nil
}
