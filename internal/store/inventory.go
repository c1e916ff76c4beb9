package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopstack/inventory-api/internal/models"
)

// InventoryRepository persists inventory items in MySQL. It satisfies
// Repository[models.InventoryItem, int64].
type InventoryRepository struct {
	DB *sql.DB
}

func NewInventoryRepository(db *sql.DB) *InventoryRepository {
	return &InventoryRepository{DB: db}
}

var _ Repository[models.InventoryItem, int64] = (*InventoryRepository)(nil)

func (r *InventoryRepository) GetAll(ctx context.Context) ([]models.InventoryItem, error) {
	const op = "InventoryRepository.GetAll"

	rows, err := r.DB.QueryContext(ctx,
		"SELECT item_id, name, quantity, price FROM inventory_items ORDER BY item_id")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := []models.InventoryItem{}
	for rows.Next() {
		var item models.InventoryItem
		if err := rows.Scan(&item.ItemID, &item.Name, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

func (r *InventoryRepository) GetByID(ctx context.Context, id int64) (models.InventoryItem, error) {
	const op = "InventoryRepository.GetByID"

	var item models.InventoryItem
	err := r.DB.QueryRowContext(ctx,
		"SELECT item_id, name, quantity, price FROM inventory_items WHERE item_id = ?", id).
		Scan(&item.ItemID, &item.Name, &item.Quantity, &item.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.InventoryItem{}, ErrNotFound
		}
		return models.InventoryItem{}, fmt.Errorf("%s: %w", op, err)
	}
	return item, nil
}

// GetByName returns the item whose name matches exactly.
func (r *InventoryRepository) GetByName(ctx context.Context, name string) (models.InventoryItem, error) {
	const op = "InventoryRepository.GetByName"

	var item models.InventoryItem
	err := r.DB.QueryRowContext(ctx,
		"SELECT item_id, name, quantity, price FROM inventory_items WHERE name = ?", name).
		Scan(&item.ItemID, &item.Name, &item.Quantity, &item.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.InventoryItem{}, ErrNotFound
		}
		return models.InventoryItem{}, fmt.Errorf("%s: %w", op, err)
	}
	return item, nil
}

// SearchByName returns items whose name contains the term. The BINARY
// modifier keeps the match case-sensitive regardless of column collation.
func (r *InventoryRepository) SearchByName(ctx context.Context, term string) ([]models.InventoryItem, error) {
	const op = "InventoryRepository.SearchByName"

	rows, err := r.DB.QueryContext(ctx,
		"SELECT item_id, name, quantity, price FROM inventory_items WHERE name LIKE BINARY CONCAT('%', ?, '%') ORDER BY item_id",
		term)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := []models.InventoryItem{}
	for rows.Next() {
		var item models.InventoryItem
		if err := rows.Scan(&item.ItemID, &item.Name, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// Add inserts the item and sets its generated id.
func (r *InventoryRepository) Add(ctx context.Context, item *models.InventoryItem) error {
	const op = "InventoryRepository.Add"

	result, err := r.DB.ExecContext(ctx,
		"INSERT INTO inventory_items (name, quantity, price) VALUES (?, ?, ?)",
		item.Name, item.Quantity, item.Price)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	item.ItemID = id
	return nil
}

func (r *InventoryRepository) Update(ctx context.Context, item *models.InventoryItem) error {
	const op = "InventoryRepository.Update"

	result, err := r.DB.ExecContext(ctx,
		"UPDATE inventory_items SET name = ?, quantity = ?, price = ? WHERE item_id = ?",
		item.Name, item.Quantity, item.Price, item.ItemID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		// MySQL also reports 0 when the row exists but nothing changed;
		// confirm absence before declaring not found.
		if _, err := r.GetByID(ctx, item.ItemID); err != nil {
			return err
		}
	}
	return nil
}

func (r *InventoryRepository) Delete(ctx context.Context, id int64) error {
	const op = "InventoryRepository.Delete"

	result, err := r.DB.ExecContext(ctx, "DELETE FROM inventory_items WHERE item_id = ?", id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
