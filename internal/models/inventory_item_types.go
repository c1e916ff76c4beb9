package models

// InventoryItem is the model for the 'inventory_items' table
type InventoryItem struct {
	ItemID   int64   `json:"itemId" db:"item_id"`
	Name     string  `json:"name" db:"name"`
	Quantity int     `json:"quantity" db:"quantity"`
	Price    float64 `json:"price" db:"price"`
}
