package models

import "time"

// Purchase is the model for the 'purchases' table. Rows are written once
// by a successful purchase and never updated.
type Purchase struct {
	ID           int64     `json:"id" db:"id"`
	CustomerID   int64     `json:"customerId" db:"customer_id"`
	ItemID       int64     `json:"itemId" db:"item_id"`
	Quantity     int       `json:"quantity" db:"quantity"`
	PurchaseDate time.Time `json:"purchaseDate" db:"purchase_date"`
}

// PurchaseHistoryEntry is a purchase joined with the item name for display.
type PurchaseHistoryEntry struct {
	ID           int64     `json:"id"`
	CustomerID   int64     `json:"customerId"`
	ItemID       int64     `json:"itemId"`
	Quantity     int       `json:"quantity"`
	PurchaseDate time.Time `json:"purchaseDate"`
	ItemName     string    `json:"itemName"`
}
