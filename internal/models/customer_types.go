package models

// Customer is a storefront account. Customers live in their own table,
// fully separate from back-office users.
type Customer struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
	Email        string `json:"email" db:"email"`
}
