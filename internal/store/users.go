package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopstack/inventory-api/internal/models"
)

// UserRepository persists back-office accounts.
type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (models.User, error) {
	const op = "UserRepository.GetByUsername"

	var u models.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, username, password_hash FROM users WHERE username = ?", username).
		Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// Add inserts the user and sets its generated id. A username collision
// surfaces as ErrDuplicate: the UNIQUE index is the authority, so two
// concurrent registrations cannot both succeed.
func (r *UserRepository) Add(ctx context.Context, u *models.User) error {
	const op = "UserRepository.Add"

	result, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, password_hash) VALUES (?, ?)",
		u.Username, u.PasswordHash)
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
	u.ID = id
	return nil
}
