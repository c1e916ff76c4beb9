package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopstack/inventory-api/internal/models"
)

func TestCustomerAddDuplicateUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewCustomerRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO customers (username, password_hash, email) VALUES (?, ?, ?)")).
		WithArgs("bob", "hash", "bob@x.com").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'bob'"})

	c := models.Customer{Username: "bob", PasswordHash: "hash", Email: "bob@x.com"}
	assert.ErrorIs(t, repo.Add(context.Background(), &c), ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerAddAssignsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewCustomerRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO customers (username, password_hash, email) VALUES (?, ?, ?)")).
		WithArgs("bob", "hash", "bob@x.com").
		WillReturnResult(sqlmock.NewResult(3, 1))

	c := models.Customer{Username: "bob", PasswordHash: "hash", Email: "bob@x.com"}
	require.NoError(t, repo.Add(context.Background(), &c))
	assert.Equal(t, int64(3), c.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerGetByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewCustomerRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, username, password_hash, email FROM customers WHERE username = ?")).
		WithArgs("bob").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "email"}).
			AddRow(int64(3), "bob", "hash", "bob@x.com"))

	c, err := repo.GetByUsername(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(3), c.ID)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, username, password_hash, email FROM customers WHERE username = ?")).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "email"}))

	_, err = repo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserAddDuplicateUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO users (username, password_hash) VALUES (?, ?)")).
		WithArgs("admin", "hash").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'admin'"})

	u := models.User{Username: "admin", PasswordHash: "hash"}
	assert.ErrorIs(t, repo.Add(context.Background(), &u), ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}
