package store

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
)

// Sentinel errors reported by repositories. Handlers map these to HTTP
// status codes with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicate         = errors.New("duplicate entry")
	ErrInsufficientStock = errors.New("insufficient stock or item not found")
)

// Repository is the uniform data-access contract satisfied by every
// entity repository in this package.
type Repository[T any, ID comparable] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id ID) (T, error)
	Add(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id ID) error
}

const mysqlDupEntry = 1062

func isDuplicateKey(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlDupEntry
}
