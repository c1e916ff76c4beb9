package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shopstack/inventory-api/internal/models"
	"github.com/shopstack/inventory-api/internal/store"
)

// fakeCustomerStore keeps customers in memory, enforcing username
// uniqueness like the real table does.
type fakeCustomerStore struct {
	customers map[string]models.Customer
	nextID    int64
}

func newFakeCustomerStore() *fakeCustomerStore {
	return &fakeCustomerStore{customers: map[string]models.Customer{}, nextID: 1}
}

func (f *fakeCustomerStore) GetByUsername(_ context.Context, username string) (models.Customer, error) {
	c, ok := f.customers[username]
	if !ok {
		return models.Customer{}, store.ErrNotFound
	}
	return c, nil
}

func (f *fakeCustomerStore) Add(_ context.Context, c *models.Customer) error {
	if _, ok := f.customers[c.Username]; ok {
		return store.ErrDuplicate
	}
	c.ID = f.nextID
	f.nextID++
	f.customers[c.Username] = *c
	return nil
}

func newCustomerService(f *fakeCustomerStore) *CustomerService {
	return NewCustomerService(f, zap.NewNop())
}

func TestCustomerRegisterStoresHashNotPlaintext(t *testing.T) {
	fake := newFakeCustomerStore()
	svc := newCustomerService(fake)

	customer, err := svc.Register(context.Background(), "bob", "pw123456", "bob@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), customer.ID)

	stored := fake.customers["bob"]
	assert.NotEqual(t, "pw123456", stored.PasswordHash)

	pw := models.Password{Hash: stored.PasswordHash}
	ok, err := pw.Matches("pw123456")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCustomerRegisterDuplicateUsername(t *testing.T) {
	fake := newFakeCustomerStore()
	svc := newCustomerService(fake)

	_, err := svc.Register(context.Background(), "bob", "pw123456", "bob@x.com")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "bob", "other-pass", "bob2@x.com")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestCustomerLogin(t *testing.T) {
	fake := newFakeCustomerStore()
	svc := newCustomerService(fake)

	registered, err := svc.Register(context.Background(), "bob", "pw123456", "bob@x.com")
	require.NoError(t, err)

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "bob", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownUsername", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody", "pw123456")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Success", func(t *testing.T) {
		customer, err := svc.Login(context.Background(), "bob", "pw123456")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, customer.ID)
		assert.Equal(t, "bob", customer.Username)
	})
}
