package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/shopstack/inventory-api/internal/models"
	"github.com/shopstack/inventory-api/internal/store"
)

// CustomerStore is the persistence surface CustomerService needs.
type CustomerStore interface {
	GetByUsername(ctx context.Context, username string) (models.Customer, error)
	Add(ctx context.Context, c *models.Customer) error
}

// CustomerService registers storefront accounts and verifies their
// credentials on login.
type CustomerService struct {
	store CustomerStore
	log   *zap.Logger
}

func NewCustomerService(s CustomerStore, log *zap.Logger) *CustomerService {
	return &CustomerService{store: s, log: log}
}

// Register creates a customer account. Passwords are stored only as bcrypt
// hashes; the plaintext never reaches the database or the logs.
func (s *CustomerService) Register(ctx context.Context, username, password, email string) (models.Customer, error) {
	const op = "CustomerService.Register"

	var pw models.Password
	if err := pw.Set(password); err != nil {
		return models.Customer{}, fmt.Errorf("%s: %w", op, err)
	}

	customer := models.Customer{
		Username:     username,
		PasswordHash: pw.Hash,
		Email:        email,
	}
	if err := s.store.Add(ctx, &customer); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return models.Customer{}, ErrUsernameTaken
		}
		return models.Customer{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("customer registered",
		zap.Int64("customerId", customer.ID),
		zap.String("username", username))
	return customer, nil
}

// Login verifies the submitted credentials against the stored hash.
func (s *CustomerService) Login(ctx context.Context, username, password string) (models.Customer, error) {
	const op = "CustomerService.Login"

	customer, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Customer{}, ErrInvalidCredentials
		}
		return models.Customer{}, fmt.Errorf("%s: %w", op, err)
	}

	pw := models.Password{Hash: customer.PasswordHash}
	ok, err := pw.Matches(password)
	if err != nil {
		return models.Customer{}, fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		s.log.Warn("failed customer login", zap.String("username", username))
		return models.Customer{}, ErrInvalidCredentials
	}
	return customer, nil
}
