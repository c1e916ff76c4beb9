package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/shopstack/inventory-api/internal/models"
	"github.com/shopstack/inventory-api/internal/store"
)

// UserStore is the persistence surface UserService needs.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (models.User, error)
	Add(ctx context.Context, u *models.User) error
}

// UserService handles back-office account registration and credential
// verification. Token issuance happens at the handler once the identity
// is verified.
type UserService struct {
	store UserStore
	log   *zap.Logger
}

func NewUserService(s UserStore, log *zap.Logger) *UserService {
	return &UserService{store: s, log: log}
}

func (s *UserService) Register(ctx context.Context, username, password string) (models.User, error) {
	const op = "UserService.Register"

	var pw models.Password
	if err := pw.Set(password); err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	user := models.User{Username: username, PasswordHash: pw.Hash}
	if err := s.store.Add(ctx, &user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user registered", zap.Int64("userId", user.ID), zap.String("username", username))
	return user, nil
}

func (s *UserService) Login(ctx context.Context, username, password string) (models.User, error) {
	const op = "UserService.Login"

	user, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	pw := models.Password{Hash: user.PasswordHash}
	ok, err := pw.Matches(password)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		s.log.Warn("failed user login", zap.String("username", username))
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}
