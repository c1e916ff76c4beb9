package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shopstack/inventory-api/internal/models"
	"github.com/shopstack/inventory-api/internal/services"
	"github.com/shopstack/inventory-api/internal/store"
)

type CustomerService interface {
	Register(ctx context.Context, username, password, email string) (models.Customer, error)
	Login(ctx context.Context, username, password string) (models.Customer, error)
}

type UserService interface {
	Register(ctx context.Context, username, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
}

type InventoryService interface {
	ListAll(ctx context.Context) ([]models.InventoryItem, error)
	GetByID(ctx context.Context, id int64) (models.InventoryItem, error)
	GetByName(ctx context.Context, name string) (models.InventoryItem, error)
	Search(ctx context.Context, term string) ([]models.InventoryItem, error)
	Create(ctx context.Context, name string, quantity int, price float64) (models.InventoryItem, error)
	Update(ctx context.Context, id int64, upd services.ItemUpdate) (models.InventoryItem, error)
	Delete(ctx context.Context, id int64) error
}

type PurchaseService interface {
	Purchase(ctx context.Context, customerID, itemID int64, quantity int) (models.Purchase, error)
	History(ctx context.Context, customerID int64) ([]models.PurchaseHistoryEntry, error)
}

type TokenIssuer interface {
	IssueToken(username string) (string, error)
}

// Handlers holds all dependencies for the HTTP layer.
type Handlers struct {
	Customers CustomerService
	Users     UserService
	Inventory InventoryService
	Purchases PurchaseService
	Tokens    TokenIssuer
	Log       *zap.Logger
}

// serviceError maps service failures to HTTP responses. Unexpected errors
// are logged and answered with a generic 500 so internals never leak to
// the client.
func (h *Handlers) serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password."})
	case errors.Is(err, services.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists."})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, store.ErrInsufficientStock):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient stock or item not found."})
	default:
		h.Log.Error("unexpected error", zap.Error(err), zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
