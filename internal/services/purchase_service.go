package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shopstack/inventory-api/internal/models"
)

// PurchaseStore is the persistence surface PurchaseService needs.
type PurchaseStore interface {
	CreatePurchase(ctx context.Context, customerID, itemID int64, quantity int) (models.Purchase, error)
	HistoryByCustomer(ctx context.Context, customerID int64) ([]models.PurchaseHistoryEntry, error)
}

// PurchaseService performs the purchase transaction and reads history.
type PurchaseService struct {
	store PurchaseStore
	log   *zap.Logger
}

func NewPurchaseService(s PurchaseStore, log *zap.Logger) *PurchaseService {
	return &PurchaseService{store: s, log: log}
}

// Purchase decrements stock and records a purchase. The store guarantees
// the decrement and the record happen as one unit of work, and that a
// failed purchase leaves stock untouched.
func (s *PurchaseService) Purchase(ctx context.Context, customerID, itemID int64, quantity int) (models.Purchase, error) {
	if quantity <= 0 {
		return models.Purchase{}, fmt.Errorf("%w: quantity must be greater than 0", ErrValidation)
	}

	purchase, err := s.store.CreatePurchase(ctx, customerID, itemID, quantity)
	if err != nil {
		return models.Purchase{}, err
	}

	s.log.Info("purchase completed",
		zap.Int64("purchaseId", purchase.ID),
		zap.Int64("customerId", customerID),
		zap.Int64("itemId", itemID),
		zap.Int("quantity", quantity))
	return purchase, nil
}

// History returns the customer's purchases joined with item names. An empty
// slice means the customer has no purchases.
func (s *PurchaseService) History(ctx context.Context, customerID int64) ([]models.PurchaseHistoryEntry, error) {
	return s.store.HistoryByCustomer(ctx, customerID)
}
