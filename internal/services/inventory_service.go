package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shopstack/inventory-api/internal/models"
	"github.com/shopstack/inventory-api/internal/store"
)

// InventoryStore is the persistence surface InventoryService needs: the
// uniform CRUD contract plus the name lookups.
type InventoryStore interface {
	store.Repository[models.InventoryItem, int64]
	GetByName(ctx context.Context, name string) (models.InventoryItem, error)
	SearchByName(ctx context.Context, term string) ([]models.InventoryItem, error)
}

// ItemUpdate carries a partial overwrite for an existing item. Nil fields
// are left unchanged.
type ItemUpdate struct {
	Name     *string
	Quantity *int
	Price    *float64
}

// InventoryService exposes read/search/create/update/delete over items.
type InventoryService struct {
	store InventoryStore
	log   *zap.Logger
}

func NewInventoryService(s InventoryStore, log *zap.Logger) *InventoryService {
	return &InventoryService{store: s, log: log}
}

func (s *InventoryService) ListAll(ctx context.Context) ([]models.InventoryItem, error) {
	return s.store.GetAll(ctx)
}

func (s *InventoryService) GetByID(ctx context.Context, id int64) (models.InventoryItem, error) {
	return s.store.GetByID(ctx, id)
}

func (s *InventoryService) GetByName(ctx context.Context, name string) (models.InventoryItem, error) {
	return s.store.GetByName(ctx, name)
}

func (s *InventoryService) Search(ctx context.Context, term string) ([]models.InventoryItem, error) {
	return s.store.SearchByName(ctx, term)
}

// Create validates the fields and inserts the item, returning it with its
// generated id.
func (s *InventoryService) Create(ctx context.Context, name string, quantity int, price float64) (models.InventoryItem, error) {
	if err := validateItemFields(name, quantity, price); err != nil {
		return models.InventoryItem{}, err
	}

	item := models.InventoryItem{Name: name, Quantity: quantity, Price: price}
	if err := s.store.Add(ctx, &item); err != nil {
		return models.InventoryItem{}, err
	}

	s.log.Info("inventory item created",
		zap.Int64("itemId", item.ItemID),
		zap.String("name", item.Name))
	return item, nil
}

// Update applies a partial overwrite to an existing item and returns the
// updated record.
func (s *InventoryService) Update(ctx context.Context, id int64, upd ItemUpdate) (models.InventoryItem, error) {
	item, err := s.store.GetByID(ctx, id)
	if err != nil {
		return models.InventoryItem{}, err
	}

	if upd.Name != nil {
		item.Name = *upd.Name
	}
	if upd.Quantity != nil {
		item.Quantity = *upd.Quantity
	}
	if upd.Price != nil {
		item.Price = *upd.Price
	}
	if err := validateItemFields(item.Name, item.Quantity, item.Price); err != nil {
		return models.InventoryItem{}, err
	}

	if err := s.store.Update(ctx, &item); err != nil {
		return models.InventoryItem{}, err
	}
	s.log.Info("inventory item updated", zap.Int64("itemId", id))
	return item, nil
}

func (s *InventoryService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("inventory item deleted", zap.Int64("itemId", id))
	return nil
}

func validateItemFields(name string, quantity int, price float64) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(name) > 100 {
		return fmt.Errorf("%w: name can't be longer than 100 characters", ErrValidation)
	}
	if quantity < 0 {
		return fmt.Errorf("%w: quantity must be a positive number", ErrValidation)
	}
	if price <= 0 {
		return fmt.Errorf("%w: price must be greater than 0", ErrValidation)
	}
	return nil
}
