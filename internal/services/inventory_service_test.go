package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shopstack/inventory-api/internal/models"
	"github.com/shopstack/inventory-api/internal/store"
)

type fakeInventoryStore struct {
	items  map[int64]models.InventoryItem
	nextID int64
}

func newFakeInventoryStore() *fakeInventoryStore {
	return &fakeInventoryStore{items: map[int64]models.InventoryItem{}, nextID: 1}
}

func (f *fakeInventoryStore) GetAll(context.Context) ([]models.InventoryItem, error) {
	out := []models.InventoryItem{}
	for _, item := range f.items {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeInventoryStore) GetByID(_ context.Context, id int64) (models.InventoryItem, error) {
	item, ok := f.items[id]
	if !ok {
		return models.InventoryItem{}, store.ErrNotFound
	}
	return item, nil
}

func (f *fakeInventoryStore) GetByName(_ context.Context, name string) (models.InventoryItem, error) {
	for _, item := range f.items {
		if item.Name == name {
			return item, nil
		}
	}
	return models.InventoryItem{}, store.ErrNotFound
}

func (f *fakeInventoryStore) SearchByName(_ context.Context, term string) ([]models.InventoryItem, error) {
	out := []models.InventoryItem{}
	for _, item := range f.items {
		if strings.Contains(item.Name, term) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeInventoryStore) Add(_ context.Context, item *models.InventoryItem) error {
	item.ItemID = f.nextID
	f.nextID++
	f.items[item.ItemID] = *item
	return nil
}

func (f *fakeInventoryStore) Update(_ context.Context, item *models.InventoryItem) error {
	if _, ok := f.items[item.ItemID]; !ok {
		return store.ErrNotFound
	}
	f.items[item.ItemID] = *item
	return nil
}

func (f *fakeInventoryStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func newInventoryService(f *fakeInventoryStore) *InventoryService {
	return NewInventoryService(f, zap.NewNop())
}

func TestInventoryCreateValidation(t *testing.T) {
	svc := newInventoryService(newFakeInventoryStore())
	ctx := context.Background()

	_, err := svc.Create(ctx, "", 5, 2.50)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, strings.Repeat("x", 101), 5, 2.50)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, "Widget", -1, 2.50)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, "Widget", 5, 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestInventoryCreateThenGet(t *testing.T) {
	fake := newFakeInventoryStore()
	svc := newInventoryService(fake)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Widget", 5, 2.50)
	require.NoError(t, err)
	require.NotZero(t, created.ItemID)

	got, err := svc.GetByID(ctx, created.ItemID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestInventoryUpdatePartial(t *testing.T) {
	fake := newFakeInventoryStore()
	svc := newInventoryService(fake)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Widget", 5, 2.50)
	require.NoError(t, err)

	newPrice := 3.75
	updated, err := svc.Update(ctx, created.ItemID, ItemUpdate{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, "Widget", updated.Name, "unset fields keep their value")
	assert.Equal(t, 5, updated.Quantity)
	assert.Equal(t, 3.75, updated.Price)
}

func TestInventoryUpdateMissing(t *testing.T) {
	svc := newInventoryService(newFakeInventoryStore())

	name := "Widget"
	_, err := svc.Update(context.Background(), 42, ItemUpdate{Name: &name})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestInventoryDeleteMissing(t *testing.T) {
	svc := newInventoryService(newFakeInventoryStore())
	assert.ErrorIs(t, svc.Delete(context.Background(), 42), store.ErrNotFound)
}
