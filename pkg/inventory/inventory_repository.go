package inventory

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/entities"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/pkg/kvstore"
)

type (
	InventoryRepository interface {
		Load(ctx context.Context) ([]entities.FoodItem, error)
		SaveAll(ctx context.Context, items []entities.FoodItem) error
	}

	inventoryRepository struct {
		store kvstore.Store
	}
)

func NewInventoryRepository(store kvstore.Store) InventoryRepository {
	return &inventoryRepository{store: store}
}

// Load returns the full ordered collection. A missing key yields an
// empty fridge; a corrupted value is discarded rather than surfaced.
func (r *inventoryRepository) Load(ctx context.Context) ([]entities.FoodItem, error) {
	raw, err := r.store.Get(ctx, kvstore.KeyItems)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return []entities.FoodItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []entities.FoodItem
	if err := json.Unmarshal(raw, &items); err != nil {
		_ = r.store.Delete(ctx, kvstore.KeyItems)
		return []entities.FoodItem{}, nil
	}
	return items, nil
}

func (r *inventoryRepository) SaveAll(ctx context.Context, items []entities.FoodItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, kvstore.KeyItems, raw)
}
