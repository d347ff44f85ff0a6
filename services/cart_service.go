package services

import (
	"fmt"

	"little-lemon-api/models"
)

type CartService struct {
	Catalog CatalogStore
	Carts   CartStore
}

func NewCartService(catalog CatalogStore, carts CartStore) *CartService {
	return &CartService{Catalog: catalog, Carts: carts}
}

// AddItem merges a menu item into the user's cart. A fresh entry snapshots
// the current catalog price; a repeat add increments the quantity and
// resyncs the snapshot to the current price.
func (s *CartService) AddItem(userID, menuItemID uint, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}
	item, err := s.Catalog.GetMenuItem(menuItemID)
	if err != nil {
		return nil, err
	}
	return s.Carts.Upsert(&models.CartItem{
		UserID:     userID,
		MenuItemID: item.ID,
		Quantity:   quantity,
		UnitPrice:  item.Price,
		Price:      item.Price * float64(quantity),
	})
}

// List returns the user's cart entries and their combined price.
func (s *CartService) List(userID uint) ([]models.CartItem, float64, error) {
	entries, err := s.Carts.ListByUser(userID)
	if err != nil {
		return nil, 0, err
	}
	var total float64
	for _, e := range entries {
		total += e.Price
	}
	return entries, total, nil
}

// Clear removes every entry from the user's cart. Clearing an empty cart
// succeeds with no effect.
func (s *CartService) Clear(userID uint) error {
	return s.Carts.ClearUser(userID)
}
