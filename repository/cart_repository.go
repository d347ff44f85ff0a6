package repository

import (
	"little-lemon-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// Upsert inserts the entry or, when a row for the same (user, menu item) key
// exists, merges into it in a single conditional write: the quantity is
// incremented and the price snapshot resynced to the incoming unit price.
// Doing this at the statement level rules out the read-then-write race on
// concurrent adds.
func (r *CartRepository) Upsert(entry *models.CartItem) (*models.CartItem, error) {
	err := r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "menu_item_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + excluded.quantity"),
			"unit_price": gorm.Expr("excluded.unit_price"),
			"price":      gorm.Expr("excluded.unit_price * (cart_items.quantity + excluded.quantity)"),
		}),
	}).Create(entry).Error
	if err != nil {
		return nil, err
	}

	var merged models.CartItem
	err = r.DB.Preload("MenuItem").Preload("MenuItem.Category").
		Where("user_id = ? AND menu_item_id = ?", entry.UserID, entry.MenuItemID).
		First(&merged).Error
	if err != nil {
		return nil, translate(err, "cart entry")
	}
	return &merged, nil
}

func (r *CartRepository) ListByUser(userID uint) ([]models.CartItem, error) {
	var entries []models.CartItem
	err := r.DB.Preload("MenuItem").Preload("MenuItem.Category").
		Where("user_id = ?", userID).
		Order("id").
		Find(&entries).Error
	return entries, err
}

func (r *CartRepository) ClearUser(userID uint) error {
	return r.DB.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
