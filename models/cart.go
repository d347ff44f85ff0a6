package models

// CartItem is a user's pending selection of one menu item. The unique index
// on (user_id, menu_item_id) backs the merge-on-repeat-add upsert. UnitPrice
// is the catalog price snapshot taken at the most recent add; Price is always
// UnitPrice * Quantity.
type CartItem struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	UserID     uint     `json:"user_id" gorm:"not null;uniqueIndex:idx_cart_user_item"`
	MenuItemID uint     `json:"menuitem_id" gorm:"not null;uniqueIndex:idx_cart_user_item"`
	MenuItem   MenuItem `json:"menuitem,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int      `json:"quantity" gorm:"not null"`
	UnitPrice  float64  `json:"unit_price" gorm:"not null"`
	Price      float64  `json:"price" gorm:"not null"`
}
