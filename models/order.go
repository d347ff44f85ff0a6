package models

import "time"

// Order is a committed cart. Total is fixed at creation time from the cart
// snapshot and never recomputed. Status is a plain delivered flag toggled by
// the delivery crew or a manager.
type Order struct {
	ID             uint        `json:"id" gorm:"primaryKey"`
	Reference      string      `json:"reference" gorm:"uniqueIndex;not null"`
	UserID         uint        `json:"user_id" gorm:"not null"`
	User           User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	DeliveryCrewID *uint       `json:"delivery_crew_id"`
	DeliveryCrew   *User       `json:"delivery_crew,omitempty" gorm:"foreignKey:DeliveryCrewID"`
	Status         bool        `json:"status" gorm:"not null;default:false"`
	Total          float64     `json:"total"`
	Date           time.Time   `json:"date"`
	Items          []OrderItem `json:"order_items,omitempty" gorm:"foreignKey:OrderID"`
}

// OrderItem mirrors a cart entry at commit time. Rows are immutable once
// created, so later catalog price changes never touch placed orders.
type OrderItem struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	OrderID    uint     `json:"order_id" gorm:"not null"`
	MenuItemID uint     `json:"menuitem_id" gorm:"not null"`
	MenuItem   MenuItem `json:"menuitem,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int      `json:"quantity" gorm:"not null"`
	UnitPrice  float64  `json:"unit_price" gorm:"not null"`
	Price      float64  `json:"price" gorm:"not null"`
}
