package repository

import (
	"time"

	"little-lemon-api/models"
	"little-lemon-api/services"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateFromCart runs the whole cart-to-order conversion in one write
// transaction: read the cart rows, create the order with its line items and
// total, drain the cart. Any failure rolls everything back. Two concurrent
// calls for the same user serialize on the transaction; the loser finds the
// cart already drained and gets ErrEmptyCart.
func (r *OrderRepository) CreateFromCart(userID uint, reference string, date time.Time) (*models.Order, error) {
	var orderID uint
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var entries []models.CartItem
		if err := tx.Where("user_id = ?", userID).Find(&entries).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return services.ErrEmptyCart
		}

		items := make([]models.OrderItem, 0, len(entries))
		var total float64
		for _, e := range entries {
			items = append(items, models.OrderItem{
				MenuItemID: e.MenuItemID,
				Quantity:   e.Quantity,
				UnitPrice:  e.UnitPrice,
				Price:      e.Price,
			})
			total += e.Price
		}

		order := models.Order{
			Reference: reference,
			UserID:    userID,
			Status:    false,
			Total:     total,
			Date:      date,
			Items:     items,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.Get(orderID)
}

func (r *OrderRepository) ListAll() ([]models.Order, error) {
	return r.list(r.DB)
}

func (r *OrderRepository) ListByUser(userID uint) ([]models.Order, error) {
	return r.list(r.DB.Where("user_id = ?", userID))
}

func (r *OrderRepository) ListByCrew(crewID uint) ([]models.Order, error) {
	return r.list(r.DB.Where("delivery_crew_id = ?", crewID))
}

func (r *OrderRepository) list(q *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	err := q.Preload("Items.MenuItem").Preload("DeliveryCrew").
		Order("date desc").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) Get(id uint) (*models.Order, error) {
	var order models.Order
	err := r.DB.Preload("Items.MenuItem").Preload("Items.MenuItem.Category").
		Preload("User").Preload("DeliveryCrew").
		First(&order, id).Error
	if err != nil {
		return nil, translate(err, "order")
	}
	return &order, nil
}

func (r *OrderRepository) Update(id uint, fields map[string]interface{}) (*models.Order, error) {
	res := r.DB.Model(&models.Order{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, translate(gorm.ErrRecordNotFound, "order")
	}
	return r.Get(id)
}

// Delete removes the order together with its line items.
func (r *OrderRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Order{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return translate(gorm.ErrRecordNotFound, "order")
		}
		return tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error
	})
}
