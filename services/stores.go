package services

import (
	"time"

	"little-lemon-api/models"
)

// MenuItemFilter narrows and orders a menu item listing. Ordering accepts
// price, title or featured, with a leading "-" for descending.
type MenuItemFilter struct {
	CategorySlug string
	Search       string
	Ordering     string
}

// CatalogStore is the persistence surface for categories and menu items.
type CatalogStore interface {
	ListCategories() ([]models.Category, error)
	CreateCategory(c *models.Category) error
	GetCategory(id uint) (*models.Category, error)
	ListMenuItems(f MenuItemFilter) ([]models.MenuItem, error)
	GetMenuItem(id uint) (*models.MenuItem, error)
	CreateMenuItem(m *models.MenuItem) error
	UpdateMenuItem(id uint, fields map[string]interface{}) (*models.MenuItem, error)
	DeleteMenuItem(id uint) error
}

// CartStore is the persistence surface for cart entries.
type CartStore interface {
	// Upsert inserts the entry or merges it into the existing row for the
	// same (user, menu item) key, returning the resulting entry.
	Upsert(entry *models.CartItem) (*models.CartItem, error)
	ListByUser(userID uint) ([]models.CartItem, error)
	ClearUser(userID uint) error
}

// OrderStore is the persistence surface for orders.
type OrderStore interface {
	// CreateFromCart atomically converts the user's cart entries into an
	// order with line items, drains the cart and returns the order.
	// Returns ErrEmptyCart when the user has no cart entries.
	CreateFromCart(userID uint, reference string, date time.Time) (*models.Order, error)
	ListAll() ([]models.Order, error)
	ListByUser(userID uint) ([]models.Order, error)
	ListByCrew(crewID uint) ([]models.Order, error)
	Get(id uint) (*models.Order, error)
	Update(id uint, fields map[string]interface{}) (*models.Order, error)
	Delete(id uint) error
}

// UserStore is the persistence surface for users and group memberships.
type UserStore interface {
	Create(u *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	ListGroupMembers(groupName string) ([]models.User, error)
	// AddToGroup creates the group on first use.
	AddToGroup(groupName string, u *models.User) error
	RemoveFromGroup(groupName string, u *models.User) error
}
