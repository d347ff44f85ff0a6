package repository

import (
	"strings"

	"little-lemon-api/models"
	"little-lemon-api/services"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

func (r *CatalogRepository) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	return categories, r.DB.Order("slug").Find(&categories).Error
}

func (r *CatalogRepository) CreateCategory(c *models.Category) error {
	return translate(r.DB.Create(c).Error, "category "+c.Slug)
}

func (r *CatalogRepository) GetCategory(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.DB.First(&category, id).Error; err != nil {
		return nil, translate(err, "category")
	}
	return &category, nil
}

func (r *CatalogRepository) ListMenuItems(f services.MenuItemFilter) ([]models.MenuItem, error) {
	q := r.DB.Preload("Category")
	if f.CategorySlug != "" {
		q = q.Joins("JOIN categories ON categories.id = menu_items.category_id").
			Where("categories.slug = ?", f.CategorySlug)
	}
	if f.Search != "" {
		q = q.Where("menu_items.title LIKE ?", "%"+f.Search+"%")
	}
	if f.Ordering != "" {
		// Column names are whitelisted by the catalog service.
		column := strings.TrimPrefix(f.Ordering, "-")
		if strings.HasPrefix(f.Ordering, "-") {
			column += " desc"
		}
		q = q.Order(column)
	}
	var items []models.MenuItem
	return items, q.Find(&items).Error
}

func (r *CatalogRepository) GetMenuItem(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.DB.Preload("Category").First(&item, id).Error; err != nil {
		return nil, translate(err, "menu item")
	}
	return &item, nil
}

func (r *CatalogRepository) CreateMenuItem(m *models.MenuItem) error {
	return translate(r.DB.Create(m).Error, "menu item "+m.Title)
}

func (r *CatalogRepository) UpdateMenuItem(id uint, fields map[string]interface{}) (*models.MenuItem, error) {
	res := r.DB.Model(&models.MenuItem{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, translate(res.Error, "menu item")
	}
	if res.RowsAffected == 0 {
		return nil, translate(gorm.ErrRecordNotFound, "menu item")
	}
	return r.GetMenuItem(id)
}

func (r *CatalogRepository) DeleteMenuItem(id uint) error {
	res := r.DB.Delete(&models.MenuItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "menu item")
	}
	return nil
}
