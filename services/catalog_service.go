package services

import (
	"fmt"
	"strings"

	"little-lemon-api/models"
)

type CatalogService struct {
	Catalog CatalogStore
}

func NewCatalogService(catalog CatalogStore) *CatalogService {
	return &CatalogService{Catalog: catalog}
}

type MenuItemInput struct {
	Title      string  `json:"title" binding:"required"`
	Price      float64 `json:"price" binding:"required,gt=0"`
	Featured   bool    `json:"featured"`
	CategoryID *uint   `json:"category_id"`
}

// menuItemFields are the columns a partial update may touch.
var menuItemFields = map[string]bool{
	"title":       true,
	"price":       true,
	"featured":    true,
	"category_id": true,
}

func (s *CatalogService) ListCategories() ([]models.Category, error) {
	return s.Catalog.ListCategories()
}

func (s *CatalogService) CreateCategory(slug, title string) (*models.Category, error) {
	if slug == "" || title == "" {
		return nil, fmt.Errorf("%w: slug and title are required", ErrValidation)
	}
	category := &models.Category{Slug: slug, Title: title}
	if err := s.Catalog.CreateCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CatalogService) ListMenuItems(f MenuItemFilter) ([]models.MenuItem, error) {
	switch strings.TrimPrefix(f.Ordering, "-") {
	case "", "price", "title", "featured":
	default:
		return nil, fmt.Errorf("%w: unsupported ordering %q", ErrValidation, f.Ordering)
	}
	return s.Catalog.ListMenuItems(f)
}

func (s *CatalogService) GetMenuItem(id uint) (*models.MenuItem, error) {
	return s.Catalog.GetMenuItem(id)
}

func (s *CatalogService) CreateMenuItem(in MenuItemInput) (*models.MenuItem, error) {
	if in.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be greater than zero", ErrValidation)
	}
	if in.CategoryID != nil {
		if _, err := s.Catalog.GetCategory(*in.CategoryID); err != nil {
			return nil, err
		}
	}
	item := &models.MenuItem{
		Title:      in.Title,
		Price:      in.Price,
		Featured:   in.Featured,
		CategoryID: in.CategoryID,
	}
	if err := s.Catalog.CreateMenuItem(item); err != nil {
		return nil, err
	}
	return s.Catalog.GetMenuItem(item.ID)
}

// UpdateMenuItem applies a partial update, dropping any field outside the
// allowed set.
func (s *CatalogService) UpdateMenuItem(id uint, patch map[string]interface{}) (*models.MenuItem, error) {
	fields := map[string]interface{}{}
	for k, v := range patch {
		if menuItemFields[k] {
			fields[k] = v
		}
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no updatable fields in request", ErrValidation)
	}
	if price, ok := fields["price"]; ok {
		p, ok := price.(float64)
		if !ok || p <= 0 {
			return nil, fmt.Errorf("%w: price must be greater than zero", ErrValidation)
		}
	}
	if rawID, ok := fields["category_id"]; ok && rawID != nil {
		cid, ok := rawID.(float64)
		if !ok || cid < 1 {
			return nil, fmt.Errorf("%w: category_id must be a positive integer", ErrValidation)
		}
		if _, err := s.Catalog.GetCategory(uint(cid)); err != nil {
			return nil, err
		}
	}
	return s.Catalog.UpdateMenuItem(id, fields)
}

func (s *CatalogService) DeleteMenuItem(id uint) error {
	return s.Catalog.DeleteMenuItem(id)
}
