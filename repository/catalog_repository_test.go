package repository

import (
	"errors"
	"testing"

	"little-lemon-api/models"
	"little-lemon-api/services"
)

func seedCatalog(t *testing.T, repo *CatalogRepository) {
	t.Helper()
	mains := &models.Category{Slug: "mains", Title: "Mains"}
	desserts := &models.Category{Slug: "desserts", Title: "Desserts"}
	for _, c := range []*models.Category{mains, desserts} {
		if err := repo.CreateCategory(c); err != nil {
			t.Fatalf("CreateCategory() error = %v", err)
		}
	}
	for _, m := range []*models.MenuItem{
		{Title: "Lemon Tart", Price: 10.00, Featured: true, CategoryID: &desserts.ID},
		{Title: "Greek Salad", Price: 12.50, CategoryID: &mains.ID},
		{Title: "Grilled Fish", Price: 20.00, CategoryID: &mains.ID},
	} {
		if err := repo.CreateMenuItem(m); err != nil {
			t.Fatalf("CreateMenuItem() error = %v", err)
		}
	}
}

func TestMenuItemFilters(t *testing.T) {
	db := testDB(t)
	repo := NewCatalogRepository(db)
	seedCatalog(t, repo)

	tests := []struct {
		name       string
		filter     services.MenuItemFilter
		wantTitles []string
	}{
		{
			name:       "no filter returns everything",
			filter:     services.MenuItemFilter{},
			wantTitles: []string{"Lemon Tart", "Greek Salad", "Grilled Fish"},
		},
		{
			name:       "filter by category slug",
			filter:     services.MenuItemFilter{CategorySlug: "mains"},
			wantTitles: []string{"Greek Salad", "Grilled Fish"},
		},
		{
			name:       "search by title substring",
			filter:     services.MenuItemFilter{Search: "Gr"},
			wantTitles: []string{"Greek Salad", "Grilled Fish"},
		},
		{
			name:       "order by price ascending",
			filter:     services.MenuItemFilter{Ordering: "price"},
			wantTitles: []string{"Lemon Tart", "Greek Salad", "Grilled Fish"},
		},
		{
			name:       "order by price descending",
			filter:     services.MenuItemFilter{Ordering: "-price"},
			wantTitles: []string{"Grilled Fish", "Greek Salad", "Lemon Tart"},
		},
		{
			name:       "unknown category yields nothing",
			filter:     services.MenuItemFilter{CategorySlug: "drinks"},
			wantTitles: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := repo.ListMenuItems(tt.filter)
			if err != nil {
				t.Fatalf("ListMenuItems() error = %v", err)
			}
			if len(items) != len(tt.wantTitles) {
				t.Fatalf("got %d items, want %d", len(items), len(tt.wantTitles))
			}
			if tt.filter.Ordering != "" {
				for i, want := range tt.wantTitles {
					if items[i].Title != want {
						t.Errorf("items[%d] = %q, want %q", i, items[i].Title, want)
					}
				}
			}
		})
	}
}

func TestCatalogCRUD(t *testing.T) {
	db := testDB(t)
	repo := NewCatalogRepository(db)
	seedCatalog(t, repo)

	err := repo.CreateCategory(&models.Category{Slug: "mains", Title: "Duplicate"})
	if !errors.Is(err, services.ErrConflict) {
		t.Errorf("CreateCategory(duplicate slug) error = %v, want %v", err, services.ErrConflict)
	}

	item, err := repo.UpdateMenuItem(1, map[string]interface{}{"price": 11.00, "featured": true})
	if err != nil {
		t.Fatalf("UpdateMenuItem() error = %v", err)
	}
	if item.Price != 11.00 || !item.Featured {
		t.Errorf("updated item = price %v featured %v, want 11.00 / true", item.Price, item.Featured)
	}

	if _, err := repo.UpdateMenuItem(99, map[string]interface{}{"price": 1.00}); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("UpdateMenuItem(missing) error = %v, want %v", err, services.ErrNotFound)
	}

	if err := repo.DeleteMenuItem(1); err != nil {
		t.Fatalf("DeleteMenuItem() error = %v", err)
	}
	if _, err := repo.GetMenuItem(1); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("GetMenuItem(deleted) error = %v, want %v", err, services.ErrNotFound)
	}
	if err := repo.DeleteMenuItem(1); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("DeleteMenuItem(missing) error = %v, want %v", err, services.ErrNotFound)
	}
}
